// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"strings"

	"github.com/MKhiriev/go-scope-config/models"
)

// Lookup resolves key against the mapping regardless of how the mapping
// spells it. Strategies are tried in a fixed order, first hit wins:
//
//  1. exact top-level match
//  2. flattened match — both sides lowercased with separators stripped,
//     so "api.url" finds "API_URL" and "apiurl"
//  3. segment match — both sides split on separators and compared
//     segment-wise, stricter than flattening
//  4. nested traversal — key split on ".", the tree descended one segment
//     at a time, each step matched exactly or flattened
//
// Only scalar values are returned: a hit on a subtree is a miss. A miss is
// not an error; callers fall back to their own defaults. Lookup never
// mutates the mapping.
func Lookup(m models.ConfigMap, key string) (any, bool) {
	if len(m) == 0 || key == "" {
		return nil, false
	}

	if v, ok := m[key]; ok && models.IsScalar(v) {
		return v, true
	}

	flat := flattenKey(key)
	for k, v := range m {
		if flattenKey(k) == flat && models.IsScalar(v) {
			return v, true
		}
	}

	want := splitKey(key)
	for k, v := range m {
		if segmentsEqual(splitKey(k), want) && models.IsScalar(v) {
			return v, true
		}
	}

	// traversal segments split on "." only: a segment like "max_size" must
	// stay whole so it can flatten-match a child key
	return descend(m, strings.Split(key, "."))
}

// descend walks the tree one segment at a time. Each step tries an exact
// child first, then a flattened one.
func descend(m models.ConfigMap, segments []string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	child, ok := m[segments[0]]
	if !ok {
		flat := flattenKey(segments[0])
		for k, v := range m {
			if flattenKey(k) == flat {
				child, ok = v, true
				break
			}
		}
	}
	if !ok {
		return nil, false
	}

	if len(segments) == 1 {
		if models.IsScalar(child) {
			return child, true
		}
		return nil, false
	}

	sub, ok := asMap(child)
	if !ok {
		return nil, false
	}
	return descend(sub, segments[1:])
}

func asMap(v any) (models.ConfigMap, bool) {
	switch m := v.(type) {
	case models.ConfigMap:
		return m, true
	default:
		return nil, false
	}
}

// flattenKey lowercases s and strips the separator characters, collapsing
// "api.url", "API_URL" and "apiurl" to the same form.
func flattenKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '.', '_', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

func splitKey(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
}

func segmentsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
