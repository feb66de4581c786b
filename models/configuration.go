// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// ConfigMap is a tree-shaped configuration mapping: values are either
// scalars (string, bool, float64) or nested ConfigMap / map[string]any
// subtrees. Leaves are always scalars once resolution completes.
type ConfigMap = map[string]any

// ResolvedConfiguration is the merged configuration for one app scope.
// Instances are immutable after construction: the cache replaces whole
// values on refresh and never mutates them in place, so concurrent readers
// always observe a fully formed snapshot.
type ResolvedConfiguration struct {
	// AppID is the application scope this configuration was resolved for.
	AppID string `json:"app_id"`

	// Values is the merged configuration tree. Higher-priority sources have
	// already won every key conflict; no further merging is needed.
	Values ConfigMap `json:"values"`

	// Provenance records, for each top-level key of Values, the source
	// variant that contributed the winning value. Diagnostic only.
	Provenance map[string]SourceVariant `json:"provenance,omitempty"`

	// ResolvedAt is the moment the merge completed.
	ResolvedAt time.Time `json:"resolved_at"`
}

// IsScalar reports whether v is a leaf configuration value: a string, bool,
// or number. Subtrees and everything else are not scalars.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, int, int64:
		return true
	default:
		return false
	}
}
