// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"sort"

	"github.com/MKhiriev/go-scope-config/models"
)

// Layer pairs one source's raw mapping with the variant it came from. The
// variant carries the merge priority.
type Layer struct {
	Variant models.SourceVariant
	Values  models.ConfigMap
}

// Merge folds the layers into one mapping, lowest priority first, so a
// higher-priority source wins every key conflict. The merge is deep: when
// both sides hold a subtree for the same key, the subtrees are merged
// per-leaf rather than the higher one replacing the lower wholesale. A
// scalar never merges with a subtree — whichever the higher-priority layer
// holds wins outright, even when that value is false, zero, or empty.
//
// The sort is stable: should two layers ever share a priority, the later
// one wins. Inputs are never mutated; the result shares no containers with
// them.
func Merge(layers []Layer) models.ConfigMap {
	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	sortLayers(sorted)

	merged := models.ConfigMap{}
	for _, layer := range sorted {
		mergeInto(merged, layer.Values)
	}
	return merged
}

// sortLayers orders layers ascending by priority, stably.
func sortLayers(layers []Layer) {
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].Variant.Priority() < layers[j].Variant.Priority()
	})
}

// mergeInto applies src over dst, recursing where both sides are maps.
func mergeInto(dst, src models.ConfigMap) {
	for key, srcVal := range src {
		srcMap, srcIsMap := asMap(srcVal)
		if !srcIsMap {
			dst[key] = srcVal
			continue
		}

		dstMap, dstIsMap := asMap(dst[key])
		if !dstIsMap {
			dst[key] = cloneMap(srcMap)
			continue
		}

		mergeInto(dstMap, srcMap)
	}
}

// cloneMap deep-copies a subtree so the merged result never aliases a
// source mapping.
func cloneMap(m models.ConfigMap) models.ConfigMap {
	out := make(models.ConfigMap, len(m))
	for k, v := range m {
		if sub, ok := asMap(v); ok {
			out[k] = cloneMap(sub)
			continue
		}
		out[k] = v
	}
	return out
}
