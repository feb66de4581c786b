// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-scope-config/models"
)

const (
	defaultCacheSize = 64
	defaultCacheTTL  = 5 * time.Minute
)

// Cache holds the last successfully resolved configuration per app id.
// Entries are replaced wholesale — Put swaps the stored pointer, never
// edits a stored value — so a concurrent reader either sees the previous
// complete snapshot or the new one, never a half-merged state. Staleness
// is handled by the backing LRU's TTL: an expired entry reads as absent
// and the next caller re-resolves.
type Cache struct {
	entries *lru.LRU[string, *models.ResolvedConfiguration]
}

// NewCache creates a cache bounded to size entries that expire after ttl.
// Non-positive arguments fall back to the package defaults.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{
		entries: lru.NewLRU[string, *models.ResolvedConfiguration](size, nil, ttl),
	}
}

// Get returns the cached configuration for the app id, or false when none
// exists or the entry has expired.
func (c *Cache) Get(appID string) (*models.ResolvedConfiguration, bool) {
	return c.entries.Get(appID)
}

// Put stores the configuration for its app id, replacing any previous
// entry atomically.
func (c *Cache) Put(cfg *models.ResolvedConfiguration) {
	c.entries.Add(cfg.AppID, cfg)
}

// Invalidate drops the entry for the app id, if present.
func (c *Cache) Invalidate(appID string) {
	c.entries.Remove(appID)
}
