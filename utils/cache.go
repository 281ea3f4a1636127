package utils

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TTLCache is an explicit, injectable read cache. Handlers that want
// cached order reads receive one of these rather than reaching for a
// package-wide singleton, so tests and callers control its lifetime.
type TTLCache struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewTTLCache creates a cache whose entries expire after ttl.
func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Get returns the cached value for key, if present and unexpired.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Set stores value under key for the cache's TTL.
func (c *TTLCache) Set(key string, value interface{}) {
	c.store.Set(key, value, c.ttl)
}

// Invalidate drops the entry for key. Mutating handlers call this so the
// next read re-derives from the authoritative record.
func (c *TTLCache) Invalidate(key string) {
	c.store.Delete(key)
}

// TTL returns the configured entry lifetime.
func (c *TTLCache) TTL() time.Duration {
	return c.ttl
}
