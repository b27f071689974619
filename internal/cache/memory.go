package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps responses in process memory with per-entry TTLs
// and counts lookup hits and misses
type MemoryCache struct {
	cache  *gocache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		c.hits.Add(1)
		return val.([]byte), true
	}
	c.misses.Add(1)
	return nil, false
}

// Set stores a value with the given TTL
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// Stats reports lookup counts since the cache was created
func (c *MemoryCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
