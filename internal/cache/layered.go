package cache

import (
	"sync/atomic"
	"time"
)

// LayeredCache checks memory first, then disk, promoting disk hits.
// Its counters report overall lookups, whichever layer answered.
type LayeredCache struct {
	memory *MemoryCache
	disk   *DiskCache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLayeredCache creates a layered memory+disk cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves a value, promoting disk hits into memory
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		c.hits.Add(1)
		return val, true
	}
	if val, found := c.disk.Get(key); found {
		c.hits.Add(1)
		_ = c.memory.Set(key, val, 0)
		return val, true
	}
	c.misses.Add(1)
	return nil, false
}

// Set stores a value in both layers
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	if err := c.memory.Delete(key); err != nil {
		return err
	}
	return c.disk.Delete(key)
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	if err := c.memory.Clear(); err != nil {
		return err
	}
	return c.disk.Clear()
}

// Stats reports overall lookup counts across both layers
func (c *LayeredCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
