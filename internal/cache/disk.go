package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists responses across runs under a cache directory.
// Entries are one JSON file per key.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk cache rooted at dir
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value, dropping expired entries on read
func (c *DiskCache) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(c.path(key))
		return nil, false
	}
	return entry.Data, true
}

// Set stores a value with the given TTL (0 uses the cache default)
func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}
	entry := diskEntry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(key), raw, 0o644)
}

// Delete removes a value
func (c *DiskCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes the whole cache directory
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
