package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores fetched probe and homepage responses so repeated runs
// over the same project do not hammer remote hosts.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// StatsReporter is implemented by caches that count lookups
type StatsReporter interface {
	Stats() (hits, misses uint64)
}

// Key generates a cache key for a URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "provenir:v1:" + hex.EncodeToString(hash[:])
}
