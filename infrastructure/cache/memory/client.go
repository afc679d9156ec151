// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Stores defensive byte copies with per-entry TTL and periodic janitor cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using go-cache
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache.
// cleanupInterval controls how often expired entries are purged.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL; zero means no expiration
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}
	c.store.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.store.Delete(key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet purged
func (c *MemoryCache) Len() int {
	return c.store.ItemCount()
}
