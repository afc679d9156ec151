// Package interfaces defines the contracts shared by the pipeline stages.
// Concrete implementations live under infrastructure/ and are injected at startup.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for byte-oriented cache operations.
// The pipeline uses it to avoid refetching the same page twice within a run.
//
// Example usage:
//
//	data, err := cache.Get(ctx, "metadata:https://example.com/story")
//	if err != nil {
//		// cache miss, fetch and store
//		_ = cache.Set(ctx, "metadata:https://example.com/story", encoded, time.Hour)
//	}
type Cache interface {
	// Get retrieves a value by key. A miss is reported as an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
