// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares fetched page metadata between aggregator processes and across runs

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"goatland-feeds/pkg/config"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// DefaultKeyPrefix namespaces every key written by the aggregator
const DefaultKeyPrefix = "goatland:"

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache connects to Redis and verifies the connection with a ping
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}

	return NewWithClient(client, DefaultKeyPrefix), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis; a zero TTL means no expiration
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
