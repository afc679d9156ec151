package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"goatland-feeds/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu      sync.Mutex
	calls   int
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mapCache is a map-backed implementation of the Cache interface
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errors.New("miss")
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}
