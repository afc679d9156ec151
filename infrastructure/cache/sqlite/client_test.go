package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Client {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "nested", "cache.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestNewSQLiteCache_EmptyPath(t *testing.T) {
	_, err := NewSQLiteCache("", 0)
	assert.Error(t, err)
}

func TestClient_RoundTripPreservesBytes(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	tests := []struct {
		name string
		data []byte
	}{
		{"json", []byte(`{"ogDescription":"Trailer drops"}`)},
		{"binary", []byte{0x00, 0x01, 0xFF, 0xFE}},
		{"empty", []byte{}},
		{"unicode", []byte("Schrödinger’s cat … 🎬")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, cache.Set(ctx, tt.name, tt.data, time.Hour))

			got, err := cache.Get(ctx, tt.name)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.data, got), "got %v, want %v", got, tt.data)
		})
	}
}

func TestClient_MissAndExpiry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, err := cache.Get(ctx, "absent")
	assert.True(t, errors.Is(err, ErrCacheMiss))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "short", []byte("v"), time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(2 * time.Minute)

	_, err = cache.Get(ctx, "short")
	assert.True(t, errors.Is(err, ErrCacheMiss))

	_, err = cache.Get(ctx, "forever")
	assert.NoError(t, err)

	require.NoError(t, cache.cleanup(ctx))
	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClient_SetOverwritesAndDelete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("one"), time.Hour))
	require.NoError(t, cache.Set(ctx, "k", []byte("two"), time.Hour))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "k"))

	_, err = cache.Get(ctx, "k")
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestClient_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path, 0)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "metadata:https://example.com", []byte("cached"), time.Hour))
	require.NoError(t, first.Close())

	second, err := NewSQLiteCache(path, 0)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "metadata:https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "cached", string(got))
}

func TestClient_EmptyKey(t *testing.T) {
	cache := newTestCache(t)

	assert.Error(t, cache.Set(context.Background(), "", []byte("v"), time.Hour))
	_, err := cache.Get(context.Background(), "")
	assert.Error(t, err)
}
