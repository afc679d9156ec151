// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps page metadata across one-shot runs so repeated links are not refetched

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// noExpiry marks entries stored with a zero TTL
const noExpiry = int64(1<<63 - 1)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSQLiteCache opens or creates the database at filePath and starts expiry cleanup
func NewSQLiteCache(filePath string, cleanupInterval time.Duration) (*Client, error) {
	if filePath == "" {
		return nil, errors.New("sqlite cache path cannot be empty")
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// One writer keeps concurrent enrichment from hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if cleanupInterval > 0 {
		go client.cleanupRoutine(cleanupInterval)
	}
	return client, nil
}

func (c *Client) initSchema() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM cache WHERE key = ? AND expiry > ?",
		key, c.now().Unix(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// Set stores a value in the cache; a zero TTL means no expiration
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if value == nil {
		value = []byte{}
	}

	expiry := noExpiry
	if ttl > 0 {
		expiry = c.now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)",
		key, value, expiry,
	)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// Len returns the number of unexpired entries
func (c *Client) Len(ctx context.Context) (int, error) {
	var count int
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache WHERE expiry > ?", c.now().Unix()).Scan(&count)
	return count, err
}

func (c *Client) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.cleanup(context.Background())
		case <-c.stop:
			return
		}
	}
}

// cleanup removes expired entries
func (c *Client) cleanup(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE expiry <= ?", c.now().Unix())
	return err
}

// Close stops cleanup and closes the database connection
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return c.db.Close()
}
