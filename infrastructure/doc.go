// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and artifact storage.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by go-cache
// - cache/redis: Redis-based cache shared between processes
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: net/http client with optional rate limiting and body caps
// - logger/structured: logrus logger with text or JSON output
// - storage/file: Atomic local artifact writes
// - storage/s3: Artifact upload to S3
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := sqlite.NewSQLiteCache("data/metadata-cache.db", 10*time.Minute)
//	defer cache.Close()
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    Timeout:           20 * time.Second,
//	    UserAgent:         "Goatland/1.0 (+https://goatland.net)",
//	    RequestsPerSecond: 2,
//	})
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Wrote artifact", map[string]interface{}{
//	    "target": "data/entertainment.json",
//	    "items":  5,
//	})
package infrastructure
