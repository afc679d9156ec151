// ABOUTME: Wiring builds the pipeline and its collaborators from configuration
// ABOUTME: Chooses the S3 sink when a bucket is configured, otherwise the local file sink

package main

import (
	"context"
	"path/filepath"
	"time"

	"goatland-feeds/core/extract"
	"goatland-feeds/core/feed"
	"goatland-feeds/core/interfaces"
	"goatland-feeds/core/links"
	"goatland-feeds/core/pipeline"
	"goatland-feeds/core/services"
	"goatland-feeds/core/summary"
	"goatland-feeds/infrastructure/cache/memory"
	"goatland-feeds/infrastructure/cache/redis"
	"goatland-feeds/infrastructure/cache/sqlite"
	stdhttp "goatland-feeds/infrastructure/http/standard"
	"goatland-feeds/infrastructure/storage/file"
	s3sink "goatland-feeds/infrastructure/storage/s3"
	"goatland-feeds/pkg/config"
)

// closer releases a backend's resources at shutdown
type closer func() error

// buildPipeline wires every component the run needs
func buildPipeline(ctx context.Context, cfg *config.Config, logger interfaces.Logger, cache interfaces.Cache) (*pipeline.Pipeline, error) {
	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:           maxDuration(cfg.HTTP.FeedTimeout, cfg.HTTP.EnrichTimeout),
		UserAgent:         cfg.HTTP.UserAgent,
		RequestsPerSecond: cfg.HTTP.RequestsPerSecond,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	classifier := links.NewClassifier(cfg.OwnDomains)
	if logger != nil {
		logger.Info("Link classifier configured", map[string]interface{}{
			"own_domains": classifier.Domains(),
		})
	}
	metadata := services.NewMetadataService(deps, services.MetadataOptions{
		Timeout:             cfg.HTTP.EnrichTimeout,
		CacheTTL:            cfg.Cache.TTL,
		ReadabilityFallback: cfg.Summary.ReadabilityFallback,
	})

	sink, err := buildSink(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return pipeline.New(pipeline.Options{
		Sources:       cfg.ResolveSources(),
		Limit:         cfg.Limit,
		Concurrency:   cfg.HTTP.Concurrency,
		EnrichTimeout: cfg.HTTP.EnrichTimeout,
	}, pipeline.Components{
		Ingestor:  feed.NewFeedService(deps, cfg.HTTP.FeedTimeout),
		Extractor: extract.NewExtractor(classifier),
		Summaries: summary.NewResolver(summary.Options{
			MaxLength: cfg.Summary.MaxLength,
			MinLength: cfg.Summary.MinLength,
		}, metadata, classifier, logger),
		Sink:   sink,
		Logger: logger,
	})
}

// buildCache creates the metadata cache; an unreachable Redis falls back to memory
func buildCache(ctx context.Context, cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, closer, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(ctx, cfg.Redis)
		if err == nil {
			return redisCache, redisCache.Close, nil
		}
		if logger != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"address": cfg.Redis.Address,
				"error":   err.Error(),
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Path, 10*time.Minute)
		if err != nil {
			return nil, noop, err
		}
		if logger != nil {
			entries, err := sqliteCache.Len(ctx)
			if err != nil {
				_ = sqliteCache.Close()
				return nil, noop, err
			}
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path":    cfg.Path,
				"entries": entries,
			})
		}
		return sqliteCache, sqliteCache.Close, nil
	}
	return memory.NewMemoryCache(10 * time.Minute), noop, nil
}

func buildSink(ctx context.Context, cfg *config.Config) (interfaces.ArtifactSink, error) {
	if cfg.Output.S3Bucket == "" {
		return file.NewSink(cfg.Output.Path), nil
	}
	sink, err := s3sink.NewSink(ctx, s3sink.Config{
		Bucket: cfg.Output.S3Bucket,
		Key:    s3Key(cfg.Output),
		Region: cfg.Output.S3Region,
	})
	if err != nil {
		return nil, err
	}
	return sink, nil
}

// s3Key falls back to the base name of the local path
func s3Key(out config.OutputConfig) string {
	if out.S3Key != "" {
		return out.S3Key
	}
	if out.Path == "" {
		return "entertainment.json"
	}
	return filepath.Base(out.Path)
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
