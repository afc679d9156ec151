// ABOUTME: Main entry point for the feed aggregator
// ABOUTME: Runs the pipeline once, or on a cron schedule until SIGINT/SIGTERM

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"goatland-feeds/core/pipeline"
	"goatland-feeds/infrastructure/logger/structured"
	"goatland-feeds/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "aggregate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, closeCache, err := buildCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{"error": err.Error()})
		}
	}()

	p, err := buildPipeline(ctx, cfg, logger, cache)
	if err != nil {
		return err
	}

	logger.Info("Starting aggregator", map[string]interface{}{
		"sources":          cfg.Sources,
		"limit":            cfg.Limit,
		"schedule":         cfg.Schedule,
		"cache":            cfg.Cache.Type,
		"cache_persistent": cfg.Cache.Persistent(),
	})

	if cfg.Schedule == "" {
		_, err := p.Run(ctx)
		return err
	}
	return runScheduled(ctx, cfg.Schedule, p, logger)
}

// runScheduled runs immediately and then on every cron tick; failed runs are logged
func runScheduled(ctx context.Context, schedule string, p *pipeline.Pipeline, logger *structured.Logger) error {
	runOnce := func() {
		if _, err := p.Run(ctx); err != nil {
			logger.Error("Scheduled run failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, runOnce); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	runOnce()
	c.Start()
	<-ctx.Done()

	logger.Info("Shutting down scheduler", nil)
	<-c.Stop().Done()
	return nil
}
