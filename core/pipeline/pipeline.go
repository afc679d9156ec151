// ABOUTME: Aggregation pipeline runs INGEST, ENRICH, DEDUPE, RANK and EMIT in a single pass
// ABOUTME: Per-source and per-item failures degrade quietly; only configuration and persistence are fatal

package pipeline

import (
	"context"
	"time"

	"goatland-feeds/core/domain"
	coreerrors "goatland-feeds/core/errors"
	"goatland-feeds/core/interfaces"
	"goatland-feeds/core/workers"
)

// Options is the run configuration
type Options struct {
	// Sources are ingested in this order, which also fixes dedupe precedence
	Sources []domain.Source

	// Limit is the maximum number of items emitted
	Limit int

	// Concurrency bounds parallel ingestion and enrichment
	Concurrency int

	// EnrichTimeout bounds the enrichment of a single item; zero means no extra bound
	EnrichTimeout time.Duration
}

// Components are the collaborators a pipeline drives
type Components struct {
	Ingestor  interfaces.FeedIngestor
	Extractor interfaces.ContentExtractor
	Summaries interfaces.SummaryResolver
	Sink      interfaces.ArtifactSink
	Logger    interfaces.Logger

	// Clock stamps generatedAt; defaults to time.Now
	Clock func() time.Time
}

// RunStats summarizes one run for logging
type RunStats struct {
	SourcesOK     int
	SourcesFailed int
	Ingested      int
	Untitled      int
	Keyless       int
	Duplicates    int
	Emitted       int
}

// Pipeline is a configured aggregation run
type Pipeline struct {
	opts  Options
	comps Components
	pool  *workers.Pool
}

// New validates the configuration and returns a ready pipeline.
// Invalid configuration is reported as a ConfigurationError before any I/O.
func New(opts Options, comps Components) (*Pipeline, error) {
	if len(opts.Sources) == 0 {
		return nil, &coreerrors.ConfigurationError{Field: "SOURCES", Message: "at least one source is required"}
	}
	if opts.Limit < 1 {
		return nil, &coreerrors.ConfigurationError{Field: "LIMIT", Message: "must be a positive integer"}
	}
	if comps.Ingestor == nil || comps.Extractor == nil || comps.Summaries == nil || comps.Sink == nil {
		return nil, &coreerrors.ConfigurationError{Field: "components", Message: "ingestor, extractor, summaries and sink are required"}
	}
	if comps.Clock == nil {
		comps.Clock = time.Now
	}
	if comps.Logger == nil {
		comps.Logger = nopLogger{}
	}

	return &Pipeline{
		opts:  opts,
		comps: comps,
		pool:  workers.NewPool(opts.Concurrency),
	}, nil
}

// Run executes one full pass and persists the artifact.
// A cancelled context aborts the run before anything is written.
func (p *Pipeline) Run(ctx context.Context) (*domain.Artifact, error) {
	var stats RunStats
	started := p.comps.Clock()

	raw, err := p.ingest(ctx, &stats)
	if err != nil {
		return nil, err
	}

	enriched, err := p.enrich(ctx, raw, &stats)
	if err != nil {
		return nil, err
	}

	unique, duplicates, keyless := Dedupe(enriched)
	stats.Duplicates = duplicates
	stats.Keyless = keyless

	Rank(unique)

	artifact := domain.NewArtifact(unique, p.opts.Limit, p.comps.Clock())
	stats.Emitted = artifact.Count

	if err := p.comps.Sink.Write(ctx, artifact); err != nil {
		if !coreerrors.IsPersistence(err) {
			err = &coreerrors.PersistenceError{Target: p.comps.Sink.Target(), Cause: err}
		}
		p.comps.Logger.Error("Failed to write artifact", map[string]interface{}{
			"target": p.comps.Sink.Target(),
			"error":  err.Error(),
		})
		return nil, err
	}

	p.comps.Logger.Info("Wrote artifact", map[string]interface{}{
		"target":         p.comps.Sink.Target(),
		"items":          stats.Emitted,
		"sources_ok":     stats.SourcesOK,
		"sources_failed": stats.SourcesFailed,
		"ingested":       stats.Ingested,
		"untitled":       stats.Untitled,
		"keyless":        stats.Keyless,
		"duplicates":     stats.Duplicates,
		"concurrency":    p.pool.Size(),
		"duration_ms":    p.comps.Clock().Sub(started).Milliseconds(),
	})
	return artifact, nil
}

type ingestResult struct {
	items []domain.FeedItem
	err   error
}

// ingest fetches every source and concatenates items in source order
func (p *Pipeline) ingest(ctx context.Context, stats *RunStats) ([]domain.FeedItem, error) {
	results, err := workers.Map(ctx, p.pool, p.opts.Sources, func(ctx context.Context, src domain.Source) ingestResult {
		items, err := p.comps.Ingestor.Ingest(ctx, src)
		return ingestResult{items: items, err: err}
	})
	if err != nil {
		return nil, err
	}

	var all []domain.FeedItem
	for i, result := range results {
		src := p.opts.Sources[i]
		if result.err != nil {
			stats.SourcesFailed++
			p.comps.Logger.Warn("Source ingestion failed", map[string]interface{}{
				"source": src.ID,
				"url":    src.FeedURL,
				"error":  result.err.Error(),
			})
			continue
		}
		stats.SourcesOK++
		all = append(all, result.items...)
	}
	stats.Ingested = len(all)
	return all, nil
}

type enrichResult struct {
	item domain.AggregatedItem
	ok   bool
}

// enrich converts raw items into aggregated items, preserving arrival order
func (p *Pipeline) enrich(ctx context.Context, raw []domain.FeedItem, stats *RunStats) ([]domain.AggregatedItem, error) {
	results, err := workers.Map(ctx, p.pool, raw, func(ctx context.Context, item domain.FeedItem) enrichResult {
		if !item.IsValid() {
			return enrichResult{}
		}
		return enrichResult{item: p.enrichItem(ctx, item), ok: true}
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.AggregatedItem, 0, len(results))
	for _, result := range results {
		if !result.ok {
			stats.Untitled++
			continue
		}
		out = append(out, result.item)
	}
	return out, nil
}

// enrichItem derives url, thread url, image and summary for one item
func (p *Pipeline) enrichItem(ctx context.Context, item domain.FeedItem) domain.AggregatedItem {
	if p.opts.EnrichTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.EnrichTimeout)
		defer cancel()
	}

	resolvedURL := p.comps.Extractor.OriginalURL(item)
	if resolvedURL == "" {
		resolvedURL = item.Link
	}

	id := item.ID
	if id == "" {
		id = resolvedURL
	}

	var isoDate *string
	if item.Published != nil {
		isoDate = domain.OptionalString(domain.FormatISO(*item.Published))
	}

	return domain.AggregatedItem{
		ID:              id,
		Title:           item.Title,
		URL:             resolvedURL,
		SourceThreadURL: domain.OptionalString(item.Link),
		ISODate:         isoDate,
		Author:          domain.OptionalString(item.Author),
		SourceGroup:     domain.OptionalString(item.SourceGroup),
		Source:          domain.OptionalString(item.SourceLabel),
		Image:           domain.OptionalString(p.comps.Extractor.Image(item)),
		Summary:         domain.OptionalString(p.comps.Summaries.ResolveSummary(ctx, item, resolvedURL)),
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
