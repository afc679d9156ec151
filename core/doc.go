// Package core contains the aggregation logic for the Goatland feed pipeline.
// It has no knowledge of where feeds come from on the wire or where the
// artifact ends up; those concerns are injected through interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: Feed items, aggregated items and the artifact envelope
// - feed: Fetches and parses one source feed
// - links: Classifies URLs as belonging to the aggregator's own domains
// - extract: Finds an item's outbound link and image
// - services: Page metadata extraction used for summaries
// - summary: Strategy chain that picks each item's summary
// - workers: Bounded, order-preserving concurrency
// - pipeline: INGEST, ENRICH, DEDUPE, RANK and EMIT
// - errors: Typed errors for configuration, fetch, enrichment and persistence
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, sink)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,
//	    HTTPClient: myHTTPClient,
//	    Logger:     myLogger,
//	}
//
//	classifier := links.NewClassifier(links.DefaultOwnDomains)
//	metadata := services.NewMetadataService(deps, services.MetadataOptions{Timeout: 10 * time.Second})
//
//	p, err := pipeline.New(pipeline.Options{
//	    Sources: []domain.Source{domain.NewSource("entertainment", "https://www.reddit.com/r/%s.rss", "reddit")},
//	    Limit:   5,
//	}, pipeline.Components{
//	    Ingestor:  feed.NewFeedService(deps, 20*time.Second),
//	    Extractor: extract.NewExtractor(classifier),
//	    Summaries: summary.NewResolver(summary.Options{MaxLength: 240, MinLength: 60}, metadata, classifier, myLogger),
//	    Sink:      mySink,
//	})
//	artifact, err := p.Run(ctx)
package core
