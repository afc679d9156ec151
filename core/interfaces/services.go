// ABOUTME: Service interfaces for the aggregation pipeline
// ABOUTME: Defines contracts between ingestion, enrichment and the orchestrator

package interfaces

import (
	"context"

	"goatland-feeds/core/domain"
)

// FeedIngestor fetches and parses one source into raw feed items
type FeedIngestor interface {
	Ingest(ctx context.Context, source domain.Source) ([]domain.FeedItem, error)
}

// LinkClassifier decides whether a URL belongs to the source platform's own hosts
type LinkClassifier interface {
	IsOwnDomain(rawURL string) bool
}

// ContentExtractor derives the outbound link and preview image of a raw item
type ContentExtractor interface {
	OriginalURL(item domain.FeedItem) string
	Image(item domain.FeedItem) string
}

// MetadataResult contains descriptive metadata extracted from a web page
type MetadataResult struct {
	OGDescription string
	Description   string
	Excerpt       string
}

// BestDescription returns og:description, else the meta description, else the readability excerpt
func (m *MetadataResult) BestDescription() string {
	if m == nil {
		return ""
	}
	for _, candidate := range []string{m.OGDescription, m.Description, m.Excerpt} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// MetadataService fetches a page once and extracts its metadata
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
}

// SummaryResolver produces a short summary for an item, fetching page metadata when needed
type SummaryResolver interface {
	ResolveSummary(ctx context.Context, item domain.FeedItem, resolvedURL string) string
}
