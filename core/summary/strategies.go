package summary

import (
	"context"
	"unicode/utf8"

	"goatland-feeds/core/interfaces"
)

// FeedSnippet returns the feed's own snippet when it is long enough to stand alone
type FeedSnippet struct {
	MinLength int
}

// Name identifies the strategy in logs
func (FeedSnippet) Name() string { return "feed_snippet" }

// Summarize never performs I/O
func (s FeedSnippet) Summarize(_ context.Context, c Candidate) (string, error) {
	if c.Snippet != "" && utf8.RuneCountInString(c.Snippet) >= s.MinLength {
		return c.Snippet, nil
	}
	return "", nil
}

// PageMetadata fetches the resolved page and reads its description meta tags.
// Own-domain and empty URLs are skipped without a request.
type PageMetadata struct {
	Metadata   interfaces.MetadataService
	Classifier interfaces.LinkClassifier
	MaxLength  int
}

// Name identifies the strategy in logs
func (PageMetadata) Name() string { return "page_metadata" }

// Summarize performs at most one fetch through the metadata service
func (s PageMetadata) Summarize(ctx context.Context, c Candidate) (string, error) {
	if s.Metadata == nil || c.ResolvedURL == "" || s.Classifier == nil || s.Classifier.IsOwnDomain(c.ResolvedURL) {
		return "", nil
	}

	result, err := s.Metadata.ExtractMetadata(ctx, c.ResolvedURL)
	if err != nil {
		return "", err
	}
	return Normalize(result.BestDescription(), s.MaxLength), nil
}
