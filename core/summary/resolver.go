// ABOUTME: Summary resolver picks a short human-readable summary for each feed item
// ABOUTME: Runs an ordered strategy chain and falls back to the normalized feed snippet

package summary

import (
	"context"
	"strings"
	"unicode/utf8"

	"goatland-feeds/core/domain"
	"goatland-feeds/core/interfaces"
)

// Ellipsis is appended to truncated summaries
const Ellipsis = "…"

// Candidate is the input every strategy sees
type Candidate struct {
	// Item is the raw feed item
	Item domain.FeedItem

	// ResolvedURL is the outbound link chosen for the item
	ResolvedURL string

	// Snippet is the item's snippet after Normalize
	Snippet string
}

// Strategy produces a summary or "" when it has nothing to offer
type Strategy interface {
	Name() string
	Summarize(ctx context.Context, c Candidate) (string, error)
}

// Options holds the length thresholds
type Options struct {
	// MaxLength is the rune count after which text is truncated
	MaxLength int

	// MinLength is the rune count at which the feed snippet is used without fetching
	MinLength int
}

// Resolver implements interfaces.SummaryResolver
type Resolver struct {
	opts       Options
	strategies []Strategy
	logger     interfaces.Logger
}

// NewResolver creates the default chain: feed snippet, then page metadata
func NewResolver(opts Options, metadata interfaces.MetadataService, classifier interfaces.LinkClassifier, logger interfaces.Logger) *Resolver {
	return NewResolverWithStrategies(opts, logger,
		FeedSnippet{MinLength: opts.MinLength},
		PageMetadata{Metadata: metadata, Classifier: classifier, MaxLength: opts.MaxLength},
	)
}

// NewResolverWithStrategies creates a resolver running strategies in order
func NewResolverWithStrategies(opts Options, logger interfaces.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{
		opts:       opts,
		strategies: strategies,
		logger:     logger,
	}
}

// ResolveSummary returns the first non-empty strategy result, else the normalized snippet.
// Strategy errors are logged and never returned.
func (r *Resolver) ResolveSummary(ctx context.Context, item domain.FeedItem, resolvedURL string) string {
	candidate := Candidate{
		Item:        item,
		ResolvedURL: resolvedURL,
		Snippet:     Normalize(item.Snippet, r.opts.MaxLength),
	}

	for _, strategy := range r.strategies {
		text, err := strategy.Summarize(ctx, candidate)
		if err != nil {
			if r.logger != nil {
				r.logger.Debug("Summary strategy failed", map[string]interface{}{
					"strategy": strategy.Name(),
					"item":     item.ID,
					"url":      resolvedURL,
					"error":    err.Error(),
				})
			}
			continue
		}
		if text != "" {
			return text
		}
	}

	return candidate.Snippet
}

// Normalize collapses whitespace, trims, and truncates to maxLength runes plus an ellipsis
func Normalize(text string, maxLength int) string {
	text = strings.Join(strings.Fields(text), " ")
	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	runes := []rune(text)
	return strings.TrimRight(string(runes[:maxLength]), " ") + Ellipsis
}
