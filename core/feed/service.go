// ABOUTME: Feed service fetches one source feed and parses it into raw feed items
// ABOUTME: Every failure is returned as a SourceFetchError so the pipeline can skip the source

package feed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"goatland-feeds/core/domain"
	coreerrors "goatland-feeds/core/errors"
	"goatland-feeds/core/interfaces"
	htmlutil "goatland-feeds/pkg/utils/html"
	timeutil "goatland-feeds/pkg/utils/time"
)

// FeedService handles feed fetching and parsing
type FeedService struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewFeedService creates a new feed service instance.
// timeout bounds each Ingest call; zero means the caller's context alone applies.
func NewFeedService(deps interfaces.Dependencies, timeout time.Duration) *FeedService {
	return &FeedService{
		deps:    deps,
		timeout: timeout,
	}
}

// Ingest fetches and parses the source's feed, preserving document order
func (s *FeedService) Ingest(ctx context.Context, source domain.Source) ([]domain.FeedItem, error) {
	items, err := s.ingest(ctx, source)
	if err != nil {
		return nil, &coreerrors.SourceFetchError{Source: source.ID, Cause: err}
	}
	return items, nil
}

func (s *FeedService) ingest(ctx context.Context, source domain.Source) ([]domain.FeedItem, error) {
	parsedURL, err := url.Parse(source.FeedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid feed URL")
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.deps.HTTPClient.Get(ctx, source.FeedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        parsedURL.Host,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read feed body")
	}

	items, err := parseFeedContent(bodyBytes, source)
	if err != nil {
		return nil, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Parsed feed", map[string]interface{}{
			"source": source.ID,
			"url":    source.FeedURL,
			"items":  len(items),
		})
	}
	return items, nil
}

// parseFeedContent parses RSS, Atom or JSON feed bytes into feed items
func parseFeedContent(content []byte, source domain.Source) ([]domain.FeedItem, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty feed content")
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, coreerrors.WrapError(err, "parse feed")
	}

	items := make([]domain.FeedItem, 0, len(parsedFeed.Items))
	for _, item := range parsedFeed.Items {
		if item == nil {
			continue
		}
		items = append(items, convertItemToDomain(item, source))
	}
	return items, nil
}

// convertItemToDomain converts a gofeed item to a domain item
func convertItemToDomain(item *gofeed.Item, source domain.Source) domain.FeedItem {
	feedItem := domain.FeedItem{
		ID:          strings.TrimSpace(item.GUID),
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		SourceGroup: source.ID,
		SourceLabel: source.Label,
	}

	// Use GUID or fall back to the link
	if feedItem.ID == "" {
		feedItem.ID = feedItem.Link
	}

	if item.Content != "" {
		feedItem.ContentHTML = item.Content
	} else {
		feedItem.ContentHTML = item.Description
	}
	feedItem.Snippet = htmlutil.StripHTML(feedItem.ContentHTML)

	// An unreadable published stamp falls through to the updated one
	feedItem.Published = timeutil.ParseOptional(item.PublishedParsed, item.Published)
	if feedItem.Published == nil {
		feedItem.Published = timeutil.ParseOptional(item.UpdatedParsed, item.Updated)
	}

	if item.Author != nil && item.Author.Name != "" {
		feedItem.Author = strings.TrimSpace(item.Author.Name)
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		feedItem.Author = strings.TrimSpace(item.Authors[0].Name)
	}

	feedItem.MediaURL = findMedia(item)
	return feedItem
}

// findMedia returns the feed-declared media attachment for an item
func findMedia(item *gofeed.Item) string {
	// 1. Enclosures that are images or untyped
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	// 2. Item image
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	// 3. media:thumbnail, then image media:content
	media := item.Extensions["media"]
	if media == nil {
		return ""
	}
	if u := firstAttr(media["thumbnail"], "url", nil); u != "" {
		return u
	}
	return firstAttr(media["content"], "url", func(e ext.Extension) bool {
		return e.Attrs["medium"] == "image" || strings.HasPrefix(e.Attrs["type"], "image/")
	})
}

func firstAttr(elements []ext.Extension, attr string, accept func(ext.Extension) bool) string {
	for _, e := range elements {
		if accept != nil && !accept(e) {
			continue
		}
		if v := strings.TrimSpace(e.Attrs[attr]); v != "" {
			return v
		}
	}
	return ""
}
