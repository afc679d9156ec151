// ABOUTME: Metadata extraction service fetches an article page and reads its description tags
// ABOUTME: One GET per URL per cache lifetime; og:description wins over the standard description meta

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	coreerrors "goatland-feeds/core/errors"
	"goatland-feeds/core/interfaces"
)

// MetadataOptions configures a MetadataService
type MetadataOptions struct {
	// Timeout bounds the page fetch
	Timeout time.Duration

	// CacheTTL is how long results are reused; zero disables caching
	CacheTTL time.Duration

	// ReadabilityFallback computes an article excerpt when the page has no description meta
	ReadabilityFallback bool
}

// MetadataService handles metadata extraction from URLs
type MetadataService struct {
	deps interfaces.Dependencies
	opts MetadataOptions
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies, opts MetadataOptions) *MetadataService {
	return &MetadataService{
		deps: deps,
		opts: opts,
	}
}

// ExtractMetadata fetches targetURL and extracts its metadata.
// Failures are returned as EnrichmentError.
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*interfaces.MetadataResult, error) {
	parsedURL, err := url.Parse(targetURL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") || parsedURL.Host == "" {
		return nil, &coreerrors.EnrichmentError{URL: targetURL, Cause: errors.New("not an absolute http(s) URL")}
	}

	cacheKey := "metadata:" + targetURL
	if cached := s.getCached(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result, err := s.extractFromURL(ctx, parsedURL)
	if err != nil {
		return nil, &coreerrors.EnrichmentError{URL: targetURL, Cause: err}
	}

	s.setCached(ctx, cacheKey, result)
	return result, nil
}

// extractFromURL performs the fetch and the meta scan
func (s *MetadataService) extractFromURL(ctx context.Context, pageURL *url.URL) (*interfaces.MetadataResult, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        pageURL.Host,
		}
	}

	if contentType := resp.Header("Content-Type"); contentType != "" && !strings.Contains(strings.ToLower(contentType), "html") {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read page body")
	}

	result, err := parseMetadata(body)
	if err != nil {
		return nil, err
	}

	if s.opts.ReadabilityFallback && result.OGDescription == "" && result.Description == "" {
		if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
			result.Excerpt = strings.TrimSpace(article.Excerpt)
		} else if s.deps.Logger != nil {
			s.deps.Logger.Debug("Readability extraction failed", map[string]interface{}{
				"url":   pageURL.String(),
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

// parseMetadata scans head meta tags in document order
func parseMetadata(body []byte) (*interfaces.MetadataResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, coreerrors.WrapError(err, "parse page")
	}

	result := &interfaces.MetadataResult{}

	doc.Find("meta[content]").Each(func(_ int, sel *goquery.Selection) {
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}

		property := strings.ToLower(strings.TrimSpace(sel.AttrOr("property", "")))
		name := strings.ToLower(strings.TrimSpace(sel.AttrOr("name", "")))

		switch {
		case property == "og:description" || name == "og:description":
			if result.OGDescription == "" {
				result.OGDescription = content
			}
		case name == "description":
			if result.Description == "" {
				result.Description = content
			}
		}
	})

	return result, nil
}

// getCached retrieves a result from cache
func (s *MetadataService) getCached(ctx context.Context, key string) *interfaces.MetadataResult {
	if s.deps.Cache == nil || s.opts.CacheTTL <= 0 {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result interfaces.MetadataResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

// setCached stores a result in cache, ignoring cache errors
func (s *MetadataService) setCached(ctx context.Context, key string, result *interfaces.MetadataResult) {
	if s.deps.Cache == nil || s.opts.CacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, data, s.opts.CacheTTL)
}
