// ABOUTME: Standard HTTP client implementation with timeout, body cap and optional rate limiting
// ABOUTME: Issues exactly one request per call; callers treat any failure as a skipped source or item

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"goatland-feeds/core/interfaces"
)

const (
	defaultUserAgent    = "Goatland/1.0 (+https://goatland.net)"
	defaultMaxBodyBytes = 5 * 1024 * 1024
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds the whole request including reading the body
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// RequestsPerSecond throttles requests across goroutines; 0 disables throttling
	RequestsPerSecond float64

	// MaxBodyBytes truncates response bodies beyond this size
	MaxBodyBytes int64
}

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client       *http.Client
	limiter      *rate.Limiter
	userAgent    string
	maxBodyBytes int64
}

// NewStandardHTTPClient creates a new HTTP client from options
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client:       &http.Client{Timeout: opts.Timeout},
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.maxBodyBytes <= 0 {
		c.maxBodyBytes = defaultMaxBodyBytes
	}
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, text/html;q=0.9, */*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body: &limitedBody{
			Reader: io.LimitReader(resp.Body, c.maxBodyBytes),
			closer: resp.Body,
		},
		headers: resp.Header,
	}, nil
}

// limitedBody caps reads while closing the underlying body
type limitedBody struct {
	io.Reader
	closer io.Closer
}

func (b *limitedBody) Close() error {
	return b.closer.Close()
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
