// ABOUTME: HTTP contracts used by the feed ingestor and page metadata service
// ABOUTME: Implementations own timeouts, throttling and body size limits

package interfaces

import (
	"context"
	"io"
)

// HTTPClient fetches feed documents and article pages
type HTTPClient interface {
	// Get issues a GET bound to ctx. Non-2xx statuses are not errors;
	// callers inspect StatusCode themselves.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is a received HTTP response
type Response interface {
	StatusCode() int

	// Body may be truncated by the client's size cap. Callers must close it.
	Body() io.ReadCloser

	// Header returns a header value, or "" when absent
	Header(key string) string
}
