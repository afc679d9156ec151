package feed

import (
	"context"
	"io"
	"strings"
	"sync"

	"goatland-feeds/core/interfaces"
)

// mockHTTPClient serves canned responses and remembers what was requested
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)

	mu        sync.Mutex
	requested []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.requested = append(m.requested, url)
	m.mu.Unlock()

	if m.getFunc == nil {
		return &mockResponse{statusCode: 404}, nil
	}
	return m.getFunc(ctx, url)
}

type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int     { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }
