package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSource(t *testing.T) {
	const template = "https://www.reddit.com/r/%s.rss"

	tests := []struct {
		identifier string
		wantID     string
		wantURL    string
	}{
		{"entertainment", "entertainment", "https://www.reddit.com/r/entertainment.rss"},
		{"r/movies", "movies", "https://www.reddit.com/r/movies.rss"},
		{"/r/television", "television", "https://www.reddit.com/r/television.rss"},
		{"  R/Music ", "Music", "https://www.reddit.com/r/Music.rss"},
		{"https://example.com/feed.xml", "https://example.com/feed.xml", "https://example.com/feed.xml"},
		{"r/", "", "https://www.reddit.com/r/.rss"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			src := NewSource(tt.identifier, template, "reddit")

			assert.Equal(t, tt.wantID, src.ID)
			assert.Equal(t, tt.wantURL, src.FeedURL)
			assert.Equal(t, "reddit", src.Label)
		})
	}
}
