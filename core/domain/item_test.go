package domain

import "testing"

func TestFeedItem_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		item     FeedItem
		expected bool
	}{
		{
			name:     "valid item with title and link",
			item:     FeedItem{Title: "Test Article", Link: "https://example.com/article"},
			expected: true,
		},
		{
			name:     "valid item without link",
			item:     FeedItem{Title: "Test Article"},
			expected: true,
		},
		{
			name:     "invalid item with empty title",
			item:     FeedItem{Link: "https://example.com/article"},
			expected: false,
		},
		{
			name:     "invalid item with whitespace title",
			item:     FeedItem{Title: "  \n\t ", Link: "https://example.com/article"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}
