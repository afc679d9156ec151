// ABOUTME: FeedItem domain model represents a raw entry parsed from a source feed
// ABOUTME: Carries the body, snippet and provenance needed by the enrichment stage

package domain

import (
	"strings"
	"time"
)

// FeedItem represents an individual item/entry in a source feed before enrichment
type FeedItem struct {
	// ID is the feed-provided identifier (guid), falling back to the link
	ID string

	// Title is the item's headline
	Title string

	// Link is the URL of the item on the source platform (the discussion thread)
	Link string

	// ContentHTML is the raw HTML body of the item
	ContentHTML string

	// Snippet is the plaintext rendering of the body
	Snippet string

	// Published is when the item was published, nil when the feed omits it
	Published *time.Time

	// Author is the creator of the item
	Author string

	// MediaURL is a feed-declared media attachment (enclosure, item image, media:thumbnail)
	MediaURL string

	// SourceGroup is the logical source the item came from (e.g. a subreddit name)
	SourceGroup string

	// SourceLabel names the provider family (e.g. "reddit")
	SourceLabel string
}

// IsValid checks if the feed item can become an aggregated item
func (fi *FeedItem) IsValid() bool {
	return strings.TrimSpace(fi.Title) != ""
}
