// ABOUTME: Source domain model identifies a configured feed to ingest
// ABOUTME: Resolves short identifiers like "r/movies" into concrete feed URLs

package domain

import (
	"fmt"
	"strings"
)

// Source is a single configured feed
type Source struct {
	// ID is the logical identifier, reported as the item's sourceGroup
	ID string

	// FeedURL is the document fetched by the ingestor
	FeedURL string

	// Label names the provider family, reported as the item's source
	Label string
}

// NewSource resolves an identifier into a Source.
// "r/name" is normalized to "name"; an http(s) identifier is used as the feed URL verbatim.
func NewSource(identifier, urlTemplate, label string) Source {
	id := strings.TrimSpace(identifier)
	lower := strings.ToLower(id)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return Source{ID: id, FeedURL: id, Label: label}
	}

	if strings.HasPrefix(lower, "/r/") {
		id = id[3:]
	} else if strings.HasPrefix(lower, "r/") {
		id = id[2:]
	}

	return Source{
		ID:      id,
		FeedURL: fmt.Sprintf(urlTemplate, id),
		Label:   label,
	}
}
