// ABOUTME: AggregatedItem and Artifact domain models describe the published digest
// ABOUTME: JSON field names and null semantics are consumed by the presentation layer

package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// ISOLayout renders timestamps in UTC with millisecond precision and a Z suffix.
// Fixed width keeps lexical order equal to chronological order.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// AggregatedItem is one entry of the output artifact.
// Optional fields are pointers so that absence encodes as null.
type AggregatedItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	SourceThreadURL *string `json:"sourceThreadUrl"`
	ISODate         *string `json:"isoDate"`
	Author          *string `json:"author"`
	SourceGroup     *string `json:"sourceGroup"`
	Source          *string `json:"source"`
	Image           *string `json:"image"`
	Summary         *string `json:"summary"`
}

// DedupeKey returns the canonical key used to collapse duplicate stories.
// Empty when the item has neither a url nor a thread url.
func (a *AggregatedItem) DedupeKey() string {
	if a.URL != "" {
		return a.URL
	}
	if a.SourceThreadURL != nil {
		return *a.SourceThreadURL
	}
	return ""
}

// Artifact is the JSON document written at the end of every run
type Artifact struct {
	GeneratedAt string           `json:"generatedAt"`
	Count       int              `json:"count"`
	Items       []AggregatedItem `json:"items"`
}

// NewArtifact builds an artifact from already-ranked items, keeping at most limit entries
func NewArtifact(items []AggregatedItem, limit int, generatedAt time.Time) *Artifact {
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]AggregatedItem, len(items))
	copy(out, items)
	return &Artifact{
		GeneratedAt: FormatISO(generatedAt),
		Count:       len(out),
		Items:       out,
	}
}

// Encode renders the artifact as two-space indented JSON without HTML escaping
func (a *Artifact) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatISO formats t with ISOLayout after converting to UTC
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// OptionalString returns nil for empty strings so they serialize as null
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
