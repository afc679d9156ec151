// ABOUTME: Publish date parsing for feed timestamps gofeed left unparsed
// ABOUTME: Results are normalized to UTC; unparseable or out-of-range input is treated as undated

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// strictLayouts are tried before falling back to dateparse's format detection
var strictLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate parses a feed timestamp; zoneless input is read as UTC
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range strictLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if !inRange(t) {
				return time.Time{}, false
			}
			return t.UTC(), true
		}
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil || t.IsZero() || !inRange(t) {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// inRange reports whether t renders as a four-digit year in UTC
func inRange(t time.Time) bool {
	year := t.UTC().Year()
	return year >= 0 && year <= 9999
}

// ParseOptional prefers an already parsed time, else parses raw; nil means undated
func ParseOptional(parsed *time.Time, raw string) *time.Time {
	if parsed != nil && !parsed.IsZero() {
		if !inRange(*parsed) {
			return nil
		}
		t := parsed.UTC()
		return &t
	}
	if t, ok := ParseDate(raw); ok {
		return &t
	}
	return nil
}
