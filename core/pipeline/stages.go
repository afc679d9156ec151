package pipeline

import (
	"sort"

	"goatland-feeds/core/domain"
)

// Dedupe keeps the first item for each key, in arrival order.
// Items without a key are dropped. Returns the kept items and the duplicate and keyless counts.
func Dedupe(items []domain.AggregatedItem) (kept []domain.AggregatedItem, duplicates, keyless int) {
	seen := make(map[string]struct{}, len(items))
	kept = make([]domain.AggregatedItem, 0, len(items))

	for _, item := range items {
		key := item.DedupeKey()
		if key == "" {
			keyless++
			continue
		}
		if _, ok := seen[key]; ok {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, item)
	}
	return kept, duplicates, keyless
}

// Rank orders items newest first by their ISO timestamp string, undated last.
// The sort is stable so ties keep arrival order.
func Rank(items []domain.AggregatedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].ISODate, items[j].ISODate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
}
