package report

import (
	"sort"

	"tsplit/internal/domain"
)

// Slowest returns the recorded tests ordered by duration descending,
// truncated to limit entries (limit <= 0 returns all). The sort is stable
// over the store's insertion order, so ties keep their recorded order and
// the report is identical run to run. Read-only: never feeds back into
// partitioning.
func Slowest(known *domain.Durations, limit int) []domain.TestItem {
	items := make([]domain.TestItem, 0, known.Len())
	for _, id := range known.IDs() {
		d, _ := known.Get(id)
		items = append(items, domain.TestItem{ID: id, Duration: d})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Duration > items[j].Duration
	})

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// TotalDuration sums every recorded duration, for share-of-suite figures.
func TotalDuration(known *domain.Durations) float64 {
	var total float64
	for _, id := range known.IDs() {
		d, _ := known.Get(id)
		total += d
	}
	return total
}
