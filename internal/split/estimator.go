package split

import "tsplit/internal/domain"

// DefaultDuration is assigned to every test when no test in the current run
// has a recorded duration. The value is arbitrary: when all durations are
// equal, both algorithms degenerate to a split by count.
const DefaultDuration = 1.0

// Estimate attaches a duration to every id in the run. Recorded durations
// are used verbatim; unknown tests get the mean of the recorded durations
// among the ids of this run only, so stale history for tests that no longer
// exist cannot skew the average. Never mutates known.
func Estimate(ids []string, known *domain.Durations) []domain.TestItem {
	var sum float64
	var count int
	for _, id := range ids {
		if d, ok := known.Get(id); ok {
			sum += d
			count++
		}
	}

	fallback := DefaultDuration
	if count > 0 {
		fallback = sum / float64(count)
	}

	items := make([]domain.TestItem, len(ids))
	for i, id := range ids {
		d, ok := known.Get(id)
		if !ok {
			d = fallback
		}
		items[i] = domain.TestItem{ID: id, Duration: d}
	}
	return items
}
