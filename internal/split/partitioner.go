package split

import (
	"fmt"

	"tsplit/internal/domain"
)

// Algorithm selects how tests are distributed across groups.
type Algorithm string

const (
	// DurationBasedChunks splits the list into contiguous slices whose
	// cumulative durations are as close to equal as contiguity allows.
	DurationBasedChunks Algorithm = "duration_based_chunks"
	// LeastDuration greedily assigns each test to the group with the
	// smallest running total, trading contiguity for tighter balance.
	LeastDuration Algorithm = "least_duration"
)

// Algorithms lists the supported algorithm names in display order.
func Algorithms() []Algorithm {
	return []Algorithm{DurationBasedChunks, LeastDuration}
}

// Partitioner splits an ordered test list into a fixed number of groups.
// Implementations are deterministic pure functions: identical inputs must
// produce identical results regardless of process or machine, because each
// CI shard computes the full partition independently and only the shared
// determinism keeps the union of selected groups equal to the whole suite.
type Partitioner interface {
	Partition(items []domain.TestItem, splits int) domain.PartitionResult
}

// New returns the partitioner for the named algorithm.
func New(algo Algorithm) (Partitioner, error) {
	switch algo {
	case DurationBasedChunks:
		return &durationBasedChunks{}, nil
	case LeastDuration:
		return &leastDuration{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (supported: %s, %s)",
			algo, DurationBasedChunks, LeastDuration)
	}
}

func newGroups(splits int) []domain.Group {
	groups := make([]domain.Group, splits)
	for i := range groups {
		groups[i].Index = i
		groups[i].Items = make([]domain.TestItem, 0)
	}
	return groups
}
