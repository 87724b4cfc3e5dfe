package split

import "tsplit/internal/domain"

// boundaryEpsilon nudges an exact-boundary cumulative sum down into the
// earlier group. Without it, a suite whose cumulative duration lands exactly
// on a boundary multiple pushes the boundary test into an otherwise-empty
// trailing group.
const boundaryEpsilon = 1e-9

// durationBasedChunks assigns each test to a group by its cumulative
// duration, so every group is one contiguous slice of the original list and
// concatenating the groups in index order reproduces the list exactly.
type durationBasedChunks struct{}

func (p *durationBasedChunks) Partition(items []domain.TestItem, splits int) domain.PartitionResult {
	var total float64
	for _, item := range items {
		total += item.Duration
	}
	if total == 0 {
		return p.byCount(items, splits)
	}

	groups := newGroups(splits)
	var cumulative float64
	for _, item := range items {
		cumulative += item.Duration
		g := int((cumulative - boundaryEpsilon) * float64(splits) / total)
		if g < 0 {
			g = 0
		}
		if g >= splits {
			g = splits - 1
		}
		groups[g].Items = append(groups[g].Items, item)
		groups[g].Total += item.Duration
	}
	return domain.PartitionResult{Groups: groups}
}

// byCount splits into equal-size contiguous chunks, used when every
// duration is zero. The remainder goes to the first groups.
func (p *durationBasedChunks) byCount(items []domain.TestItem, splits int) domain.PartitionResult {
	groups := newGroups(splits)
	size := len(items) / splits
	remainder := len(items) % splits

	next := 0
	for g := 0; g < splits; g++ {
		n := size
		if g < remainder {
			n++
		}
		for i := 0; i < n; i++ {
			item := items[next]
			groups[g].Items = append(groups[g].Items, item)
			groups[g].Total += item.Duration
			next++
		}
	}
	return domain.PartitionResult{Groups: groups}
}
