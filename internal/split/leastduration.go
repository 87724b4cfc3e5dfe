package split

import (
	"container/heap"

	"tsplit/internal/domain"
)

// leastDuration walks tests in original order and appends each to the group
// with the smallest running total, so every group's internal order is a
// subsequence of the original order. The greedy choice gives the standard
// load-balancing bound: max(total) - min(total) <= max single test duration.
type leastDuration struct{}

func (p *leastDuration) Partition(items []domain.TestItem, splits int) domain.PartitionResult {
	groups := newGroups(splits)

	totals := make(groupHeap, splits)
	for i := range totals {
		totals[i] = &groupTotal{index: i}
	}
	heap.Init(&totals)

	for _, item := range items {
		head := totals[0]
		groups[head.index].Items = append(groups[head.index].Items, item)
		groups[head.index].Total += item.Duration
		totals.AddToHead(item.Duration)
	}
	return domain.PartitionResult{Groups: groups}
}

type groupTotal struct {
	index int
	total float64
}

// groupHeap is a min-heap of group running totals. Equal totals order by
// group index so ties always resolve to the lowest group, keeping the
// assignment deterministic across processes.
type groupHeap []*groupTotal

func (h groupHeap) Len() int { return len(h) }

func (h groupHeap) Less(i, j int) bool {
	if h[i].total != h[j].total {
		return h[i].total < h[j].total
	}
	return h[i].index < h[j].index
}

func (h groupHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *groupHeap) Push(x interface{}) {
	*h = append(*h, x.(*groupTotal))
}

func (h *groupHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil // avoid memory leak
	*h = old[0 : n-1]
	return x
}

// AddToHead adds a duration to the smallest group's total and restores the
// heap order.
func (h *groupHeap) AddToHead(duration float64) {
	(*h)[0].total += duration
	heap.Fix(h, 0)
}
