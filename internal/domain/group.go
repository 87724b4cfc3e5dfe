package domain

// Group is one of the N disjoint subsets a test list is partitioned into.
type Group struct {
	Index int        `json:"index"` // Zero-based position within the partition
	Items []TestItem `json:"items"` // Tests assigned to this group, in order
	Total float64    `json:"total"` // Sum of item durations in seconds
}

// IDs returns the identifiers of the group's tests in order.
func (g Group) IDs() []string {
	ids := make([]string, len(g.Items))
	for i, item := range g.Items {
		ids[i] = item.ID
	}
	return ids
}

// PartitionResult is the output of one partition call: exactly `splits`
// groups in index order. It is never cached or mutated after construction.
type PartitionResult struct {
	Groups []Group `json:"groups"`
}

// Splits returns the number of groups in the partition.
func (r PartitionResult) Splits() int {
	return len(r.Groups)
}
