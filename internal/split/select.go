package split

import (
	"fmt"

	"tsplit/internal/domain"
)

// Select returns the ids of one group from a partition. Groups are
// 1-indexed from the caller's perspective: group 1 is result.Groups[0].
// An empty group yields an empty list, not an error.
func Select(result domain.PartitionResult, group int) ([]string, error) {
	splits := result.Splits()
	if splits < 1 {
		return nil, fmt.Errorf("partition has no groups")
	}
	if group < 1 || group > splits {
		return nil, fmt.Errorf("group must be >= 1 and <= %d, got %d", splits, group)
	}
	return result.Groups[group-1].IDs(), nil
}
