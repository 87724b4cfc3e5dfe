package split

import (
	"testing"
)

func TestLeastDuration_HeavyMiddleBalances(t *testing.T) {
	p := &leastDuration{}
	result := p.Partition(makeItems(1, 1, 10, 1), 2)

	assertGroup(t, result.Groups[0], []string{"test_a", "test_c"}, 11)
	assertGroup(t, result.Groups[1], []string{"test_b", "test_d"}, 2)
}

func TestLeastDuration_TiesGoToLowestGroup(t *testing.T) {
	p := &leastDuration{}
	result := p.Partition(makeItems(1, 1, 1), 3)

	assertGroup(t, result.Groups[0], []string{"test_a"}, 1)
	assertGroup(t, result.Groups[1], []string{"test_b"}, 1)
	assertGroup(t, result.Groups[2], []string{"test_c"}, 1)
}

func TestLeastDuration_RelativeOrderPreserved(t *testing.T) {
	p := &leastDuration{}
	items := makeItems(5, 4, 3, 2, 1, 6, 2, 3)
	result := p.Partition(items, 3)

	position := make(map[string]int, len(items))
	for i, item := range items {
		position[item.ID] = i
	}

	for _, g := range result.Groups {
		for i := 1; i < len(g.Items); i++ {
			if position[g.Items[i-1].ID] >= position[g.Items[i].ID] {
				t.Errorf("group %d: %s appears before %s, reversing original order",
					g.Index, g.Items[i-1].ID, g.Items[i].ID)
			}
		}
	}
}

func TestLeastDuration_BalanceBound(t *testing.T) {
	tests := []struct {
		name      string
		durations []float64
		splits    int
	}{
		{"heavy middle", []float64{1, 1, 10, 1}, 2},
		{"descending", []float64{8, 7, 6, 5, 4, 3, 2, 1}, 3},
		{"uniform", []float64{2, 2, 2, 2, 2}, 2},
		{"single heavy", []float64{100, 1, 1, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &leastDuration{}
			result := p.Partition(makeItems(tt.durations...), tt.splits)

			var maxSingle float64
			for _, d := range tt.durations {
				if d > maxSingle {
					maxSingle = d
				}
			}
			minTotal, maxTotal := result.Groups[0].Total, result.Groups[0].Total
			for _, g := range result.Groups {
				if g.Total < minTotal {
					minTotal = g.Total
				}
				if g.Total > maxTotal {
					maxTotal = g.Total
				}
			}
			if maxTotal-minTotal > maxSingle+1e-9 {
				t.Errorf("balance bound violated: max %v - min %v > max single %v",
					maxTotal, minTotal, maxSingle)
			}
		})
	}
}

func TestLeastDuration_MoreSplitsThanTests(t *testing.T) {
	p := &leastDuration{}
	result := p.Partition(makeItems(1, 2), 3)

	assertGroup(t, result.Groups[0], []string{"test_a"}, 1)
	assertGroup(t, result.Groups[1], []string{"test_b"}, 2)
	if len(result.Groups[2].Items) != 0 {
		t.Errorf("expected group 2 to stay empty, got %d items", len(result.Groups[2].Items))
	}
}
