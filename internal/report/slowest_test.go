package report

import (
	"reflect"
	"testing"

	"tsplit/internal/domain"
)

func recorded() *domain.Durations {
	d := domain.NewDurations()
	d.Set("test_fast", 0.1)
	d.Set("test_slow", 5.0)
	d.Set("test_tied_first", 2.0)
	d.Set("test_tied_second", 2.0)
	d.Set("test_medium", 1.0)
	return d
}

func ids(items []domain.TestItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestSlowest_SortsDescending(t *testing.T) {
	items := Slowest(recorded(), 0)

	want := []string{"test_slow", "test_tied_first", "test_tied_second", "test_medium", "test_fast"}
	if !reflect.DeepEqual(ids(items), want) {
		t.Errorf("expected %v, got %v", want, ids(items))
	}
}

// Equal durations keep their store insertion order.
func TestSlowest_TiesAreStable(t *testing.T) {
	d := domain.NewDurations()
	d.Set("test_z_first", 1.0)
	d.Set("test_a_second", 1.0)
	d.Set("test_m_third", 1.0)

	items := Slowest(d, 0)

	want := []string{"test_z_first", "test_a_second", "test_m_third"}
	if !reflect.DeepEqual(ids(items), want) {
		t.Errorf("expected store order %v, got %v", want, ids(items))
	}
}

func TestSlowest_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"truncates", 2, 2},
		{"zero means all", 0, 5},
		{"negative means all", -3, 5},
		{"limit beyond size", 50, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Slowest(recorded(), tt.limit)
			if len(items) != tt.want {
				t.Errorf("expected %d items, got %d", tt.want, len(items))
			}
		})
	}
}

func TestSlowest_EmptyStore(t *testing.T) {
	items := Slowest(domain.NewDurations(), 10)
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestTotalDuration(t *testing.T) {
	total := TotalDuration(recorded())
	if diff := total - 10.1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected total 10.1, got %v", total)
	}
}
