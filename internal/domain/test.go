package domain

// TestItem is a single test in the collection order of the host runner.
type TestItem struct {
	ID       string  `json:"id"`       // Stable identifier, e.g. a pytest node id
	Duration float64 `json:"duration"` // Estimated or recorded duration in seconds
}
