package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultDurationsFile is the default durations file name, compatible
	// with pytest-split's cache file
	DefaultDurationsFile = ".test_durations"
	// DefaultAlgorithm is the default partition algorithm name
	DefaultAlgorithm = "duration_based_chunks"
	// DefaultStoreBackend is the default durations store backend
	DefaultStoreBackend = "json"
	// DefaultSlowestLimit is the default number of tests shown by slowest
	DefaultSlowestLimit = 10
)
