package cli

import "tsplit/internal/config"

// Flags holds command-line flags
type Flags struct {
	Splits        int
	Group         int
	Algorithm     string
	DurationsPath string
	TestsFile     string
	ReportPath    string
	OutputPath    string
	Limit         int
	Interactive   bool
	JSON          bool
	Backend       string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Splits:        f.Splits,
		Group:         f.Group,
		Algorithm:     f.Algorithm,
		DurationsPath: f.DurationsPath,
		TestsFile:     f.TestsFile,
		ReportPath:    f.ReportPath,
		OutputPath:    f.OutputPath,
		Limit:         f.Limit,
		Interactive:   f.Interactive,
		JSON:          f.JSON,
		Backend:       f.Backend,
	}
}
