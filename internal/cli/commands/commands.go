package commands

import (
	"tsplit/internal/cli"
	"tsplit/internal/config"
	"tsplit/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Split   *SplitCommand
	Groups  *GroupsCommand
	Record  *RecordCommand
	Merge   *MergeCommand
	Slowest *SlowestCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter()
	viewer := ui.NewSlowestViewer()

	return &Commands{
		Split:   NewSplitCommand(cfg, formatter),
		Groups:  NewGroupsCommand(cfg, formatter),
		Record:  NewRecordCommand(cfg),
		Merge:   NewMergeCommand(cfg),
		Slowest: NewSlowestCommand(cfg, formatter, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if flags.Backend != "" {
			cfg.StoreBackend = flags.Backend
		}
		return nil
	}

	// Split command
	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Select one group of a partitioned test suite",
		Long: "Partition the test list into N groups balanced by recorded durations " +
			"and print the tests of the requested group, one id per line",
		RunE:    c.Split.Execute,
		PreRunE: applyFlags,
	}
	splitCmd.Flags().IntVarP(&flags.Splits, "splits", "s", 0, "Number of groups to split the tests into")
	splitCmd.Flags().IntVarP(&flags.Group, "group", "g", 0, "The group of tests that should be executed (first one is 1)")
	splitCmd.Flags().StringVarP(&flags.Algorithm, "algorithm", "a", config.DefaultAlgorithm, "Partition algorithm (duration_based_chunks or least_duration)")
	splitCmd.Flags().StringVarP(&flags.TestsFile, "tests-file", "t", "", "File with ordered test ids, one per line (default stdin)")
	splitCmd.Flags().StringVarP(&flags.DurationsPath, "durations-path", "d", "", "Path to the durations file (default .test_durations)")
	splitCmd.Flags().StringVarP(&flags.Backend, "backend", "b", config.DefaultStoreBackend, "Durations store backend (json or mysql)")
	splitCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the selected group as a JSON array")
	rootCmd.AddCommand(splitCmd)

	// Groups command
	groupsCmd := &cobra.Command{
		Use:     "groups",
		Short:   "Show the full partition without selecting a group",
		Long:    "Partition the test list and print a per-group summary table for inspection",
		RunE:    c.Groups.Execute,
		PreRunE: applyFlags,
	}
	groupsCmd.Flags().IntVarP(&flags.Splits, "splits", "s", 0, "Number of groups to split the tests into")
	groupsCmd.Flags().StringVarP(&flags.Algorithm, "algorithm", "a", config.DefaultAlgorithm, "Partition algorithm (duration_based_chunks or least_duration)")
	groupsCmd.Flags().StringVarP(&flags.TestsFile, "tests-file", "t", "", "File with ordered test ids, one per line (default stdin)")
	groupsCmd.Flags().StringVarP(&flags.DurationsPath, "durations-path", "d", "", "Path to the durations file (default .test_durations)")
	groupsCmd.Flags().StringVarP(&flags.Backend, "backend", "b", config.DefaultStoreBackend, "Durations store backend (json or mysql)")
	rootCmd.AddCommand(groupsCmd)

	// Record command
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Merge observed durations into the store",
		Long: "Read a run report (flat JSON object of test id to seconds) and merge " +
			"it into the durations store with an atomic write",
		RunE:    c.Record.Execute,
		PreRunE: applyFlags,
	}
	recordCmd.Flags().StringVarP(&flags.ReportPath, "report", "r", "", "Run report file (default stdin)")
	recordCmd.Flags().StringVarP(&flags.DurationsPath, "durations-path", "d", "", "Path to the durations file (default .test_durations)")
	recordCmd.Flags().StringVarP(&flags.Backend, "backend", "b", config.DefaultStoreBackend, "Durations store backend (json or mysql)")
	rootCmd.AddCommand(recordCmd)

	// Merge command
	mergeCmd := &cobra.Command{
		Use:   "merge [files...]",
		Short: "Merge per-shard duration files into one store",
		Long: "Merge several duration files (e.g. one per CI shard) into a single " +
			"durations store; later files win on conflicting ids",
		Args:    cobra.MinimumNArgs(1),
		RunE:    c.Merge.Execute,
		PreRunE: applyFlags,
	}
	mergeCmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Merged durations file (default .test_durations)")
	rootCmd.AddCommand(mergeCmd)

	// Slowest command
	slowestCmd := &cobra.Command{
		Use:     "slowest",
		Short:   "List the slowest recorded tests",
		Long:    "Show the slowest tests from the durations store, ranked by duration",
		RunE:    c.Slowest.Execute,
		PreRunE: applyFlags,
	}
	slowestCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultSlowestLimit, "Number of tests to show (<= 0 shows all)")
	slowestCmd.Flags().StringVarP(&flags.DurationsPath, "durations-path", "d", "", "Path to the durations file (default .test_durations)")
	slowestCmd.Flags().StringVarP(&flags.Backend, "backend", "b", config.DefaultStoreBackend, "Durations store backend (json or mysql)")
	slowestCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the report in an interactive viewer")
	rootCmd.AddCommand(slowestCmd)
}
