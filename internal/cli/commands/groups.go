package commands

import (
	"github.com/spf13/cobra"

	"tsplit/internal/config"
	"tsplit/internal/split"
	"tsplit/internal/ui"
)

// GroupsCommand handles the groups command
type GroupsCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewGroupsCommand creates a new GroupsCommand
func NewGroupsCommand(cfg *config.Config, formatter *ui.Formatter) *GroupsCommand {
	return &GroupsCommand{config: cfg, formatter: formatter}
}

// Execute runs the command
func (gc *GroupsCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := gc.config.ValidateSplits(); err != nil {
		return err
	}
	partitioner, err := split.New(split.Algorithm(gc.config.Flags.Algorithm))
	if err != nil {
		return err
	}

	ids, err := readTestIDs(gc.config.Flags.TestsFile)
	if err != nil {
		return err
	}

	known, err := loadDurations(gc.config, gc.formatter)
	if err != nil {
		return err
	}
	if known.Len() == 0 {
		gc.formatter.PrintNoDurationsNotice()
	}

	items := split.Estimate(ids, known)
	result := partitioner.Partition(items, gc.config.Flags.Splits)
	gc.formatter.PrintPartition(result)
	return nil
}
