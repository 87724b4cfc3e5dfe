package commands

import (
	"github.com/spf13/cobra"

	"tsplit/internal/config"
	"tsplit/internal/report"
	"tsplit/internal/ui"
)

// SlowestCommand handles the slowest command
type SlowestCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	viewer    *ui.SlowestViewer
}

// NewSlowestCommand creates a new SlowestCommand
func NewSlowestCommand(cfg *config.Config, formatter *ui.Formatter, viewer *ui.SlowestViewer) *SlowestCommand {
	return &SlowestCommand{config: cfg, formatter: formatter, viewer: viewer}
}

// Execute runs the command
func (sc *SlowestCommand) Execute(cmd *cobra.Command, args []string) error {
	known, err := loadDurations(sc.config, sc.formatter)
	if err != nil {
		return err
	}

	items := report.Slowest(known, sc.config.Flags.Limit)
	total := report.TotalDuration(known)

	if sc.config.Flags.Interactive {
		return sc.viewer.View(items, total)
	}
	sc.formatter.PrintSlowest(items, total)
	return nil
}
