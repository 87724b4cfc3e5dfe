package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsplit/internal/config"
	"tsplit/internal/domain"
	"tsplit/internal/storage"
	"tsplit/internal/ui"
)

// MergeCommand handles the merge command
type MergeCommand struct {
	config *config.Config
}

// NewMergeCommand creates a new MergeCommand
func NewMergeCommand(cfg *config.Config) *MergeCommand {
	return &MergeCommand{config: cfg}
}

// Execute runs the command
func (mc *MergeCommand) Execute(cmd *cobra.Command, args []string) error {
	merged := domain.NewDurations()

	progress := ui.NewProgressBar(len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read shard durations %s: %w", path, err)
		}
		shard := domain.NewDurations()
		if err := json.Unmarshal(data, shard); err != nil {
			return fmt.Errorf("parse shard durations %s: %w", path, err)
		}
		merged.Merge(shard)
		progress.Update(i+1, len(args))
	}
	progress.Finish()

	if mc.config.Flags.OutputPath != "" {
		mc.config.Flags.DurationsPath = mc.config.Flags.OutputPath
	}
	store := storage.NewJSONStore(mc.config)
	if err := store.Save(merged); err != nil {
		return fmt.Errorf("write merged durations: %w", err)
	}

	color.Green("[tsplit] Merged %d files (%d tests) into %s",
		len(args), merged.Len(), mc.config.GetDurationsPath())
	return nil
}
