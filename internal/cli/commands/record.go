package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsplit/internal/config"
	"tsplit/internal/domain"
	"tsplit/internal/storage"
)

// RecordCommand handles the record command
type RecordCommand struct {
	config *config.Config
}

// NewRecordCommand creates a new RecordCommand
func NewRecordCommand(cfg *config.Config) *RecordCommand {
	return &RecordCommand{config: cfg}
}

// Execute runs the command
func (rc *RecordCommand) Execute(cmd *cobra.Command, args []string) error {
	observed, err := readReport(rc.config.Flags.ReportPath)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(rc.config)
	if err != nil {
		return err
	}
	if err := store.Record(observed); err != nil {
		return fmt.Errorf("store durations: %w", err)
	}

	if rc.config.StoreBackend == "json" {
		color.Green("[tsplit] Stored %d test durations in %s", observed.Len(), rc.config.GetDurationsPath())
	} else {
		color.Green("[tsplit] Stored %d test durations in the %s backend", observed.Len(), rc.config.StoreBackend)
	}
	return nil
}

// readReport reads a flat JSON object of test id to seconds from the given
// file or stdin when path is empty or "-". Unlike the durations store, a
// malformed report is fatal: it is explicit input, not advisory history.
func readReport(path string) (*domain.Durations, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read run report: %w", err)
	}

	observed := domain.NewDurations()
	if err := json.Unmarshal(data, observed); err != nil {
		return nil, fmt.Errorf("parse run report: %w", err)
	}
	return observed, nil
}
