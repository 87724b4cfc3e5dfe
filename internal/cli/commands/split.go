package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tsplit/internal/config"
	"tsplit/internal/domain"
	"tsplit/internal/split"
	"tsplit/internal/storage"
	"tsplit/internal/ui"
)

// SplitCommand handles the split command
type SplitCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewSplitCommand creates a new SplitCommand
func NewSplitCommand(cfg *config.Config, formatter *ui.Formatter) *SplitCommand {
	return &SplitCommand{config: cfg, formatter: formatter}
}

// Execute runs the command
func (sc *SplitCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := sc.config.ValidateSplit(); err != nil {
		return err
	}
	partitioner, err := split.New(split.Algorithm(sc.config.Flags.Algorithm))
	if err != nil {
		return err
	}

	ids, err := readTestIDs(sc.config.Flags.TestsFile)
	if err != nil {
		return err
	}

	known, err := loadDurations(sc.config, sc.formatter)
	if err != nil {
		return err
	}
	if known.Len() == 0 {
		sc.formatter.PrintNoDurationsNotice()
	}

	items := split.Estimate(ids, known)
	result := partitioner.Partition(items, sc.config.Flags.Splits)

	selected, err := split.Select(result, sc.config.Flags.Group)
	if err != nil {
		return err
	}

	group := result.Groups[sc.config.Flags.Group-1]
	sc.formatter.PrintGroupSummary(sc.config.Flags.Group, sc.config.Flags.Splits, group.Total, len(selected))
	return sc.formatter.PrintTestIDs(selected, sc.config.Flags.JSON)
}

// loadDurations loads the durations store, downgrading a corrupt store to a
// warning so a bad file never blocks a CI run.
func loadDurations(cfg *config.Config, formatter *ui.Formatter) (*domain.Durations, error) {
	store, err := storage.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	known, err := store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, err
		}
		formatter.PrintStoreWarning(err)
	}
	return known, nil
}

// readTestIDs reads ordered test ids, one per line, from the given file or
// stdin when path is empty or "-". Blank lines are skipped; order is kept.
func readTestIDs(path string) ([]string, error) {
	var in *os.File
	if path == "" || path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open tests file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var ids []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id != "" {
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read test ids: %w", err)
	}
	return ids, nil
}
