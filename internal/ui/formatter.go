package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"tsplit/internal/domain"
)

// Formatter formats and displays output. Human-readable text goes to
// stderr so stdout stays machine-consumable (the host runner reads the
// selected test ids from it).
type Formatter struct {
	out io.Writer
	err io.Writer
}

// NewFormatter creates a new Formatter writing to stdout/stderr.
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout, err: os.Stderr}
}

// PrintTestIDs writes the selected group's test ids to stdout, one per
// line, or as a JSON array when asJSON is set.
func (f *Formatter) PrintTestIDs(ids []string, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("marshal test ids: %w", err)
		}
		fmt.Fprintln(f.out, string(data))
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(f.out, id)
	}
	return nil
}

// PrintGroupSummary prints which group of the partition this invocation
// selected and its estimated duration.
func (f *Formatter) PrintGroupSummary(group, splits int, total float64, count int) {
	fmt.Fprintln(f.err, color.CyanString(
		"[tsplit] Running group %d/%d: %d tests (estimated duration: %.2fs)",
		group, splits, count, total))
}

// PrintNoDurationsNotice warns that the split is running without history.
func (f *Formatter) PrintNoDurationsNotice() {
	fmt.Fprintln(f.err, color.YellowString(
		"[tsplit] No test durations found. Tests will be split evenly; "+
			"record durations for better balance on consequent runs."))
}

// PrintStoreWarning reports a corrupt durations store that is being
// ignored in favor of an empty one.
func (f *Formatter) PrintStoreWarning(err error) {
	fmt.Fprintln(f.err, color.YellowString("[tsplit] Warning: %v; continuing with no durations", err))
}

// PrintPartition renders the whole partition as a table, one row per group.
func (f *Formatter) PrintPartition(result domain.PartitionResult) {
	w := tabwriter.NewWriter(f.err, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tTESTS\tDURATION")
	for _, g := range result.Groups {
		fmt.Fprintf(w, "%d\t%d\t%.2fs\n", g.Index+1, len(g.Items), g.Total)
	}
	w.Flush()
}

// PrintSlowest renders the slowest-tests report as a ranked table.
// total is the duration of the whole recorded suite, for share figures.
func (f *Formatter) PrintSlowest(items []domain.TestItem, total float64) {
	if len(items) == 0 {
		fmt.Fprintln(f.err, color.YellowString("[tsplit] No durations recorded"))
		return
	}

	w := tabwriter.NewWriter(f.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tDURATION\tSHARE\tTEST")
	for i, item := range items {
		share := 0.0
		if total > 0 {
			share = item.Duration / total * 100
		}
		fmt.Fprintf(w, "%d\t%.2fs\t%.1f%%\t%s\n", i+1, item.Duration, share, item.ID)
	}
	w.Flush()
}
