package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tsplit/internal/domain"
)

// SlowestViewer displays the slowest-tests report in an interactive TUI.
type SlowestViewer struct{}

// NewSlowestViewer creates a new SlowestViewer.
func NewSlowestViewer() *SlowestViewer {
	return &SlowestViewer{}
}

// View shows the ranked tests in a two-pane browser: the list on the left,
// duration details for the highlighted test on the right. q or Esc quits.
func (v *SlowestViewer) View(items []domain.TestItem, total float64) error {
	if len(items) == 0 {
		color.Yellow("No durations recorded")
		return nil
	}

	app := tview.NewApplication()

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	showDetails := func(index int) {
		if index < 0 || index >= len(items) {
			return
		}
		item := items[index]
		share := 0.0
		if total > 0 {
			share = item.Duration / total * 100
		}
		detailsView.SetText(fmt.Sprintf(
			"[yellow]Test:[white] %s\n\n"+
				"[yellow]Duration:[white] %.3fs\n"+
				"[yellow]Share of suite:[white] %.1f%%\n"+
				"[yellow]Rank:[white] %d of %d",
			item.ID, item.Duration, share, index+1, len(items)))
	}

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
			showDetails(index)
		})
	list.SetBorder(true).SetTitle(" Slowest tests ")
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	for i, item := range items {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s (%.2fs)", i+1, item.ID, item.Duration), "", 0, nil)
	}
	showDetails(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
