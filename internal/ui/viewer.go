package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"specsplit/internal/plan"
)

// PlanViewer displays a packed distribution in an interactive TUI.
type PlanViewer struct{}

// NewPlanViewer creates a new PlanViewer.
func NewPlanViewer() *PlanViewer {
	return &PlanViewer{}
}

// View opens the chunk browser: chunks on the left, member files with their
// weights on the right. Blocks until the user quits with q or Escape.
func (v *PlanViewer) View(result *plan.Result) error {
	app := tview.NewApplication()

	detail := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	detail.SetBorder(true).SetTitle(" Files ")

	mean := result.Mean()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(" Chunks ")

	renderDetail := func(index int) {
		chunk := result.Chunks[index]
		var b strings.Builder
		for _, item := range chunk.Items {
			source := "timing"
			if item.Static {
				source = "static"
			}
			fmt.Fprintf(&b, "[white]%s [gray](%.1fs, %s)\n", item.Path, item.Weight, source)
		}
		if len(chunk.Items) == 0 {
			b.WriteString("[gray](empty chunk)\n")
		}
		detail.SetText(b.String())
		detail.ScrollToBeginning()
	}

	for i, chunk := range result.Chunks {
		deviation := 0.0
		if mean > 0 {
			deviation = (chunk.Weight - mean) / mean * 100
		}
		main := fmt.Sprintf("Chunk %d", i)
		secondary := fmt.Sprintf("%.1fs, %d files, %+.0f%% vs avg",
			chunk.Weight, len(chunk.Items), deviation)
		list.AddItem(main, secondary, 0, nil)
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		renderDetail(index)
	})
	renderDetail(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detail, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
