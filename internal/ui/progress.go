package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders the weighing pass on stderr.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a stderr progress bar for count files.
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Weighing specs: ")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar to done of total files.
func (p *ProgressBar) Update(done, total int) {
	p.bar.ChangeMax(total)
	p.bar.Set(done)
}

// Finish completes the bar.
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
