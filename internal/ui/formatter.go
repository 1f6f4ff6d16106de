package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"specsplit/internal/domain"
	"specsplit/internal/plan"
)

// Formatter renders diagnostics and listings. The writer decides the stream:
// the split command passes stderr so the distribution summary never mixes
// into the machine-readable stdout line, while plan and list render to stdout.
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to out.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintStaticNotice reports how many files fell back to static weights.
func (f *Formatter) PrintStaticNotice(count int) {
	if count == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(f.out, "Using static weights for %d files (no timing data)\n", count)
}

// PrintDistribution renders the per-chunk summary: weight, file count, and
// percent deviation from the mean chunk weight (0 when the mean is 0).
func (f *Formatter) PrintDistribution(result *plan.Result) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "Chunk distribution (bin-packing):")

	mean := result.Mean()
	for i, chunk := range result.Chunks {
		deviation := 0.0
		if mean > 0 {
			deviation = (chunk.Weight - mean) / mean * 100
		}
		fmt.Fprintf(f.out, "  Chunk %d: %.1fs (%d files, %+.0f%% vs avg)\n",
			i, chunk.Weight, len(chunk.Items), deviation)
	}
}

// PrintSpecList prints discovered spec files one per line.
func (f *Formatter) PrintSpecList(files []string) {
	for _, file := range files {
		fmt.Fprintln(f.out, file)
	}
	green := color.New(color.FgGreen)
	green.Fprintf(f.out, "\n%d spec files found\n", len(files))
}

// PrintWeightedList prints spec files with their weights and weight source.
func (f *Formatter) PrintWeightedList(items []domain.SpecItem) {
	w := tabwriter.NewWriter(f.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPEC\tWEIGHT\tSOURCE")
	for _, item := range items {
		source := "timing"
		if item.Static {
			source = "static"
		}
		fmt.Fprintf(w, "%s\t%.1f\t%s\n", item.Path, item.Weight, source)
	}
	w.Flush()
}
