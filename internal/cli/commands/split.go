package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"specsplit/internal/ui"
)

// SplitCommand selects the spec files of one chunk. It is the root command:
// stdout carries exactly one space-separated line of member paths, everything
// else goes to stderr so CI callers can consume stdout directly.
type SplitCommand struct {
	rt *runtime
}

// NewSplitCommand creates a new SplitCommand.
func NewSplitCommand(rt *runtime) *SplitCommand {
	return &SplitCommand{rt: rt}
}

// Execute runs the command.
func (sc *SplitCommand) Execute(cmd *cobra.Command, args []string) error {
	timingPath, chunkCount, err := parsePlanArgs(args)
	if err != nil {
		return err
	}
	chunkIndex, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("chunk_index must be an integer, got %q", args[2])
	}
	// Range check before any discovery or packing work.
	if chunkIndex < 0 || chunkIndex >= chunkCount {
		return fmt.Errorf("chunk_index must be between 0 and %d, got %d", chunkCount-1, chunkIndex)
	}

	builder := sc.rt.builder()
	var bar *ui.ProgressBar
	if sc.rt.cfg.Flags.Progress {
		bar = ui.NewProgressBar(1)
		builder.SetProgress(bar.Update)
	}

	result, err := builder.Build(timingPath, chunkCount)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.ErrOrStderr())
	formatter.PrintStaticNotice(result.StaticCount)
	formatter.PrintDistribution(result)

	// The one machine-readable line. An empty chunk prints an empty line.
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(result.Chunks[chunkIndex].Paths(), " "))
	return nil
}
