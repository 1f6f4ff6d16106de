package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"specsplit/internal/ui"
)

// PlanCommand prints the full distribution: every chunk with its weight,
// deviation, and member files.
type PlanCommand struct {
	rt *runtime
}

// NewPlanCommand creates a new PlanCommand.
func NewPlanCommand(rt *runtime) *PlanCommand {
	return &PlanCommand{rt: rt}
}

// Execute runs the command.
func (pc *PlanCommand) Execute(cmd *cobra.Command, args []string) error {
	timingPath, chunkCount, err := parsePlanArgs(args)
	if err != nil {
		return err
	}

	builder := pc.rt.builder()
	var bar *ui.ProgressBar
	if pc.rt.cfg.Flags.Progress {
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

	out := cmd.OutOrStdout()
	formatter := ui.NewFormatter(out)
	ui.NewFormatter(cmd.ErrOrStderr()).PrintStaticNotice(result.StaticCount)
	formatter.PrintDistribution(result)
	for i, chunk := range result.Chunks {
		fmt.Fprintf(out, "\nChunk %d:\n", i)
		formatter.PrintWeightedList(chunk.Items)
	}
	return nil
}
