package commands

import (
	"github.com/spf13/cobra"

	"specsplit/internal/plan"
	"specsplit/internal/ui"
)

// ListCommand lists discovered spec files, optionally with their weights.
type ListCommand struct {
	rt *runtime
}

// NewListCommand creates a new ListCommand.
func NewListCommand(rt *runtime) *ListCommand {
	return &ListCommand{rt: rt}
}

// Execute runs the command.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	builder := lc.rt.builder()
	formatter := ui.NewFormatter(cmd.OutOrStdout())

	if !lc.rt.cfg.Flags.Weights {
		files, err := builder.Discover()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return plan.ErrNoSpecFiles
		}
		formatter.PrintSpecList(files)
		return nil
	}

	var bar *ui.ProgressBar
	if lc.rt.cfg.Flags.Progress {
		bar = ui.NewProgressBar(1)
		builder.SetProgress(bar.Update)
	}
	items, staticCount, err := builder.Weigh(lc.rt.cfg.Flags.Timings)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	ui.NewFormatter(cmd.ErrOrStderr()).PrintStaticNotice(staticCount)
	formatter.PrintWeightedList(items)
	return nil
}
