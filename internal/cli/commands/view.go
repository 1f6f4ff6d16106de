package commands

import (
	"github.com/spf13/cobra"

	"specsplit/internal/ui"
)

// ViewCommand opens the interactive chunk browser.
type ViewCommand struct {
	rt     *runtime
	viewer *ui.PlanViewer
}

// NewViewCommand creates a new ViewCommand.
func NewViewCommand(rt *runtime, viewer *ui.PlanViewer) *ViewCommand {
	return &ViewCommand{rt: rt, viewer: viewer}
}

// Execute runs the command.
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	timingPath, chunkCount, err := parsePlanArgs(args)
	if err != nil {
		return err
	}

	result, err := vc.rt.builder().Build(timingPath, chunkCount)
	if err != nil {
		return err
	}

	return vc.viewer.View(result)
}
