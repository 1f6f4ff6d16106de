package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"specsplit/internal/cli"
	"specsplit/internal/config"
	"specsplit/internal/logging"
	"specsplit/internal/plan"
	"specsplit/internal/ui"
)

// runtime holds state that only exists after flag parsing: the resolved
// configuration and the logger.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
}

func (rt *runtime) builder() *plan.Builder {
	return plan.NewBuilder(rt.cfg, rt.logger)
}

// Commands holds all CLI commands.
type Commands struct {
	rt    *runtime
	Split *SplitCommand
	List  *ListCommand
	Plan  *PlanCommand
	View  *ViewCommand
}

// NewCommands creates all commands sharing one runtime.
func NewCommands() *Commands {
	rt := &runtime{}
	return &Commands{
		rt:    rt,
		Split: NewSplitCommand(rt),
		List:  NewListCommand(rt),
		Plan:  NewPlanCommand(rt),
		View:  NewViewCommand(rt, ui.NewPlanViewer()),
	}
}

// Register registers all commands and global flags with cobra. The root
// command itself is the chunk selector so that plain
// `specsplit <timing_file> <num_chunks> <chunk_index>` works.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.Args = cobra.ExactArgs(3)
	rootCmd.RunE = c.Split.Execute

	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flags.Root, "root", "", "Project root (default: parent of the executable's directory)")
	rootCmd.PersistentFlags().StringVar(&flags.SpecDir, "spec-dir", "", "Spec subdirectory under the project root")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while weighing spec files")

	// Resolve config and logger once flags are known; shared by every command.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logger, err := logging.New(flags.Verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		c.rt.cfg = cfg
		c.rt.logger = logger
		return nil
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered spec files",
		Long:  "Scan the spec tree and list all spec files without packing them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVarP(&flags.Weights, "weights", "w", false, "Show each file's weight and weight source")
	listCmd.Flags().StringVarP(&flags.Timings, "timings", "t", "", "Timing file consulted for --weights")
	rootCmd.AddCommand(listCmd)

	planCmd := &cobra.Command{
		Use:   "plan <timing_file> <num_chunks>",
		Short: "Show the full chunk distribution",
		Long:  "Pack all spec files and print every chunk with its weight and members",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Plan.Execute,
	}
	rootCmd.AddCommand(planCmd)

	viewCmd := &cobra.Command{
		Use:   "view <timing_file> <num_chunks>",
		Short: "Browse the chunk distribution interactively",
		Long:  "Pack all spec files and open an interactive viewer over the chunks",
		Args:  cobra.ExactArgs(2),
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}

// parsePlanArgs parses the <timing_file> <num_chunks> argument pair shared by
// the root, plan, and view commands.
func parsePlanArgs(args []string) (string, int, error) {
	chunkCount, err := strconv.Atoi(args[1])
	if err != nil {
		return "", 0, fmt.Errorf("num_chunks must be an integer, got %q", args[1])
	}
	if chunkCount < 1 {
		return "", 0, fmt.Errorf("num_chunks must be at least 1, got %d", chunkCount)
	}
	return args[0], chunkCount, nil
}
