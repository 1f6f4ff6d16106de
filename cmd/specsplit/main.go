package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"specsplit/internal/cli"
	"specsplit/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "specsplit <timing_file> <num_chunks> <chunk_index>",
		Short:   "Balance spec files across parallel CI chunks",
		Long:    `Distributes shell spec files across a fixed number of parallel CI chunks using bin packing over measured timings, with static weight estimation for files that have no timing data. Prints the selected chunk's files on stdout; all diagnostics go to stderr.`,
		Version: version,
		// Errors are reported once by main; stdout stays machine-readable.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags cli.Flags

	cmds := commands.NewCommands()
	cmds.Register(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
