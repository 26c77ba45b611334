package main

import (
	"os"

	"github.com/loon-lang/loon/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "loon [subcommand]",
	Short:        "loon 🪿\n diagnostic tooling for the loon compiler's lambda IR",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.PrimopsCmd)
}
