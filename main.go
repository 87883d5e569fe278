package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/veld-lang/veld/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "veld [subcommand]",
	Short:        "veld\n a teaching kernel for a dynamic type system",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.TourCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
	rootCmd.AddCommand(cmd.EvalCmd)
	rootCmd.AddCommand(cmd.TreeCmd)
	rootCmd.AddCommand(cmd.BenchCmd)
}
