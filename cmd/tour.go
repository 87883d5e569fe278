package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/veld-lang/veld/internal/log"
	"github.com/veld-lang/veld/tour"
)

var TourCmd = &cobra.Command{
	Use:          "tour [section]",
	Short:        "Walk through the veld type system, one lesson at a time",
	RunE:         runTour,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

func runTour(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.LevelError)
	runner := tour.NewRunner(os.Stdout)
	if len(args) == 0 {
		return runner.RunAll()
	}
	return runner.RunSection(args[0])
}
