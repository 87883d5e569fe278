package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/veld-lang/veld/eval"
	"github.com/veld-lang/veld/internal/log"
	"github.com/veld-lang/veld/runtime"
)

var EvalCmd = &cobra.Command{
	Use:          "eval <expr>",
	Short:        "Evaluate one veld cell and print its value and tag",
	RunE:         runEval,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func runEval(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.LevelError)
	session := eval.NewSession()
	v, err := session.Eval(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("%s :: %s\n", v, runtime.TypeOf(v))
	return nil
}
