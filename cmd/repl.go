package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/veld-lang/veld/conf"
	"github.com/veld-lang/veld/eval"
	"github.com/veld-lang/veld/internal/log"
	"github.com/veld-lang/veld/runtime"
)

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Evaluate veld cells interactively",
	RunE:         runRepl,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func runRepl(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.LevelError)
	rl, err := readline.New("veld> ")
	if err != nil {
		return errors.Wrap(err, "could not open the terminal")
	}
	defer func() { _ = rl.Close() }()

	fmt.Println(conf.VERSION)
	session := eval.NewSession()
	for {
		src, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if src == "" {
			continue
		}
		v, err := session.Eval(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("%s :: %s\n", v, runtime.TypeOf(v))
	}
}
