package tour

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/veld-lang/veld/eval"
	"github.com/veld-lang/veld/internal/log"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/velderr"
)

// Runner executes sections against one shared session, printing each cell's
// source and its result as value :: Tag. Cells marked WantErr print their
// error and the run continues; a cell that errors unexpectedly, or that was
// expected to error and did not, fails the run after all sections finish.
type Runner struct {
	Session *eval.Session
	Out     io.Writer
	logger  *slog.Logger
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{
		Session: eval.NewSession(),
		Out:     out,
		logger:  log.DefaultLogger.With("section", "tour"),
	}
}

// RunAll runs every section in presentation order.
func (r *Runner) RunAll() error {
	var failures *velderr.Errors
	for i, sec := range Sections() {
		failures = failures.Merge(r.runSection(i+1, sec))
	}
	return failuresToErr(failures)
}

// RunSection runs a single section; query is a 1-based section number or a
// case-insensitive title substring.
func (r *Runner) RunSection(query string) error {
	i, sec, ok := Find(query)
	if !ok {
		return fmt.Errorf("no section matches %q", query)
	}
	return failuresToErr(r.runSection(i+1, sec))
}

// Find locates a section by 1-based number or by title substring.
func Find(query string) (int, Section, bool) {
	sections := Sections()
	if n, err := strconv.Atoi(query); err == nil {
		if n < 1 || n > len(sections) {
			return 0, Section{}, false
		}
		return n - 1, sections[n-1], true
	}
	for i, sec := range sections {
		if strings.Contains(strings.ToLower(sec.Title), strings.ToLower(query)) {
			return i, sec, true
		}
	}
	return 0, Section{}, false
}

func (r *Runner) runSection(num int, sec Section) *velderr.Errors {
	var failures *velderr.Errors
	fmt.Fprintf(r.Out, "\n## %d. %s\n\n", num, sec.Title)
	fmt.Fprintln(r.Out, sec.Prose)
	fmt.Fprintln(r.Out)
	for _, cell := range sec.Cells {
		fmt.Fprintf(r.Out, "veld> %s\n", cell.Source)
		v, err := r.Session.Eval(cell.Source)
		switch {
		case err != nil && cell.WantErr:
			fmt.Fprintf(r.Out, "error: %s\n", err)
		case err != nil:
			r.logger.Warn("cell failed", "source", cell.Source, "err", err)
			fmt.Fprintf(r.Out, "error: %s\n", err)
			failures = failures.With(asVeldError(err))
		case cell.WantErr:
			fmt.Fprintf(r.Out, "=> %s :: %s\n", v, runtime.TypeOf(v))
			failures = failures.With(asVeldError(fmt.Errorf("cell %q was expected to fail", cell.Source)))
		default:
			fmt.Fprintf(r.Out, "=> %s :: %s\n", v, runtime.TypeOf(v))
		}
	}
	return failures
}

func asVeldError(err error) velderr.VeldError {
	if ve, ok := err.(velderr.VeldError); ok {
		return ve
	}
	return velderr.New(velderr.Unclassified{From: err, Positioner: velderr.Loc{}})
}

func failuresToErr(failures *velderr.Errors) error {
	if !failures.HasError() {
		return nil
	}
	msgs := make([]string, 0, len(failures.Errors()))
	for _, e := range failures.Errors() {
		msgs = append(msgs, velderr.FormatWithCode(e))
	}
	return fmt.Errorf("%d cell(s) failed:\n  %s", len(msgs), strings.Join(msgs, "\n  "))
}
