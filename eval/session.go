// Package eval is the veld evaluator: one Session holds the bindings a
// sequence of cells builds up over the predeclared universe, and Eval pushes
// a single cell source through lexing, parsing and tree-walking evaluation.
package eval

import (
	"log/slog"

	"github.com/benbjohnson/immutable"
	"github.com/veld-lang/veld/internal/log"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
	"github.com/veld-lang/veld/velderr"
)

// Session is the evaluation state shared by the cells of a run: the binding
// environment layered over the universe, the sticky tag declarations of
// declared variables, and a call-depth bound.
type Session struct {
	env    *runtime.Env
	decls  *immutable.Map[string, *types.Tag]
	depth  int
	logger *slog.Logger
}

func NewSession() *Session {
	return &Session{
		env:    universeEnv(),
		decls:  immutable.NewMap[string, *types.Tag](immutable.NewHasher("")),
		logger: log.DefaultLogger.With("section", "eval"),
	}
}

// Lookup finds a binding visible to the session, universe included.
func (s *Session) Lookup(name string) (runtime.Value, bool) {
	return s.env.Get(name)
}

// DeclaredTag reports the sticky declared tag of a variable, if any.
func (s *Session) DeclaredTag(name string) (*types.Tag, bool) {
	return s.decls.Get(name)
}

// Call invokes a function value with the given arguments, the same way a
// call expression would.
func (s *Session) Call(fn runtime.Value, args ...runtime.Value) (runtime.Value, error) {
	return s.apply(fn, args)
}

// Probe adapts a session function to the shape the stability analyzer
// consumes.
func (s *Session) Probe(name string) (func(runtime.Value) (runtime.Value, error), error) {
	fn, ok := s.Lookup(name)
	if !ok {
		return nil, velderr.New(velderr.NewUndefinedVariable{
			Positioner: velderr.Loc{},
			Name:       name,
		})
	}
	return func(v runtime.Value) (runtime.Value, error) {
		return s.apply(fn, []runtime.Value{v})
	}, nil
}
