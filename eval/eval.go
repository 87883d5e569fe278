package eval

import (
	"github.com/veld-lang/veld/conf"
	"github.com/veld-lang/veld/parse"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
	"github.com/veld-lang/veld/velderr"
)

// Eval runs one cell source and returns its value. Assignments and function
// definitions evaluate to the bound value, so every cell has a printable
// result and tag.
func (s *Session) Eval(src string) (runtime.Value, error) {
	stmt, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	switch stmt := stmt.(type) {
	case *parse.ExprStmt:
		return s.eval(stmt.X, s.env)
	case *parse.Assign:
		return s.evalAssign(stmt)
	case *parse.FnDef:
		fn := runtime.Fn{
			Name:   stmt.Name,
			Params: stmt.Params,
			Body:   stmt.Body,
			Env:    s.env,
		}
		s.env = s.env.Set(stmt.Name, fn)
		s.logger.Debug("defined function", "name", stmt.Name, "arity", len(stmt.Params))
		return fn, nil
	}
	return nil, velderr.New(velderr.Unclassified{Positioner: stmt})
}

// evalAssign handles both plain and declared assignment. A declaration is
// sticky: once x: Float64 has been seen, every later plain assignment to x
// re-checks (and converts) against Float64 at the assignment site.
func (s *Session) evalAssign(stmt *parse.Assign) (runtime.Value, error) {
	v, err := s.eval(stmt.X, s.env)
	if err != nil {
		return nil, err
	}
	declared, wasDeclared := s.decls.Get(stmt.Name)
	if stmt.DeclaredTag != "" {
		tag, ok := types.Lookup(stmt.DeclaredTag)
		if !ok {
			return nil, velderr.New(velderr.NewUnknownType{
				Positioner: stmt,
				Name:       stmt.DeclaredTag,
			})
		}
		if wasDeclared && declared != tag {
			return nil, velderr.New(velderr.NewTypeMismatch{
				Positioner: stmt,
				Want:       declared.String(),
				Got:        tag.String(),
				Reason:     "variable '" + stmt.Name + "' is already declared",
			})
		}
		declared, wasDeclared = tag, true
		s.decls = s.decls.Set(stmt.Name, tag)
	}
	if wasDeclared {
		converted, err := runtime.Convert(v, declared)
		if err != nil {
			return nil, velderr.New(velderr.NewTypeMismatch{
				Positioner: stmt,
				Want:       declared.String(),
				Got:        runtime.TypeOf(v).String(),
				Reason:     err.Error(),
			})
		}
		v = converted
	}
	s.env = s.env.Set(stmt.Name, v)
	return v, nil
}

func (s *Session) eval(e parse.Expr, env *runtime.Env) (runtime.Value, error) {
	switch e := e.(type) {
	case *parse.IntLit:
		return runtime.Int64{V: e.V}, nil
	case *parse.FloatLit:
		return runtime.Float64{V: e.V}, nil
	case *parse.StrLit:
		return runtime.Str{V: e.V}, nil
	case *parse.CharLit:
		return runtime.Char{V: e.V}, nil
	case *parse.SymLit:
		return runtime.Sym{Name: e.Name}, nil
	case *parse.Ident:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, velderr.New(velderr.NewUndefinedVariable{
				Positioner: e,
				Name:       e.Name,
			})
		}
		return v, nil
	case *parse.Unary:
		return s.evalUnary(e, env)
	case *parse.Binary:
		return s.evalBinary(e, env)
	case *parse.Ternary:
		cond, err := s.eval(e.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(runtime.Bool)
		if !ok {
			return nil, velderr.New(velderr.NewBadOperand{
				Positioner: e,
				Op:         "?:",
				Reason:     "condition must be Bool, got " + runtime.TypeOf(cond).String(),
			})
		}
		if b.V {
			return s.eval(e.Then, env)
		}
		return s.eval(e.Else, env)
	case *parse.Call:
		fn, err := s.eval(e.Fn, env)
		if err != nil {
			return nil, err
		}
		args := make([]runtime.Value, len(e.Args))
		for i, arg := range e.Args {
			if args[i], err = s.eval(arg, env); err != nil {
				return nil, err
			}
		}
		v, err := s.apply(fn, args)
		if err != nil {
			return nil, reposition(err, e.Pos())
		}
		return v, nil
	case *parse.TypeApply:
		return s.evalTypeApply(e, env)
	}
	return nil, velderr.New(velderr.Unclassified{Positioner: e})
}

func (s *Session) evalUnary(e *parse.Unary, env *runtime.Env) (runtime.Value, error) {
	x, err := s.eval(e.X, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "!":
		b, ok := x.(runtime.Bool)
		if !ok {
			return nil, velderr.New(velderr.NewBadOperand{
				Positioner: e,
				Op:         "!",
				Reason:     "operand must be Bool, got " + runtime.TypeOf(x).String(),
			})
		}
		return runtime.Bool{V: !b.V}, nil
	default: // "-"
		v, err := runtime.Arith("-", runtime.Int64{V: 0}, x)
		if err != nil {
			return nil, velderr.New(velderr.NewBadOperand{
				Positioner: e,
				Op:         "-",
				Reason:     err.Error(),
			})
		}
		return v, nil
	}
}

func (s *Session) evalBinary(e *parse.Binary, env *runtime.Env) (runtime.Value, error) {
	// short-circuit operators evaluate their right side lazily
	if e.Op == "&&" || e.Op == "||" {
		l, err := s.evalBool(e.L, env, e.Op)
		if err != nil {
			return nil, err
		}
		if (e.Op == "&&" && !l) || (e.Op == "||" && l) {
			return runtime.Bool{V: l}, nil
		}
		r, err := s.evalBool(e.R, env, e.Op)
		if err != nil {
			return nil, err
		}
		return runtime.Bool{V: r}, nil
	}

	l, err := s.eval(e.L, env)
	if err != nil {
		return nil, err
	}
	r, err := s.eval(e.R, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "<:":
		lt, lok := l.(runtime.TypeVal)
		rt, rok := r.(runtime.TypeVal)
		if !lok || !rok {
			return nil, velderr.New(velderr.NewBadOperand{
				Positioner: e,
				Op:         "<:",
				Reason:     "both operands must be types",
			})
		}
		return runtime.Bool{V: types.Subtype(lt.T, rt.T)}, nil
	case "<", "<=", ">", ">=", "==", "!=":
		v, err := runtime.Compare(e.Op, l, r)
		if err != nil {
			return nil, velderr.New(velderr.NewBadOperand{Positioner: e, Op: e.Op, Reason: err.Error()})
		}
		return v, nil
	default:
		v, err := runtime.Arith(e.Op, l, r)
		if err != nil {
			return nil, velderr.New(velderr.NewBadOperand{Positioner: e, Op: e.Op, Reason: err.Error()})
		}
		return v, nil
	}
}

func (s *Session) evalBool(e parse.Expr, env *runtime.Env, op string) (bool, error) {
	v, err := s.eval(e, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(runtime.Bool)
	if !ok {
		return false, velderr.New(velderr.NewBadOperand{
			Positioner: e,
			Op:         op,
			Reason:     "operand must be Bool, got " + runtime.TypeOf(v).String(),
		})
	}
	return b.V, nil
}

// evalTypeApply builds a type from curly-brace application: Union{...} and
// Tuple{...} are combinators, everything else must be a parametric tag.
func (s *Session) evalTypeApply(e *parse.TypeApply, env *runtime.Env) (runtime.Value, error) {
	if base, ok := e.Base.(*parse.Ident); ok && (base.Name == "Union" || base.Name == "Tuple") {
		members := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			t, err := s.evalType(arg, env, base.Name)
			if err != nil {
				return nil, err
			}
			members[i] = t
		}
		if base.Name == "Union" {
			return runtime.TypeVal{T: types.Union(members...)}, nil
		}
		return runtime.TypeVal{T: types.Tuple(members...)}, nil
	}

	base, err := s.eval(e.Base, env)
	if err != nil {
		return nil, err
	}
	tv, ok := base.(runtime.TypeVal)
	if !ok {
		return nil, velderr.New(velderr.NewBadTypeParam{
			Positioner: e,
			TypeName:   base.String(),
			Reason:     "not a type",
		})
	}
	tag, ok := tv.T.(*types.Tag)
	if !ok {
		return nil, velderr.New(velderr.NewBadTypeParam{
			Positioner: e,
			TypeName:   tv.T.String(),
			Reason:     "not a parametric tag",
		})
	}
	params := make([]types.TypeParam, len(e.Args))
	for i, arg := range e.Args {
		v, err := s.eval(arg, env)
		if err != nil {
			return nil, err
		}
		p, err := asTypeParam(v)
		if err != nil {
			return nil, velderr.New(velderr.NewBadTypeParam{
				Positioner: e,
				TypeName:   tag.Name(),
				Reason:     err.Error(),
			})
		}
		params[i] = p
	}
	inst, err := types.NewInstance(tag, params...)
	if err != nil {
		return nil, velderr.New(velderr.NewBadTypeParam{
			Positioner: e,
			TypeName:   tag.Name(),
			Reason:     err.Error(),
		})
	}
	return runtime.TypeVal{T: inst}, nil
}

func (s *Session) evalType(e parse.Expr, env *runtime.Env, combinator string) (types.Type, error) {
	v, err := s.eval(e, env)
	if err != nil {
		return nil, err
	}
	tv, ok := v.(runtime.TypeVal)
	if !ok {
		return nil, velderr.New(velderr.NewBadTypeParam{
			Positioner: e,
			TypeName:   combinator,
			Reason:     "members must be types, got " + runtime.TypeOf(v).String(),
		})
	}
	return tv.T, nil
}

func (s *Session) apply(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if s.depth >= conf.MAXCALLDEPTH {
		return nil, velderr.New(velderr.NewDepthLimit{
			Positioner: velderr.Loc{},
			Limit:      conf.MAXCALLDEPTH,
		})
	}
	s.depth++
	defer func() { s.depth-- }()

	switch fn := fn.(type) {
	case runtime.Fn:
		if len(args) != len(fn.Params) {
			return nil, velderr.New(velderr.NewArity{
				Positioner: velderr.Loc{},
				Name:       fn.Name,
				Want:       len(fn.Params),
				Got:        len(args),
			})
		}
		// rebind the function under its own name so recursion resolves
		// through the defining environment, not the call-site one
		env := fn.Env.Set(fn.Name, fn)
		for i, param := range fn.Params {
			env = env.Set(param, args[i])
		}
		return s.eval(fn.Body, env)
	case runtime.Builtin:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, velderr.New(velderr.NewArity{
				Positioner: velderr.Loc{},
				Name:       fn.Name,
				Want:       fn.Arity,
				Got:        len(args),
			})
		}
		return fn.Call(s.apply, args)
	}
	return nil, velderr.New(velderr.NewNotCallable{
		Positioner: velderr.Loc{},
		TypeName:   runtime.TypeOf(fn).String(),
	})
}

// reposition fills in the call-site position on errors that bubbled up from
// inside a call without one.
func reposition(err error, pos velderr.Loc) error {
	if ve, ok := err.(velderr.VeldError); ok && ve.Pos() == (velderr.Loc{}) {
		switch ve := ve.(type) {
		case velderr.NewArity:
			ve.Positioner = pos
			return ve
		case velderr.NewNotCallable:
			ve.Positioner = pos
			return ve
		case velderr.NewDepthLimit:
			ve.Positioner = pos
			return ve
		}
	}
	return err
}
