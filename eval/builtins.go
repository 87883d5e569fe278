package eval

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
	"github.com/veld-lang/veld/velderr"
)

// universeEnv is the environment every session starts from: one binding per
// declared tag, the handful of predeclared values, and the builtins.
func universeEnv() *runtime.Env {
	env := runtime.NewEnv()
	for _, tag := range types.All() {
		env = env.Set(tag.Name(), runtime.TypeVal{T: tag})
	}
	env = env.Set("Bottom", runtime.TypeVal{T: types.Bottom})
	env = env.Set("nothing", runtime.Nothing{})
	env = env.Set("true", runtime.Bool{V: true})
	env = env.Set("false", runtime.Bool{V: false})
	env = env.Set("pi", runtime.Float64{V: math.Pi})
	for _, b := range builtins {
		env = env.Set(b.Name, b)
	}
	return env
}

var builtins = []runtime.Builtin{
	{Name: "typeof", Arity: 1, Call: builtinTypeof},
	{Name: "isa", Arity: 2, Call: builtinIsa},
	{Name: "supertypes", Arity: 1, Call: builtinSupertypes},
	{Name: "zero", Arity: 1, Call: builtinZero},
	{Name: "one", Arity: 1, Call: builtinOne},
	{Name: "convert", Arity: 2, Call: builtinConvert},
	{Name: "singleton", Arity: 1, Call: builtinSingleton},
	{Name: "returntags", Arity: -1, Call: builtinReturnTags},
	{Name: "bench", Arity: 3, Call: builtinBench},
	{Name: "sumpow", Arity: 3, Call: builtinSumPow},
}

func builtinTypeof(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	return runtime.TypeVal{T: runtime.TypeOf(args[0])}, nil
}

func builtinIsa(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	t, err := wantType("isa", args[1])
	if err != nil {
		return nil, err
	}
	return runtime.Bool{V: types.Subtype(runtime.TypeOf(args[0]), t)}, nil
}

func builtinSupertypes(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	t, err := wantType("supertypes", args[0])
	if err != nil {
		return nil, err
	}
	chain := types.Supertypes(t)
	parts := make([]string, len(chain))
	for i, link := range chain {
		parts[i] = link.String()
	}
	return runtime.Str{V: strings.Join(parts, " <: ")}, nil
}

func builtinZero(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	v, err := runtime.ZeroOf(tagOf(args[0]))
	if err != nil {
		return nil, opError("zero", err)
	}
	return v, nil
}

func builtinOne(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	v, err := runtime.OneOf(tagOf(args[0]))
	if err != nil {
		return nil, opError("one", err)
	}
	return v, nil
}

func builtinConvert(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	t, err := wantType("convert", args[0])
	if err != nil {
		return nil, err
	}
	v, err := runtime.Convert(args[1], t)
	if err != nil {
		return nil, velderr.New(velderr.NewTypeMismatch{
			Positioner: velderr.Loc{},
			Want:       t.String(),
			Got:        runtime.TypeOf(args[1]).String(),
			Reason:     err.Error(),
		})
	}
	return v, nil
}

func builtinSingleton(_ runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	c, err := asConst(args[0])
	if err != nil {
		return nil, opError("singleton", err)
	}
	tag, ok := runtime.TypeOf(args[0]).(*types.Tag)
	if !ok {
		return nil, opError("singleton", fmt.Errorf("%s has no singleton", args[0]))
	}
	return runtime.TypeVal{T: types.NewSingleton(c, tag)}, nil
}

// builtinReturnTags is the stability probe of the tour: it applies a
// function to each sample and folds the observed return tags into a union,
// so a stable function comes back as a single tag and an unstable one as
// Union{...} over everything it produced.
func builtinReturnTags(apply runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 2 {
		return nil, velderr.New(velderr.NewArity{
			Positioner: velderr.Loc{}, Name: "returntags", Want: 2, Got: len(args),
		})
	}
	fn := args[0]
	var tags []types.Type
	for _, sample := range args[1:] {
		out, err := apply(fn, []runtime.Value{sample})
		if err != nil {
			return nil, err
		}
		tags = append(tags, runtime.TypeOf(out))
	}
	return runtime.TypeVal{T: types.Union(tags...)}, nil
}

// builtinBench is the informal timing probe: ns per call of f(x) over n
// repetitions. It proves nothing on its own, but makes the cost gap between
// the stable and unstable policies visible from inside the language.
func builtinBench(apply runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	fn, x := args[0], args[1]
	n, ok := runtime.AsInt(args[2])
	if !ok || n <= 0 {
		return nil, opError("bench", fmt.Errorf("repetition count must be a positive integer"))
	}
	start := time.Now()
	for i := int64(0); i < n; i++ {
		if _, err := apply(fn, []runtime.Value{x}); err != nil {
			return nil, err
		}
	}
	elapsed := time.Since(start)
	return runtime.Float64{V: float64(elapsed.Nanoseconds()) / float64(n)}, nil
}

// builtinSumPow aggregates sum of f(i)^2 over the inclusive range lo..hi in
// steps of one; the tour uses it to show both clamping policies agree
// numerically while their return tags diverge.
func builtinSumPow(apply runtime.Apply, args []runtime.Value) (runtime.Value, error) {
	fn := args[0]
	lo, lok := runtime.AsFloat(args[1])
	hi, hok := runtime.AsFloat(args[2])
	if !lok || !hok {
		return nil, opError("sumpow", fmt.Errorf("bounds must be numeric"))
	}
	acc := 0.0
	for i := lo; i <= hi; i++ {
		out, err := apply(fn, []runtime.Value{runtime.Float64{V: i}})
		if err != nil {
			return nil, err
		}
		f, ok := runtime.AsFloat(out)
		if !ok {
			return nil, opError("sumpow", fmt.Errorf("f(%v) is not numeric", i))
		}
		acc += f * f
	}
	return runtime.Float64{V: acc}, nil
}

// tagOf accepts either a first-class type or a value standing in for its
// tag, so zero(1.0) and zero(Float64) agree.
func tagOf(v runtime.Value) types.Type {
	if tv, ok := v.(runtime.TypeVal); ok {
		return tv.T
	}
	return runtime.TypeOf(v)
}

func wantType(name string, v runtime.Value) (types.Type, error) {
	tv, ok := v.(runtime.TypeVal)
	if !ok {
		return nil, opError(name, fmt.Errorf("expected a type, got %s", runtime.TypeOf(v)))
	}
	return tv.T, nil
}

func opError(name string, err error) error {
	return velderr.New(velderr.NewBadOperand{
		Positioner: velderr.Loc{},
		Op:         name,
		Reason:     err.Error(),
	})
}

// asConst maps a value to the constant type parameter it denotes.
func asConst(v runtime.Value) (types.Const, error) {
	if i, ok := runtime.AsInt(v); ok {
		if b, isBool := v.(runtime.Bool); isBool {
			return types.BoolConst(b.V), nil
		}
		return types.IntConst(i), nil
	}
	if s, ok := v.(runtime.Str); ok {
		return types.StrConst(s.V), nil
	}
	return types.Const{}, fmt.Errorf("%s cannot be a constant type parameter", runtime.TypeOf(v))
}

// asTypeParam maps an evaluated argument of a curly-brace application to a
// type parameter: types pass through, constants are wrapped.
func asTypeParam(v runtime.Value) (types.TypeParam, error) {
	if tv, ok := v.(runtime.TypeVal); ok {
		return tv.T, nil
	}
	c, err := asConst(v)
	if err != nil {
		return nil, err
	}
	return c, nil
}
