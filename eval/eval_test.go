package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veld-lang/veld/eval"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
	"github.com/veld-lang/veld/velderr"
)

// evalOne runs a fresh session over src and returns the last value.
func evalOne(t *testing.T, srcs ...string) runtime.Value {
	t.Helper()
	s := eval.NewSession()
	var (
		v   runtime.Value
		err error
	)
	for _, src := range srcs {
		v, err = s.Eval(src)
		require.NoError(t, err, "cell %q", src)
	}
	return v
}

func TestLiteralTags(t *testing.T) {
	cases := []struct {
		src  string
		want types.Type
	}{
		{`1`, types.Int64},
		{`1.0`, types.Float64},
		{`"hello"`, types.String},
		{`'a'`, types.Char},
		{`:speed`, types.Symbol},
		{`nothing`, types.Nothing},
		{`true`, types.Bool},
		{`Float64`, types.TypeTag},
	}
	for _, tt := range cases {
		t.Run(tt.src, func(t *testing.T) {
			v := evalOne(t, tt.src)
			assert.True(t, types.Equal(runtime.TypeOf(v), tt.want),
				"typeof(%s) = %s, want %s", tt.src, runtime.TypeOf(v), tt.want)
		})
	}
}

func TestArithmeticExpressions(t *testing.T) {
	cases := []struct {
		src  string
		want runtime.Value
	}{
		{`1 + 2 * 3`, runtime.Int64{V: 7}},
		{`(1 + 2) * 3`, runtime.Int64{V: 9}},
		{`4 / 2`, runtime.Float64{V: 2}},
		{`2 ^ 10`, runtime.Int64{V: 1024}},
		{`-2 ^ 2`, runtime.Int64{V: 4}},
		{`1.5 + 1`, runtime.Float64{V: 2.5}},
		{`10 % 3`, runtime.Int64{V: 1}},
		{`1 < 2 ? 10 : 20`, runtime.Int64{V: 10}},
		{`false && 1 < 2`, runtime.Bool{V: false}},
		{`true || 1 < 2`, runtime.Bool{V: true}},
		{`!(1 < 2)`, runtime.Bool{V: false}},
		{`1 == 1.0`, runtime.Bool{V: true}},
		{`pi > 3`, runtime.Bool{V: true}},
	}
	for _, tt := range cases {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, evalOne(t, tt.src))
		})
	}
}

func TestSubtypeOperator(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{`Float64 <: Real`, true},
		{`Int64 <: AbstractFloat`, false},
		{`Union{} <: Float64`, true},
		{`Float64 <: Any`, true},
		{`Array{Float64, 1} <: Array{Real, 1}`, false},
		{`Array{Float64, 1} <: DenseArray`, true},
		{`Tuple{Float64} <: Tuple{Real}`, true},
		{`Int64 <: Union{Int64, Float64}`, true},
		{`singleton(1) <: Int64`, true},
		{`singleton(1) <: Float64`, false},
	}
	for _, tt := range cases {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, runtime.Bool{V: tt.want}, evalOne(t, tt.src))
		})
	}
}

func TestAssignmentBinds(t *testing.T) {
	v := evalOne(t, `x = 1 + 1`, `x * 3`)
	assert.Equal(t, runtime.Int64{V: 6}, v)
}

func TestDeclaredAssignmentConvertsAndSticks(t *testing.T) {
	s := eval.NewSession()

	v, err := s.Eval(`x: Float64 = 1`)
	require.NoError(t, err)
	assert.Equal(t, runtime.Float64{V: 1}, v, "declared assignment converts at the assignment site")

	// the declaration sticks: plain reassignment still converts
	v, err = s.Eval(`x = 2`)
	require.NoError(t, err)
	assert.Equal(t, runtime.Float64{V: 2}, v)

	// and a value the tag cannot represent fails right there
	_, err = s.Eval(`x = "oops"`)
	require.Error(t, err)
	ve, ok := err.(velderr.VeldError)
	require.True(t, ok)
	assert.Equal(t, velderr.TypeMismatch, ve.Code())

	// the failed assignment must not have clobbered the binding
	v, err = s.Eval(`x`)
	require.NoError(t, err)
	assert.Equal(t, runtime.Float64{V: 2}, v)
}

func TestRedeclarationWithAnotherTagFails(t *testing.T) {
	s := eval.NewSession()
	_, err := s.Eval(`x: Float64 = 1`)
	require.NoError(t, err)
	_, err = s.Eval(`x: Int64 = 1`)
	assert.Error(t, err)
}

func TestUserFunctions(t *testing.T) {
	v := evalOne(t,
		`clamp(x) = x < 0 ? 0 : x`,
		`clamp(-3) + clamp(5)`,
	)
	assert.Equal(t, runtime.Int64{V: 5}, v)
}

func TestRecursionResolvesThroughTheDefiningEnv(t *testing.T) {
	v := evalOne(t,
		`fact(n) = n <= 1 ? 1 : n * fact(n - 1)`,
		`fact(5)`,
	)
	assert.Equal(t, runtime.Int64{V: 120}, v)
}

func TestFunctionsCloseOverDefinition(t *testing.T) {
	v := evalOne(t,
		`a = 1`,
		`f(x) = x + a`,
		`a = 100`,
		`f(1)`,
	)
	assert.Equal(t, runtime.Int64{V: 2}, v, "f sees the a it was defined over")
}

func TestCallDepthIsBounded(t *testing.T) {
	s := eval.NewSession()
	_, err := s.Eval(`loop(n) = loop(n + 1)`)
	require.NoError(t, err)
	_, err = s.Eval(`loop(0)`)
	require.Error(t, err)
	ve, ok := err.(velderr.VeldError)
	require.True(t, ok)
	assert.Equal(t, velderr.DepthLimit, ve.Code())
}

func TestArityMismatch(t *testing.T) {
	s := eval.NewSession()
	_, err := s.Eval(`f(x, y) = x + y`)
	require.NoError(t, err)
	_, err = s.Eval(`f(1)`)
	require.Error(t, err)
	ve, ok := err.(velderr.VeldError)
	require.True(t, ok)
	assert.Equal(t, velderr.Arity, ve.Code())
}

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		src  string
		want velderr.ErrCode
	}{
		{`no_such_thing`, velderr.UndefinedVariable},
		{`1 + `, velderr.Parse},
		{`3(4)`, velderr.NotCallable},
		{`Array{Float64}`, velderr.BadTypeParam},
		{`Float64{Int64}`, velderr.BadTypeParam},
		{`1 ? 2 : 3`, velderr.BadOperand},
		{`"a" + 1`, velderr.BadOperand},
		{`1 <: Int64`, velderr.BadOperand},
	}
	for _, tt := range cases {
		t.Run(tt.src, func(t *testing.T) {
			_, err := eval.NewSession().Eval(tt.src)
			require.Error(t, err)
			ve, ok := err.(velderr.VeldError)
			require.True(t, ok)
			assert.Equal(t, tt.want, ve.Code())
		})
	}
}

func TestUnknownDeclaredTag(t *testing.T) {
	_, err := eval.NewSession().Eval(`x: NoSuchTag = 1`)
	require.Error(t, err)
	ve, ok := err.(velderr.VeldError)
	require.True(t, ok)
	assert.Equal(t, velderr.UnknownType, ve.Code())
}

func TestParseErrorsCarryPositions(t *testing.T) {
	_, err := eval.NewSession().Eval(`1 + @`)
	require.Error(t, err)
	ve, ok := err.(velderr.VeldError)
	require.True(t, ok)
	assert.Equal(t, 1, ve.Pos().Line)
	assert.Equal(t, 5, ve.Pos().Column)
}
