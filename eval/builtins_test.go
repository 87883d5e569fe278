package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veld-lang/veld/eval"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
)

func TestTypeofBuiltin(t *testing.T) {
	v := evalOne(t, `typeof(1.0)`)
	assert.Equal(t, runtime.TypeVal{T: types.Float64}, v)

	v = evalOne(t, `typeof(typeof(1.0))`)
	assert.Equal(t, runtime.TypeVal{T: types.TypeTag}, v)
}

func TestIsaBuiltin(t *testing.T) {
	assert.Equal(t, runtime.Bool{V: true}, evalOne(t, `isa(1.0, Real)`))
	assert.Equal(t, runtime.Bool{V: false}, evalOne(t, `isa(1, AbstractFloat)`))
	assert.Equal(t, runtime.Bool{V: true}, evalOne(t, `isa(1, Union{Int64, Float64})`))
}

func TestSupertypesBuiltin(t *testing.T) {
	v := evalOne(t, `supertypes(Float64)`)
	assert.Equal(t, runtime.Str{V: "Float64 <: AbstractFloat <: Real <: Number <: Any"}, v)
}

func TestZeroAndOneBuiltins(t *testing.T) {
	assert.Equal(t, runtime.Float64{V: 0}, evalOne(t, `zero(1.5)`))
	assert.Equal(t, runtime.Float64{V: 0}, evalOne(t, `zero(Float64)`))
	assert.Equal(t, runtime.Int64{V: 0}, evalOne(t, `zero(3)`))
	assert.Equal(t, runtime.Float64{V: 1}, evalOne(t, `one(Float64)`))
}

func TestConvertBuiltin(t *testing.T) {
	assert.Equal(t, runtime.Float64{V: 1}, evalOne(t, `convert(Float64, 1)`))

	_, err := eval.NewSession().Eval(`convert(Float64, "oops")`)
	assert.Error(t, err)
}

func TestSingletonBuiltin(t *testing.T) {
	v := evalOne(t, `singleton(1)`)
	tv, ok := v.(runtime.TypeVal)
	require.True(t, ok)
	assert.True(t, types.Equal(tv.T, types.NewSingleton(types.IntConst(1), types.Int64)))
}

func TestReturnTagsProbe(t *testing.T) {
	v := evalOne(t,
		`unstable(x) = x < 0 ? 0 : x`,
		`returntags(unstable, 1.0, -1.0)`,
	)
	assert.Equal(t, runtime.TypeVal{T: types.Union(types.Int64, types.Float64)}, v)

	v = evalOne(t,
		`stable(x) = x < 0 ? zero(x) : x`,
		`returntags(stable, 1.0, -1.0)`,
	)
	assert.Equal(t, runtime.TypeVal{T: types.Float64}, v,
		"a stable function folds to a single tag")
}

func TestSumPowAgreesAcrossPolicies(t *testing.T) {
	s := eval.NewSession()
	_, err := s.Eval(`unstable(x) = x < 0 ? 0 : x`)
	require.NoError(t, err)
	_, err = s.Eval(`stable(x) = x < 0 ? zero(x) : x`)
	require.NoError(t, err)

	a, err := s.Eval(`sumpow(stable, 1.0, 10.0)`)
	require.NoError(t, err)
	b, err := s.Eval(`sumpow(unstable, 1.0, 10.0)`)
	require.NoError(t, err)

	af, _ := runtime.AsFloat(a)
	bf, _ := runtime.AsFloat(b)
	assert.InDelta(t, 385.0, af, 1e-9, "sum of squares of 1..10")
	assert.InDelta(t, af, bf, 1e-9)
}

func TestBenchReportsTime(t *testing.T) {
	v := evalOne(t,
		`stable(x) = x < 0 ? zero(x) : x`,
		`bench(stable, -1.0, 1000)`,
	)
	f, ok := runtime.AsFloat(v)
	require.True(t, ok)
	assert.Greater(t, f, 0.0)
}

func TestSessionProbe(t *testing.T) {
	s := eval.NewSession()
	_, err := s.Eval(`unstable(x) = x < 0 ? 0 : x`)
	require.NoError(t, err)

	probe, err := s.Probe("unstable")
	require.NoError(t, err)
	out, err := probe(runtime.Float64{V: -1})
	require.NoError(t, err)
	assert.Equal(t, runtime.Int64{V: 0}, out)

	_, err = s.Probe("no_such_fn")
	assert.Error(t, err)
}
