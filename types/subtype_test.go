package types_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veld-lang/veld/types"
)

func mustInstance(t *testing.T, tag *types.Tag, params ...types.TypeParam) *types.Instance {
	t.Helper()
	inst, err := types.NewInstance(tag, params...)
	require.NoError(t, err)
	return inst
}

// everyTested is the sample of the lattice the sanity properties quantify
// over: one of each kind of type.
func everyTested(t *testing.T) []types.Type {
	return []types.Type{
		types.Any,
		types.Real,
		types.Float64,
		types.Int64,
		types.Bool,
		types.String,
		types.Nothing,
		types.Union(types.Int64, types.Float64),
		types.Tuple(types.Float64, types.Int64),
		mustInstance(t, types.Array, types.Float64, types.IntConst(1)),
		types.NewSingleton(types.IntConst(1), types.Int64),
		types.Bottom,
	}
}

func TestSubtypeIsReflexive(t *testing.T) {
	for _, tt := range everyTested(t) {
		t.Run(tt.String(), func(t *testing.T) {
			assert.True(t, types.Subtype(tt, tt))
		})
	}
}

func TestBottomIsBelowEverything(t *testing.T) {
	for _, tt := range everyTested(t) {
		t.Run(tt.String(), func(t *testing.T) {
			assert.True(t, types.Subtype(types.Bottom, tt))
		})
	}
}

func TestAnyIsAboveEverything(t *testing.T) {
	for _, tt := range everyTested(t) {
		t.Run(tt.String(), func(t *testing.T) {
			assert.True(t, types.Subtype(tt, types.Any))
		})
	}
}

func TestTagTreeSubtyping(t *testing.T) {
	cases := []struct {
		a, b types.Type
		want bool
	}{
		{types.Float64, types.AbstractFloat, true},
		{types.Float64, types.Real, true},
		{types.Float64, types.Number, true},
		{types.Int64, types.Signed, true},
		{types.Int64, types.Integer, true},
		{types.Bool, types.Integer, true},
		{types.Int64, types.AbstractFloat, false},
		{types.Real, types.Float64, false},
		{types.String, types.Number, false},
		{types.Char, types.AbstractChar, true},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("%s<:%s", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, types.Subtype(tt.a, tt.b))
		})
	}
}

func TestInstancesAreInvariant(t *testing.T) {
	f64x1 := mustInstance(t, types.Array, types.Float64, types.IntConst(1))
	realx1 := mustInstance(t, types.Array, types.Real, types.IntConst(1))
	f64x2 := mustInstance(t, types.Array, types.Float64, types.IntConst(2))

	require.True(t, types.Subtype(types.Float64, types.Real))
	assert.False(t, types.Subtype(f64x1, realx1), "instances must not be covariant")
	assert.False(t, types.Subtype(realx1, f64x1))
	assert.False(t, types.Subtype(f64x1, f64x2), "constant parameters compare by value")
	assert.True(t, types.Subtype(f64x1, f64x1))
}

func TestInstanceIsBelowItsTagAncestry(t *testing.T) {
	inst := mustInstance(t, types.Array, types.Float64, types.IntConst(1))
	assert.True(t, types.Subtype(inst, types.Array))
	assert.True(t, types.Subtype(inst, types.DenseArray))
	assert.True(t, types.Subtype(inst, types.AbstractArray))
	assert.False(t, types.Subtype(types.Array, inst))
}

func TestInstanceArityIsChecked(t *testing.T) {
	_, err := types.NewInstance(types.Array, types.Float64)
	assert.Error(t, err)
	_, err = types.NewInstance(types.Float64, types.Int64)
	assert.Error(t, err, "non-parametric tags cannot be applied")
}

func TestTuplesAreCovariant(t *testing.T) {
	cases := []struct {
		a, b types.Type
		want bool
	}{
		{types.Tuple(types.Float64), types.Tuple(types.Real), true},
		{types.Tuple(types.Real), types.Tuple(types.Float64), false},
		{types.Tuple(types.Float64, types.Int64), types.Tuple(types.Real, types.Signed), true},
		{types.Tuple(types.Float64), types.Tuple(types.Float64, types.Float64), false},
		{types.Tuple(), types.Tuple(), true},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("%s<:%s", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, types.Subtype(tt.a, tt.b))
		})
	}
}

func TestSingletonSubtyping(t *testing.T) {
	one := types.NewSingleton(types.IntConst(1), types.Int64)
	assert.True(t, types.Subtype(one, types.Int64))
	assert.True(t, types.Subtype(one, types.Signed))
	assert.True(t, types.Subtype(one, types.Any))
	assert.False(t, types.Subtype(one, types.Float64))
	assert.False(t, types.Subtype(types.Int64, one))

	otherOne := types.NewSingleton(types.IntConst(1), types.Int64)
	assert.True(t, types.Subtype(one, otherOne), "singletons of the same constant are the same type")
	assert.False(t, types.Subtype(one, types.NewSingleton(types.IntConst(2), types.Int64)))
}

func TestSupertypesChain(t *testing.T) {
	chain := types.Supertypes(types.Float64)
	var names []string
	for _, link := range chain {
		names = append(names, link.String())
	}
	assert.Equal(t, []string{"Float64", "AbstractFloat", "Real", "Number", "Any"}, names)

	assert.Equal(t, []types.Type{types.Any}, types.Supertypes(types.Any))
}

func TestConcreteTagsAreLeaves(t *testing.T) {
	_, err := types.NewTag("ImpossibleChild", types.Float64, types.TagOpts{})
	assert.Error(t, err)
}

func TestTreeStringShowsTheTower(t *testing.T) {
	tree := types.TreeString(types.Number)
	assert.Contains(t, tree, "Number (abstract)")
	assert.Contains(t, tree, "Float64")
	assert.Contains(t, tree, "Signed (abstract)")
	assert.NotContains(t, tree, "String", "String is not under Number")
}
