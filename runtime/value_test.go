package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
)

func TestTypeOfDerivesTheTag(t *testing.T) {
	cases := []struct {
		v    runtime.Value
		want types.Type
	}{
		{runtime.Int64{V: 1}, types.Int64},
		{runtime.Float64{V: 1}, types.Float64},
		{runtime.Float32{V: 1}, types.Float32},
		{runtime.Bool{V: true}, types.Bool},
		{runtime.Str{V: "x"}, types.String},
		{runtime.Char{V: 'x'}, types.Char},
		{runtime.Sym{Name: "x"}, types.Symbol},
		{runtime.Nothing{}, types.Nothing},
		{runtime.TypeVal{T: types.Float64}, types.TypeTag},
		{runtime.UInt8{V: 255}, types.UInt8},
	}
	for _, tt := range cases {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.True(t, types.Equal(runtime.TypeOf(tt.v), tt.want))
		})
	}
}

func TestValueRendering(t *testing.T) {
	cases := []struct {
		v    runtime.Value
		want string
	}{
		{runtime.Int64{V: 42}, "42"},
		{runtime.Float64{V: 1}, "1.0"},
		{runtime.Float64{V: 1.5}, "1.5"},
		{runtime.Float32{V: 2}, "2.0"},
		{runtime.Str{V: "hi"}, `"hi"`},
		{runtime.Char{V: 'a'}, "'a'"},
		{runtime.Sym{Name: "speed"}, ":speed"},
		{runtime.Nothing{}, "nothing"},
		{runtime.TypeVal{T: types.Float64}, "Float64"},
	}
	for _, tt := range cases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestArithPromotion(t *testing.T) {
	cases := []struct {
		name string
		op   string
		a, b runtime.Value
		want runtime.Value
	}{
		{"int+int", "+", runtime.Int64{V: 1}, runtime.Int64{V: 2}, runtime.Int64{V: 3}},
		{"int+float", "+", runtime.Int64{V: 1}, runtime.Float64{V: 2}, runtime.Float64{V: 3}},
		{"float32+int", "+", runtime.Float32{V: 1}, runtime.Int64{V: 2}, runtime.Float32{V: 3}},
		{"float32+float64", "+", runtime.Float32{V: 1}, runtime.Float64{V: 2}, runtime.Float64{V: 3}},
		{"bool+bool", "+", runtime.Bool{V: true}, runtime.Bool{V: true}, runtime.Int64{V: 2}},
		{"int/int", "/", runtime.Int64{V: 4}, runtime.Int64{V: 2}, runtime.Float64{V: 2}},
		{"int^int", "^", runtime.Int64{V: 2}, runtime.Int64{V: 10}, runtime.Int64{V: 1024}},
		{"float^int", "^", runtime.Float64{V: 2}, runtime.Int64{V: 3}, runtime.Float64{V: 8}},
		{"int%int", "%", runtime.Int64{V: 7}, runtime.Int64{V: 3}, runtime.Int64{V: 1}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runtime.Arith(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithRejectsNonNumbers(t *testing.T) {
	_, err := runtime.Arith("+", runtime.Str{V: "a"}, runtime.Int64{V: 1})
	assert.Error(t, err)
	_, err = runtime.Arith("/", runtime.Int64{V: 1}, runtime.Int64{V: 0})
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	lt, err := runtime.Compare("<", runtime.Int64{V: 1}, runtime.Float64{V: 1.5})
	require.NoError(t, err)
	assert.Equal(t, runtime.Bool{V: true}, lt)

	eq, err := runtime.Compare("==", runtime.Int64{V: 1}, runtime.Float64{V: 1})
	require.NoError(t, err)
	assert.Equal(t, runtime.Bool{V: true}, eq, "numeric equality crosses tags")

	neq, err := runtime.Compare("!=", runtime.Str{V: "a"}, runtime.Str{V: "b"})
	require.NoError(t, err)
	assert.Equal(t, runtime.Bool{V: true}, neq)

	_, err = runtime.Compare("<", runtime.Str{V: "a"}, runtime.Str{V: "b"})
	assert.Error(t, err, "ordering needs numbers")
}

func TestZeroOfBuildsInTheGivenTag(t *testing.T) {
	cases := []struct {
		tag  types.Type
		want runtime.Value
	}{
		{types.Float64, runtime.Float64{V: 0}},
		{types.Float32, runtime.Float32{V: 0}},
		{types.Int64, runtime.Int64{V: 0}},
		{types.Int8, runtime.Int8{V: 0}},
		{types.UInt64, runtime.UInt64{V: 0}},
		{types.Bool, runtime.Bool{V: false}},
	}
	for _, tt := range cases {
		t.Run(tt.tag.String(), func(t *testing.T) {
			got, err := runtime.ZeroOf(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, types.Equal(runtime.TypeOf(got), tt.tag))
		})
	}

	_, err := runtime.ZeroOf(types.String)
	assert.Error(t, err)

	one, err := runtime.OneOf(types.Float64)
	require.NoError(t, err)
	assert.Equal(t, runtime.Float64{V: 1}, one)
}
