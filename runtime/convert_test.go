package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
)

func TestConvertRetags(t *testing.T) {
	cases := []struct {
		name string
		v    runtime.Value
		to   types.Type
		want runtime.Value
	}{
		{"int to float64", runtime.Int64{V: 1}, types.Float64, runtime.Float64{V: 1}},
		{"int to float32", runtime.Int64{V: 1}, types.Float32, runtime.Float32{V: 1}},
		{"integral float to int", runtime.Float64{V: 3}, types.Int64, runtime.Int64{V: 3}},
		{"narrowing in range", runtime.Int64{V: 127}, types.Int8, runtime.Int8{V: 127}},
		{"int to uint", runtime.Int64{V: 200}, types.UInt8, runtime.UInt8{V: 200}},
		{"one to bool", runtime.Int64{V: 1}, types.Bool, runtime.Bool{V: true}},
		{"char to int", runtime.Char{V: 'a'}, types.Int64, runtime.Int64{V: 97}},
		{"int to char", runtime.Int64{V: 97}, types.Char, runtime.Char{V: 'a'}},
		{"already fits", runtime.Float64{V: 1.5}, types.Float64, runtime.Float64{V: 1.5}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runtime.Convert(tt.v, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertRefuses(t *testing.T) {
	cases := []struct {
		name string
		v    runtime.Value
		to   types.Type
	}{
		{"string to float", runtime.Str{V: "oops"}, types.Float64},
		{"fractional float to int", runtime.Float64{V: 3.5}, types.Int64},
		{"out of range narrowing", runtime.Int64{V: 128}, types.Int8},
		{"negative to unsigned", runtime.Int64{V: -1}, types.UInt8},
		{"two to bool", runtime.Int64{V: 2}, types.Bool},
		{"abstract target", runtime.Str{V: "x"}, types.Real},
		{"string to symbol", runtime.Str{V: "x"}, types.Symbol},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runtime.Convert(tt.v, tt.to)
			assert.Error(t, err)
		})
	}
}

func TestConvertToAbstractIsIdentityForSubtypes(t *testing.T) {
	// convert(Real, 1) leaves the value alone: its tag is already below Real
	got, err := runtime.Convert(runtime.Int64{V: 1}, types.Real)
	require.NoError(t, err)
	assert.Equal(t, runtime.Int64{V: 1}, got)
}
