// Package stability makes the type-stability lesson concrete in Go itself.
//
// The two clamping policies below agree numerically for non-negative input
// and clamp negative input to zero; they differ only in the tag of what they
// return for the negative branch. Unstable hands back an integer constant,
// so its return tag depends on the input's value, and every caller pays for
// a boxed result. Stable builds its zero in the input's own type, so the
// return tag is a function of the input tag alone and the compiler can keep
// the whole loop monomorphic.
package stability

import (
	"golang.org/x/exp/constraints"

	"github.com/veld-lang/veld/runtime"
)

// Unstable clamps x to zero using an integer constant for the clamped
// branch. The boxed runtime.Value return is the point: the result is
// Int64(0) for negative input and Float64(x) otherwise, a sum over two tags
// that every caller must dispatch on.
func Unstable(x float64) runtime.Value {
	if x < 0 {
		return runtime.Int64{V: 0}
	}
	return runtime.Float64{V: x}
}

// Stable clamps x to zero in x's own type. The return type is the parameter
// type, monomorphic by construction, which is what lets the aggregation
// loops below stay unboxed.
func Stable[T constraints.Integer | constraints.Float](x T) T {
	if x < 0 {
		return T(0)
	}
	return x
}

// SumPowUnstable aggregates sum of Unstable(i)^2 over lo..hi in steps of
// one, unboxing the tagged result at every step the way a dynamic runtime
// would.
func SumPowUnstable(lo, hi float64) float64 {
	acc := 0.0
	for i := lo; i <= hi; i++ {
		out := Unstable(i)
		f, _ := runtime.AsFloat(out)
		acc += f * f
	}
	return acc
}

// SumPowStable is the same aggregation over the monomorphic policy; no
// boxing, no dispatch.
func SumPowStable(lo, hi float64) float64 {
	acc := 0.0
	for i := lo; i <= hi; i++ {
		f := Stable(i)
		acc += f * f
	}
	return acc
}
