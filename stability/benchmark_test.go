package stability_test

import (
	"testing"

	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/stability"
)

// The aggregation benchmarks contrast the boxed and monomorphic policies
// over ranges where the clamped branch never fires (all positive) and where
// it fires half the time (crossing zero).

func BenchmarkSumPow_Unstable_Positive(b *testing.B) {
	acc := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += stability.SumPowUnstable(1.0, 100.0)
	}
	_ = acc
}

func BenchmarkSumPow_Stable_Positive(b *testing.B) {
	acc := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += stability.SumPowStable(1.0, 100.0)
	}
	_ = acc
}

func BenchmarkSumPow_Unstable_CrossingZero(b *testing.B) {
	acc := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += stability.SumPowUnstable(-50.0, 50.0)
	}
	_ = acc
}

func BenchmarkSumPow_Stable_CrossingZero(b *testing.B) {
	acc := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += stability.SumPowStable(-50.0, 50.0)
	}
	_ = acc
}

// BenchmarkClamp_Boxed times the single-call cost of the tagged result,
// which is where the boxing shows up.
func BenchmarkClamp_Boxed(b *testing.B) {
	var out runtime.Value
	for i := 0; i < b.N; i++ {
		out = stability.Unstable(-1.0)
	}
	_ = out
}

func BenchmarkClamp_Monomorphic(b *testing.B) {
	var out float64
	for i := 0; i < b.N; i++ {
		out = stability.Stable(-1.0)
	}
	_ = out
}
