package cmd

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/veld-lang/veld/conf"
	"github.com/veld-lang/veld/stability"
)

var BenchCmd = &cobra.Command{
	Use:          "bench",
	Short:        "Time the stable and unstable aggregation policies against each other",
	RunE:         runBench,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var benchIters int

func init() {
	BenchCmd.Flags().IntVarP(&benchIters, "iterations", "n", conf.BENCHDEFAULTITERS, "aggregation repetitions per policy")
}

func runBench(cmd *cobra.Command, args []string) error {
	stamp, err := strftime.Format("%Y-%m-%d %H:%M:%S", time.Now())
	if err != nil {
		return errors.Wrap(err, "could not format the session timestamp")
	}
	fmt.Printf("%s session, %s: sum of clamped squares over %g..%g, %d repetitions\n",
		conf.VERSION, stamp, conf.SUMPOWLO, conf.SUMPOWHI, benchIters)

	unstable := timePolicy(stability.SumPowUnstable)
	stable := timePolicy(stability.SumPowStable)
	fmt.Printf("unstable (boxed result):      %8.1f ns/op\n", unstable)
	fmt.Printf("stable (monomorphic result):  %8.1f ns/op\n", stable)
	if stable < unstable {
		fmt.Printf("the stable policy ran %.1fx faster\n", unstable/stable)
	}
	return nil
}

func timePolicy(sum func(lo, hi float64) float64) float64 {
	// keep the sum observable so the loop cannot be optimized out
	acc := 0.0
	start := time.Now()
	for i := 0; i < benchIters; i++ {
		acc += sum(conf.SUMPOWLO, conf.SUMPOWHI)
	}
	elapsed := time.Since(start)
	_ = acc
	return float64(elapsed.Nanoseconds()) / float64(benchIters)
}
