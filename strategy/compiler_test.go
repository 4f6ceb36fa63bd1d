package strategy_test

import (
	"testing"

	"github.com/cosma-go/cosma/strategy"
	"github.com/stretchr/testify/require"
)

func TestCompile_TrivialSingleProcess(t *testing.T) {
	// Scenario 1: m=n=k=4, P=1, auto -> no splits at all.
	strat, err := strategy.Compile(4, 4, 4, 1, 0)
	require.NoError(t, err)
	require.Empty(t, strat.Steps)
	require.Equal(t, 1, strat.EffectiveP)
}

func TestCompile_NotMHeavy(t *testing.T) {
	// Scenario 5: m=128, n=4096, k=32, P=8, auto -> should not favor M.
	strat, err := strategy.Compile(128, 4096, 32, 8, 0)
	require.NoError(t, err)
	require.Equal(t, 8, strat.EffectiveP)

	mSplits := 0
	for _, step := range strat.Steps {
		require.Equal(t, strategy.Parallel, step.Kind)
		if step.Axis == strategy.M {
			mSplits++
		}
	}
	require.Zero(t, mSplits, "strategy should not split M given N dominates the shape")
}

func TestCompile_ReducesEffectiveP(t *testing.T) {
	// Scenario 6: m=n=k=64, P=3, auto -> compiler reduces effective P to 2.
	strat, err := strategy.Compile(64, 64, 64, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 2, strat.EffectiveP)
	require.Equal(t, 2, strat.ParallelDivisorProduct())

	// Tie-break K > M > N applies since m == n == k.
	require.Len(t, strat.Steps, 1)
	require.Equal(t, strategy.K, strat.Steps[0].Axis)
}

func TestCompile_Determinism(t *testing.T) {
	// Property 5: identical inputs compile to a bit-identical Strategy.
	a, err := strategy.Compile(1000, 1000, 1000, 4, 0)
	require.NoError(t, err)
	b, err := strategy.Compile(1000, 1000, 1000, 4, 0)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCompile_MemoryBoundSatisfied(t *testing.T) {
	// Property 4: memory recurrence never exceeds S.
	const s = 5000
	strat, err := strategy.Compile(1000, 1000, 1000, 4, s)
	require.NoError(t, err)
	require.LessOrEqual(t, strategy.MemoryRequirement(strat, 1000, 1000, 1000), s)
}

func TestCompile_MemoryBudgetUnsatisfiable(t *testing.T) {
	_, err := strategy.Compile(1000, 1000, 1000, 1, 1)
	require.ErrorIs(t, err, strategy.ErrMemoryBudget)
}

func TestCompile_InvalidShape(t *testing.T) {
	_, err := strategy.Compile(0, 4, 4, 1, 0)
	require.ErrorIs(t, err, strategy.ErrInvalidShape)
}

func TestCompile_UserStrategy_Scenario3(t *testing.T) {
	// Scenario 3: pk4 with P=4.
	steps, err := strategy.Parse("pk4")
	require.NoError(t, err)
	strat, err := strategy.Compile(1000, 1000, 1000, 4, 0, strategy.WithSteps(steps))
	require.NoError(t, err)
	require.Equal(t, 4, strat.EffectiveP)
	require.Equal(t, 4, strat.ParallelDivisorProduct())
}

func TestCompile_UserStrategy_Scenario4(t *testing.T) {
	// Scenario 4: pm2,sm2,pk2 with P=4.
	steps, err := strategy.Parse("pm2,sm2,pk2")
	require.NoError(t, err)
	strat, err := strategy.Compile(1000, 1000, 1000, 4, 0, strategy.WithSteps(steps))
	require.NoError(t, err)
	require.Equal(t, 4, strat.ParallelDivisorProduct())
}

func TestCompile_UserStrategy_DivisorMismatch(t *testing.T) {
	steps, err := strategy.Parse("pm2")
	require.NoError(t, err)
	_, err = strategy.Compile(1000, 1000, 1000, 4, 0, strategy.WithSteps(steps))
	var mismatch *strategy.DivisorMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, 2, mismatch.Got)
	require.Equal(t, 4, mismatch.Want)
}

func TestParse_RoundTrip(t *testing.T) {
	const spec = "pm2,sm2,pk2"
	steps, err := strategy.Parse(spec)
	require.NoError(t, err)
	require.Equal(t, spec, strategy.Format(steps))
}

func TestParse_Malformed(t *testing.T) {
	_, err := strategy.Parse("xm2")
	require.Error(t, err)
	_, err = strategy.Parse("pz2")
	require.Error(t, err)
	_, err = strategy.Parse("pm1")
	require.Error(t, err)
	_, err = strategy.Parse("pm")
	require.Error(t, err)
}

func TestIOLowerBound_Monotonic(t *testing.T) {
	low := strategy.IOLowerBound(1000, 1000, 1000, 8, 1<<20)
	high := strategy.IOLowerBound(1000, 1000, 1000, 2, 1<<20)
	require.Less(t, low, high, "more processes should lower the bound")
}
