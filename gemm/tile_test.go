package gemm_test

import (
	"testing"

	"github.com/cosma-go/cosma/gemm"
	"github.com/cosma-go/cosma/scalar"
	"github.com/stretchr/testify/require"
)

func TestMultiplyTiled_MatchesMultiply(t *testing.T) {
	// 5x3 * 3x4, deliberately not a multiple of any small block size.
	a := make([]float64, 15)
	b := make([]float64, 12)
	for i := range a {
		a[i] = float64(i + 1)
	}
	for i := range b {
		b[i] = float64(2*i + 1)
	}

	for _, bs := range []int{1, 2, 3, 5, 64} {
		want := make([]float64, 20)
		err := gemm.Multiply(5, 3, a, scalar.NoTrans, 3, 4, b, scalar.NoTrans, 5, 4, want, 2, 0)
		require.NoError(t, err)

		got := make([]float64, 20)
		err = gemm.MultiplyTiled(gemm.TileHeuristic{BlockSize: bs}, 5, 3, a, scalar.NoTrans, 3, 4, b, scalar.NoTrans, 5, 4, got, 2, 0)
		require.NoError(t, err)
		require.InDeltaSlice(t, want, got, 1e-9, "block size %d", bs)
	}
}

func TestMultiplyTiled_BetaAccumulates(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	b := []float64{1, 0, 0, 1}
	c := []float64{10, 20, 30, 40}

	err := gemm.MultiplyTiled(gemm.TileHeuristic{BlockSize: 1}, 2, 2, a, scalar.NoTrans, 2, 2, b, scalar.NoTrans, 2, 2, c, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 21, 31, 41}, c)
}

func TestLocalTiled_DispatchesPerKind(t *testing.T) {
	a := []complex128{1, 0, 0, 1}
	b := []complex128{5, 6, 7, 8}

	for _, kind := range []scalar.Kind{scalar.Float32, scalar.Float64, scalar.Complex64, scalar.Complex128} {
		c := make([]complex128, 4)
		err := gemm.LocalTiled(gemm.DefaultTileHeuristic(), kind, 2, 2, a, scalar.NoTrans, 2, 2, b, scalar.NoTrans, 2, 2, c, 1, 0)
		require.NoError(t, err, kind)
		require.Equal(t, b, c, kind)
	}
}

func TestTileHeuristic_NonPositiveFallsBackToDefault(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4)

	err := gemm.MultiplyTiled(gemm.TileHeuristic{}, 2, 2, a, scalar.NoTrans, 2, 2, b, scalar.NoTrans, 2, 2, c, 1, 0)
	require.NoError(t, err)
	require.Equal(t, b, c)
}
