package pgemm_test

import (
	"context"
	"testing"

	"github.com/cosma-go/cosma/pgemm"
	"github.com/cosma-go/cosma/scalar"
	"github.com/stretchr/testify/require"
)

func fillBlockCyclic(bc *pgemm.BlockCyclic, seed int) {
	for j := 0; j < bc.Cols(); j++ {
		for i := 0; i < bc.Rows(); i++ {
			bc.Set(i, j, complex(float64((i*31+j*7+seed)%101), 0))
		}
	}
}

func TestBlockCyclic_OwnerEveryElementExactlyOnce(t *testing.T) {
	rows, cols := 10, 7
	gridP, gridQ := 2, 3
	bc := pgemm.NewBlockCyclic(rows, cols, gridP, gridQ, 2, 2)

	seen := make(map[[2]int]bool)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			rank, off, err := bc.Owner(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, rank, 0)
			require.Less(t, rank, gridP*gridQ)
			key := [2]int{rank, off}
			require.False(t, seen[key], "duplicate (rank,offset) for element (%d,%d)", i, j)
			seen[key] = true
		}
	}
	require.Equal(t, rows*cols, len(seen))
}

func TestBlockCyclic_SetGetRoundTrip(t *testing.T) {
	bc := pgemm.NewBlockCyclic(9, 5, 2, 2, 3, 2)
	fillBlockCyclic(bc, 0)

	for j := 0; j < bc.Cols(); j++ {
		for i := 0; i < bc.Rows(); i++ {
			want := complex(float64((i*31+j*7)%101), 0)
			require.Equal(t, want, bc.Get(i, j))
		}
	}
}

func TestBlockCyclic_OwnerOutOfRange(t *testing.T) {
	bc := pgemm.NewBlockCyclic(4, 4, 1, 1, 2, 2)
	_, _, err := bc.Owner(4, 0)
	require.ErrorIs(t, err, pgemm.ErrCoordinateOutOfRange)
}

func TestGemm_MatchesNaiveMultiply(t *testing.T) {
	m, n, k := 12, 9, 6
	A := pgemm.NewBlockCyclic(m, k, 2, 2, 3, 2)
	B := pgemm.NewBlockCyclic(k, n, 2, 2, 2, 3)
	C := pgemm.NewBlockCyclic(m, n, 2, 2, 3, 3)

	fillBlockCyclic(A, 1)
	fillBlockCyclic(B, 2)

	want := make([]complex128, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for p := 0; p < k; p++ {
				sum += A.Get(i, p) * B.Get(p, j)
			}
			want[i*n+j] = sum
		}
	}

	err := pgemm.Gemm(context.Background(), A, B, C, m, n, k, 1, 0, scalar.NoTrans, scalar.NoTrans)
	require.NoError(t, err)

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, real(want[i*n+j]), real(C.Get(i, j)), 1e-6, "C[%d,%d]", i, j)
		}
	}
}

func TestGemm_GridMismatchRejected(t *testing.T) {
	A := pgemm.NewBlockCyclic(4, 4, 2, 2, 2, 2)
	B := pgemm.NewBlockCyclic(4, 4, 2, 2, 2, 2)
	C := pgemm.NewBlockCyclic(4, 4, 1, 1, 2, 2)

	err := pgemm.Gemm(context.Background(), A, B, C, 4, 4, 4, 1, 0, scalar.NoTrans, scalar.NoTrans)
	require.ErrorIs(t, err, pgemm.ErrGridMismatch)
}
