package layout_test

import (
	"testing"

	"github.com/cosma-go/cosma/interval"
	"github.com/cosma-go/cosma/layout"
	"github.com/cosma-go/cosma/strategy"
	"github.com/stretchr/testify/require"
)

func TestNative_OwnerRegionRoundTrip(t *testing.T) {
	// Property 2 (spec.md §8): for every rank and every element it owns,
	// Owner followed by locating the element within Region recovers the
	// exact original global coordinates.
	const rows, cols, p = 17, 5, 4
	desc := layout.NewNative(rows, cols, p, nil)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rank, offset, err := desc.Owner(i, j)
			require.NoError(t, err)

			region, err := desc.Region(rank)
			require.NoError(t, err)
			require.True(t, region.Contains(i, j))

			localRow := offset % region.Rows.Length()
			localCol := offset / region.Rows.Length()
			require.Equal(t, i, region.Rows.Lo+localRow)
			require.Equal(t, j, region.Cols.Lo+localCol)
		}
	}
}

func TestNative_OwnerOutOfRange(t *testing.T) {
	desc := layout.NewNative(4, 4, 2, nil)
	_, _, err := desc.Owner(4, 0)
	require.ErrorIs(t, err, layout.ErrOwnerOutOfRange)
}

func TestNative_AtSet(t *testing.T) {
	desc := layout.NewNative(3, 3, 1, nil)
	desc.Set(1, 2, complex(7, 0))
	require.Equal(t, complex(7.0, 0), desc.At(1, 2))
}

func TestPlan_RolesByAxis(t *testing.T) {
	plans := layout.Plan(strategy.Strategy{Steps: []strategy.Step{
		{Kind: strategy.Parallel, Axis: strategy.M, Divisor: 2},
		{Kind: strategy.Parallel, Axis: strategy.N, Divisor: 2},
		{Kind: strategy.Parallel, Axis: strategy.K, Divisor: 2},
	}})
	require.Len(t, plans, 3)

	require.ElementsMatch(t, []byte{'A', 'C'}, plans[0].Split)
	require.ElementsMatch(t, []byte{'B'}, plans[0].Broadcast)
	require.False(t, plans[0].Reduce)

	require.ElementsMatch(t, []byte{'B', 'C'}, plans[1].Split)
	require.False(t, plans[1].Reduce)

	require.ElementsMatch(t, []byte{'A', 'B'}, plans[2].Split)
	require.True(t, plans[2].Reduce)
}

func TestNarrow_KAxisLeavesCUntouched(t *testing.T) {
	a := interval.New2D(interval.New(0, 99), interval.New(0, 49))
	b := interval.New2D(interval.New(0, 49), interval.New(0, 199))
	c := interval.New2D(interval.New(0, 99), interval.New(0, 199))

	na, nb, nc := layout.Narrow(strategy.K, a, b, c, 2, 0)
	require.Equal(t, 25, na.Cols.Length())
	require.Equal(t, 25, nb.Rows.Length())
	require.Equal(t, c, nc)
}

func TestNarrow_MAxisSplitsAAndC(t *testing.T) {
	a := interval.New2D(interval.New(0, 99), interval.New(0, 49))
	b := interval.New2D(interval.New(0, 49), interval.New(0, 199))
	c := interval.New2D(interval.New(0, 99), interval.New(0, 199))

	na, nb, nc := layout.Narrow(strategy.M, a, b, c, 4, 1)
	require.Equal(t, 25, na.Rows.Length())
	require.Equal(t, b, nb)
	require.Equal(t, na.Rows, nc.Rows)
}

func TestPlace_AssemblesSequentialPieces(t *testing.T) {
	full := interval.New2D(interval.New(0, 9), interval.New(0, 1))
	dst := make([]complex128, full.NumElements())

	pieces := full.Rows.DivideBy(2)
	for idx, rows := range pieces {
		region := interval.New2D(rows, full.Cols)
		src := make([]complex128, region.NumElements())
		for i := range src {
			src[i] = complex(float64(idx+1), 0)
		}
		layout.Place(dst, full, region, src)
	}

	require.Equal(t, complex(1.0, 0), dst[full.LocalIndex(0, 0)])
	require.Equal(t, complex(2.0, 0), dst[full.LocalIndex(9, 0)])
}
