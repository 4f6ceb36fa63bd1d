package interval_test

import (
	"testing"

	"github.com/cosma-go/cosma/interval"
	"github.com/stretchr/testify/require"
)

func TestNew_Panics(t *testing.T) {
	require.Panics(t, func() { interval.New(-1, 3) })
	require.Panics(t, func() { interval.New(5, 3) })
}

func TestLength(t *testing.T) {
	iv := interval.New(0, 9)
	require.Equal(t, 10, iv.Length())
}

func TestContainsAndPrecedes(t *testing.T) {
	iv := interval.New(3, 7)
	require.True(t, iv.Contains(3))
	require.True(t, iv.Contains(7))
	require.False(t, iv.Contains(8))

	other := interval.New(8, 10)
	require.True(t, iv.Precedes(other))
	require.False(t, other.Precedes(iv))
}

// TestSubinterval_TieBreak pins the exact tie-break cases from the spec:
// Interval(0,9).subinterval(3, 0..2) = [0,2],[3,5],[6,9]
// Interval(0,9).subinterval(4, 0..3) = [0,1],[2,4],[5,6],[7,9]
func TestSubinterval_TieBreak(t *testing.T) {
	iv := interval.New(0, 9)

	got3 := iv.DivideBy(3)
	want3 := []interval.Interval{
		interval.New(0, 2), interval.New(3, 5), interval.New(6, 9),
	}
	require.Equal(t, want3, got3)

	got4 := iv.DivideBy(4)
	want4 := []interval.Interval{
		interval.New(0, 1), interval.New(2, 4), interval.New(5, 6), interval.New(7, 9),
	}
	require.Equal(t, want4, got4)
}

// TestDivideBy_PartitionsExactly checks property 3 from the spec's
// testable properties: the d sub-intervals of any Interval of length
// L >= d partition it exactly (disjoint, union = original).
func TestDivideBy_PartitionsExactly(t *testing.T) {
	for _, tc := range []struct{ lo, hi, d int }{
		{0, 99, 7}, {10, 10, 1}, {0, 6, 6}, {5, 104, 11},
	} {
		iv := interval.New(tc.lo, tc.hi)
		pieces := iv.DivideBy(tc.d)
		require.Len(t, pieces, tc.d)

		total := 0
		prevHi := iv.Lo - 1
		for _, p := range pieces {
			require.Equal(t, prevHi+1, p.Lo, "pieces must be contiguous")
			require.LessOrEqual(t, p.Lo, p.Hi)
			total += p.Length()
			prevHi = p.Hi
		}
		require.Equal(t, iv.Hi, prevHi)
		require.Equal(t, iv.Length(), total)
	}
}

func TestSubinterval_InvalidDivisor(t *testing.T) {
	iv := interval.New(0, 2)
	require.Panics(t, func() { iv.Subinterval(0, 0) })
	require.Panics(t, func() { iv.Subinterval(5, 0) }) // d > length
	require.Panics(t, func() { iv.Subinterval(2, 2) }) // i out of range
}

// TestLocate_RoundTrip verifies LocateInInterval(d, LocateInSubinterval(d,
// x)) == x for every x in the interval and every valid d.
func TestLocate_RoundTrip(t *testing.T) {
	iv := interval.New(20, 53) // length 34
	for d := 1; d <= iv.Length(); d++ {
		for x := iv.Lo; x <= iv.Hi; x++ {
			i, off, err := iv.LocateInSubinterval(d, x)
			require.NoError(t, err)

			got, err := iv.LocateInInterval(d, i, off)
			require.NoError(t, err)
			require.Equal(t, x, got)
		}
	}
}

func TestLocateInSubinterval_NotContained(t *testing.T) {
	iv := interval.New(0, 9)
	_, _, err := iv.LocateInSubinterval(3, 10)
	require.ErrorIs(t, err, interval.ErrNotContained)
}

func TestInterval2D_LocalIndexColumnMajor(t *testing.T) {
	region := interval.New2D(interval.New(2, 4), interval.New(10, 11))
	// rows length 3, cols length 2: column-major index = (c-10)*3 + (r-2)
	require.Equal(t, 0, region.LocalIndex(2, 10))
	require.Equal(t, 1, region.LocalIndex(3, 10))
	require.Equal(t, 3, region.LocalIndex(2, 11))
	require.Equal(t, 5, region.LocalIndex(4, 11))
}

func TestInterval2D_SplitColsPreservesRows(t *testing.T) {
	region := interval.New2D(interval.New(0, 9), interval.New(0, 5))
	pieces := region.SplitCols(3)
	require.Len(t, pieces, 3)
	for _, p := range pieces {
		require.Equal(t, region.Rows, p.Rows)
	}
	require.Equal(t, interval.New(0, 1), pieces[0].Cols)
	require.Equal(t, interval.New(2, 3), pieces[1].Cols)
	require.Equal(t, interval.New(4, 5), pieces[2].Cols)
}
