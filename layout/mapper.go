package layout

import (
	"github.com/cosma-go/cosma/interval"
	"github.com/cosma-go/cosma/strategy"
)

// LevelPlan is the mapper's precomputed, per-step movement role: which
// matrices the step physically narrows (Split), which it leaves whole
// for every sub-communicator or pass (Broadcast), and whether completing
// the step requires summing contributions together (Reduce, true only
// for a K-axis step). The multiply engine consults one LevelPlan per
// strategy.Step rather than re-deriving axis-to-matrix roles inline.
type LevelPlan struct {
	Step      strategy.Step
	Split     []byte // subset of {'A', 'B', 'C'}
	Broadcast []byte
	Reduce    bool
}

// Plan derives one LevelPlan per step of strat, in order.
func Plan(strat strategy.Strategy) []LevelPlan {
	plans := make([]LevelPlan, len(strat.Steps))
	for i, step := range strat.Steps {
		plans[i] = planStep(step)
	}

	return plans
}

func planStep(step strategy.Step) LevelPlan {
	switch step.Axis {
	case strategy.M:
		return LevelPlan{Step: step, Split: []byte{'A', 'C'}, Broadcast: []byte{'B'}}
	case strategy.N:
		return LevelPlan{Step: step, Split: []byte{'B', 'C'}, Broadcast: []byte{'A'}}
	default: // K
		return LevelPlan{Step: step, Split: []byte{'A', 'B'}, Reduce: true}
	}
}

// Narrow computes the divisor-th slice (of d equal pieces, index idx) of
// the (a, b, c) regions for the given axis, per the roles planStep
// assigns: an M split narrows A's and C's row intervals; an N split
// narrows B's and C's column intervals; a K split narrows A's column
// interval and B's row interval (the shared K dimension) and leaves c
// untouched, since the resulting pieces must later be reduced rather
// than placed side by side.
func Narrow(axis strategy.Axis, a, b, c interval.Interval2D, d, idx int) (na, nb, nc interval.Interval2D) {
	switch axis {
	case strategy.M:
		rows := a.Rows.Subinterval(d, idx)
		return interval.New2D(rows, a.Cols), b, interval.New2D(rows, c.Cols)
	case strategy.N:
		cols := b.Cols.Subinterval(d, idx)
		return a, interval.New2D(b.Rows, cols), interval.New2D(c.Rows, cols)
	default: // K
		kCols := a.Cols.Subinterval(d, idx)
		kRows := b.Rows.Subinterval(d, idx)
		return interval.New2D(a.Rows, kCols), interval.New2D(kRows, b.Cols), c
	}
}

// Place copies src (indexed relative to srcRegion) into dst (indexed
// relative to dstRegion), where srcRegion is contained in dstRegion. It
// assembles the disjoint pieces a Sequential M- or N-axis step produces
// back into one buffer sized to the step's own, unsplit region.
func Place(dst []complex128, dstRegion interval.Interval2D, srcRegion interval.Interval2D, src []complex128) {
	for r := srcRegion.Rows.Lo; r <= srcRegion.Rows.Hi; r++ {
		for c := srcRegion.Cols.Lo; c <= srcRegion.Cols.Hi; c++ {
			dst[dstRegion.LocalIndex(r, c)] = src[srcRegion.LocalIndex(r, c)]
		}
	}
}
