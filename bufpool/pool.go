package bufpool

import (
	"github.com/cosma-go/cosma/scalar"
	"github.com/cosma-go/cosma/strategy"
)

// Pool is a single process's set of reusable working arenas for the A, B,
// and C sub-blocks a leaf GEMM call touches. Borrow* slices alias the
// same backing arrays across calls; a process only ever has one leaf
// call in flight at a time (the engine's recursion is depth-first), so
// reuse is safe without additional locking.
type Pool struct {
	kind                   scalar.Kind
	maxA, maxB, maxC       int
	arenaA, arenaB, arenaC []complex128

	// levelC holds one independently-backed accumulation arena per
	// recursion depth (index i = the C region size entering step i, with
	// len(strat.Steps)+1 levels including the leaf). A Sequential step at
	// depth i borrows levelC[i] to sum its d sub-iterations' contributions
	// back into the region it was itself handed — spec.md §3's "one or
	// more staging buffers per... sequential step that require
	// accumulation" — kept one-per-depth rather than one-per-matrix
	// because only C ever needs cross-iteration accumulation (A/B are
	// read directly from the shared descriptor at every leaf, never
	// staged).
	levelC [][]complex128
}

// New precomputes arena sizes for the (m, n, k) problem under strat by
// walking strat's steps and tracking each matrix's (rows, cols) shape,
// recording the maximum element count reached by each of A, B, and C at
// any level — the same recurrence strategy.MemoryRequirement uses for
// the combined bound, kept separately per matrix here since each needs
// its own arena.
//
// If limitBytes is positive and the combined arena requirement exceeds
// it, New returns ErrAllocationFailed rather than silently allocating
// past the caller's stated budget.
func New(strat strategy.Strategy, m, n, k int, kind scalar.Kind, limitBytes int) (*Pool, error) {
	aR, aC := m, k
	bR, bC := k, n
	cR, cC := m, n
	maxA, maxB, maxC := aR*aC, bR*bC, cR*cC

	levelC := make([][]complex128, len(strat.Steps)+1)
	levelC[0] = make([]complex128, cR*cC)

	for i, step := range strat.Steps {
		d := step.Divisor
		switch step.Axis {
		case strategy.M:
			aR = ceilDiv(aR, d)
			cR = ceilDiv(cR, d)
		case strategy.N:
			bC = ceilDiv(bC, d)
			cC = ceilDiv(cC, d)
		default: // K
			aC = ceilDiv(aC, d)
			bR = ceilDiv(bR, d)
		}
		if v := aR * aC; v > maxA {
			maxA = v
		}
		if v := bR * bC; v > maxB {
			maxB = v
		}
		if v := cR * cC; v > maxC {
			maxC = v
		}
		levelC[i+1] = make([]complex128, cR*cC)
	}

	if limitBytes > 0 && (maxA+maxB+maxC)*kind.ElementSize() > limitBytes {
		return nil, ErrAllocationFailed
	}

	return &Pool{
		kind:   kind,
		maxA:   maxA,
		maxB:   maxB,
		maxC:   maxC,
		arenaA: make([]complex128, maxA),
		arenaB: make([]complex128, maxB),
		arenaC: make([]complex128, maxC),
		levelC: levelC,
	}, nil
}

// BorrowA returns a zeroed slice of n elements from the A arena.
func (p *Pool) BorrowA(n int) []complex128 { return borrow(p.arenaA, n) }

// BorrowB returns a zeroed slice of n elements from the B arena.
func (p *Pool) BorrowB(n int) []complex128 { return borrow(p.arenaB, n) }

// BorrowC returns a zeroed slice of n elements from the C arena.
func (p *Pool) BorrowC(n int) []complex128 { return borrow(p.arenaC, n) }

func borrow(arena []complex128, n int) []complex128 {
	buf := arena[:n]
	for i := range buf {
		buf[i] = 0
	}

	return buf
}

// StagingC returns a zeroed, n-element accumulation buffer for recursion
// depth level (the C region size the engine's Sequential-step handler at
// that depth was itself handed). It aliases the same backing array
// across calls at the same level, which is safe because a Sequential
// step's d sub-iterations run strictly one at a time. n may be smaller
// than the arena's precomputed capacity at level — interval.Subinterval's
// tie-break can hand an unevenly-split rank a narrower-than-worst-case
// region — but never larger.
func (p *Pool) StagingC(level, n int) []complex128 { return borrow(p.levelC[level], n) }

// MaxElements returns the precomputed peak element count for A, B, and C.
func (p *Pool) MaxElements() (a, b, c int) { return p.maxA, p.maxB, p.maxC }

func ceilDiv(x, d int) int {
	if d <= 0 {
		return x
	}

	return (x + d - 1) / d
}
