package cosma

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cosma-go/cosma/bufpool"
	"github.com/cosma-go/cosma/gemm"
	"github.com/cosma-go/cosma/interval"
	"github.com/cosma-go/cosma/layout"
	"github.com/cosma-go/cosma/scalar"
	"github.com/cosma-go/cosma/strategy"
	"github.com/cosma-go/cosma/transport"
)

// Multiply computes C := alpha*op(A)*op(B) + beta*C across comm's
// participating processes, exactly as spec.md §6 specifies: A, B, and C
// carry their own layout (here, the reference layout.Native descriptor,
// which doubles as their shared in-process backing store — see
// layout.Native's doc comment), m/n/k give the logical op(A)*op(B)=C
// shape, and opts configures the strategy, memory budget, and ambient
// knobs via functional Options.
//
// Multiply derives a strategy.Strategy (or honors one supplied through
// WithStrategy/WithSteps), computes the layout mapper's LevelPlans, and
// walks the schedule once per participating rank — concurrently, one
// goroutine per rank, exactly mirroring the "cooperating processes"
// model spec.md §5 describes. A fatal error from any rank aborts the
// whole call (via errgroup's first-error-wins propagation) and leaves
// C's contents unspecified on every rank, per spec.md §7.
func Multiply(
	ctx context.Context,
	A, B, C *layout.Native,
	m, n, k int,
	alpha, beta complex128,
	opA, opB scalar.Trans,
	comm transport.Communicator,
	opts ...Option,
) error {
	cfg := newConfig(opts...)
	if cfg.parseErr != nil {
		return fmt.Errorf("cosma: %w", cfg.parseErr)
	}
	if m <= 0 || n <= 0 || k <= 0 || comm == nil || comm.Size() <= 0 {
		return ErrInvalidDimensions
	}
	if err := checkShapes(A, B, C, m, n, k, opA, opB); err != nil {
		return err
	}

	p := comm.Size()
	strat, err := compileStrategy(cfg, m, n, k, p)
	if err != nil {
		return fmt.Errorf("cosma: %w", err)
	}
	plans := layout.Plan(strat)
	cfg.profiler.StrategyCompiled(len(strat.Steps), strat.EffectiveP)
	cfg.logger.Info("cosma: strategy compiled",
		"steps", strategy.Format(strat.Steps),
		"effectiveP", strat.EffectiveP,
		"m", m, "n", n, "k", k, "p", p)

	group, gctx := errgroup.WithContext(ctx)
	for r := 0; r < p; r++ {
		r := r
		group.Go(func() error {
			return runRank(gctx, comm, r, strat, plans, A, B, C, m, n, k, alpha, beta, opA, opB, cfg)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return nil
}

func compileStrategy(cfg *Config, m, n, k, p int) (strategy.Strategy, error) {
	if cfg.hasSteps {
		return strategy.Compile(m, n, k, p, cfg.memoryLimit, strategy.WithSteps(cfg.steps))
	}

	return strategy.Compile(m, n, k, p, cfg.memoryLimit)
}

// checkShapes validates A, B, and C's raw (untransposed) dimensions
// against the logical op(A)*op(B)=C shape (m, n, k), per spec.md §7's
// "mismatched shapes" input-validation kind.
func checkShapes(A, B, C *layout.Native, m, n, k int, opA, opB scalar.Trans) error {
	wantARows, wantACols := m, k
	if opA != scalar.NoTrans {
		wantARows, wantACols = k, m
	}
	wantBRows, wantBCols := k, n
	if opB != scalar.NoTrans {
		wantBRows, wantBCols = n, k
	}
	if A.Rows() != wantARows || A.Cols() != wantACols {
		return ErrInvalidDimensions
	}
	if B.Rows() != wantBRows || B.Cols() != wantBCols {
		return ErrInvalidDimensions
	}
	if C.Rows() != m || C.Cols() != n {
		return ErrInvalidDimensions
	}

	return nil
}

// runRank executes the full compiled schedule for one simulated process.
// Ranks at or beyond strat.EffectiveP are the processes the strategy
// compiler chose to idle (spec.md §4.2's "may reduce P" clause): they
// return immediately, issuing no transport calls and leaving their slice
// of C untouched, satisfying spec.md §8 invariant 6.
func runRank(
	ctx context.Context,
	comm transport.Communicator,
	global int,
	strat strategy.Strategy,
	plans []layout.LevelPlan,
	A, B, C *layout.Native,
	m, n, k int,
	alpha, beta complex128,
	opA, opB scalar.Trans,
	cfg *Config,
) error {
	if global >= strat.EffectiveP {
		return nil
	}

	active := comm
	if strat.EffectiveP < comm.Size() {
		restricted, err := comm.Restrict(ctx, strat.EffectiveP)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFatalTransport, err)
		}
		active = restricted
	}

	pool, err := bufpool.New(strat, m, n, k, cfg.kind, cfg.memoryLimit*cfg.kind.ElementSize())
	if err != nil {
		return fmt.Errorf("cosma: %w", err)
	}

	regA := interval.New2D(interval.New(0, m-1), interval.New(0, k-1))
	regB := interval.New2D(interval.New(0, k-1), interval.New(0, n-1))
	regC := interval.New2D(interval.New(0, m-1), interval.New(0, n-1))

	eng := &engine{
		A: A, B: B, opA: opA, opB: opB,
		alpha: alpha, kind: cfg.kind, pool: pool,
		tile:  gemm.TileHeuristic{BlockSize: cfg.tileBlockSize},
		steps: strat.Steps, plans: plans,
		profiler: cfg.profiler, rank: global,
	}

	region, buf, owner, err := eng.compute(ctx, active, global, 0, regA, regB, regC)
	if err != nil {
		return err
	}

	// Only the region's designated owner writes back: every rank whose
	// path included a K-axis reduction holds an identical copy of the
	// reduced result (AllReduceSum returns the same sum to every member
	// of the group), so writing from all of them would both race on C's
	// shared backing array and apply beta once per redundant writer. See
	// compute's doc comment for how owner is derived.
	if !owner {
		return nil
	}

	writeResult(C, region, buf, beta)

	return nil
}

// writeResult folds buf — this rank's alpha-scaled contribution to
// region, not yet combined with C's prior contents — into C's shared
// backing array: C[r,c] := beta*C[r,c] + buf[local index]. Callers only
// reach here for a region's designated owner (see runRank), so distinct
// calls across sibling rank goroutines never touch the same element.
func writeResult(C *layout.Native, region interval.Interval2D, buf []complex128, beta complex128) {
	for c := region.Cols.Lo; c <= region.Cols.Hi; c++ {
		for r := region.Rows.Lo; r <= region.Rows.Hi; r++ {
			idx := region.LocalIndex(r, c)
			C.Set(r, c, beta*C.At(r, c)+buf[idx])
		}
	}
}

// engine bundles the read-only state one rank's recursive walk needs at
// every level, so compute's own signature stays focused on what changes
// per call (communicator, rank, recursion depth, and the three current
// regions).
type engine struct {
	A, B     *layout.Native
	opA, opB scalar.Trans
	alpha    complex128
	kind     scalar.Kind
	tile     gemm.TileHeuristic
	pool     *bufpool.Pool
	steps    []strategy.Step
	plans    []layout.LevelPlan
	profiler Profiler
	rank     int
}

// compute is the depth-first executor at the heart of spec.md §4.5: it
// walks e.steps from idx to the end, narrowing (regA, regB, regC) at
// every Parallel or Sequential step per the layout mapper's rules, and
// returns the region this call computed together with its contribution
// buffer (regC-local column-major indexed, already alpha-scaled but not
// yet combined with C's prior contents or beta) and an owner flag.
//
// owner reports whether this call's caller is the region's unique
// designated writer. It starts true at the leaf and only ever narrows to
// false at a K-axis Parallel step's reduction: AllReduceSum hands every
// member of the reduction group the identical combined sum, so exactly
// one member (cyclicLocal == 0 within that group) keeps owner true and
// the rest become false, regardless of what they carried in from below.
// An M/N-axis Parallel step never touches owner (its sub-communicators
// already hold disjoint regions); a Sequential step's iterations share
// one comm/rank, so owner is the same value on every iteration and is
// simply carried through.
//
// A Parallel step narrows comm and regions once, recurses, and — for a
// K-axis split, per plans[idx].Reduce — AllReduceSums the recursive
// call's own returned region/buffer across the SplitCyclic partner
// group before passing it back up unchanged in shape. A Sequential step
// narrows only the regions (comm is untouched — no process partitioning,
// no transport) and loops d times in order, assembling the d sub-
// regions' contributions back into one buffer matching regC: summed in
// place for a K split (plans[idx].Reduce), placed at disjoint offsets
// via layout.Place otherwise.
func (e *engine) compute(
	ctx context.Context,
	comm transport.Communicator,
	local int,
	idx int,
	regA, regB, regC interval.Interval2D,
) (interval.Interval2D, []complex128, bool, error) {
	if idx == len(e.steps) {
		return e.leaf(regA, regB, regC)
	}

	step := e.steps[idx]
	plan := e.plans[idx]

	if step.Kind == strategy.Sequential {
		return e.sequentialStep(ctx, comm, local, idx, step, plan, regA, regB, regC)
	}

	return e.parallelStep(ctx, comm, local, idx, step, plan, regA, regB, regC)
}

func (e *engine) sequentialStep(
	ctx context.Context,
	comm transport.Communicator,
	local int,
	idx int,
	step strategy.Step,
	plan layout.LevelPlan,
	regA, regB, regC interval.Interval2D,
) (interval.Interval2D, []complex128, bool, error) {
	acc := e.pool.StagingC(idx, regC.NumElements())
	owner := true
	for s := 0; s < step.Divisor; s++ {
		na, nb, nc := layout.Narrow(step.Axis, regA, regB, regC, step.Divisor, s)
		_, contrib, childOwner, err := e.compute(ctx, comm, local, idx+1, na, nb, nc)
		if err != nil {
			return interval.Interval2D{}, nil, false, err
		}
		owner = childOwner
		if plan.Reduce {
			addInto(acc, contrib)
		} else {
			layout.Place(acc, regC, nc, contrib)
		}
	}

	return regC, acc, owner, nil
}

func (e *engine) parallelStep(
	ctx context.Context,
	comm transport.Communicator,
	local int,
	idx int,
	step strategy.Step,
	plan layout.LevelPlan,
	regA, regB, regC interval.Interval2D,
) (interval.Interval2D, []complex128, bool, error) {
	d := step.Divisor
	blockSize := comm.Size() / d
	color := local / blockSize

	na, nb, nc := layout.Narrow(step.Axis, regA, regB, regC, d, color)

	subComm, subLocal, err := comm.SplitContiguous(ctx, d, local)
	if err != nil {
		return interval.Interval2D{}, nil, false, fmt.Errorf("%w: %v", ErrFatalTransport, err)
	}

	region, buf, owner, err := e.compute(ctx, subComm, subLocal, idx+1, na, nb, nc)
	if err != nil {
		return interval.Interval2D{}, nil, false, err
	}

	if !plan.Reduce {
		return region, buf, owner, nil
	}

	// The d ranks holding the different K-slices of this same region are
	// the ones sharing a position within the contiguous sub-communicator
	// SplitContiguous just formed, i.e. stride blockSize — not stride d.
	// Passing d here would, once the communicator has shrunk to exactly
	// d members (the common case, since a K-parallel step is usually the
	// innermost split), form singleton groups and never actually reduce
	// anything across ranks.
	cyclicComm, cyclicLocal, err := comm.SplitCyclic(ctx, blockSize, local)
	if err != nil {
		return interval.Interval2D{}, nil, false, fmt.Errorf("%w: %v", ErrFatalTransport, err)
	}
	reduced, err := cyclicComm.AllReduceSum(ctx, cyclicLocal, buf)
	if err != nil {
		return interval.Interval2D{}, nil, false, fmt.Errorf("%w: %v", ErrFatalTransport, err)
	}

	return region, reduced, owner && cyclicLocal == 0, nil
}

// leaf is the recursion base case: the remaining problem is fully local
// (spec.md §4.5). It gathers A's and B's raw sub-blocks directly from
// their shared descriptors — passing opA/opB through to gemm.LocalTiled
// rather than physically transposing (spec.md's explicit requirement) —
// and invokes the local GEMM primitive with beta=0, since accumulation
// against C's prior contents happens exactly once, at writeResult, after
// every level's contribution has been assembled.
func (e *engine) leaf(regA, regB, regC interval.Interval2D) (interval.Interval2D, []complex128, bool, error) {
	aRows, aCols, aBuf := rawBlock(e.A, regA, e.opA)
	bRows, bCols, bBuf := rawBlock(e.B, regB, e.opB)
	cBuf := e.pool.BorrowC(regC.NumElements())

	err := gemm.LocalTiled(
		e.tile, e.kind,
		aRows, aCols, aBuf, e.opA,
		bRows, bCols, bBuf, e.opB,
		regC.Rows.Length(), regC.Cols.Length(), cBuf,
		e.alpha, 0,
	)
	if err != nil {
		return interval.Interval2D{}, nil, false, fmt.Errorf("%w: %v", ErrKernelFailure, err)
	}
	e.profiler.LeafExecuted(e.rank)

	return regC, cBuf, true, nil
}

// rawBlock gathers the raw (untransposed) sub-block of desc covering
// region's logical (post-op) coordinates into a freshly allocated
// column-major buffer, without applying op itself — spec.md §4.5
// requires op to reach the local kernel as a flag, not as a physical
// rearrangement, so the only rearrangement performed here is the
// unavoidable gather from desc's shared global array into a dense
// leaf-sized scratch buffer gemm.LocalTiled can index directly.
func rawBlock(desc *layout.Native, region interval.Interval2D, op scalar.Trans) (rawRows, rawCols int, buf []complex128) {
	rowRange, colRange := region.Rows, region.Cols
	if op != scalar.NoTrans {
		rowRange, colRange = region.Cols, region.Rows
	}
	rawRows, rawCols = rowRange.Length(), colRange.Length()
	buf = make([]complex128, rawRows*rawCols)
	for c := 0; c < rawCols; c++ {
		gc := colRange.Lo + c
		for r := 0; r < rawRows; r++ {
			gr := rowRange.Lo + r
			buf[c*rawRows+r] = desc.At(gr, gc)
		}
	}

	return rawRows, rawCols, buf
}

func addInto(acc, contrib []complex128) {
	for i := range acc {
		acc[i] += contrib[i]
	}
}
