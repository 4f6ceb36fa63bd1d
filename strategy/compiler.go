package strategy

import "math"

// dims is the mutable (m, n, k) working shape threaded through Compile's
// step-emission loop.
type dims struct {
	m, n, k int
}

func (d dims) get(axis Axis) int {
	switch axis {
	case M:
		return d.m
	case N:
		return d.n
	default:
		return d.k
	}
}

func (d dims) divide(axis Axis, divisor int) dims {
	out := d
	switch axis {
	case M:
		out.m = ceilDiv(d.m, divisor)
	case N:
		out.n = ceilDiv(d.n, divisor)
	default:
		out.k = ceilDiv(d.k, divisor)
	}

	return out
}

// memoryNeeded returns the element count of A, B, and C sub-blocks a
// single process must hold simultaneously at this shape: m*k + k*n + m*n.
func (d dims) memoryNeeded() int {
	return d.m*d.k + d.k*d.n + d.m*d.n
}

func ceilDiv(x, d int) int {
	if d <= 0 {
		return x
	}

	return (x + d - 1) / d
}

// axisOrder is the deterministic tie-break contract from spec.md §4.2 and
// §9: prefer K over M over N whenever two axes are otherwise equivalent.
var axisOrder = [3]Axis{K, M, N}

// pickMaxAxis returns the axis maximizing value, breaking ties by
// axisOrder (first-encountered axis wins, since later axes only replace
// the incumbent on a strictly larger value).
func pickMaxAxis(value func(Axis) float64) Axis {
	best := axisOrder[0]
	bestVal := value(best)
	for _, a := range axisOrder[1:] {
		if v := value(a); v > bestVal {
			bestVal = v
			best = a
		}
	}

	return best
}

// pickMinAxis returns the axis minimizing value, with the same tie-break.
func pickMinAxis(value func(Axis) float64) Axis {
	best := axisOrder[0]
	bestVal := value(best)
	for _, a := range axisOrder[1:] {
		if v := value(a); v < bestVal {
			bestVal = v
			best = a
		}
	}

	return best
}

// replicationCost estimates the communication volume a Parallel split on
// axis would force onto the two matrices NOT being scattered: splitting M
// broadcasts all of B (k*n) to every sub-communicator; splitting N
// broadcasts all of A (m*k); splitting K scatters both A and B but
// requires reducing C (m*n) back together. Compile picks the axis with
// the lowest such cost, matching the spec's "axis giving lowest
// closed-form communication cost" rule.
func replicationCost(d dims, axis Axis) float64 {
	switch axis {
	case M:
		return float64(d.k) * float64(d.n)
	case N:
		return float64(d.m) * float64(d.k)
	default: // K
		return float64(d.m) * float64(d.n)
	}
}

// largestPowerOfTwoAtMost returns the largest power of two <= p (at
// least 1). This is the compiler's resolution of the spec's open "may
// reduce P" clause: Parallel divisors are restricted to a clean
// recursive-halving factor of P, idling any remainder so that a P which
// is an awkward prime (e.g. 3) does not force a lopsided split.
func largestPowerOfTwoAtMost(p int) int {
	if p < 1 {
		return 1
	}
	out := 1
	for out*2 <= p {
		out *= 2
	}

	return out
}

// Compile derives a Strategy for the (m, n, k, P, S) problem. If opts
// supplies WithSteps, that explicit list is validated and returned
// verbatim; otherwise a Strategy is auto-derived by the deterministic
// algorithm in spec.md §4.2.
func Compile(m, n, k, p, s int, opts ...Option) (Strategy, error) {
	if m <= 0 || n <= 0 || k <= 0 || p <= 0 {
		return Strategy{}, ErrInvalidShape
	}
	cfg := newConfig(opts...)
	if s <= 0 {
		s = math.MaxInt
	}
	if cfg.hasUser {
		return validate(cfg.userSteps, m, n, k, p, s)
	}

	effectiveP := largestPowerOfTwoAtMost(p)
	remainingP := effectiveP
	cur := dims{m: m, n: n, k: k}
	var steps []Step

	for {
		if cur.memoryNeeded() > s {
			axis := pickMaxAxis(func(a Axis) float64 { return float64(cur.get(a)) })
			length := cur.get(axis)
			if length < 2 {
				// Every axis is already a single element and the
				// working set still doesn't fit: unsatisfiable.
				return Strategy{}, ErrMemoryBudget
			}
			d := smallestFittingDivisor(cur, axis, s, length)
			steps = append(steps, Step{Kind: Sequential, Axis: axis, Divisor: d})
			cur = cur.divide(axis, d)
			continue
		}

		if remainingP > 1 {
			axis := pickMinAxis(func(a Axis) float64 { return replicationCost(cur, a) })
			steps = append(steps, Step{Kind: Parallel, Axis: axis, Divisor: 2})
			cur = cur.divide(axis, 2)
			remainingP /= 2
			continue
		}

		break
	}

	return Strategy{Steps: steps, EffectiveP: effectiveP}, nil
}

// smallestFittingDivisor returns the smallest d in [2, length] such that
// dividing axis by d brings memoryNeeded under s. A single axis can only
// ever shrink two of the three cross-product terms (e.g. splitting K
// shrinks m*k and k*n but leaves m*n untouched), so when no divisor
// brings the total under s — because a term this axis cannot affect is
// already over budget on its own — this collapses the axis fully (d =
// length) and lets Compile's outer loop re-check and fall through to the
// next-largest axis on the following iteration.
func smallestFittingDivisor(cur dims, axis Axis, s, length int) int {
	for d := 2; d < length; d++ {
		if cur.divide(axis, d).memoryNeeded() <= s {
			return d
		}
	}

	return length
}

// validate checks a user-supplied step list against spec.md §4.2's
// contract: the Parallel-step divisor product must equal p exactly (no
// idling for explicit strategies), and the memory recurrence over the
// step list must never exceed s.
func validate(steps []Step, m, n, k, p, s int) (Strategy, error) {
	product := 1
	for _, step := range steps {
		if step.Kind == Parallel {
			product *= step.Divisor
		}
	}
	if product != p {
		return Strategy{}, &DivisorMismatchError{Got: product, Want: p}
	}

	cur := dims{m: m, n: n, k: k}
	if cur.memoryNeeded() > s {
		return Strategy{}, ErrMemoryBudget
	}
	for _, step := range steps {
		if cur.get(step.Axis) < step.Divisor {
			return Strategy{}, ErrNonDivisible
		}
		cur = cur.divide(step.Axis, step.Divisor)
		if cur.memoryNeeded() > s {
			return Strategy{}, ErrMemoryBudget
		}
	}

	return Strategy{Steps: steps, EffectiveP: p}, nil
}

// MemoryRequirement walks strat's steps from the given problem shape and
// returns the maximum per-process element count live at any level —
// spec.md §8, testable property 4.
func MemoryRequirement(strat Strategy, m, n, k int) int {
	cur := dims{m: m, n: n, k: k}
	maxMem := cur.memoryNeeded()
	for _, step := range strat.Steps {
		cur = cur.divide(step.Axis, step.Divisor)
		if mem := cur.memoryNeeded(); mem > maxMem {
			maxMem = mem
		}
	}

	return maxMem
}

// IOLowerBound computes the analytic communication lower bound
// max(m*n*k/(P*sqrt(S)), (m*n+n*k+m*k)/P) used to motivate (but not
// directly drive) the compiler's axis ranking — exposed so callers can
// compare a compiled Strategy's cost against the theoretical optimum.
func IOLowerBound(m, n, k, p, s int) float64 {
	if p <= 0 || s <= 0 {
		return math.Inf(1)
	}
	term1 := float64(m) * float64(n) * float64(k) / (float64(p) * math.Sqrt(float64(s)))
	term2 := float64(m*n+n*k+m*k) / float64(p)

	return math.Max(term1, term2)
}
