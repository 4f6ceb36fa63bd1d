package transport

import "context"

// Communicator is the process-group abstraction the multiply engine
// drives. Every method is explicit about which local rank is calling
// (rather than binding identity into the value itself) since a single
// in-process implementation represents every rank's view with one shared
// value, accessed concurrently from one goroutine per rank.
//
// Split methods are pure, local computations (no coordination): group
// membership is a deterministic function of (local rank, Size(),
// groups), so every caller derives the same answer independently.
// AllReduceSum is the one genuinely collective operation and blocks
// every member until all have contributed.
type Communicator interface {
	// Size returns the number of ranks in this communicator.
	Size() int

	// GlobalRank maps a rank local to this communicator back to its
	// identity in the original, top-level communicator.
	GlobalRank(local int) int

	// SplitContiguous partitions the communicator into `groups`
	// contiguous blocks of Size()/groups consecutive local ranks each,
	// and returns the sub-communicator containing `local` plus local's
	// rank within it. This is the split used to assign a Parallel step's
	// divisor-th slice of a split matrix to a sub-communicator.
	SplitContiguous(ctx context.Context, groups, local int) (Communicator, int, error)

	// Restrict returns the sub-communicator containing only local ranks
	// [0, n), preserving their relative order and global identities. It
	// is the primitive behind the strategy compiler's "may reduce P"
	// clause: when Compile idles some processes to obtain a cleaner
	// factorization, the engine restricts to the first EffectiveP ranks
	// before walking the schedule, and callers at rank >= n simply never
	// call Restrict at all (spec.md §8 invariant 6: idle ranks make no
	// transport calls).
	Restrict(ctx context.Context, n int) (Communicator, error)

	// SplitCyclic partitions the communicator into `groups` interleaved
	// sets (local ranks sharing local%groups), returning the
	// sub-communicator containing `local` plus local's rank within it.
	// This recovers the reduction-partner group for a Parallel-K step:
	// by construction, the member sharing a given SplitContiguous key
	// across every SplitContiguous color ends up needing to be summed
	// with exactly the members sharing its SplitCyclic color.
	SplitCyclic(ctx context.Context, groups, local int) (Communicator, int, error)

	// AllReduceSum combines data contributed by every member of the
	// communicator by elementwise sum, and returns the combined result
	// to every member. Every member must call it exactly once per round,
	// with equal-length data, or the call blocks forever / returns
	// ErrPayloadSizeMismatch.
	AllReduceSum(ctx context.Context, local int, data []complex128) ([]complex128, error)
}
