package transport

import (
	"context"
	"sync"
)

// InProcess is a Communicator implementation backed by goroutines and
// shared memory: each rank in the simulated process group is a goroutine
// in the same address space, and collectives are implemented as ordinary
// locks and condition variables rather than network messages. It exists
// so cosma is runnable and its concurrency behavior testable (races,
// deadlock-freedom, determinism) without a real MPI or RPC dependency.
type InProcess struct {
	members []int // global ranks, in local-rank order
	groups  *groupRegistry
}

// NewWorld creates the top-level communicator for a run of p processes,
// numbered 0..p-1.
func NewWorld(p int) *InProcess {
	members := make([]int, p)
	for i := range members {
		members[i] = i
	}

	return &InProcess{members: members, groups: newGroupRegistry()}
}

// Size implements Communicator.
func (c *InProcess) Size() int { return len(c.members) }

// GlobalRank implements Communicator.
func (c *InProcess) GlobalRank(local int) int { return c.members[local] }

// SplitContiguous implements Communicator.
func (c *InProcess) SplitContiguous(_ context.Context, groups, local int) (Communicator, int, error) {
	if local < 0 || local >= len(c.members) {
		return nil, 0, ErrRankOutOfRange
	}
	if groups <= 0 || len(c.members)%groups != 0 {
		return nil, 0, ErrGroupSizeMismatch
	}
	blockSize := len(c.members) / groups
	color := local / blockSize
	newLocal := local % blockSize
	newMembers := append([]int(nil), c.members[color*blockSize:(color+1)*blockSize]...)

	return &InProcess{members: newMembers, groups: c.groups}, newLocal, nil
}

// Restrict implements Communicator.
func (c *InProcess) Restrict(_ context.Context, n int) (Communicator, error) {
	if n <= 0 || n > len(c.members) {
		return nil, ErrGroupSizeMismatch
	}
	members := append([]int(nil), c.members[:n]...)

	return &InProcess{members: members, groups: c.groups}, nil
}

// SplitCyclic implements Communicator.
func (c *InProcess) SplitCyclic(_ context.Context, groups, local int) (Communicator, int, error) {
	if local < 0 || local >= len(c.members) {
		return nil, 0, ErrRankOutOfRange
	}
	if groups <= 0 || len(c.members)%groups != 0 {
		return nil, 0, ErrGroupSizeMismatch
	}
	color := local % groups
	newLocal := local / groups
	newMembers := make([]int, 0, len(c.members)/groups)
	for i := color; i < len(c.members); i += groups {
		newMembers = append(newMembers, c.members[i])
	}

	return &InProcess{members: newMembers, groups: c.groups}, newLocal, nil
}

// AllReduceSum implements Communicator.
func (c *InProcess) AllReduceSum(ctx context.Context, local int, data []complex128) ([]complex128, error) {
	if local < 0 || local >= len(c.members) {
		return nil, ErrRankOutOfRange
	}

	return c.groups.allReduceSum(ctx, c.members, local, data)
}

// groupRegistry lazily creates and reuses one barrier per distinct set of
// global ranks, so independently-computed Split results that describe the
// same logical group converge on the same underlying synchronization
// object without any discovery handshake.
type groupRegistry struct {
	mu   sync.Mutex
	hubs map[string]*reduceHub
}

func newGroupRegistry() *groupRegistry {
	return &groupRegistry{hubs: make(map[string]*reduceHub)}
}

func groupKey(members []int) string {
	b := make([]byte, 0, len(members)*5)
	for _, m := range members {
		b = append(b, byte(m), byte(m>>8), byte(m>>16), byte(m>>24), ',')
	}

	return string(b)
}

func (r *groupRegistry) allReduceSum(ctx context.Context, members []int, local int, data []complex128) ([]complex128, error) {
	key := groupKey(members)
	r.mu.Lock()
	hub, ok := r.hubs[key]
	if !ok {
		hub = newReduceHub(len(members))
		r.hubs[key] = hub
	}
	r.mu.Unlock()

	return hub.allReduceSum(ctx, local, data)
}

// reduceHub is a reusable all-to-one-to-all sum barrier for one fixed
// group of participants. The last arrival computes the sum and wakes
// everyone, and the final departure resets state for the next round. A
// member that finishes one round and calls again before the others have
// departed is held at entry until that reset, so rounds never mix.
type reduceHub struct {
	mu      sync.Mutex
	cond    *sync.Cond
	size    int
	arrived int
	contrib [][]complex128
	result  []complex128
	ready   bool
}

func newReduceHub(size int) *reduceHub {
	h := &reduceHub{size: size, contrib: make([][]complex128, size)}
	h.cond = sync.NewCond(&h.mu)

	return h
}

func (h *reduceHub) allReduceSum(ctx context.Context, local int, data []complex128) ([]complex128, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A member that re-enters before the previous round's last departure
	// waits here, so one round's arrivals never mix with the next's.
	for h.ready {
		h.cond.Wait()
	}

	h.contrib[local] = data
	h.arrived++
	if h.arrived == h.size {
		n := len(data)
		for _, c := range h.contrib {
			if len(c) != n {
				h.reset()
				return nil, ErrPayloadSizeMismatch
			}
		}
		sum := make([]complex128, n)
		for _, c := range h.contrib {
			for i, v := range c {
				sum[i] += v
			}
		}
		h.result = sum
		h.ready = true
		h.cond.Broadcast()
	} else {
		for !h.ready {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			h.cond.Wait()
		}
	}

	out := h.result
	h.arrived--
	if h.arrived == 0 {
		h.ready = false
		h.contrib = make([][]complex128, h.size)
		h.cond.Broadcast()
	}

	return out, nil
}

func (h *reduceHub) reset() {
	h.arrived = 0
	h.ready = false
	h.contrib = make([][]complex128, h.size)
	h.cond.Broadcast()
}
