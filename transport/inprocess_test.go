package transport_test

import (
	"context"
	"sync"
	"testing"

	"github.com/cosma-go/cosma/transport"
	"github.com/stretchr/testify/require"
)

func TestInProcess_SplitContiguous(t *testing.T) {
	world := transport.NewWorld(4)
	sub, local, err := world.SplitContiguous(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Size())
	require.Equal(t, 1, local)
	require.Equal(t, 3, sub.GlobalRank(local))
	require.Equal(t, 2, sub.GlobalRank(0))
}

func TestInProcess_SplitCyclic(t *testing.T) {
	world := transport.NewWorld(4)
	sub, local, err := world.SplitCyclic(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Size())
	require.Equal(t, 1, local)
	require.Equal(t, 1, sub.GlobalRank(0))
	require.Equal(t, 3, sub.GlobalRank(1))
}

func TestInProcess_Restrict(t *testing.T) {
	world := transport.NewWorld(3)
	active, err := world.Restrict(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, active.Size())
	require.Equal(t, 0, active.GlobalRank(0))
	require.Equal(t, 1, active.GlobalRank(1))
}

func TestInProcess_RestrictOutOfRange(t *testing.T) {
	world := transport.NewWorld(3)
	_, err := world.Restrict(context.Background(), 4)
	require.ErrorIs(t, err, transport.ErrGroupSizeMismatch)
}

func TestInProcess_SplitGroupSizeMismatch(t *testing.T) {
	world := transport.NewWorld(4)
	_, _, err := world.SplitContiguous(context.Background(), 3, 0)
	require.ErrorIs(t, err, transport.ErrGroupSizeMismatch)
}

// TestInProcess_AllReduceSum_Concurrent exercises the real concurrency
// path: P goroutines, one per rank, each contributing a distinct value,
// all must observe the same summed result.
func TestInProcess_AllReduceSum_Concurrent(t *testing.T) {
	const p = 8
	world := transport.NewWorld(p)

	var wg sync.WaitGroup
	results := make([][]complex128, p)
	wg.Add(p)
	for r := 0; r < p; r++ {
		go func(local int) {
			defer wg.Done()
			out, err := world.AllReduceSum(context.Background(), local, []complex128{complex(float64(local), 0)})
			require.NoError(t, err)
			results[local] = out
		}(r)
	}
	wg.Wait()

	var want complex128
	for r := 0; r < p; r++ {
		want += complex(float64(r), 0)
	}
	for r := 0; r < p; r++ {
		require.Equal(t, []complex128{want}, results[r])
	}
}

// TestInProcess_AllReduceSum_SubGroups verifies that SplitCyclic partners
// reduce independently of the rest of the world, each rank deriving its
// group from its own SplitCyclic call on the world — the partner-group
// mechanism the Parallel-K reduction in the engine relies on.
func TestInProcess_AllReduceSum_SubGroups(t *testing.T) {
	const p = 4
	world := transport.NewWorld(p)

	var wg sync.WaitGroup
	results := make([][]complex128, p)
	wg.Add(p)
	for r := 0; r < p; r++ {
		go func(local int) {
			defer wg.Done()
			reduceComm, reduceLocal, err := world.SplitCyclic(context.Background(), 2, local)
			require.NoError(t, err)
			out, err := reduceComm.AllReduceSum(context.Background(), reduceLocal, []complex128{complex(float64(local), 0)})
			require.NoError(t, err)
			results[local] = out
		}(r)
	}
	wg.Wait()

	// Cyclic groups of 2 out of 4: {0,2} and {1,3}.
	require.Equal(t, []complex128{2}, results[0])
	require.Equal(t, []complex128{4}, results[1])
	require.Equal(t, []complex128{2}, results[2])
	require.Equal(t, []complex128{4}, results[3])
}
