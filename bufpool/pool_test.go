package bufpool_test

import (
	"testing"

	"github.com/cosma-go/cosma/bufpool"
	"github.com/cosma-go/cosma/scalar"
	"github.com/cosma-go/cosma/strategy"
	"github.com/stretchr/testify/require"
)

func TestNew_SizesMatchCombinedBound(t *testing.T) {
	strat, err := strategy.Compile(1000, 1000, 1000, 4, 0)
	require.NoError(t, err)

	pool, err := bufpool.New(strat, 1000, 1000, 1000, scalar.Float64, 0)
	require.NoError(t, err)

	a, b, c := pool.MaxElements()
	require.LessOrEqual(t, a+b+c, strategy.MemoryRequirement(strat, 1000, 1000, 1000))
}

func TestNew_AllocationFailedOverLimit(t *testing.T) {
	strat, err := strategy.Compile(4, 4, 4, 1, 0)
	require.NoError(t, err)

	_, err = bufpool.New(strat, 4, 4, 4, scalar.Complex128, 16)
	require.ErrorIs(t, err, bufpool.ErrAllocationFailed)
}

func TestBorrow_ZeroedAndReusable(t *testing.T) {
	strat, err := strategy.Compile(4, 4, 4, 1, 0)
	require.NoError(t, err)
	pool, err := bufpool.New(strat, 4, 4, 4, scalar.Float64, 0)
	require.NoError(t, err)

	buf := pool.BorrowA(4)
	buf[0] = 1
	buf2 := pool.BorrowA(4)
	require.Equal(t, complex128(0), buf2[0])
}
