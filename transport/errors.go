package transport

import "errors"

// Sentinel errors for Communicator operations.
var (
	// ErrGroupSizeMismatch indicates a split was requested with a divisor
	// that does not evenly divide the calling communicator's size.
	ErrGroupSizeMismatch = errors.New("transport: divisor does not evenly divide communicator size")

	// ErrRankOutOfRange indicates a local rank index outside [0, Size()).
	ErrRankOutOfRange = errors.New("transport: local rank out of range")

	// ErrPayloadSizeMismatch indicates AllReduceSum was called with
	// differently-sized contributions across the communicator's members.
	ErrPayloadSizeMismatch = errors.New("transport: mismatched AllReduceSum payload sizes")

	// ErrClosed indicates an operation on a communicator whose world has
	// already been torn down.
	ErrClosed = errors.New("transport: communicator closed")
)
