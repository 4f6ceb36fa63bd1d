package bufpool

import "errors"

// ErrAllocationFailed indicates the precomputed arena requirement for A,
// B, and C together exceeds the caller's memory limit.
var ErrAllocationFailed = errors.New("bufpool: arena requirement exceeds memory limit")
