// Package bufpool precomputes and owns the per-process working buffers
// the multiply engine's leaf GEMM calls borrow from, sized by a
// red-blue-pebbling-style walk of a compiled strategy.Strategy: the
// maximum element count any one matrix (A, B, or C) ever reaches at any
// recursion level, which upper-bounds the arena size needed regardless
// of how deep or shallow the level currently is. This is the "buffer
// pool" collaborator of spec.md §1/§4.4.
//
// A Pool is exclusively owned by one simulated process: spec.md §9 notes
// shared buffers are never safe across processes, so the engine
// constructs one independent Pool per rank rather than sharing arenas.
package bufpool
