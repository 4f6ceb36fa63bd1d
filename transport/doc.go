// Package transport defines the Communicator abstraction the multiply
// engine uses to partition processes and combine partial results. It is
// the external "message-transport layer" collaborator named in spec.md
// §1: cosma specifies the interface, and ships one in-process
// implementation (goroutines standing in for ranks, collectives built on
// sync.Mutex and sync.Cond) so the
// module is runnable and testable without a real MPI binding.
//
// A Communicator exposes exactly what the engine needs: splitting the
// current group into sub-groups along two complementary axes
// (SplitContiguous picks which slice of a split matrix a sub-group
// computes; SplitCyclic recovers the partner group that must later
// combine those slices by summation) and a collective AllReduceSum for
// that combination. Point-to-point Send/Recv is not part of the surface:
// the in-process engine reads operands directly from shared
// layout.Native arrays instead of sending them between ranks.
package transport
