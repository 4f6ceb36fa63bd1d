// Package strategy derives, from a problem shape (m, n, k), a process
// count P, and a per-process memory limit S, the ordered list of Steps a
// multiply call will execute: parallel splits that partition processes
// into sub-communicators, and sequential splits that shrink the local
// working set of a single process across successive passes.
//
// Compile implements the spec's auto-derivation algorithm: prefer a
// Parallel step on the axis whose replicated-matrix cost is lowest,
// falling back to a Sequential step whenever the current per-process
// memory requirement would exceed S. Ties are broken deterministically —
// K before M before N, parallel before sequential, smaller divisors
// first — so that two calls with identical (m, n, k, P, S) and no user
// override always compile to the bit-identical Strategy (spec.md §8,
// property 5).
package strategy
