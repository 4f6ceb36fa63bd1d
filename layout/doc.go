// Package layout maps between global matrix coordinates and per-process
// ownership, and derives the per-step movement roles the multiply engine
// consults while walking a compiled strategy.Strategy. It is the
// "data-layout mapper" collaborator of spec.md §1/§4.3.
//
// Descriptor is the pure ownership mapping (global (i, j) -> owning rank
// + local offset). Native is the one concrete Descriptor this module
// ships: a row-block distribution over a shared, column-major backing
// array. In a real deployment a Descriptor's ownership and a rank's
// actual storage are separate concerns connected by the transport layer;
// Native fuses them (every rank can read any element directly) because
// the in-process reference engine runs every simulated rank in the same
// address space, so no point-to-point gather takes place.
//
// Plan and Narrow carry the other half of the mapper's job: given a
// strategy.Step, which of A, B, C is scattered versus held in full, and
// how a region narrows for the step's divisor-th slice.
package layout
