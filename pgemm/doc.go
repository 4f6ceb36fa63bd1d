// Package pgemm is the p?gemm-compatible interop shim: a pure
// layout-translation boundary between a ScaLAPACK-style block-cyclic
// distribution and cosma's native layout.Descriptor, with no algorithmic
// work of its own. It exists so a caller already holding data in
// block-cyclic form (grid P x Q, block size mb x nb) can drive
// cosma.Multiply without rewriting its storage layout first.
package pgemm
