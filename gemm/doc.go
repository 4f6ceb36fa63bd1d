// Package gemm is the local dense-multiply primitive the multiply engine
// invokes at every recursion leaf: a column-major, generic reference
// kernel computing C := alpha*op(A)*op(B) + beta*C for one of the four
// scalar.Kind element types, selected once per call rather than through
// a per-element dynamic dispatch (spec.md's design note: "implement as
// tagged variants dispatching to the appropriate local-GEMM entry
// point"). Multiply is generic over scalar.Numeric so the compiler
// monomorphizes one specialization per concrete type, matching that
// intent without hand-duplicating four near-identical loops.
package gemm
