// Package scalar defines the small closed set of element types cosma
// matrices may hold, and the numeric primitives (Trans, conjugation)
// needed to dispatch local-GEMM and reduction operations without dynamic
// interface calls inside the inner loop.
package scalar

import "fmt"

// Kind tags the element type of a matrix. It is a closed enumeration:
// real/complex crossed with single/double precision, exactly the set the
// spec's design notes call for ("a small closed set... implement as
// tagged variants dispatching to the appropriate local-GEMM entry point").
type Kind int

const (
	// Float32 is single-precision real.
	Float32 Kind = iota
	// Float64 is double-precision real.
	Float64
	// Complex64 is single-precision complex (two float32 lanes).
	Complex64
	// Complex128 is double-precision complex (two float64 lanes).
	Complex128
)

// String renders the Kind for diagnostics and logging.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// elementSize is the single source of truth for per-element byte size,
// consulted by bufpool's arena sizing.
var elementSize = map[Kind]int{
	Float32:    4,
	Float64:    8,
	Complex64:  8,
	Complex128: 16,
}

// ElementSize returns the size in bytes of one element of this Kind.
func (k Kind) ElementSize() int {
	return elementSize[k]
}

// IsComplex reports whether Kind represents a complex element type.
func (k Kind) IsComplex() bool {
	return k == Complex64 || k == Complex128
}
