package pgemm

import (
	"context"
	"fmt"

	"github.com/cosma-go/cosma/cosma"
	"github.com/cosma-go/cosma/layout"
	"github.com/cosma-go/cosma/scalar"
	"github.com/cosma-go/cosma/transport"
)

// Gemm computes C := alpha*op(A)*op(B) + beta*C over block-cyclic
// operands by gathering each into a layout.Native, delegating the actual
// multiply to cosma.Multiply over a fresh transport.InProcess world sized
// to the shared process grid, and scattering the result back into C —
// the same adapter-with-round-trip-fidelity shape as the teacher's
// matrix.ToMatrix/graph converters, generalized from a graph<->matrix
// round trip to a block-cyclic<->native one (spec.md §8 property 2).
//
// A, B, and C must share the same process grid (GridShape); Gemm does
// not attempt partial or heterogeneous-grid translation.
func Gemm(
	ctx context.Context,
	A, B, C *BlockCyclic,
	m, n, k int,
	alpha, beta complex128,
	opA, opB scalar.Trans,
	opts ...cosma.Option,
) error {
	ap, aq := A.GridShape()
	bp, bq := B.GridShape()
	cp, cq := C.GridShape()
	if ap != bp || ap != cp || aq != bq || aq != cq {
		return ErrGridMismatch
	}

	nativeA := gather(A)
	nativeB := gather(B)
	nativeC := gather(C)

	comm := transport.NewWorld(ap * aq)
	if err := cosma.Multiply(ctx, nativeA, nativeB, nativeC, m, n, k, alpha, beta, opA, opB, comm, opts...); err != nil {
		return fmt.Errorf("pgemm: %w", err)
	}

	scatter(C, nativeC)

	return nil
}

// gather copies every element of bc into a freshly allocated
// layout.Native, re-expressing the scattered block-cyclic ownership as
// Native's single contiguous row-block carve-up. The process count
// passed to layout.NewNative only labels the Descriptor's Region/Owner
// metadata: cosma.Multiply's engine reads and writes through At/Set
// directly and never consults it.
func gather(bc *BlockCyclic) *layout.Native {
	native := layout.NewNative(bc.rows, bc.cols, bc.gridP*bc.gridQ, nil)
	for j := 0; j < bc.cols; j++ {
		for i := 0; i < bc.rows; i++ {
			native.Set(i, j, bc.Get(i, j))
		}
	}

	return native
}

// scatter copies every element of native back into bc's block-cyclic
// local slices.
func scatter(bc *BlockCyclic, native *layout.Native) {
	for j := 0; j < bc.cols; j++ {
		for i := 0; i < bc.rows; i++ {
			bc.Set(i, j, native.At(i, j))
		}
	}
}
