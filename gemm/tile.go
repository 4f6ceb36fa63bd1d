package gemm

import "github.com/cosma-go/cosma/scalar"

// TileHeuristic names the local-tile block size the reference kernel
// uses to block its inner loops — spec.md §6's "local-tile heuristics
// for the GEMM" control knob, concretely realized as a single cache-
// blocking edge length applied uniformly to the i/j/p loop nest.
type TileHeuristic struct {
	BlockSize int
}

// DefaultTileHeuristic returns the reference kernel's default 64-element
// block edge, a conservative size that keeps one A/B/C tile comfortably
// within a typical L1 cache regardless of scalar.Kind.
func DefaultTileHeuristic() TileHeuristic {
	return TileHeuristic{BlockSize: 64}
}

func (t TileHeuristic) blockSize() int {
	if t.BlockSize <= 0 {
		return DefaultTileHeuristic().BlockSize
	}

	return t.BlockSize
}

func multiplyTiledF32(
	tile TileHeuristic,
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	af, bf, cf := toFloat32(a), toFloat32(b), toFloat32(c)
	if err := MultiplyTiled(tile, aRows, aCols, af, opA, bRows, bCols, bf, opB, cRows, cCols, cf, float32(real(alpha)), float32(real(beta))); err != nil {
		return err
	}
	fromFloat32(cf, c)

	return nil
}

func multiplyTiledF64(
	tile TileHeuristic,
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	af, bf, cf := toFloat64(a), toFloat64(b), toFloat64(c)
	if err := MultiplyTiled(tile, aRows, aCols, af, opA, bRows, bCols, bf, opB, cRows, cCols, cf, real(alpha), real(beta)); err != nil {
		return err
	}
	fromFloat64(cf, c)

	return nil
}

func multiplyTiledC64(
	tile TileHeuristic,
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	ac, bc, cc := toComplex64(a), toComplex64(b), toComplex64(c)
	if err := MultiplyTiled(tile, aRows, aCols, ac, opA, bRows, bCols, bc, opB, cRows, cCols, cc, complex64(alpha), complex64(beta)); err != nil {
		return err
	}
	fromComplex64(cc, c)

	return nil
}

func multiplyTiledC128(
	tile TileHeuristic,
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	return MultiplyTiled(tile, aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
}

// LocalTiled is MultiplyTiled's per-Kind dispatcher, the tiled
// counterpart of Local: it selects the compiled entry point for kind
// once, rather than per element, exactly as Local does.
func LocalTiled(
	tile TileHeuristic,
	kind scalar.Kind,
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	switch kind {
	case scalar.Float32:
		return multiplyTiledF32(tile, aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	case scalar.Float64:
		return multiplyTiledF64(tile, aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	case scalar.Complex64:
		return multiplyTiledC64(tile, aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	default:
		return multiplyTiledC128(tile, aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	}
}

// MultiplyTiled computes the same C := alpha*op(A)*op(B) + beta*C
// product as Multiply, cache-blocking the i/j/p loop nest into
// tile.blockSize()-edged sub-tiles instead of the straight triple loop.
// C is scaled by beta first, and each p-block's partial sum is then
// scaled by alpha and added to its cell separately, so results agree with
// Multiply's up to floating-point rounding but are not bit-identical
// when k spans more than one block.
func MultiplyTiled[T scalar.Numeric](
	tile TileHeuristic,
	aRows, aCols int, a []T, opA scalar.Trans,
	bRows, bCols int, b []T, opB scalar.Trans,
	cRows, cCols int, c []T,
	alpha, beta T,
) error {
	opRowsA, opColsA := effectiveShape(aRows, aCols, opA)
	opRowsB, opColsB := effectiveShape(bRows, bCols, opB)

	if opRowsA != cRows || opColsB != cCols || opColsA != opRowsB {
		return ErrDimensionMismatch
	}
	if len(a) < aRows*aCols || len(b) < bRows*bCols || len(c) < cRows*cCols {
		return ErrDimensionMismatch
	}

	bs := tile.blockSize()
	k := opColsA

	for j := 0; j < cCols; j++ {
		for i := 0; i < cRows; i++ {
			c[j*cRows+i] = beta * c[j*cRows+i]
		}
	}

	for jj := 0; jj < cCols; jj += bs {
		jEnd := min(jj+bs, cCols)
		for ii := 0; ii < cRows; ii += bs {
			iEnd := min(ii+bs, cRows)
			for pp := 0; pp < k; pp += bs {
				pEnd := min(pp+bs, k)
				for j := jj; j < jEnd; j++ {
					for i := ii; i < iEnd; i++ {
						var sum T
						for p := pp; p < pEnd; p++ {
							sum += elemAt(a, aRows, opA, i, p) * elemAt(b, bRows, opB, p, j)
						}
						c[j*cRows+i] += alpha * sum
					}
				}
			}
		}
	}

	return nil
}
