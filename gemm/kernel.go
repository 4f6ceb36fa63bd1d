package gemm

import "github.com/cosma-go/cosma/scalar"

// Multiply computes C := alpha*op(A)*op(B) + beta*C in place, where A,
// B, and C are column-major dense buffers (raw[i,j] = slice[j*rawRows+i])
// of the given raw shapes, and op(X) applies opX (identity, transpose, or
// conjugate-transpose) without physically rearranging X — spec.md §4.5:
// "pass that flag through to the local kernel rather than physically
// rearranging elements."
//
// It returns ErrDimensionMismatch if the raw shapes, once op is applied,
// don't conform to an (cRows x k)*(k x cCols) = cRows x cCols product, or
// if any slice is shorter than its declared raw shape requires.
func Multiply[T scalar.Numeric](
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

	k := opColsA
	for j := 0; j < cCols; j++ {
		for i := 0; i < cRows; i++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += elemAt(a, aRows, opA, i, p) * elemAt(b, bRows, opB, p, j)
			}
			c[j*cRows+i] = alpha*sum + beta*c[j*cRows+i]
		}
	}

	return nil
}

// effectiveShape returns the (rows, cols) of op(X) given X's raw shape.
func effectiveShape(rawRows, rawCols int, op scalar.Trans) (rows, cols int) {
	if op == scalar.NoTrans {
		return rawRows, rawCols
	}

	return rawCols, rawRows
}

// elemAt returns op(X)[i, j] from X's raw column-major buffer of rawRows
// rows, without materializing a transposed copy.
func elemAt[T scalar.Numeric](x []T, rawRows int, op scalar.Trans, i, j int) T {
	switch op {
	case scalar.NoTrans:
		return x[j*rawRows+i]
	case scalar.Transpose:
		return x[i*rawRows+j]
	default: // ConjTranspose
		return conj(x[i*rawRows+j])
	}
}

// conj returns the complex conjugate of v for complex element types, and
// v unchanged for real ones (conjugation is a no-op on the reals,
// matching scalar.Trans.Valid's documented ConjTranspose-on-real
// behavior).
func conj[T scalar.Numeric](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}
