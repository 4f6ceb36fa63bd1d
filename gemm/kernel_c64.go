package gemm

import "github.com/cosma-go/cosma/scalar"

// multiplyC64 is the Complex64 entry point.
func multiplyC64(
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	ac := toComplex64(a)
	bc := toComplex64(b)
	cc := toComplex64(c)

	if err := Multiply(aRows, aCols, ac, opA, bRows, bCols, bc, opB, cRows, cCols, cc, complex64(alpha), complex64(beta)); err != nil {
		return err
	}
	fromComplex64(cc, c)

	return nil
}

func toComplex64(x []complex128) []complex64 {
	out := make([]complex64, len(x))
	for i, v := range x {
		out[i] = complex64(v)
	}

	return out
}

func fromComplex64(src []complex64, dst []complex128) {
	for i, v := range src {
		dst[i] = complex128(v)
	}
}
