package gemm

import "github.com/cosma-go/cosma/scalar"

// multiplyF64 is the Float64 entry point: unpacks real parts into a
// float64 buffer, runs the generic kernel, and packs the real result
// back into c.
func multiplyF64(
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	af := toFloat64(a)
	bf := toFloat64(b)
	cf := toFloat64(c)

	if err := Multiply(aRows, aCols, af, opA, bRows, bCols, bf, opB, cRows, cCols, cf, real(alpha), real(beta)); err != nil {
		return err
	}
	fromFloat64(cf, c)

	return nil
}

func toFloat64(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}

	return out
}

func fromFloat64(src []float64, dst []complex128) {
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
}
