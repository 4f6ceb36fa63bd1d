package gemm

import "github.com/cosma-go/cosma/scalar"

// multiplyF32 is the Float32 entry point.
func multiplyF32(
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	af := toFloat32(a)
	bf := toFloat32(b)
	cf := toFloat32(c)

	if err := Multiply(aRows, aCols, af, opA, bRows, bCols, bf, opB, cRows, cCols, cf, float32(real(alpha)), float32(real(beta))); err != nil {
		return err
	}
	fromFloat32(cf, c)

	return nil
}

func toFloat32(x []complex128) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(real(v))
	}

	return out
}

func fromFloat32(src []float32, dst []complex128) {
	for i, v := range src {
		dst[i] = complex(float64(v), 0)
	}
}
