package gemm

import "github.com/cosma-go/cosma/scalar"

// multiplyC128 is the Complex128 entry point: the engine's lingua franca
// already matches the native representation, so no packing is needed.
func multiplyC128(
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	return Multiply(aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
}
