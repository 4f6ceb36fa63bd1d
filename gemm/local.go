package gemm

import "github.com/cosma-go/cosma/scalar"

// Local dispatches to the compiled entry point for kind, selected once
// per call rather than per element (spec.md's "avoid dynamic dispatch
// inside inner loops" guidance). Operands and the result are carried as
// complex128 — the engine's lingua franca for element values regardless
// of Kind, matching the transport layer's wire representation — and
// packed into the Kind's native representation only at this boundary,
// in kernel_f64.go/kernel_f32.go/kernel_c64.go/kernel_c128.go.
func Local(
	kind scalar.Kind,
	aRows, aCols int, a []complex128, opA scalar.Trans,
	bRows, bCols int, b []complex128, opB scalar.Trans,
	cRows, cCols int, c []complex128,
	alpha, beta complex128,
) error {
	switch kind {
	case scalar.Float32:
		return multiplyF32(aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	case scalar.Float64:
		return multiplyF64(aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	case scalar.Complex64:
		return multiplyC64(aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	default:
		return multiplyC128(aRows, aCols, a, opA, bRows, bCols, b, opB, cRows, cCols, c, alpha, beta)
	}
}
