package gemm

import "errors"

// ErrDimensionMismatch indicates the supplied operand slices or
// declared shapes are inconsistent with the requested op(A)*op(B) = C
// product.
var ErrDimensionMismatch = errors.New("gemm: operand dimensions do not conform")
