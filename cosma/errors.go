package cosma

import "errors"

// Sentinel errors for Multiply's input-validation and runtime-failure
// paths, per spec.md §7's error-kind taxonomy. Strategy-compile failures
// are not redeclared here: they surface wrapped from the strategy
// package's own sentinels (ErrMemoryBudget, ErrNonDivisible,
// DivisorMismatchError), consistent with the teacher's convention of one
// errors.go per package rather than a central error registry.
var (
	// ErrInvalidDimensions indicates a non-positive m, n, or k, a
	// communicator with no members, or operand shapes that don't conform
	// to op(A)*op(B) = C once opA/opB are applied.
	ErrInvalidDimensions = errors.New("cosma: invalid matrix dimensions")

	// ErrUnsupportedKind indicates a scalar.Kind outside the closed
	// {Float32, Float64, Complex64, Complex128} set.
	ErrUnsupportedKind = errors.New("cosma: unsupported element kind")

	// ErrFatalTransport indicates a Communicator split or reduction
	// failed mid-multiply. Per spec.md §7, C's contents are unspecified
	// after this error.
	ErrFatalTransport = errors.New("cosma: transport failure")

	// ErrKernelFailure indicates the local GEMM primitive reported an
	// error at a recursion leaf. Per spec.md §7, C's contents are
	// unspecified after this error.
	ErrKernelFailure = errors.New("cosma: local kernel failure")
)
