package strategy

import (
	"errors"
	"fmt"
)

// Sentinel errors for strategy compile and validation failures.
var (
	// ErrInvalidShape indicates a non-positive m, n, k, or P.
	ErrInvalidShape = errors.New("strategy: m, n, k, and P must be positive")

	// ErrMemoryBudget indicates no sequence of splits can bring the
	// per-process working set under S, even at single-element tiles.
	ErrMemoryBudget = errors.New("strategy: memory budget unsatisfiable")

	// ErrNonDivisible indicates a user-supplied step's divisor exceeds the
	// current length of the axis it splits.
	ErrNonDivisible = errors.New("strategy: axis cannot be split further")
)

// DivisorMismatchError is returned when a user-supplied Strategy's
// Parallel-step divisors don't multiply out to the requested process
// count. It carries both values so a diagnostic can report them without
// re-deriving the product.
type DivisorMismatchError struct {
	Got, Want int
}

func (e *DivisorMismatchError) Error() string {
	return fmt.Sprintf("strategy: parallel divisor product %d != process count %d", e.Got, e.Want)
}
