package interval

import "errors"

// Sentinel errors for interval package operations. ErrNotContained,
// ErrSubintervalIndex and ErrLocalOffset are returned by the Locate*
// methods; Subinterval and the Locate* methods panic with
// ErrInvalidDivisor, ErrDivisorTooLarge or ErrSubintervalIndex as the
// value when handed an invalid divisor or index, and New panics on
// malformed construction.
var (
	// ErrNotContained indicates a queried point lies outside the interval.
	ErrNotContained = errors.New("interval: point not contained in interval")

	// ErrInvalidDivisor indicates a split was requested with d < 1.
	ErrInvalidDivisor = errors.New("interval: divisor must be >= 1")

	// ErrDivisorTooLarge indicates d exceeds the interval's length, which
	// would produce empty sub-intervals.
	ErrDivisorTooLarge = errors.New("interval: divisor exceeds interval length")

	// ErrSubintervalIndex indicates an out-of-range sub-interval index i.
	ErrSubintervalIndex = errors.New("interval: sub-interval index out of range")

	// ErrLocalOffset indicates a local offset falls outside the addressed
	// sub-interval's length.
	ErrLocalOffset = errors.New("interval: local offset out of range")
)
