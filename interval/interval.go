package interval

import "fmt"

// Interval is a nonempty closed range [Lo, Hi] of nonnegative integers.
//
// Invariant: 0 <= Lo <= Hi. Every constructor enforces this invariant by
// panicking; once built, an Interval's bounds never change (all operations
// return a new value).
type Interval struct {
	Lo, Hi int
}

// New constructs an Interval [lo, hi]. It panics if lo is negative or
// lo > hi: these are programmer errors, not conditions a caller should
// recover from (spec contract: "constructing an Interval with negative
// bounds or a > b fails with a programmer-error condition").
func New(lo, hi int) Interval {
	if lo < 0 {
		panic(fmt.Sprintf("interval: negative lower bound %d", lo))
	}
	if lo > hi {
		panic(fmt.Sprintf("interval: lower bound %d exceeds upper bound %d", lo, hi))
	}

	return Interval{Lo: lo, Hi: hi}
}

// Length returns the number of integers covered by the interval.
func (iv Interval) Length() int {
	return iv.Hi - iv.Lo + 1
}

// Contains reports whether x lies within [Lo, Hi].
func (iv Interval) Contains(x int) bool {
	return x >= iv.Lo && x <= iv.Hi
}

// Precedes reports whether iv lies entirely before other, i.e. iv.Hi < other.Lo.
func (iv Interval) Precedes(other Interval) bool {
	return iv.Hi < other.Lo
}

// String renders the interval as "[lo,hi]" for diagnostics and logging.
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi)
}
