// Package interval provides the closed-range integer interval and its 2-D
// product used throughout cosma to describe ownership of a contiguous
// sub-block of a matrix.
//
// Interval is a closed range [Lo, Hi] of nonnegative integers. Interval2D
// pairs a row Interval with a column Interval to describe a rectangular
// region. Splitting an Interval into d nearly-equal pieces follows one
// deterministic tie-break rule (piece i starts at floor(L*i/d) relative to
// Lo, so lengths differ by at most one); every other cosma package that
// slices a matrix dimension relies on this rule bit-for-bit, so it must
// never change without updating every caller in lockstep.
package interval
