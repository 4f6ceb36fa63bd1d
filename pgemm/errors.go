package pgemm

import "errors"

var (
	// ErrGridMismatch indicates A, B, and C were built with different
	// process-grid shapes (gridP, gridQ); Gemm requires all three to
	// agree since they share one cosma.Multiply communicator.
	ErrGridMismatch = errors.New("pgemm: operand process grids do not match")

	// ErrCoordinateOutOfRange indicates a queried (i, j) lies outside a
	// BlockCyclic's declared rows x cols extent.
	ErrCoordinateOutOfRange = errors.New("pgemm: coordinates out of range")
)
