package layout

import "errors"

// Sentinel errors for layout package operations.
var (
	// ErrOwnerOutOfRange indicates a queried (i, j) lies outside the
	// descriptor's global matrix shape.
	ErrOwnerOutOfRange = errors.New("layout: coordinates out of range")

	// ErrRankOutOfRange indicates a queried rank has no assigned region.
	ErrRankOutOfRange = errors.New("layout: rank out of range")
)
