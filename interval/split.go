package interval

// Subinterval returns the i-th of d nearly-equal contiguous pieces of iv,
// under the deterministic tie-break contract: for length L and divisor d,
// the i-th piece spans absolute range
//
//	[Lo + floor(L*i/d), Lo + floor(L*(i+1)/d) - 1]
//
// so that piece lengths differ by at most one; when L is not divisible by
// d, the floor boundaries place the longer pieces at fixed, deterministic
// indices (L=10, d=3 gives [0,2],[3,5],[6,9]; d=4 gives
// [0,1],[2,4],[5,6],[7,9]). This rule is a contract: the layout mapper and the
// multiply engine depend on it bit-for-bit, and must never be passed a
// different splitting function.
//
// Subinterval panics if d < 1 or d exceeds iv.Length() (both are
// programmer errors — a caller must never ask for more pieces than there
// are elements), and if i is outside [0, d).
func (iv Interval) Subinterval(d, i int) Interval {
	if d < 1 {
		panic(ErrInvalidDivisor)
	}
	length := iv.Length()
	if d > length {
		panic(ErrDivisorTooLarge)
	}
	if i < 0 || i >= d {
		panic(ErrSubintervalIndex)
	}

	lo := iv.Lo + (length*i)/d
	hi := iv.Lo + (length*(i+1))/d - 1

	return Interval{Lo: lo, Hi: hi}
}

// DivideBy returns all d sub-intervals of iv produced by Subinterval, in
// order i = 0, 1, ..., d-1. Their union is exactly iv and no two overlap.
func (iv Interval) DivideBy(d int) []Interval {
	pieces := make([]Interval, d)
	for i := 0; i < d; i++ {
		pieces[i] = iv.Subinterval(d, i)
	}

	return pieces
}

// LocateInSubinterval returns the sub-interval index i and the local
// offset off (0-based, relative to that sub-interval's Lo) at which the
// global point x is found, for a split of iv into d pieces. It returns
// ErrNotContained if x does not lie in iv.
//
// LocateInSubinterval and LocateInInterval are exact inverses:
// LocateInInterval(d, LocateInSubinterval(d, x)) == x for every x in iv
// and every d <= iv.Length().
func (iv Interval) LocateInSubinterval(d, x int) (i, off int, err error) {
	if !iv.Contains(x) {
		return 0, 0, ErrNotContained
	}
	if d < 1 || d > iv.Length() {
		panic(ErrInvalidDivisor)
	}

	length := iv.Length()
	local := x - iv.Lo
	for idx := 0; idx < d; idx++ {
		lo := (length * idx) / d
		hi := (length * (idx + 1)) / d
		if local >= lo && local < hi {
			return idx, local - lo, nil
		}
	}

	// Unreachable for a valid x within iv: the boundaries above are a
	// strictly increasing partition of [0, length).
	panic("interval: LocateInSubinterval found no covering piece")
}

// LocateInInterval is the inverse of LocateInSubinterval: given a split of
// iv into d pieces, it returns the global point addressed by sub-interval
// index i and local offset off.
func (iv Interval) LocateInInterval(d, i, off int) (int, error) {
	if d < 1 || d > iv.Length() {
		panic(ErrInvalidDivisor)
	}
	if i < 0 || i >= d {
		return 0, ErrSubintervalIndex
	}
	sub := iv.Subinterval(d, i)
	if off < 0 || off >= sub.Length() {
		return 0, ErrLocalOffset
	}

	return sub.Lo + off, nil
}
