package layout

import "github.com/cosma-go/cosma/interval"

// Descriptor is the capability pair spec.md §4.3 calls for: given global
// element coordinates, report who owns the element and at what local
// offset (Owner); given a rank, report the region it owns (Region).
// Native implements it; cosma's engine and pgemm's interop shim work
// with *Native directly through At/Set and do not call Owner or Region.
type Descriptor interface {
	// Owner returns the rank owning global element (i, j) and that
	// element's offset within the rank's own column-major local buffer.
	Owner(i, j int) (rank, offset int, err error)

	// Region returns the Interval2D rank owns. Calling Region on a rank
	// with no assigned elements returns a zero-length-safe empty region
	// and ErrRankOutOfRange.
	Region(rank int) (interval.Interval2D, error)
}

// Native is the reference Descriptor: a simple row-block distribution of
// an Rows x Cols matrix across P ranks (rank i owns
// rowSplit.Subinterval(P, i) x the full column range), backed by one
// shared column-major element array. It doubles as the in-process
// backing store every rank reads and writes directly — see the package
// doc comment for why that fusion is safe here and is not part of the
// Descriptor contract itself.
type Native struct {
	rows, cols int
	p          int
	rowSplit   interval.Interval
	elements   []complex128
}

// NewNative builds a Native descriptor over rows x cols elements spread
// across p ranks by contiguous row blocks. elements must be a
// rows*cols-length column-major array (index = j*rows+i); a nil slice
// allocates a fresh zero-valued one.
func NewNative(rows, cols, p int, elements []complex128) *Native {
	if elements == nil {
		elements = make([]complex128, rows*cols)
	}

	return &Native{
		rows:     rows,
		cols:     cols,
		p:        p,
		rowSplit: interval.New(0, rows-1),
		elements: elements,
	}
}

// Owner implements Descriptor.
func (n *Native) Owner(i, j int) (rank, offset int, err error) {
	if i < 0 || i >= n.rows || j < 0 || j >= n.cols {
		return 0, 0, ErrOwnerOutOfRange
	}
	rank, localRow, err := n.rowSplit.LocateInSubinterval(n.p, i)
	if err != nil {
		return 0, 0, err
	}
	rowsInRegion := n.rowSplit.Subinterval(n.p, rank).Length()

	return rank, j*rowsInRegion + localRow, nil
}

// Region implements Descriptor.
func (n *Native) Region(rank int) (interval.Interval2D, error) {
	if rank < 0 || rank >= n.p {
		return interval.Interval2D{}, ErrRankOutOfRange
	}
	rows := n.rowSplit.Subinterval(n.p, rank)

	return interval.New2D(rows, interval.New(0, n.cols-1)), nil
}

// At reads global element (i, j) directly from the shared backing array.
func (n *Native) At(i, j int) complex128 {
	return n.elements[j*n.rows+i]
}

// Set writes global element (i, j) directly into the shared backing array.
func (n *Native) Set(i, j int, v complex128) {
	n.elements[j*n.rows+i] = v
}

// Rows returns the global row count.
func (n *Native) Rows() int { return n.rows }

// Cols returns the global column count.
func (n *Native) Cols() int { return n.cols }
