package pgemm

// BlockCyclic is a ScaLAPACK-style two-dimensional block-cyclic
// distribution of a rows x cols matrix over a gridP x gridQ process
// grid with block size blockRows x blockCols: global row i belongs to
// process row (i/blockRows) mod gridP, global column j to process
// column (j/blockCols) mod gridQ, and that process's rank is
// processRow*gridQ+processCol.
//
// Each rank's locally-owned elements are kept in their own column-major
// slice (local[rank]), mirroring layout.Native's column-major contract
// at the per-rank level rather than the whole-matrix level — the
// distribution is genuinely scattered across ranks, unlike Native's
// single contiguous row-block carve-up, so there is no single shared
// backing array to fuse it with.
type BlockCyclic struct {
	rows, cols           int
	gridP, gridQ         int
	blockRows, blockCols int
	local                [][]complex128
}

// NewBlockCyclic allocates a BlockCyclic of the given global shape,
// process grid, and block size, with every element initialized to zero.
func NewBlockCyclic(rows, cols, gridP, gridQ, blockRows, blockCols int) *BlockCyclic {
	bc := &BlockCyclic{
		rows: rows, cols: cols,
		gridP: gridP, gridQ: gridQ,
		blockRows: blockRows, blockCols: blockCols,
	}
	bc.local = make([][]complex128, gridP*gridQ)
	for pr := 0; pr < gridP; pr++ {
		for pc := 0; pc < gridQ; pc++ {
			lr := localDimLen(rows, blockRows, gridP, pr)
			lc := localDimLen(cols, blockCols, gridQ, pc)
			bc.local[pr*gridQ+pc] = make([]complex128, lr*lc)
		}
	}

	return bc
}

// Rows returns the global row count.
func (bc *BlockCyclic) Rows() int { return bc.rows }

// Cols returns the global column count.
func (bc *BlockCyclic) Cols() int { return bc.cols }

// GridShape returns the process grid dimensions (P, Q).
func (bc *BlockCyclic) GridShape() (p, q int) { return bc.gridP, bc.gridQ }

// Owner returns the rank owning global element (i, j) and that
// element's offset within rank's local column-major slice — the same
// two-value capability layout.Descriptor.Owner exposes, though
// BlockCyclic does not implement that interface directly (its Region is
// not expressible as one interval.Interval2D, since block-cyclic
// ownership is scattered).
func (bc *BlockCyclic) Owner(i, j int) (rank, offset int, err error) {
	if i < 0 || i >= bc.rows || j < 0 || j >= bc.cols {
		return 0, 0, ErrCoordinateOutOfRange
	}
	pr := (i / bc.blockRows) % bc.gridP
	pc := (j / bc.blockCols) % bc.gridQ
	rank = pr*bc.gridQ + pc
	lr := localOffset(bc.rows, bc.blockRows, bc.gridP, pr, i)
	lc := localOffset(bc.cols, bc.blockCols, bc.gridQ, pc, j)
	localRows := localDimLen(bc.rows, bc.blockRows, bc.gridP, pr)
	offset = lc*localRows + lr

	return rank, offset, nil
}

// Get reads global element (i, j) from its owning rank's local slice.
func (bc *BlockCyclic) Get(i, j int) complex128 {
	rank, off, err := bc.Owner(i, j)
	if err != nil {
		panic(err) // programmer error: caller indexed outside the declared shape.
	}

	return bc.local[rank][off]
}

// Set writes global element (i, j) into its owning rank's local slice.
func (bc *BlockCyclic) Set(i, j int, v complex128) {
	rank, off, err := bc.Owner(i, j)
	if err != nil {
		panic(err)
	}
	bc.local[rank][off] = v
}

// blockCount returns the number of block_-sized chunks total divides into.
func blockCount(total, block int) int {
	return (total + block - 1) / block
}

// blockLen returns the number of elements in block index bi along a
// dimension of length total split into block-sized chunks (the last
// chunk may be shorter).
func blockLen(total, block, bi int) int {
	start := bi * block
	if start+block > total {
		return total - start
	}

	return block
}

// localDimLen returns how many of total's elements land on process
// coordinate coord (out of grid coordinates, 0-indexed) along one axis,
// summing every block-cyclically-owned block's actual length.
func localDimLen(total, block, grid, coord int) int {
	n := 0
	nb := blockCount(total, block)
	for bi := coord; bi < nb; bi += grid {
		n += blockLen(total, block, bi)
	}

	return n
}

// localOffset returns globalIdx's 0-based position within process
// coordinate coord's locally-owned elements along one axis.
func localOffset(total, block, grid, coord, globalIdx int) int {
	bi := globalIdx / block
	within := globalIdx % block
	off := 0
	for b := coord; b < bi; b += grid {
		off += blockLen(total, block, b)
	}

	return off + within
}
