package sparse

import "fmt"

// Triplet accumulates (row, col, value) entries for incremental matrix
// construction, then Builds a canonical CSC matrix. Duplicate (row, col)
// pairs are summed, matching the usual sparse-assembly convention where a
// coefficient may be contributed by more than one source (e.g. overlapping
// stencil terms).
type Triplet struct {
	rows, cols int
	row        []int
	col        []int
	val        []float64
}

// NewTriplet allocates a Triplet for an rows×cols matrix, reserving capacity
// for nnzHint entries (a sizing hint only; Put may exceed it).
func NewTriplet(rows, cols, nnzHint int) (*Triplet, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if nnzHint < 0 {
		nnzHint = 0
	}

	return &Triplet{
		rows: rows,
		cols: cols,
		row:  make([]int, 0, nnzHint),
		col:  make([]int, 0, nnzHint),
		val:  make([]float64, 0, nnzHint),
	}, nil
}

// Put appends an entry at (row, col) with value v. Returns
// ErrIndexOutOfBounds if either index is out of range.
func (t *Triplet) Put(row, col int, v float64) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return fmt.Errorf("sparse: Triplet.Put(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	t.row = append(t.row, row)
	t.col = append(t.col, col)
	t.val = append(t.val, v)

	return nil
}

// Len returns the number of entries appended so far (before deduplication).
func (t *Triplet) Len() int { return len(t.val) }

// Build converts the accumulated entries into a canonical CSC matrix:
// entries are bucketed by column, sorted by row within each column, and
// duplicate (row, col) pairs are summed.
// Complexity: O(nnz + cols) plus an insertion sort of each column, which is
// quadratic in that column's entry count.
func (t *Triplet) Build() *CSC {
	colCount := make([]int, t.cols+1)
	for _, c := range t.col {
		colCount[c+1]++
	}
	for j := 0; j < t.cols; j++ {
		colCount[j+1] += colCount[j]
	}

	// scatter into column-major order, stable within each column by input order
	rowIdx := make([]int, len(t.val))
	val := make([]float64, len(t.val))
	next := append([]int(nil), colCount...)
	for i := range t.val {
		c := t.col[i]
		dst := next[c]
		rowIdx[dst] = t.row[i]
		val[dst] = t.val[i]
		next[c]++
	}

	// sort each column by row index (insertion sort: columns are typically short)
	// and merge duplicate row indices by summation.
	finalColPtr := make([]int, t.cols+1)
	finalRowIdx := make([]int, 0, len(rowIdx))
	finalVal := make([]float64, 0, len(val))
	for j := 0; j < t.cols; j++ {
		start, end := colCount[j], colCount[j+1]
		insertionSortByRow(rowIdx[start:end], val[start:end])

		for k := start; k < end; k++ {
			if len(finalRowIdx) > finalColPtr[j] && finalRowIdx[len(finalRowIdx)-1] == rowIdx[k] {
				finalVal[len(finalVal)-1] += val[k]
				continue
			}
			finalRowIdx = append(finalRowIdx, rowIdx[k])
			finalVal = append(finalVal, val[k])
		}
		finalColPtr[j+1] = len(finalRowIdx)
	}

	return &CSC{Rows: t.rows, Cols: t.cols, ColPtr: finalColPtr, RowIdx: finalRowIdx, Val: finalVal}
}

// insertionSortByRow sorts rows (and the parallel vals slice) ascending.
// Columns produced by typical assemblies (stencils, KKT blocks) are short,
// so insertion sort avoids the overhead of a general-purpose sort.
func insertionSortByRow(rows []int, vals []float64) {
	for i := 1; i < len(rows); i++ {
		r, v := rows[i], vals[i]
		j := i - 1
		for j >= 0 && rows[j] > r {
			rows[j+1] = rows[j]
			vals[j+1] = vals[j]
			j--
		}
		rows[j+1] = r
		vals[j+1] = v
	}
}
