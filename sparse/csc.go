package sparse

import "fmt"

// CSC is a compressed-sparse-column matrix: ColPtr has length Cols+1;
// RowIdx and Val have length ColPtr[Cols] (the number of stored entries);
// within a column, entries are sorted by increasing row index.
type CSC struct {
	Rows, Cols int
	ColPtr     []int
	RowIdx     []int
	Val        []float64
}

// NNZ returns the number of stored (explicit) entries.
func (m *CSC) NNZ() int {
	if m == nil || len(m.ColPtr) == 0 {
		return 0
	}

	return m.ColPtr[len(m.ColPtr)-1]
}

// Column returns the row indices and values of column j, as slices into
// the matrix's own backing storage (callers must not mutate the result).
func (m *CSC) Column(j int) ([]int, []float64, error) {
	if j < 0 || j >= m.Cols {
		return nil, nil, fmt.Errorf("sparse: Column(%d): %w", j, ErrIndexOutOfBounds)
	}
	start, end := m.ColPtr[j], m.ColPtr[j+1]

	return m.RowIdx[start:end], m.Val[start:end], nil
}

// At returns the value at (row, col), or 0 if not explicitly stored.
// Complexity: O(log nnz_col) via binary search within the column.
func (m *CSC) At(row, col int) (float64, error) {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return 0, fmt.Errorf("sparse: At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	rows, vals := m.RowIdx[m.ColPtr[col]:m.ColPtr[col+1]], m.Val[m.ColPtr[col]:m.ColPtr[col+1]]
	lo, hi := 0, len(rows)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case rows[mid] == row:
			return vals[mid], nil
		case rows[mid] < row:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return 0, nil
}

// MatVec computes m*v. len(v) must equal m.Cols.
// Complexity: O(nnz(m)).
func (m *CSC) MatVec(v []float64) ([]float64, error) {
	if len(v) != m.Cols {
		return nil, fmt.Errorf("sparse: MatVec: %w", ErrDimensionMismatch)
	}
	out := make([]float64, m.Rows)
	for j := 0; j < m.Cols; j++ {
		vj := v[j]
		if vj == 0 {
			continue
		}
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			out[m.RowIdx[k]] += m.Val[k] * vj
		}
	}

	return out, nil
}

// TransposeMatVec computes mᵀ*v. len(v) must equal m.Rows.
// Complexity: O(nnz(m)).
func (m *CSC) TransposeMatVec(v []float64) ([]float64, error) {
	if len(v) != m.Rows {
		return nil, fmt.Errorf("sparse: TransposeMatVec: %w", ErrDimensionMismatch)
	}
	out := make([]float64, m.Cols)
	for j := 0; j < m.Cols; j++ {
		var sum float64
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			sum += m.Val[k] * v[m.RowIdx[k]]
		}
		out[j] = sum
	}

	return out, nil
}

// Transpose returns the transpose of m as a new CSC matrix.
// Complexity: O(nnz(m) + Rows + Cols).
func (m *CSC) Transpose() *CSC {
	t := &CSC{Rows: m.Cols, Cols: m.Rows}
	t.ColPtr = make([]int, m.Rows+1)
	for _, r := range m.RowIdx {
		t.ColPtr[r+1]++
	}
	for i := 0; i < m.Rows; i++ {
		t.ColPtr[i+1] += t.ColPtr[i]
	}
	t.RowIdx = make([]int, len(m.RowIdx))
	t.Val = make([]float64, len(m.Val))
	next := append([]int(nil), t.ColPtr...)
	for j := 0; j < m.Cols; j++ {
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			row := m.RowIdx[k]
			dst := next[row]
			t.RowIdx[dst] = j
			t.Val[dst] = m.Val[k]
			next[row]++
		}
	}

	return t
}

// Dense materializes m as a row-major slice of slices, for small-scale
// debugging and test assertions; never used on the solver's hot path.
func (m *CSC) Dense() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = make([]float64, m.Cols)
	}
	for j := 0; j < m.Cols; j++ {
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			out[m.RowIdx[k]][j] = m.Val[k]
		}
	}

	return out
}
