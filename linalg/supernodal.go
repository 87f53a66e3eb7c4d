package linalg

import (
	"github.com/katalvlaran/ipmcore/matrix"
	"github.com/katalvlaran/ipmcore/matrix/ops"
	"github.com/katalvlaran/ipmcore/sparse"
)

// maxPanelWidth bounds how many consecutive columns Supernodal will
// amalgamate into one dense panel; wide panels pay back dense-kernel
// throughput only up to a point on the augmented-system sizes this module
// targets.
const maxPanelWidth = 32

// Supernodal factors contiguous runs of columns that share an identical
// below-diagonal sparsity pattern ("supernodes") as one dense panel via
// matrix/ops.PartialLDLT, applying the resulting Schur complement to the
// trailing sparse columns as a single batched update instead of one
// rank-one update per column. Adjacent columns are merged only when their
// below-diagonal patterns are identical; columns whose patterns differ only
// by the panel's own rows, as in a dense block, are not merged. Unmerged
// columns are factored as one-column panels (equivalent to Simplicial).
type Supernodal struct {
	n        int
	perm     []int
	analyzed bool
	factored bool

	L []map[int]float64
	d []float64
}

// NewSupernodal constructs an un-analyzed Supernodal solver.
func NewSupernodal() *Supernodal { return &Supernodal{} }

// Analyze computes the minimum-degree permutation for a's pattern.
func (s *Supernodal) Analyze(a *sparse.CSC) error {
	if a.Rows != a.Cols {
		return newSolverError("Analyze", KindSymbolicFactorization, sparse.ErrDimensionMismatch)
	}
	s.n = a.Rows
	s.perm = ApproximateMinimumDegree(a)
	s.analyzed = true

	return nil
}

// Factorize computes the numeric LDLᵀ factors, amalgamating supernodes
// into dense panels as it goes.
func (s *Supernodal) Factorize(a *sparse.CSC) error {
	if !s.analyzed {
		return newSolverError("Factorize", KindUninitialized, ErrUninitialized)
	}
	cols := permutedLowerColumns(a, s.perm)
	n := s.n
	L := make([]map[int]float64, n)
	d := make([]float64, n)
	for j := range L {
		L[j] = make(map[int]float64)
	}

	for k := 0; k < n; {
		rowsK := patternBelow(cols[k], k)
		width := 1
		for k+width < n && width < maxPanelWidth && samePatternShifted(cols[k+width], k+width, rowsK, width) {
			width++
		}

		// build the dense frontal matrix: rows/cols = panel columns ++ rowsK
		frontIdx := make([]int, 0, width+len(rowsK))
		for c := 0; c < width; c++ {
			frontIdx = append(frontIdx, k+c)
		}
		frontIdx = append(frontIdx, rowsK...)
		front, err := buildFrontal(cols, frontIdx)
		if err != nil {
			return newSolverError("Factorize", KindNumericFactorization, err)
		}

		Lp, dp, schur, err := ops.PartialLDLT(front, width)
		if err != nil {
			return newSolverError("Factorize", KindNumericFactorization, err)
		}

		for c := 0; c < width; c++ {
			col := k + c
			d[col] = dp[c]
			for r := c + 1; r < len(frontIdx); r++ {
				v, _ := Lp.At(r, c)
				if v != 0 {
					L[col][frontIdx[r]] = v
				}
			}
		}

		if schur != nil {
			for i := 0; i < len(rowsK); i++ {
				for j := 0; j < len(rowsK); j++ {
					if rowsK[j] < rowsK[i] {
						continue // trailing update only fills the lower triangle
					}
					v, _ := schur.At(i, j)
					cols[rowsK[i]][rowsK[j]] = v
				}
			}
		}

		k += width
	}

	s.L, s.d = L, d
	s.factored = true

	return nil
}

// Refactorize re-runs the numeric stage on the existing symbolic structure.
func (s *Supernodal) Refactorize(a *sparse.CSC) error {
	return s.Factorize(a)
}

// SolveInPlace solves the factored system for b, overwriting it in place.
func (s *Supernodal) SolveInPlace(b []float64) error {
	if !s.factored {
		return newSolverError("SolveInPlace", KindUninitialized, ErrUninitialized)
	}
	n := s.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = b[s.perm[i]]
	}
	for k := 0; k < n; k++ {
		for i, v := range s.L[k] {
			y[i] -= v * y[k]
		}
	}
	for k := 0; k < n; k++ {
		y[k] /= s.d[k]
	}
	for k := n - 1; k >= 0; k-- {
		for i, v := range s.L[k] {
			y[k] -= v * y[i]
		}
	}
	for i := 0; i < n; i++ {
		b[s.perm[i]] = y[i]
	}

	return nil
}

// patternBelow returns the sorted row indices i>col with a nonzero entry
// in column col.
func patternBelow(column map[int]float64, col int) []int {
	rows := make([]int, 0, len(column))
	for i := range column {
		if i > col {
			rows = append(rows, i)
		}
	}
	insertionSortInts(rows)

	return rows
}

// samePatternShifted reports whether column's below-diagonal pattern
// equals base, the reference pattern recorded for the first column of the
// candidate panel. The comparison is exact: shift is not used, and rows of
// base that fall inside the panel are not excluded.
func samePatternShifted(column map[int]float64, col int, base []int, shift int) bool {
	rows := make([]int, 0, len(column))
	for i := range column {
		if i > col {
			rows = append(rows, i)
		}
	}
	insertionSortInts(rows)
	if len(rows) != len(base) {
		return false
	}
	for i := range rows {
		if rows[i] != base[i] {
			return false
		}
	}

	return true
}

func insertionSortInts(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// buildFrontal materializes the dense symmetric submatrix of cols indexed
// by idx (in both row and column position).
func buildFrontal(cols []map[int]float64, idx []int) (matrix.Matrix, error) {
	m, err := matrix.NewDense(len(idx), len(idx))
	if err != nil {
		return nil, err
	}
	pos := make(map[int]int, len(idx))
	for p, v := range idx {
		pos[v] = p
	}
	for pc, c := range idx {
		for r, v := range cols[c] {
			if pr, ok := pos[r]; ok {
				_ = m.Set(pr, pc, v)
				if pr != pc {
					_ = m.Set(pc, pr, v)
				}
			}
		}
	}

	return m, nil
}
