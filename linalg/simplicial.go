package linalg

import (
	"math"

	"github.com/katalvlaran/ipmcore/sparse"
)

// Simplicial is the column-at-a-time symmetric LDLᵀ variant, appropriate
// for sparse, low-supernode problems (small/medium LP augmented systems).
// It operates directly on sparse column maps rather than materializing a
// dense factor, trading raw throughput for a small, allocation-light
// implementation.
type Simplicial struct {
	n        int
	perm     []int
	invPerm  []int
	analyzed bool
	factored bool

	// L[j] holds, after Factorize, the strictly-lower entries of column j
	// (row i -> value, for i > j); d[j] is the diagonal pivot.
	L []map[int]float64
	d []float64
}

// NewSimplicial constructs an un-analyzed Simplicial solver.
func NewSimplicial() *Simplicial { return &Simplicial{} }

// Analyze computes the minimum-degree permutation for a's pattern. a must
// be a full (both-triangles-materialized) symmetric n×n matrix.
func (s *Simplicial) Analyze(a *sparse.CSC) error {
	if a.Rows != a.Cols {
		return newSolverError("Analyze", KindSymbolicFactorization, sparse.ErrDimensionMismatch)
	}
	s.n = a.Rows
	s.perm = ApproximateMinimumDegree(a)
	s.invPerm = make([]int, s.n)
	for newIdx, origIdx := range s.perm {
		s.invPerm[origIdx] = newIdx
	}
	s.analyzed = true

	return nil
}

// Factorize computes the numeric LDLᵀ factors assuming a's pattern matches
// the one passed to Analyze.
func (s *Simplicial) Factorize(a *sparse.CSC) error {
	if !s.analyzed {
		return newSolverError("Factorize", KindUninitialized, ErrUninitialized)
	}
	cols := permutedLowerColumns(a, s.perm)

	n := s.n
	L := make([]map[int]float64, n)
	d := make([]float64, n)
	for j := 0; j < n; j++ {
		L[j] = make(map[int]float64)
	}

	for k := 0; k < n; k++ {
		dk, ok := cols[k][k]
		if !ok {
			dk = 0
		}
		if math.Abs(dk) < 1e-300 {
			return newSolverError("Factorize", KindNumericFactorization, nil)
		}
		d[k] = dk

		// extract L's column k: rows i>k with a nonzero (already-updated) entry
		lk := make(map[int]float64, len(cols[k]))
		for i, v := range cols[k] {
			if i > k {
				lk[i] = v / dk
			}
		}
		L[k] = lk

		// rank-update the trailing Schur complement: for i,j in lk (i<=j),
		// col[i][j] -= lk[i]*lk[j]*dk (lower-triangle slot, row j of column i)
		for i, li := range lk {
			for j, lj := range lk {
				if j < i {
					continue
				}
				cols[i][j] -= li * lj * dk
			}
		}
	}

	s.L, s.d = L, d
	s.factored = true

	return nil
}

// Refactorize re-runs the numeric stage on the existing symbolic structure.
func (s *Simplicial) Refactorize(a *sparse.CSC) error {
	return s.Factorize(a)
}

// SolveInPlace solves the factored system for b, overwriting it in place.
func (s *Simplicial) SolveInPlace(b []float64) error {
	if !s.factored {
		return newSolverError("SolveInPlace", KindUninitialized, ErrUninitialized)
	}
	n := s.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = b[s.perm[i]]
	}

	// forward: L*z = y
	for k := 0; k < n; k++ {
		for i, v := range s.L[k] {
			y[i] -= v * y[k]
		}
	}
	// diagonal scale
	for k := 0; k < n; k++ {
		y[k] /= s.d[k]
	}
	// backward: Lᵀ*x = z
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
