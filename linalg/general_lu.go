package linalg

import (
	"github.com/katalvlaran/ipmcore/matrix"
	"github.com/katalvlaran/ipmcore/matrix/ops"
	"github.com/katalvlaran/ipmcore/sparse"
)

// GeneralLU is the general (non-symmetric-pivoting) variant, required when
// the augmented system is indefinite without an SPD Schur complement, or
// when Q introduces non-SPD blocks into a reduced system — most notably
// the pure-equality QP case with Q = 0 (§8 boundary behavior: "LU variant
// is required if Q = 0").
//
// It applies a column-count ordering, then densifies the permuted matrix
// and factors it with matrix/ops.LU (partial pivoted dense LU). A true
// sparse LU avoids this densification; see DESIGN.md for why that was not
// implemented here.
type GeneralLU struct {
	n          int
	colPerm    []int
	invColPerm []int
	analyzed   bool
	factored   bool

	L, U    matrix.Matrix
	rowPerm []int
}

// NewGeneralLU constructs an un-analyzed GeneralLU solver.
func NewGeneralLU() *GeneralLU { return &GeneralLU{} }

// Analyze computes a column-count ordering for a's pattern.
func (g *GeneralLU) Analyze(a *sparse.CSC) error {
	if a.Rows != a.Cols {
		return newSolverError("Analyze", KindSymbolicFactorization, sparse.ErrDimensionMismatch)
	}
	g.n = a.Rows
	g.colPerm = ColumnCountOrdering(a)
	g.invColPerm = make([]int, g.n)
	for newIdx, origIdx := range g.colPerm {
		g.invColPerm[origIdx] = newIdx
	}
	g.analyzed = true

	return nil
}

// Factorize densifies a (with columns permuted) and runs partial-pivoted LU.
func (g *GeneralLU) Factorize(a *sparse.CSC) error {
	if !g.analyzed {
		return newSolverError("Factorize", KindUninitialized, ErrUninitialized)
	}
	n := g.n
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return newSolverError("Factorize", KindMemoryAllocation, err)
	}
	for origCol := 0; origCol < a.Cols; origCol++ {
		rows, vals, _ := a.Column(origCol)
		newCol := g.invColPerm[origCol]
		for k, r := range rows {
			_ = dense.Set(r, newCol, vals[k])
		}
	}

	L, U, rowPerm, err := ops.LU(dense)
	if err != nil {
		return newSolverError("Factorize", KindNumericFactorization, err)
	}
	g.L, g.U, g.rowPerm = L, U, rowPerm
	g.factored = true

	return nil
}

// Refactorize re-runs the numeric stage on the existing symbolic structure.
func (g *GeneralLU) Refactorize(a *sparse.CSC) error {
	return g.Factorize(a)
}

// SolveInPlace solves the factored system for b, overwriting it in place.
func (g *GeneralLU) SolveInPlace(b []float64) error {
	if !g.factored {
		return newSolverError("SolveInPlace", KindUninitialized, ErrUninitialized)
	}
	x, err := ops.SolveLU(g.L, g.U, g.rowPerm, b)
	if err != nil {
		return newSolverError("SolveInPlace", KindNumericFactorization, err)
	}
	// x is indexed by permuted columns; unpermute into b.
	for newCol, origCol := range g.colPerm {
		b[origCol] = x[newCol]
	}

	return nil
}
