package augsys

import (
	"fmt"

	"github.com/katalvlaran/ipmcore/linalg"
	"github.com/katalvlaran/ipmcore/problem"
	"github.com/katalvlaran/ipmcore/sparse"
)

// StandardSystem assembles the symmetric (n+m)×(n+m) saddle-point matrix
//
//	[ Q + Θ   Aᵀ ]
//	[  A       0 ]
//
// once, at construction, and overwrites only its diagonal block each
// iteration. The matrix pattern is handed to the chosen linalg.SparseSolver
// exactly once (Analyze), matching §4.2's "fixed pattern" contract.
type StandardSystem struct {
	prog   problem.OptimizationProgram
	solver linalg.SparseSolver

	n, m int
	mat  *sparse.CSC
	// diagIdx[i] is the index into mat.Val holding the (i,i) entry, for
	// i in [0,n); updating Θ is then O(n) with no new allocation.
	diagIdx   []int
	qDiagBase []float64

	factorized bool
}

// New constructs a StandardSystem over prog using solver for the
// factorization stage, enumerating and analyzing the fixed sparsity
// pattern immediately.
func New(prog problem.OptimizationProgram, solver linalg.SparseSolver) (*StandardSystem, error) {
	n, m := prog.Dims()
	s := &StandardSystem{prog: prog, solver: solver, n: n, m: m}

	tr, err := sparse.NewTriplet(n+m, n+m, 4*(n+m))
	if err != nil {
		return nil, fmt.Errorf("augsys: %w", err)
	}

	qDiagBase := make([]float64, n)
	if qp := prog.QPattern(); qp != nil {
		for j := 0; j < n; j++ {
			rows, vals, _ := qp.Column(j)
			for k, i := range rows {
				if i == j {
					qDiagBase[j] += vals[k]
					continue
				}
				if err := tr.Put(i, j, vals[k]); err != nil {
					return nil, fmt.Errorf("augsys: %w", err)
				}
			}
		}
	}
	// ensure every diagonal slot exists even when Q is absent or has a
	// structural zero there, since Θ is written into it every iteration.
	for i := 0; i < n; i++ {
		if err := tr.Put(i, i, qDiagBase[i]); err != nil {
			return nil, fmt.Errorf("augsys: %w", err)
		}
	}

	a := prog.A()
	for j := 0; j < n; j++ {
		rows, vals, _ := a.Column(j)
		for k, r := range rows {
			if err := tr.Put(n+r, j, vals[k]); err != nil {
				return nil, fmt.Errorf("augsys: %w", err)
			}
			if err := tr.Put(j, n+r, vals[k]); err != nil {
				return nil, fmt.Errorf("augsys: %w", err)
			}
		}
	}

	s.mat = tr.Build()
	s.qDiagBase = qDiagBase
	s.diagIdx = make([]int, n)
	for i := 0; i < n; i++ {
		idx, err := findIndex(s.mat, i, i)
		if err != nil {
			return nil, fmt.Errorf("augsys: %w", err)
		}
		s.diagIdx[i] = idx
	}

	if err := solver.Analyze(s.mat); err != nil {
		return nil, fmt.Errorf("augsys: %w", err)
	}

	return s, nil
}

// findIndex returns the index into m.Val of the (row,col) entry, assumed
// present (diagonal slots are always explicitly created by New).
func findIndex(m *sparse.CSC, row, col int) (int, error) {
	start, end := m.ColPtr[col], m.ColPtr[col+1]
	for k := start; k < end; k++ {
		if m.RowIdx[k] == row {
			return k, nil
		}
	}

	return 0, fmt.Errorf("missing expected entry (%d,%d)", row, col)
}

// updateDiagonal overwrites the (1,1) block's diagonal with Q_ii + Θ_i.
func (s *StandardSystem) updateDiagonal(state *problem.SolverState) {
	theta := s.prog.DiagonalContribution(state)
	for i := 0; i < s.n; i++ {
		s.mat.Val[s.diagIdx[i]] = s.qDiagBase[i] + theta[i]
	}
}

// AssembleRHS builds (r̂_d, r̂_p) from the current residual, sigma and mu,
// per §4.2's RHS-assembly formula; infinite-bound entries contribute 0.
func (s *StandardSystem) AssembleRHS(state *problem.SolverState, res problem.Residual, sigma, mu float64) (rhatD, rhatP []float64) {
	bnd := s.prog.Bounds()
	rhatD = make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		v := res.Rd[i]
		if bnd.LowerFinite(i) {
			xl := state.X[i] - bnd.L[i]
			v += res.Rcl[i]/xl + sigma*mu/xl
		}
		if bnd.UpperFinite(i) {
			xu := state.X[i] - bnd.U[i]
			v += res.Rcu[i]/xu + sigma*mu/xu
		}
		rhatD[i] = v
	}
	rhatP = append([]float64(nil), res.Rp...)

	return rhatD, rhatP
}

// Solve recomputes Θ, overwrites the stored matrix diagonal, factorizes,
// solves the combined right-hand side, and recovers the dual directions.
func (s *StandardSystem) Solve(state *problem.SolverState, res problem.Residual, rhatD, rhatP []float64, sigma, mu float64) (problem.Direction, error) {
	s.updateDiagonal(state)
	if err := s.solver.Factorize(s.mat); err != nil {
		return problem.Direction{}, fmt.Errorf("augsys: Solve: %w", err)
	}
	s.factorized = true

	return s.solveAssembled(state, res, rhatD, rhatP, sigma, mu)
}

// Resolve reuses the existing factorization with a different right-hand
// side; used for the corrector step, which must follow a Solve call with
// no intervening Θ change.
func (s *StandardSystem) Resolve(state *problem.SolverState, res problem.Residual, rhatD, rhatP []float64, sigma, mu float64) (problem.Direction, error) {
	if !s.factorized {
		return problem.Direction{}, fmt.Errorf("augsys: Resolve: %w", ErrNotFactorized)
	}

	return s.solveAssembled(state, res, rhatD, rhatP, sigma, mu)
}

func (s *StandardSystem) solveAssembled(state *problem.SolverState, res problem.Residual, rhatD, rhatP []float64, sigma, mu float64) (problem.Direction, error) {
	rhs := make([]float64, s.n+s.m)
	copy(rhs[:s.n], rhatD)
	copy(rhs[s.n:], rhatP)

	if err := s.solver.SolveInPlace(rhs); err != nil {
		return problem.Direction{}, fmt.Errorf("augsys: %w", err)
	}

	dx := rhs[:s.n]
	dy := rhs[s.n:]

	bnd := s.prog.Bounds()
	dzl := make([]float64, s.n)
	dzu := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		if bnd.LowerFinite(i) {
			xl := state.X[i] - bnd.L[i]
			dzl[i] = (sigma*mu + res.Rcl[i] - state.ZL[i]*dx[i]) / xl
		}
		if bnd.UpperFinite(i) {
			xu := state.X[i] - bnd.U[i]
			dzu[i] = (sigma*mu + res.Rcu[i] - state.ZU[i]*dx[i]) / xu
		}
	}

	return problem.Direction{DX: dx, DY: dy, DZL: dzl, DZU: dzu}, nil
}
