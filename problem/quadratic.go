package problem

import "github.com/katalvlaran/ipmcore/sparse"

// QuadraticProgram is an OptimizationProgram whose objective includes a
// symmetric positive-semidefinite quadratic term ½xᵀQx. Q is stored as a
// full symmetric CSC matrix (both triangles materialized) so MatVec needs
// no special-casing.
type QuadraticProgram struct {
	a    *sparse.CSC
	q    *sparse.CSC
	b, c []float64
	bnd  Bounds
}

// NewQuadraticProgram validates and constructs a QuadraticProgram. Q must
// be n×n where n = len(c); callers are responsible for Q being symmetric
// and positive semidefinite (this module does not re-verify it, per
// SPEC_FULL.md §7 "input errors are rejected at construction" for shape,
// not for the PSD property, which is not cheaply checkable for a sparse Q).
func NewQuadraticProgram(a, q *sparse.CSC, b, c, l, u []float64) (*QuadraticProgram, error) {
	if a == nil || q == nil {
		return nil, ErrNilMatrix
	}
	n := len(c)
	if a.Cols != n || a.Rows != len(b) || len(l) != n || len(u) != n {
		return nil, ErrDimensionMismatch
	}
	if q.Rows != n || q.Cols != n {
		return nil, ErrNonSquareQ
	}
	bnd, err := NewBounds(l, u)
	if err != nil {
		return nil, err
	}

	return &QuadraticProgram{a: a, q: q, b: b, c: c, bnd: bnd}, nil
}

func (p *QuadraticProgram) Dims() (int, int)      { return len(p.c), len(p.b) }
func (p *QuadraticProgram) A() *sparse.CSC        { return p.a }
func (p *QuadraticProgram) B() []float64          { return p.b }
func (p *QuadraticProgram) C() []float64          { return p.c }
func (p *QuadraticProgram) Bounds() Bounds        { return p.bnd }
func (p *QuadraticProgram) QPattern() *sparse.CSC { return p.q }

// QMatVec returns Q*x.
func (p *QuadraticProgram) QMatVec(x []float64) []float64 {
	out, err := p.q.MatVec(x)
	if err != nil {
		panic("problem: QuadraticProgram.QMatVec: " + err.Error())
	}

	return out
}

// DiagonalContribution returns Θ for this QP's complementarity term; the
// caller (augsys) separately adds Q's own diagonal to the (1,1) block.
func (p *QuadraticProgram) DiagonalContribution(state *SolverState) []float64 {
	return diagonalContribution(state.X, state.ZL, state.ZU, p.bnd)
}

// Residual computes the KKT residual including the Qx term.
func (p *QuadraticProgram) Residual(state *SolverState) Residual {
	qx := p.QMatVec(state.X)
	res, err := residualCommon(state, qx, p.a, p.b, p.c, p.bnd)
	if err != nil {
		panic("problem: QuadraticProgram.Residual: " + err.Error())
	}

	return res
}

// ObjectiveValue returns ½xᵀQx + cᵀx.
func (p *QuadraticProgram) ObjectiveValue(x []float64) float64 {
	qx := p.QMatVec(x)
	var quad, lin float64
	for i := range x {
		quad += x[i] * qx[i]
		lin += p.c[i] * x[i]
	}

	return 0.5*quad + lin
}
