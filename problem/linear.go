package problem

import "github.com/katalvlaran/ipmcore/sparse"

// LinearProgram is an OptimizationProgram with an implicitly zero Q block.
type LinearProgram struct {
	a    *sparse.CSC
	b, c []float64
	bnd  Bounds
}

// NewLinearProgram validates and constructs a LinearProgram from canonical
// arrays. c has length n, a is m×n, b has length m, l and u have length n.
func NewLinearProgram(a *sparse.CSC, b, c, l, u []float64) (*LinearProgram, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	n := len(c)
	if a.Cols != n || a.Rows != len(b) || len(l) != n || len(u) != n {
		return nil, ErrDimensionMismatch
	}
	bnd, err := NewBounds(l, u)
	if err != nil {
		return nil, err
	}

	return &LinearProgram{a: a, b: b, c: c, bnd: bnd}, nil
}

func (p *LinearProgram) Dims() (int, int)        { return len(p.c), len(p.b) }
func (p *LinearProgram) A() *sparse.CSC          { return p.a }
func (p *LinearProgram) B() []float64            { return p.b }
func (p *LinearProgram) C() []float64            { return p.c }
func (p *LinearProgram) Bounds() Bounds          { return p.bnd }
func (p *LinearProgram) QPattern() *sparse.CSC   { return nil }

// QMatVec returns the zero vector: an LP has no quadratic term.
func (p *LinearProgram) QMatVec(x []float64) []float64 {
	return make([]float64, len(x))
}

// Residual computes the KKT residual with Qx = 0.
func (p *LinearProgram) Residual(state *SolverState) Residual {
	res, err := residualCommon(state, make([]float64, len(p.c)), p.a, p.b, p.c, p.bnd)
	if err != nil {
		panic("problem: LinearProgram.Residual: " + err.Error())
	}

	return res
}

// DiagonalContribution returns Θ for this LP (no Q term to add).
func (p *LinearProgram) DiagonalContribution(state *SolverState) []float64 {
	return diagonalContribution(state.X, state.ZL, state.ZU, p.bnd)
}

// ObjectiveValue returns cᵀx.
func (p *LinearProgram) ObjectiveValue(x []float64) float64 {
	var v float64
	for i, ci := range p.c {
		v += ci * x[i]
	}

	return v
}
