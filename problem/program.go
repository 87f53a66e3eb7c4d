package problem

import "github.com/katalvlaran/ipmcore/sparse"

// OptimizationProgram is the uniform surface the MPC driver and the
// augmented-system assembler program against; LinearProgram and
// QuadraticProgram both implement it, so the driver never branches on
// problem kind. A future NLP path could implement the same interface over
// caller-supplied Jacobian/Hessian callables (see SPEC_FULL.md §9).
type OptimizationProgram interface {
	// Dims returns (n, m): variable count and equality-constraint count.
	Dims() (n, m int)
	// A returns the equality constraint matrix.
	A() *sparse.CSC
	// B returns the equality constraint right-hand side.
	B() []float64
	// C returns the linear objective coefficients.
	C() []float64
	// Bounds returns the (already-relaxed) variable bounds.
	Bounds() Bounds
	// QPattern returns the sparsity pattern of the quadratic term, or nil
	// for a linear program. Used once, at augmented-system construction,
	// to enumerate the fixed pattern of the (1,1) block.
	QPattern() *sparse.CSC
	// QMatVec returns Q*x (the zero vector, length n, for a linear program).
	QMatVec(x []float64) []float64
	// Residual computes the KKT residual at state.
	Residual(state *SolverState) Residual
	// DiagonalContribution returns Θ_i = z_l_i/(x_i-l_i) + z_u_i/(x_i-u_i),
	// masking infinite-bound entries to zero.
	DiagonalContribution(state *SolverState) []float64
	// ObjectiveValue returns ½xᵀQx + cᵀx at x.
	ObjectiveValue(x []float64) float64
}

// diagonalContribution computes Θ_i = z_l_i/(x_i-l_i) + z_u_i/(x_i-u_i),
// masking infinite-bound entries to zero, shared by LinearProgram and
// QuadraticProgram. Per SPEC_FULL.md §9 "Infinity masking", this never
// divides by an infinite bound's (x-bound) term.
func diagonalContribution(x, zl, zu []float64, b Bounds) []float64 {
	n := len(x)
	theta := make([]float64, n)
	for i := 0; i < n; i++ {
		var t float64
		if b.LowerFinite(i) {
			t += zl[i] / (x[i] - b.L[i])
		}
		if b.UpperFinite(i) {
			t += zu[i] / (x[i] - b.U[i])
		}
		theta[i] = t
	}

	return theta
}

// residualCommon computes (r_d, r_p, r_cl, r_cu) given Qx already formed.
func residualCommon(state *SolverState, qx []float64, a *sparse.CSC, b, c []float64, bnd Bounds) (Residual, error) {
	x, y, zl, zu := state.X, state.Y, state.ZL, state.ZU
	n := len(x)

	aty, err := a.TransposeMatVec(y)
	if err != nil {
		return Residual{}, err
	}
	rd := make([]float64, n)
	for i := 0; i < n; i++ {
		rd[i] = -(c[i] + qx[i]) + aty[i] + zl[i] + zu[i]
	}

	ax, err := a.MatVec(x)
	if err != nil {
		return Residual{}, err
	}
	rp := make([]float64, len(b))
	for i := range rp {
		rp[i] = ax[i] - b[i]
	}

	rcl := make([]float64, n)
	rcu := make([]float64, n)
	for i := 0; i < n; i++ {
		if bnd.LowerFinite(i) {
			rcl[i] = -zl[i] * (x[i] - bnd.L[i])
		}
		if bnd.UpperFinite(i) {
			rcu[i] = -zu[i] * (x[i] - bnd.U[i])
		}
	}

	return Residual{Rd: rd, Rp: rp, Rcl: rcl, Rcu: rcu}, nil
}
