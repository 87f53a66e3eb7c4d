package problem

// Residual is the KKT residual at a SolverState, under the sign convention
// r_d = -(c+Qx) + Aᵀy + z_l + z_u and r_cl = -Z_l(x-l), r_cu = -Z_u(x-u),
// so that all four vectors are zero exactly at optimality. Entries of r_cl,
// r_cu corresponding to an infinite bound are always zero.
type Residual struct {
	Rd  []float64 // length n
	Rp  []float64 // length m
	Rcl []float64 // length n
	Rcu []float64 // length n
}

// SolverState is the primal-dual iterate mutated in place by the MPC driver.
type SolverState struct {
	X   []float64 // primal, strictly interior w.r.t. finite bounds
	Y   []float64 // equality multipliers, unrestricted sign
	ZL  []float64 // lower-bound multipliers, >= 0, 0 where l_i = -inf
	ZU  []float64 // upper-bound multipliers, <= 0, 0 where u_i = +inf
	K   int       // iteration count
	AlphaP, AlphaD float64
	Sigma, Mu      float64
	Eta            float64 // safety factor in (0,1)
	Status         Status
	Res            Residual
}

// NewSolverState allocates a SolverState from an initial primal point and
// the driver-contract initial multipliers y=1, z_l=1, z_u=-1.
func NewSolverState(x0 []float64, m int) *SolverState {
	n := len(x0)
	y := make([]float64, m)
	zl := make([]float64, n)
	zu := make([]float64, n)
	for i := range y {
		y[i] = 1
	}
	for i := range zl {
		zl[i] = 1
		zu[i] = -1
	}

	return &SolverState{X: x0, Y: y, ZL: zl, ZU: zu, Status: StatusInProgress}
}

// Direction is a primal-dual Newton direction produced by the augmented
// system and consumed by the line search and state update.
type Direction struct {
	DX  []float64
	DY  []float64
	DZL []float64
	DZU []float64
}
