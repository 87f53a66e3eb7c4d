package barrier

import "github.com/katalvlaran/ipmcore/problem"

// Update is the barrier-parameter strategy the driver calls once per
// predictor step and once more on the probed affine iterate.
type Update interface {
	Next(state *problem.SolverState) float64
}

// Adaptive computes μ = (⟨x-l, z_l⟩_finite + ⟨x-u, z_u⟩_finite) / n, clamped
// to [MuMin, MuMax]. Since the residual convention defines
// r_cl_i = -z_l_i*(x_i-l_i) and masks infinite-bound entries to zero, the
// numerator is exactly -(Σ r_cl_i + Σ r_cu_i) over the state's last computed
// residual, so Adaptive needs no direct access to the problem's bounds.
type Adaptive struct {
	MuMin, MuMax float64
}

// NewAdaptive constructs an Adaptive policy clamped to [muMin, muMax].
func NewAdaptive(muMin, muMax float64) (*Adaptive, error) {
	if muMin > muMax {
		return nil, ErrInvalidRange
	}

	return &Adaptive{MuMin: muMin, MuMax: muMax}, nil
}

// Next implements Update.
func (a *Adaptive) Next(state *problem.SolverState) float64 {
	n := len(state.X)
	if n == 0 {
		return a.MuMin
	}
	var sum float64
	for _, v := range state.Res.Rcl {
		sum -= v
	}
	for _, v := range state.Res.Rcu {
		sum -= v
	}
	mu := sum / float64(n)

	return clamp(mu, a.MuMin, a.MuMax)
}

// Constant always returns the same configured value, for diagnostic
// comparisons against the Adaptive policy.
type Constant struct {
	Value float64
}

// NewConstant constructs a Constant policy returning value every call.
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

// Next implements Update.
func (c *Constant) Next(*problem.SolverState) float64 {
	return c.Value
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
