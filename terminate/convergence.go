package terminate

import (
	"math"

	"github.com/katalvlaran/ipmcore/problem"
)

// Convergence fires Optimal when ‖r_p‖₂ ≤ tolerance·m and ‖r_d‖₂ ≤ tolerance·n.
type Convergence struct {
	Tolerance float64
}

// NewConvergence constructs a Convergence terminator at the given tolerance.
func NewConvergence(tolerance float64) *Convergence {
	return &Convergence{Tolerance: tolerance}
}

// Check implements Terminator.
func (c *Convergence) Check(state *problem.SolverState) (problem.Status, bool) {
	rp := l2Norm(state.Res.Rp)
	rd := l2Norm(state.Res.Rd)
	if rp <= c.Tolerance*float64(len(state.Res.Rp)) && rd <= c.Tolerance*float64(len(state.Res.Rd)) {
		return problem.StatusOptimal, true
	}

	return problem.StatusInProgress, false
}

func l2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}
