package terminate

import (
	"math"

	"github.com/katalvlaran/ipmcore/problem"
)

// SlowProgress declares Optimal when both residual norms move by less than
// EpsSlow relative to the previous iteration, on the theory that the
// iterate has stalled at the best point it is going to reach. It carries
// state across calls and so must not be shared across concurrent solves.
type SlowProgress struct {
	EpsSlow float64

	prevRp, prevRd float64
	havePrev       bool
}

// NewSlowProgress constructs a SlowProgress terminator with the given
// change threshold.
func NewSlowProgress(epsSlow float64) *SlowProgress {
	return &SlowProgress{EpsSlow: epsSlow}
}

// Check implements Terminator.
func (s *SlowProgress) Check(state *problem.SolverState) (problem.Status, bool) {
	rp := l2Norm(state.Res.Rp)
	rd := l2Norm(state.Res.Rd)

	if !s.havePrev {
		s.prevRp, s.prevRd, s.havePrev = rp, rd, true

		return problem.StatusInProgress, false
	}

	fired := math.Abs(rp-s.prevRp) < s.EpsSlow && math.Abs(rd-s.prevRd) < s.EpsSlow
	s.prevRp, s.prevRd = rp, rd
	if fired {
		return problem.StatusOptimal, true
	}

	return problem.StatusInProgress, false
}
