package terminate

import (
	"time"

	"github.com/katalvlaran/ipmcore/problem"
)

// TimeOut fires TimeLimit once wall-clock time since construction exceeds
// MaxTime.
type TimeOut struct {
	MaxTime time.Duration
	start   time.Time
}

// NewTimeOut constructs a TimeOut terminator, starting its clock now.
func NewTimeOut(maxTime time.Duration) *TimeOut {
	return &TimeOut{MaxTime: maxTime, start: time.Now()}
}

// Check implements Terminator.
func (to *TimeOut) Check(*problem.SolverState) (problem.Status, bool) {
	if time.Since(to.start) > to.MaxTime {
		return problem.StatusTimeLimit, true
	}

	return problem.StatusInProgress, false
}
