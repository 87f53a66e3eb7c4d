package terminate

import "github.com/katalvlaran/ipmcore/problem"

// Terminator reports whether the solve should stop after the current
// iteration, and with what status. fired is false when the terminator has
// no opinion; the returned status is only meaningful when fired is true.
type Terminator interface {
	Check(state *problem.SolverState) (status problem.Status, fired bool)
}

// Multi combines terminators with short-circuit OR, evaluated in order.
type Multi struct {
	terminators []Terminator
}

// NewMulti combines ts with short-circuit OR.
func NewMulti(ts ...Terminator) *Multi {
	return &Multi{terminators: ts}
}

// Check implements Terminator.
func (m *Multi) Check(state *problem.SolverState) (problem.Status, bool) {
	for _, t := range m.terminators {
		if status, fired := t.Check(state); fired {
			return status, true
		}
	}

	return problem.StatusInProgress, false
}
