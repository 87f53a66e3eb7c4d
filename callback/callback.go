package callback

import "github.com/katalvlaran/ipmcore/problem"

// Callback observes a completed MPC iteration. Implementations must treat
// state as read-only; the driver reuses its backing arrays on the next
// iteration.
type Callback interface {
	OnIteration(state *problem.SolverState) error
}

// NoOp does nothing; it is the default when no callback is configured.
type NoOp struct{}

// OnIteration implements Callback.
func (NoOp) OnIteration(*problem.SolverState) error { return nil }

// Multi fans an iteration out to every registered callback, in order,
// stopping at and returning the first error.
type Multi struct {
	callbacks []Callback
}

// NewMulti combines cbs into a single Callback.
func NewMulti(cbs ...Callback) *Multi {
	return &Multi{callbacks: cbs}
}

// OnIteration implements Callback.
func (m *Multi) OnIteration(state *problem.SolverState) error {
	for _, cb := range m.callbacks {
		if err := cb.OnIteration(state); err != nil {
			return err
		}
	}

	return nil
}
