package terminate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/problem"
	"github.com/katalvlaran/ipmcore/terminate"
)

func stateWithResidual(rp, rd []float64) *problem.SolverState {
	return &problem.SolverState{Res: problem.Residual{Rp: rp, Rd: rd}}
}

func TestConvergenceFiresBelowTolerance(t *testing.T) {
	c := terminate.NewConvergence(1e-6)
	status, fired := c.Check(stateWithResidual([]float64{1e-8}, []float64{1e-8, 1e-8}))
	require.True(t, fired)
	require.Equal(t, problem.StatusOptimal, status)
}

func TestConvergenceDoesNotFireAboveTolerance(t *testing.T) {
	c := terminate.NewConvergence(1e-6)
	_, fired := c.Check(stateWithResidual([]float64{1}, []float64{1}))
	require.False(t, fired)
}

func TestSlowProgressNeedsTwoCalls(t *testing.T) {
	s := terminate.NewSlowProgress(1e-9)
	state := stateWithResidual([]float64{1}, []float64{1})
	_, fired := s.Check(state)
	require.False(t, fired, "first call only records the baseline")

	status, fired := s.Check(state)
	require.True(t, fired)
	require.Equal(t, problem.StatusOptimal, status)
}

func TestTimeOutFiresAfterBudget(t *testing.T) {
	to := terminate.NewTimeOut(10 * time.Millisecond)
	_, fired := to.Check(&problem.SolverState{})
	require.False(t, fired)

	time.Sleep(20 * time.Millisecond)
	status, fired := to.Check(&problem.SolverState{})
	require.True(t, fired)
	require.Equal(t, problem.StatusTimeLimit, status)
}

func TestInterruptIsProcessWideSingleton(t *testing.T) {
	a := terminate.NewInterrupt()
	b := terminate.NewInterrupt()
	require.Same(t, a, b)
}

func TestMultiShortCircuitsOnFirstFire(t *testing.T) {
	m := terminate.NewMulti(terminate.NewConvergence(1e-6), terminate.NewTimeOut(time.Hour))
	status, fired := m.Check(stateWithResidual([]float64{1e-9}, []float64{1e-9}))
	require.True(t, fired)
	require.Equal(t, problem.StatusOptimal, status)
}

func TestBuilderAlwaysIncludesConvergence(t *testing.T) {
	m := terminate.NewBuilder(1e-6)
	status, fired := m.Check(stateWithResidual([]float64{1e-9}, []float64{1e-9}))
	require.True(t, fired)
	require.Equal(t, problem.StatusOptimal, status)
}
