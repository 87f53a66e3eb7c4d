package barrier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/barrier"
	"github.com/katalvlaran/ipmcore/problem"
)

func TestAdaptiveComputesMeanComplementarity(t *testing.T) {
	a, err := barrier.NewAdaptive(1e-7, 1e7)
	require.NoError(t, err)

	state := problem.NewSolverState([]float64{1, 2}, 1)
	state.Res = problem.Residual{Rcl: []float64{-2, -4}, Rcu: []float64{0, 0}}

	require.InDelta(t, 3.0, a.Next(state), 1e-12)
}

func TestAdaptiveClampsToRange(t *testing.T) {
	a, err := barrier.NewAdaptive(0.5, 2.0)
	require.NoError(t, err)

	state := problem.NewSolverState([]float64{1}, 1)
	state.Res = problem.Residual{Rcl: []float64{-100}, Rcu: []float64{0}}
	require.Equal(t, 2.0, a.Next(state))

	state.Res = problem.Residual{Rcl: []float64{-0.01}, Rcu: []float64{0}}
	require.Equal(t, 0.5, a.Next(state))
}

func TestNewAdaptiveInvalidRange(t *testing.T) {
	_, err := barrier.NewAdaptive(10, 1)
	require.ErrorIs(t, err, barrier.ErrInvalidRange)
}

func TestConstantAlwaysReturnsConfiguredValue(t *testing.T) {
	c := barrier.NewConstant(0.25)
	state := problem.NewSolverState([]float64{1}, 1)
	require.Equal(t, 0.25, c.Next(state))
}
