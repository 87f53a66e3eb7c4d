package linesearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/linesearch"
	"github.com/katalvlaran/ipmcore/problem"
)

func TestFractionToBoundaryClampsToNearestBound(t *testing.T) {
	bnd, err := problem.NewBounds([]float64{0}, []float64{math.Inf(1)})
	require.NoError(t, err)

	state := &problem.SolverState{X: []float64{1}, ZL: []float64{2}, ZU: []float64{0}}
	dir := problem.Direction{DX: []float64{-2}, DZL: []float64{-4}, DZU: []float64{0}}

	alphaP, alphaD := linesearch.FractionToBoundary(bnd, state, dir, 1.0)
	require.InDelta(t, 0.5, alphaP, 1e-12) // -(1-0)/-2 = 0.5
	require.InDelta(t, 0.5, alphaD, 1e-12) // -2/-4 = 0.5
}

func TestFractionToBoundaryAppliesSafetyFactor(t *testing.T) {
	bnd, err := problem.NewBounds([]float64{0}, []float64{math.Inf(1)})
	require.NoError(t, err)

	state := &problem.SolverState{X: []float64{1}, ZL: []float64{1}, ZU: []float64{0}}
	dir := problem.Direction{DX: []float64{-1}, DZL: []float64{0}, DZU: []float64{0}}

	alphaP, _ := linesearch.FractionToBoundary(bnd, state, dir, 0.99)
	require.InDelta(t, 0.99, alphaP, 1e-12)
}

func TestFractionToBoundaryUnconstrainedYieldsOne(t *testing.T) {
	bnd, err := problem.NewBounds([]float64{math.Inf(-1)}, []float64{math.Inf(1)})
	require.NoError(t, err)

	state := &problem.SolverState{X: []float64{0}, ZL: []float64{0}, ZU: []float64{0}}
	dir := problem.Direction{DX: []float64{5}, DZL: []float64{5}, DZU: []float64{-5}}

	alphaP, alphaD := linesearch.FractionToBoundary(bnd, state, dir, 1.0)
	require.Equal(t, 1.0, alphaP)
	require.Equal(t, 1.0, alphaD)
}
