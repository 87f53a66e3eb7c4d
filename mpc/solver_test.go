package mpc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/linalg"
	"github.com/katalvlaran/ipmcore/mpc"
	"github.com/katalvlaran/ipmcore/problem"
	"github.com/katalvlaran/ipmcore/sparse"
)

// equalityOnlyQP builds min ½‖x‖² s.t. Σxᵢ=1, x free — the §8 scenario
// whose KKT system is exactly linear (no inequality complementarity), so a
// single predictor/corrector pass should already land on the analytic
// optimum xᵢ = 1/n.
func equalityOnlyQP(t *testing.T, n int) *problem.QuadraticProgram {
	t.Helper()
	atr, err := sparse.NewTriplet(1, n, n)
	require.NoError(t, err)
	for j := 0; j < n; j++ {
		require.NoError(t, atr.Put(0, j, 1))
	}
	a := atr.Build()

	qtr, err := sparse.NewTriplet(n, n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, qtr.Put(i, i, 1))
	}
	q := qtr.Build()

	l := make([]float64, n)
	u := make([]float64, n)
	for i := range l {
		l[i] = math.Inf(-1)
		u[i] = math.Inf(1)
	}
	qp, err := problem.NewQuadraticProgram(a, q, []float64{1}, make([]float64, n), l, u)
	require.NoError(t, err)

	return qp
}

func TestSolveEqualityOnlyQPReachesAnalyticOptimum(t *testing.T) {
	n := 4
	qp := equalityOnlyQP(t, n)

	solver, err := mpc.NewBuilder(qp).
		WithSolverVariant(linalg.NewSimplicial()).
		WithConfig(mpc.NewConfig(mpc.WithMaxIterations(10))).
		Build()
	require.NoError(t, err)

	state, err := solver.Solve()
	require.NoError(t, err)
	require.Equal(t, problem.StatusOptimal, state.Status)

	want := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		require.InDelta(t, want, state.X[i], 1e-6)
	}
}

// tinyLP builds the §8 "tiny LP" scenario: min 2x1+x2 s.t.
// -x1-x2+s1=-2, x1-2x2+s2=4, -x1+x2+x3=1, x1 free, x2,x3,s1,s2>=0.
// Variable order: x1,x2,x3,s1,s2.
func tinyLP(t *testing.T) *problem.LinearProgram {
	t.Helper()
	tr, err := sparse.NewTriplet(3, 5, 9)
	require.NoError(t, err)
	entries := [][3]float64{
		{0, 0, -1}, {0, 1, -1}, {0, 3, 1},
		{1, 0, 1}, {1, 1, -2}, {1, 4, 1},
		{2, 0, -1}, {2, 1, 1}, {2, 2, 1},
	}
	for _, e := range entries {
		require.NoError(t, tr.Put(int(e[0]), int(e[1]), e[2]))
	}
	a := tr.Build()

	l := []float64{math.Inf(-1), 0, 0, 0, 0}
	u := []float64{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)}
	lp, err := problem.NewLinearProgram(a, []float64{-2, 4, 1}, []float64{2, 1, 0, 0, 0}, l, u)
	require.NoError(t, err)

	return lp
}

func TestSolveTinyLPConvergesToKnownOptimum(t *testing.T) {
	lp := tinyLP(t)

	// A free variable leaves a structurally zero diagonal entry that an
	// unpivoted symmetric factorization can hit before enough fill-in
	// accumulates; the general LU variant tolerates any elimination order.
	solver, err := mpc.NewBuilder(lp).
		WithSolverVariant(linalg.NewGeneralLU()).
		WithConfig(mpc.NewConfig(mpc.WithMaxIterations(60))).
		Build()
	require.NoError(t, err)

	state, err := solver.Solve()
	require.NoError(t, err)
	require.Equal(t, problem.StatusOptimal, state.Status)
	require.InDelta(t, -4.0, lp.ObjectiveValue(state.X), 1e-3)
}

func TestSolveDegenerateFixedBounds(t *testing.T) {
	tr, err := sparse.NewTriplet(1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, tr.Put(0, 0, 1))
	require.NoError(t, tr.Put(0, 1, -1))
	a := tr.Build()

	const c = 5.0
	l := []float64{c, c}
	u := []float64{c, c}
	lp, err := problem.NewLinearProgram(a, []float64{0}, []float64{0, 0}, l, u)
	require.NoError(t, err)

	solver, err := mpc.NewBuilder(lp).
		WithSolverVariant(linalg.NewGeneralLU()).
		WithConfig(mpc.NewConfig(mpc.WithMaxIterations(30))).
		Build()
	require.NoError(t, err)

	state, err := solver.Solve()
	require.NoError(t, err)
	require.InDelta(t, c, state.X[0], 2*problem.FixedBoundEpsilon)
	require.InDelta(t, c, state.X[1], 2*problem.FixedBoundEpsilon)
}

// TestSolveInfeasibleByConstructionIsNotOptimal exercises two contradictory
// equality constraints (x1+x2=1 and x1+x2=2); lacking a Phase I, the core
// must not report Optimal. A has rank 1, so the augmented matrix is singular
// and even the pivoted LU factorization can fail outright, which is an
// equally valid demonstration that no feasible optimum was found.
func TestSolveInfeasibleByConstructionIsNotOptimal(t *testing.T) {
	tr, err := sparse.NewTriplet(2, 2, 4)
	require.NoError(t, err)
	require.NoError(t, tr.Put(0, 0, 1))
	require.NoError(t, tr.Put(0, 1, 1))
	require.NoError(t, tr.Put(1, 0, 1))
	require.NoError(t, tr.Put(1, 1, 1))
	a := tr.Build()

	l := []float64{0, 0}
	u := []float64{math.Inf(1), math.Inf(1)}
	lp, err := problem.NewLinearProgram(a, []float64{1, 2}, []float64{1, 1}, l, u)
	require.NoError(t, err)

	solver, err := mpc.NewBuilder(lp).
		WithSolverVariant(linalg.NewGeneralLU()).
		WithConfig(mpc.NewConfig(mpc.WithMaxIterations(5))).
		Build()
	require.NoError(t, err)

	state, solveErr := solver.Solve()
	if solveErr != nil {
		return // factorization breakdown on an inconsistent system is itself non-Optimal
	}
	require.NotEqual(t, problem.StatusOptimal, state.Status)
}
