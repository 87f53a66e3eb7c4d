package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/matrix"
	"github.com/katalvlaran/ipmcore/matrix/ops"
)

func denseFrom(t *testing.T, vals [][]float64) *matrix.Dense {
	t.Helper()
	n := len(vals)
	m, err := matrix.NewDense(n, len(vals[0]))
	require.NoError(t, err)
	for i := range vals {
		for j := range vals[i] {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}

	return m
}

func TestLUSolveMatchesDirect(t *testing.T) {
	// A requires row pivoting: a zero sits on the naive diagonal.
	a := denseFrom(t, [][]float64{
		{0, 2, 1},
		{1, 1, 0},
		{2, 0, 3},
	})
	rhs := []float64{3, 1, 5}

	L, U, perm, err := ops.LU(a)
	require.NoError(t, err)

	x, err := ops.SolveLU(L, U, perm, rhs)
	require.NoError(t, err)

	// verify A*x == rhs within tolerance
	for i := 0; i < 3; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			v, _ := a.At(i, j)
			sum += v * x[j]
		}
		require.InDelta(t, rhs[i], sum, 1e-9)
	}
}

func TestLUSingular(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, _, _, err := ops.LU(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLDLTSolveSymmetricPositiveDefinite(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	rhs := []float64{1, 2, 3}

	L, d, err := ops.LDLT(a)
	require.NoError(t, err)
	for _, dv := range d {
		require.False(t, math.IsNaN(dv))
	}

	x, err := ops.SolveLDLT(L, d, rhs)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			v, _ := a.At(i, j)
			sum += v * x[j]
		}
		require.InDelta(t, rhs[i], sum, 1e-9)
	}
}
