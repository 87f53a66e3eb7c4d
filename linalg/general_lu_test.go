package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/linalg"
	"github.com/katalvlaran/ipmcore/sparse"
)

func TestGeneralLUSolve(t *testing.T) {
	// A = [[0,2,1],[1,1,0],[2,0,3]] (requires row pivoting internally)
	tr, err := sparse.NewTriplet(3, 3, 9)
	require.NoError(t, err)
	entries := [][3]float64{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 1}, {1, 1, 1},
		{2, 0, 2}, {2, 2, 3},
	}
	for _, e := range entries {
		require.NoError(t, tr.Put(int(e[0]), int(e[1]), e[2]))
	}
	a := tr.Build()

	g := linalg.NewGeneralLU()
	require.NoError(t, g.Analyze(a))
	require.NoError(t, g.Factorize(a))

	rhs := []float64{3, 1, 5}
	x := append([]float64(nil), rhs...)
	require.NoError(t, g.SolveInPlace(x))

	out, err := a.MatVec(x)
	require.NoError(t, err)
	for i := range rhs {
		require.InDelta(t, rhs[i], out[i], 1e-9)
	}
}
