package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/sparse"
)

func buildTriplet(t *testing.T, rows, cols int, entries [][3]float64) *sparse.CSC {
	t.Helper()
	tr, err := sparse.NewTriplet(rows, cols, len(entries))
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, tr.Put(int(e[0]), int(e[1]), e[2]))
	}

	return tr.Build()
}

func TestTripletBuildDeduplicates(t *testing.T) {
	m := buildTriplet(t, 2, 2, [][3]float64{
		{0, 0, 1}, {0, 0, 2}, {1, 1, 5}, {0, 1, 3},
	})
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestCSCMatVecAndTranspose(t *testing.T) {
	// A = [[2,0],[0,3],[1,1]] (3x2)
	m := buildTriplet(t, 3, 2, [][3]float64{
		{0, 0, 2}, {1, 1, 3}, {2, 0, 1}, {2, 1, 1},
	})
	out, err := m.MatVec([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 6, 3}, out)

	at := m.Transpose()
	require.Equal(t, 2, at.Rows)
	require.Equal(t, 3, at.Cols)
	out2, err := m.TransposeMatVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, out2)
}

func TestCSCIndexOutOfBounds(t *testing.T) {
	m := buildTriplet(t, 2, 2, [][3]float64{{0, 0, 1}})
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}
