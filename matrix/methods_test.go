package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipmcore/matrix"
)

func buildDense(t *testing.T, rows, cols int, vals [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}

	return m
}

func TestAddSub(t *testing.T) {
	a := buildDense(t, 2, 2, [][]float64{{1, 2}, {3, 4}})
	b := buildDense(t, 2, 2, [][]float64{{4, 3}, {2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := sum.At(0, 0)
	require.Equal(t, 5.0, v)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	v, _ = diff.At(1, 1)
	require.Equal(t, 3.0, v)
}

func TestAddDimensionMismatch(t *testing.T) {
	a := buildDense(t, 2, 2, [][]float64{{1, 2}, {3, 4}})
	b, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	_, err = matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulAndTranspose(t *testing.T) {
	a := buildDense(t, 2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())

	prod, err := matrix.Mul(a, at)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	v, _ := prod.At(0, 0)
	require.Equal(t, 14.0, v) // 1^2+2^2+3^2
}

func TestMatVec(t *testing.T) {
	a := buildDense(t, 2, 2, [][]float64{{2, 0}, {0, 3}})
	out, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, out)
}

func TestScale(t *testing.T) {
	a := buildDense(t, 1, 2, [][]float64{{2, -4}})
	out, err := matrix.Scale(a, 0.5)
	require.NoError(t, err)
	v0, _ := out.At(0, 0)
	v1, _ := out.At(0, 1)
	require.Equal(t, 1.0, v0)
	require.Equal(t, -2.0, v1)
}

func TestNewIdentityAndZerosLike(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	v, _ := id.At(1, 1)
	require.Equal(t, 1.0, v)
	v, _ = id.At(0, 1)
	require.Equal(t, 0.0, v)

	z, err := matrix.ZerosLike(id)
	require.NoError(t, err)
	require.Equal(t, 3, z.Rows())
	require.Equal(t, 3, z.Cols())
}
