// Package ops provides dense factorization kernels used as the final,
// small-panel stage of the sparse solvers in linalg: once fill-reducing
// reordering and supernode/front amalgamation shrink a factor to a dense
// block, that block is factored here.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ipmcore/matrix"
)

// LU performs partial-pivoted (row) LU decomposition on a square matrix m:
// P*A = L*U, with L unit lower triangular and U upper triangular.
// Returns L, U and the row permutation perm such that row i of P*A is row
// perm[i] of A. Returns ErrSingular if a pivot column is entirely zero
// below the diagonal.
// Stage 1 (Validate): ensure m is square.
// Stage 2 (Prepare): copy m into a working buffer, init perm to identity.
// Stage 3 (Execute): Doolittle elimination with partial pivoting.
// Stage 4 (Finalize): split the working buffer into L and U.
// Complexity: O(n^3) time, O(n^2) memory.
func LU(m matrix.Matrix) (L, U matrix.Matrix, perm []int, err error) {
	// Stage 1: Validate input is square
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, nil, fmt.Errorf("ops.LU: non-square matrix %dx%d: %w", n, m.Cols(), matrix.ErrDimensionMismatch)
	}

	// Stage 2: Prepare working buffer A and identity permutation
	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			a[i][j], _ = m.At(i, j)
		}
	}
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 3: Doolittle elimination with partial pivoting
	for k := 0; k < n; k++ {
		// find pivot: largest magnitude entry in column k at or below row k
		pivotRow := k
		pivotVal := math.Abs(a[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i][k]); v > pivotVal {
				pivotVal = v
				pivotRow = i
			}
		}
		if pivotVal == 0 {
			return nil, nil, nil, fmt.Errorf("ops.LU: zero pivot at column %d: %w", k, matrix.ErrSingular)
		}
		if pivotRow != k {
			a[k], a[pivotRow] = a[pivotRow], a[k]
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}

		// eliminate below the pivot
		for i := k + 1; i < n; i++ {
			factor := a[i][k] / a[k][k]
			a[i][k] = factor // store multiplier in the zeroed slot
			for j := k + 1; j < n; j++ {
				a[i][j] -= factor * a[k][j]
			}
		}
	}

	// Stage 4: Finalize, split buffer into L (unit lower) and U (upper)
	L, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ops.LU: %w", err)
	}
	U, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ops.LU: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1)
		for j := 0; j < i; j++ {
			_ = L.Set(i, j, a[i][j])
		}
		for j := i; j < n; j++ {
			_ = U.Set(i, j, a[i][j])
		}
	}

	return L, U, perm, nil
}

// SolveLU solves A*x = rhs given the L, U, perm triple returned by LU.
// Complexity: O(n^2).
func SolveLU(L, U matrix.Matrix, perm []int, rhs []float64) ([]float64, error) {
	n := L.Rows()
	if len(rhs) != n {
		return nil, fmt.Errorf("ops.SolveLU: %w", matrix.ErrDimensionMismatch)
	}

	// permute rhs: y0 = rhs[perm]
	permuted := make([]float64, n)
	for i := 0; i < n; i++ {
		permuted[i] = rhs[perm[i]]
	}

	// forward substitution L*y = permuted
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := permuted[i]
		for j := 0; j < i; j++ {
			lij, _ := L.At(i, j)
			sum -= lij * y[j]
		}
		y[i] = sum // L has unit diagonal
	}

	// back substitution U*x = y
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			uij, _ := U.At(i, j)
			sum -= uij * x[j]
		}
		uii, _ := U.At(i, i)
		if uii == 0 {
			return nil, fmt.Errorf("ops.SolveLU: %w", matrix.ErrSingular)
		}
		x[i] = sum / uii
	}

	return x, nil
}
