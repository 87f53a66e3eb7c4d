package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ipmcore/matrix"
)

// LDLT performs an unpivoted symmetric LDL^T decomposition of a square
// symmetric matrix m: m = L*D*L^T, with L unit lower triangular and D a
// diagonal vector. Used for supernodal Cholesky-style dense panels where m
// is known to be symmetric positive definite (or close to it, perturbed by
// a barrier term on the diagonal) so no pivoting is required.
// Stage 1 (Validate): ensure m is square.
// Stage 2 (Prepare): allocate L and the diagonal vector d.
// Stage 3 (Execute): classic LDL^T recurrence.
// Stage 4 (Finalize): return L, d or ErrSingular on a collapsed pivot.
// Complexity: O(n^3) time, O(n^2) memory.
func LDLT(m matrix.Matrix) (L matrix.Matrix, d []float64, err error) {
	// Stage 1: Validate input is square
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, fmt.Errorf("ops.LDLT: non-square matrix %dx%d: %w", n, m.Cols(), matrix.ErrDimensionMismatch)
	}

	// Stage 2: Prepare L (unit lower) and diagonal d
	L, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("ops.LDLT: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1)
	}
	d = make([]float64, n)

	// Stage 3: Execute LDL^T recurrence
	for j := 0; j < n; j++ {
		sum := 0.0
		for k := 0; k < j; k++ {
			ljk, _ := L.At(j, k)
			sum += ljk * ljk * d[k]
		}
		ajj, _ := m.At(j, j)
		d[j] = ajj - sum
		if math.Abs(d[j]) < 1e-300 {
			return nil, nil, fmt.Errorf("ops.LDLT: collapsed pivot at %d: %w", j, matrix.ErrSingular)
		}

		for i := j + 1; i < n; i++ {
			sum = 0.0
			for k := 0; k < j; k++ {
				lik, _ := L.At(i, k)
				ljk, _ := L.At(j, k)
				sum += lik * ljk * d[k]
			}
			aij, _ := m.At(i, j)
			_ = L.Set(i, j, (aij-sum)/d[j])
		}
	}

	// Stage 4: Finalize
	return L, d, nil
}

// PartialLDLT factors only the leading p columns of a square matrix f
// (size n×n, p ≤ n): it returns the n×p block L (unit lower-triangular in
// its top p×p block, full below), the length-p diagonal d, and the
// (n-p)×(n-p) Schur complement of the trailing block. Used by supernodal
// factorization to eliminate one panel while deferring the rest of the
// frontal matrix to later panels.
// Complexity: O(n*p^2) time, O(n*p + (n-p)^2) memory.
func PartialLDLT(f matrix.Matrix, p int) (L matrix.Matrix, d []float64, schur matrix.Matrix, err error) {
	n := f.Rows()
	if n != f.Cols() {
		return nil, nil, nil, fmt.Errorf("ops.PartialLDLT: non-square matrix %dx%d: %w", n, f.Cols(), matrix.ErrDimensionMismatch)
	}
	if p < 0 || p > n {
		return nil, nil, nil, fmt.Errorf("ops.PartialLDLT: pivot count %d out of range [0,%d]: %w", p, n, matrix.ErrDimensionMismatch)
	}

	L, err = matrix.NewDense(n, max1(p, 1))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ops.PartialLDLT: %w", err)
	}
	d = make([]float64, p)

	for j := 0; j < p; j++ {
		sum := 0.0
		for k := 0; k < j; k++ {
			ljk, _ := L.At(j, k)
			sum += ljk * ljk * d[k]
		}
		ajj, _ := f.At(j, j)
		d[j] = ajj - sum
		if math.Abs(d[j]) < 1e-300 {
			return nil, nil, nil, fmt.Errorf("ops.PartialLDLT: collapsed pivot at %d: %w", j, matrix.ErrSingular)
		}
		_ = L.Set(j, j, 1)

		for i := j + 1; i < n; i++ {
			sum = 0.0
			for k := 0; k < j; k++ {
				lik, _ := L.At(i, k)
				ljk, _ := L.At(j, k)
				sum += lik * ljk * d[k]
			}
			aij, _ := f.At(i, j)
			_ = L.Set(i, j, (aij-sum)/d[j])
		}
	}

	r := n - p
	if r == 0 {
		return L, d, nil, nil
	}
	schur, err = matrix.NewDense(r, r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ops.PartialLDLT: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			aij, _ := f.At(p+i, p+j)
			var sum float64
			for k := 0; k < p; k++ {
				lik, _ := L.At(p+i, k)
				ljk, _ := L.At(p+j, k)
				sum += lik * ljk * d[k]
			}
			_ = schur.Set(i, j, aij-sum)
		}
	}

	return L, d, schur, nil
}

func max1(v, floor int) int {
	if v < floor {
		return floor
	}

	return v
}

// SolveLDLT solves m*x = rhs given the L, d pair returned by LDLT.
// Complexity: O(n^2).
func SolveLDLT(L matrix.Matrix, d []float64, rhs []float64) ([]float64, error) {
	n := L.Rows()
	if len(rhs) != n || len(d) != n {
		return nil, fmt.Errorf("ops.SolveLDLT: %w", matrix.ErrDimensionMismatch)
	}

	// forward substitution L*y = rhs
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := rhs[i]
		for j := 0; j < i; j++ {
			lij, _ := L.At(i, j)
			sum -= lij * y[j]
		}
		y[i] = sum
	}

	// diagonal scale: z = D^-1 y
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		if d[i] == 0 {
			return nil, fmt.Errorf("ops.SolveLDLT: %w", matrix.ErrSingular)
		}
		z[i] = y[i] / d[i]
	}

	// back substitution L^T*x = z
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := z[i]
		for j := i + 1; j < n; j++ {
			lji, _ := L.At(j, i)
			sum -= lji * x[j]
		}
		x[i] = sum
	}

	return x, nil
}
