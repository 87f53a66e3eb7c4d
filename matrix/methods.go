package matrix

import "fmt"

// matrixErrorf wraps an underlying error with the offending operation's name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix: %s: %w", op, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch if a and b do not share dimensions.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare returns ErrNonSquare if m is not square.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// Add returns a+b element-wise. Both operands must share shape.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}

	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf("Add", err)
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = out.Set(i, j, av+bv)
		}
	}

	return out, nil
}

// Sub returns a-b element-wise. Both operands must share shape.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Sub", err)
	}

	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = out.Set(i, j, av-bv)
		}
	}

	return out, nil
}

// Scale returns m scaled by factor k.
// Complexity: O(r*c).
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j, v*k)
		}
	}

	return out, nil
}

// Transpose returns the transpose of m.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	out, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(j, i, v)
		}
	}

	return out, nil
}

// Mul returns the matrix product a*b. a.Cols() must equal b.Rows().
// Complexity: O(r*k*c) for an r×k by k×c product.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}

	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	for i := 0; i < a.Rows(); i++ {
		for k := 0; k < a.Cols(); k++ {
			av, _ := a.At(i, k)
			if av == 0 {
				continue
			}
			for j := 0; j < b.Cols(); j++ {
				bv, _ := b.At(k, j)
				cur, _ := out.At(i, j)
				_ = out.Set(i, j, cur+av*bv)
			}
		}
	}

	return out, nil
}

// MatVec returns m*v. m.Cols() must equal len(v).
// Complexity: O(r*c).
func MatVec(m Matrix, v []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if m.Cols() != len(v) {
		return nil, matrixErrorf("MatVec", ErrDimensionMismatch)
	}

	out := make([]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		var sum float64
		for j := 0; j < m.Cols(); j++ {
			mv, _ := m.At(i, j)
			sum += mv * v[j]
		}
		out[i] = sum
	}

	return out, nil
}
