package matrix

// NewZeros allocates a rows×cols Dense matrix initialized to zero.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity allocates an n×n Dense identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1)
	}

	return m, nil
}

// ZerosLike allocates a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix is a free-function form of Matrix.Clone, convenient for call chains.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}
