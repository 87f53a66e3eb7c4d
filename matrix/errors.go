// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates that two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates an operation that requires a square matrix was given a rectangular one.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular indicates a factorization encountered a (numerically) zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf indicates a NaN or Inf value was encountered where a finite value was required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil receiver or nil argument where a matrix was required.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
