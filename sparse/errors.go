// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
package sparse

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive row or column counts.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, dim).
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNotBuilt indicates an operation was attempted on a Triplet before Build.
	ErrNotBuilt = errors.New("sparse: matrix not built")
)
