// SPDX-License-Identifier: MIT
// Package problem: sentinel error set.
package problem

import "errors"

var (
	// ErrDimensionMismatch indicates c, A, b, l, u (or Q) disagree on n or m.
	ErrDimensionMismatch = errors.New("problem: dimension mismatch")

	// ErrInvalidBounds indicates some l_i > u_i after relaxation.
	ErrInvalidBounds = errors.New("problem: lower bound exceeds upper bound")

	// ErrNilMatrix indicates a required sparse matrix argument was nil.
	ErrNilMatrix = errors.New("problem: nil matrix")

	// ErrNonSquareQ indicates Q is not n×n for an n-variable QP.
	ErrNonSquareQ = errors.New("problem: Q is not square or does not match n")
)
