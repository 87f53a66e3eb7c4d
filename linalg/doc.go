// Package linalg implements the SparseSolver abstraction: symbolic analysis
// (fill-reducing permutation), numeric factorization, and triangular solves
// reused across MPC outer iterations. Three variants are provided:
// Simplicial and Supernodal symmetric LDLᵀ, and GeneralLU for indefinite
// augmented systems that cannot be reduced to an SPD Schur complement.
package linalg
