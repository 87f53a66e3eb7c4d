package linalg

import "github.com/katalvlaran/ipmcore/sparse"

// SparseSolver is the three-stage contract every factorization variant
// implements: a pattern-only Analyze, a numeric Factorize assuming the
// analyzed pattern, and a SolveInPlace applying the stored factors. Values
// are expected to change between calls to Factorize/Refactorize on the
// same analyzed pattern; the pattern itself must not.
type SparseSolver interface {
	// Analyze computes a fill-reducing permutation from a's pattern only.
	// No elimination tree or symbolic factor layout is computed; Factorize
	// builds the factor's structure anew on every call. Must be called once
	// before the first Factorize.
	Analyze(a *sparse.CSC) error
	// Factorize computes numeric factors assuming a's pattern equals the
	// one passed to Analyze.
	Factorize(a *sparse.CSC) error
	// Refactorize re-runs the numeric stage on the existing symbolic
	// structure; a's pattern must be identical to the analyzed one.
	Refactorize(a *sparse.CSC) error
	// SolveInPlace applies the stored permutation and triangular solves to
	// b, overwriting it with the solution.
	SolveInPlace(b []float64) error
}
