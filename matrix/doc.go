// Package matrix provides the dense linear algebra primitives used by the
// sparse factorization kernels: small dense panels produced during supernodal
// Cholesky and partial-pivoted LU factorization are represented and operated
// on here. The package intentionally stays small: it is a computational
// substrate for linalg, not a general-purpose matrix library.
package matrix
