// Package sparse provides a compressed-sparse-column (CSC) matrix type and
// a triplet-based incremental constructor, the shared matrix representation
// consumed by linalg, problem, and augsys.
package sparse
