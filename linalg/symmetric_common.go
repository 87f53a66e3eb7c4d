package linalg

import "github.com/katalvlaran/ipmcore/sparse"

// permutedLowerColumns builds, for a full (both-triangles-materialized)
// symmetric n×n CSC matrix a and a permutation perm (perm[i] = original
// index of the i-th permuted row/column), the lower-triangular part of
// Pᵀ a P as one sparse column map per column: col[j][i] holds the value at
// permuted (row i, col j) for i >= j.
func permutedLowerColumns(a *sparse.CSC, perm []int) []map[int]float64 {
	n := len(perm)
	invPerm := make([]int, n)
	for newIdx, origIdx := range perm {
		invPerm[origIdx] = newIdx
	}

	cols := make([]map[int]float64, n)
	for j := range cols {
		cols[j] = make(map[int]float64)
	}
	for origCol := 0; origCol < a.Cols; origCol++ {
		rows, vals, _ := a.Column(origCol)
		for k, origRow := range rows {
			r, c := invPerm[origRow], invPerm[origCol]
			if r < c {
				r, c = c, r // only the lower triangle is retained
			}
			cols[c][r] += vals[k]
		}
	}

	return cols
}
