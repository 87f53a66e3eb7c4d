package linalg

import "github.com/katalvlaran/ipmcore/sparse"

// ApproximateMinimumDegree computes a fill-reducing permutation for a
// symmetric pattern using a greedy minimum-degree heuristic: repeatedly
// eliminate the remaining vertex of smallest degree in the elimination
// graph, connecting its surviving neighbors to model fill-in. This is a
// simplified stand-in for true AMD (no quotient-graph compression, no tie
// -breaking refinements); see DESIGN.md for the tradeoff.
// Complexity: O(n^2) for the per-step scan of all remaining vertices, plus
// the fill-in updates, each quadratic in the eliminated vertex's degree;
// adequate for the modest augmented-system sizes this module targets.
func ApproximateMinimumDegree(a *sparse.CSC) []int {
	n := a.Rows
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for j := 0; j < a.Cols; j++ {
		rows, _, _ := a.Column(j)
		for _, i := range rows {
			if i != j {
				adj[i][j] = struct{}{}
				adj[j][i] = struct{}{}
			}
		}
	}

	eliminated := make([]bool, n)
	perm := make([]int, 0, n)
	for step := 0; step < n; step++ {
		best, bestDeg := -1, -1
		for v := 0; v < n; v++ {
			if eliminated[v] {
				continue
			}
			d := len(adj[v])
			if bestDeg == -1 || d < bestDeg {
				best, bestDeg = v, d
			}
		}
		eliminated[best] = true
		perm = append(perm, best)

		// connect surviving neighbors of best (models fill-in) and drop best
		neighbors := make([]int, 0, len(adj[best]))
		for u := range adj[best] {
			if !eliminated[u] {
				neighbors = append(neighbors, u)
			}
		}
		for _, u := range neighbors {
			delete(adj[u], best)
			for _, w := range neighbors {
				if w != u {
					adj[u][w] = struct{}{}
				}
			}
		}
	}

	return perm
}

// ColumnCountOrdering computes a fill-reducing permutation for a general
// (non-symmetric) pattern using a static column-nonzero-count heuristic: a
// simplified stand-in for COLAMD, which additionally updates counts as
// columns are eliminated. See DESIGN.md for the tradeoff.
// Complexity: O(cols^2) in the worst case (insertion sort of the counts).
func ColumnCountOrdering(a *sparse.CSC) []int {
	type col struct{ idx, count int }
	cols := make([]col, a.Cols)
	for j := 0; j < a.Cols; j++ {
		cols[j] = col{idx: j, count: a.ColPtr[j+1] - a.ColPtr[j]}
	}
	// simple insertion sort: a.Cols is expected to be modest (augmented-system size)
	for i := 1; i < len(cols); i++ {
		c := cols[i]
		j := i - 1
		for j >= 0 && cols[j].count > c.count {
			cols[j+1] = cols[j]
			j--
		}
		cols[j+1] = c
	}
	perm := make([]int, len(cols))
	for i, c := range cols {
		perm[i] = c.idx
	}

	return perm
}
