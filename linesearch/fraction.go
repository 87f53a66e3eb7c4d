package linesearch

import (
	"math"

	"github.com/katalvlaran/ipmcore/problem"
)

// FractionToBoundary computes the maximum step lengths (alphaP, alphaD) in
// [0,1] that keep x, z_l, z_u strictly interior after state + step*dir,
// scaled by safety factor eta in (0,1). An index whose direction does not
// push toward its finite bound contributes no constraint; if no index
// constrains a side, its step length is 1.
func FractionToBoundary(bnd problem.Bounds, state *problem.SolverState, dir problem.Direction, eta float64) (alphaP, alphaD float64) {
	alphaP = boundingStep(eta, len(state.X), func(i int) (candidate float64, ok bool) {
		dx := dir.DX[i]
		switch {
		case bnd.LowerFinite(i) && dx < 0:
			return -(state.X[i] - bnd.L[i]) / dx, true
		case bnd.UpperFinite(i) && dx > 0:
			return -(state.X[i] - bnd.U[i]) / dx, true
		default:
			return 0, false
		}
	})

	alphaD = boundingStep(eta, len(state.X), func(i int) (candidate float64, ok bool) {
		dzl := dir.DZL[i]
		if bnd.LowerFinite(i) && dzl < 0 {
			return -state.ZL[i] / dzl, true
		}

		return 0, false
	})
	alphaD = math.Min(alphaD, boundingStep(eta, len(state.X), func(i int) (candidate float64, ok bool) {
		dzu := dir.DZU[i]
		if bnd.UpperFinite(i) && dzu > 0 {
			return -state.ZU[i] / dzu, true
		}

		return 0, false
	}))

	return alphaP, alphaD
}

// boundingStep folds candidate(i) over [0,n) into min(1, eta*min candidate),
// treating an unconstrained index (ok == false) as contributing nothing.
func boundingStep(eta float64, n int, candidate func(i int) (float64, bool)) float64 {
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		c, ok := candidate(i)
		if !ok {
			continue
		}
		if c < best {
			best = c
		}
	}
	if math.IsInf(best, 1) {
		return 1
	}

	return math.Min(1, eta*best)
}
