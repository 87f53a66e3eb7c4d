package mpc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ipmcore/augsys"
	"github.com/katalvlaran/ipmcore/barrier"
	"github.com/katalvlaran/ipmcore/callback"
	"github.com/katalvlaran/ipmcore/linesearch"
	"github.com/katalvlaran/ipmcore/problem"
	"github.com/katalvlaran/ipmcore/terminate"
)

// Solver runs the Mehrotra predictor-corrector outer loop over a fixed
// problem and augmented-system solver variant, both chosen at Build time.
type Solver struct {
	prog          problem.OptimizationProgram
	sys           *augsys.StandardSystem
	cfg           Config
	cb            callback.Callback
	barrierPolicy *barrier.Adaptive
	terminator    terminate.Terminator
}

// Solve runs INIT → (PREDICTOR → CENTERING → CORRECTOR → UPDATE)* until a
// terminator fires or the iteration limit is reached, returning the final
// state. A non-nil error indicates a factorization or callback failure; the
// returned state's Status is only meaningful when err is nil or the error
// came from the callback (StatusUnknown).
func (s *Solver) Solve() (*problem.SolverState, error) {
	bnd := s.prog.Bounds()
	_, m := s.prog.Dims()
	state := problem.NewSolverState(bnd.InitialPoint(), m)
	for i := range state.X {
		if !bnd.LowerFinite(i) {
			state.ZL[i] = 0
		}
		if !bnd.UpperFinite(i) {
			state.ZU[i] = 0
		}
	}

	for k := uint32(0); k < s.cfg.MaxIterations; k++ {
		state.K = int(k)

		res := s.prog.Residual(state)
		state.Res = res
		mu := s.barrierPolicy.Next(state)

		rhatD, rhatP := s.sys.AssembleRHS(state, res, 0, mu)
		dirAff, err := s.sys.Solve(state, res, rhatD, rhatP, 0, mu)
		if err != nil {
			return state, fmt.Errorf("mpc: predictor: %w", err)
		}

		alphaAffP, alphaAffD := linesearch.FractionToBoundary(bnd, state, dirAff, 1.0)
		stateAff := probe(state, dirAff, alphaAffP, alphaAffD)
		stateAff.Res = s.prog.Residual(stateAff)
		muAff := s.barrierPolicy.Next(stateAff)

		sigma := math.Pow(muAff/mu, 3)

		n := len(state.X)
		augRcl := make([]float64, n)
		augRcu := make([]float64, n)
		for i := 0; i < n; i++ {
			augRcl[i] = res.Rcl[i] - dirAff.DX[i]*dirAff.DZL[i]
			augRcu[i] = res.Rcu[i] - dirAff.DX[i]*dirAff.DZU[i]
		}
		augRes := problem.Residual{Rd: res.Rd, Rp: res.Rp, Rcl: augRcl, Rcu: augRcu}

		eta := s.cfg.SafetyFactor
		rhatD2, rhatP2 := s.sys.AssembleRHS(state, augRes, sigma, mu)
		dir, err := s.sys.Resolve(state, augRes, rhatD2, rhatP2, sigma, mu)
		if err != nil {
			return state, fmt.Errorf("mpc: corrector: %w", err)
		}

		alphaP, alphaD := linesearch.FractionToBoundary(bnd, state, dir, eta)
		for i := 0; i < n; i++ {
			state.X[i] += alphaP * dir.DX[i]
			state.ZL[i] += alphaD * dir.DZL[i]
			state.ZU[i] += alphaD * dir.DZU[i]
		}
		for i := range state.Y {
			state.Y[i] += alphaD * dir.DY[i]
		}
		state.AlphaP, state.AlphaD, state.Sigma, state.Mu = alphaP, alphaD, sigma, mu

		state.Res = s.prog.Residual(state)

		if err := s.cb.OnIteration(state); err != nil {
			state.Status = problem.StatusUnknown

			return state, fmt.Errorf("mpc: callback: %w", err)
		}

		if status, fired := s.terminator.Check(state); fired {
			state.Status = status

			return state, nil
		}
	}

	state.Status = problem.StatusIterationLimit

	return state, nil
}

// probe returns a new SolverState for (x,y,z_l,z_u) + step*dir, without
// mutating state, used to evaluate the Mehrotra centering parameter at the
// affine-scaling trial point.
func probe(state *problem.SolverState, dir problem.Direction, alphaP, alphaD float64) *problem.SolverState {
	n := len(state.X)
	x := make([]float64, n)
	zl := make([]float64, n)
	zu := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = state.X[i] + alphaP*dir.DX[i]
		zl[i] = state.ZL[i] + alphaD*dir.DZL[i]
		zu[i] = state.ZU[i] + alphaD*dir.DZU[i]
	}
	y := make([]float64, len(state.Y))
	for i := range y {
		y[i] = state.Y[i] + alphaD*dir.DY[i]
	}

	return &problem.SolverState{X: x, Y: y, ZL: zl, ZU: zu}
}
