package callback

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ipmcore/problem"
)

// ConvergenceReporter logs one structured event per iteration: iteration
// count, barrier and centering parameters, both step lengths, and both
// residual norms. It defaults to zerolog.Nop() so constructing one without
// a configured Logger costs nothing at runtime.
type ConvergenceReporter struct {
	Logger zerolog.Logger
}

// NewConvergenceReporter constructs a ConvergenceReporter writing through
// logger. The zero value of zerolog.Logger is already a no-op sink.
func NewConvergenceReporter(logger zerolog.Logger) *ConvergenceReporter {
	return &ConvergenceReporter{Logger: logger}
}

// OnIteration implements Callback.
func (r *ConvergenceReporter) OnIteration(state *problem.SolverState) error {
	r.Logger.Info().
		Int("iter", state.K).
		Float64("mu", state.Mu).
		Float64("sigma", state.Sigma).
		Float64("alpha_p", state.AlphaP).
		Float64("alpha_d", state.AlphaD).
		Float64("rp_norm", l2Norm(state.Res.Rp)).
		Float64("rd_norm", l2Norm(state.Res.Rd)).
		Msg("mpc iteration")

	return nil
}

func l2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}
