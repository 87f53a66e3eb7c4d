package terminate

import "time"

// BuilderOption customizes the set of terminators a Builder assembles.
type BuilderOption func(cfg *builderConfig)

type builderConfig struct {
	tolerance     float64
	epsSlow       float64
	slowProgress  bool
	maxTime       time.Duration
	withTimeout   bool
	withInterrupt bool
}

// NewBuilder assembles a Multi terminator from the given options. A
// Convergence terminator at tolerance is always included; every other
// terminator is opt-in.
func NewBuilder(tolerance float64, opts ...BuilderOption) *Multi {
	cfg := &builderConfig{tolerance: tolerance}
	for _, opt := range opts {
		opt(cfg)
	}

	ts := []Terminator{NewConvergence(cfg.tolerance)}
	if cfg.slowProgress {
		ts = append(ts, NewSlowProgress(cfg.epsSlow))
	}
	if cfg.withTimeout {
		ts = append(ts, NewTimeOut(cfg.maxTime))
	}
	if cfg.withInterrupt {
		ts = append(ts, NewInterrupt())
	}

	return NewMulti(ts...)
}

// WithSlowProgress adds a SlowProgress terminator at the given threshold.
func WithSlowProgress(epsSlow float64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.slowProgress = true
		cfg.epsSlow = epsSlow
	}
}

// WithTimeout adds a TimeOut terminator at the given wall-clock budget.
func WithTimeout(maxTime time.Duration) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.withTimeout = true
		cfg.maxTime = maxTime
	}
}

// WithInterrupt adds the process-wide Interrupt terminator.
func WithInterrupt() BuilderOption {
	return func(cfg *builderConfig) {
		cfg.withInterrupt = true
	}
}
