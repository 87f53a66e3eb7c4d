package callback

import "github.com/rs/zerolog"

// BuilderOption customizes the callback chain a Builder assembles.
type BuilderOption func(cfg *builderConfig)

type builderConfig struct {
	logger       zerolog.Logger
	withReporter bool
	extra        []Callback
}

// NewBuilder assembles a Callback chain from the given options, defaulting
// to NoOp when nothing is configured.
func NewBuilder(opts ...BuilderOption) Callback {
	cfg := &builderConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	var cbs []Callback
	if cfg.withReporter {
		cbs = append(cbs, NewConvergenceReporter(cfg.logger))
	}
	cbs = append(cbs, cfg.extra...)

	if len(cbs) == 0 {
		return NoOp{}
	}
	if len(cbs) == 1 {
		return cbs[0]
	}

	return NewMulti(cbs...)
}

// WithLogger sets the zerolog.Logger the ConvergenceReporter added by
// WithConvergenceReporter uses, whatever the order of the two options.
func WithLogger(logger zerolog.Logger) BuilderOption {
	return func(cfg *builderConfig) { cfg.logger = logger }
}

// WithConvergenceReporter adds a ConvergenceReporter using the configured
// logger.
func WithConvergenceReporter() BuilderOption {
	return func(cfg *builderConfig) { cfg.withReporter = true }
}

// WithCallback appends an arbitrary Callback to the chain.
func WithCallback(cb Callback) BuilderOption {
	return func(cfg *builderConfig) { cfg.extra = append(cfg.extra, cb) }
}
