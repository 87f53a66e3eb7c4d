package mpc

import "time"

// Config holds the driver's tunable parameters. It is YAML-tagged so a host
// application may load it from a config file; in code, build one with
// NewConfig and functional ConfigOption setters.
type Config struct {
	MaxIterations uint32        `yaml:"max_iterations"`
	Tolerance     float64       `yaml:"tolerance"`
	MaxTime       time.Duration `yaml:"max_time_secs"`
	MuMin         float64       `yaml:"mu_min"`
	MuMax         float64       `yaml:"mu_max"`
	SafetyFactor  float64       `yaml:"safety_factor"`
}

// Documented defaults (single source of truth); NewConfig applies these
// before any ConfigOption.
const (
	DefaultMaxIterations uint32        = 100
	DefaultTolerance     float64       = 1e-7
	DefaultMaxTime       time.Duration = time.Hour
	DefaultMuMin         float64       = 1e-7
	DefaultMuMax         float64       = 1e7
	DefaultSafetyFactor  float64       = 0.999
)

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// NewConfig returns the documented defaults with opts applied in order.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		MaxTime:       DefaultMaxTime,
		MuMin:         DefaultMuMin,
		MuMax:         DefaultMuMax,
		SafetyFactor:  DefaultSafetyFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	return cfg
}

// WithMaxIterations overrides MaxIterations (0 is treated as "use default").
func WithMaxIterations(n uint32) ConfigOption {
	return func(c *Config) { c.MaxIterations = n }
}

// WithTolerance overrides Tolerance.
func WithTolerance(tol float64) ConfigOption {
	return func(c *Config) { c.Tolerance = tol }
}

// WithMaxTime overrides MaxTime.
func WithMaxTime(d time.Duration) ConfigOption {
	return func(c *Config) { c.MaxTime = d }
}

// WithMuRange overrides MuMin and MuMax.
func WithMuRange(min, max float64) ConfigOption {
	return func(c *Config) { c.MuMin, c.MuMax = min, max }
}

// WithSafetyFactor overrides SafetyFactor.
func WithSafetyFactor(eta float64) ConfigOption {
	return func(c *Config) { c.SafetyFactor = eta }
}
