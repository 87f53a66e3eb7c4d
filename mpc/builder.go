package mpc

import (
	"fmt"

	"github.com/katalvlaran/ipmcore/augsys"
	"github.com/katalvlaran/ipmcore/barrier"
	"github.com/katalvlaran/ipmcore/callback"
	"github.com/katalvlaran/ipmcore/linalg"
	"github.com/katalvlaran/ipmcore/problem"
	"github.com/katalvlaran/ipmcore/terminate"
)

// Builder assembles a Solver over a fixed problem, augmented-system solver
// variant, and configuration. The solver variant is fixed at Build time;
// Solve never dispatches between variants per iteration.
type Builder struct {
	prog   problem.OptimizationProgram
	solver linalg.SparseSolver
	cfg    Config
	cb     callback.Callback
	term   terminate.Terminator
}

// NewBuilder starts a Builder over prog with the Simplicial solver variant,
// default Config, and a NoOp callback.
func NewBuilder(prog problem.OptimizationProgram) *Builder {
	return &Builder{
		prog:   prog,
		solver: linalg.NewSimplicial(),
		cfg:    NewConfig(),
		cb:     callback.NoOp{},
	}
}

// WithSolverVariant selects the augmented-system factorization backend.
func (b *Builder) WithSolverVariant(solver linalg.SparseSolver) *Builder {
	b.solver = solver

	return b
}

// WithConfig overrides the driver configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg

	return b
}

// WithCallback overrides the per-iteration observer.
func (b *Builder) WithCallback(cb callback.Callback) *Builder {
	b.cb = cb

	return b
}

// WithTerminator overrides the composed stopping predicate. When unset,
// Build assembles Convergence + TimeOut from Config.
func (b *Builder) WithTerminator(term terminate.Terminator) *Builder {
	b.term = term

	return b
}

// Build constructs the Solver, performing the one-time augmented-system
// pattern analysis.
func (b *Builder) Build() (*Solver, error) {
	sys, err := augsys.New(b.prog, b.solver)
	if err != nil {
		return nil, fmt.Errorf("mpc: %w", err)
	}
	barrierPolicy, err := barrier.NewAdaptive(b.cfg.MuMin, b.cfg.MuMax)
	if err != nil {
		return nil, fmt.Errorf("mpc: %w", err)
	}

	term := b.term
	if term == nil {
		term = terminate.NewBuilder(b.cfg.Tolerance, terminate.WithTimeout(b.cfg.MaxTime))
	}

	return &Solver{
		prog:          b.prog,
		sys:           sys,
		cfg:           b.cfg,
		cb:            b.cb,
		barrierPolicy: barrierPolicy,
		terminator:    term,
	}, nil
}
