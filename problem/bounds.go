package problem

import "math"

// FixedBoundEpsilon is the half-width used to relax a fixed bound l_i = u_i
// into a strictly interior interval [v-ε, v+ε], preserving the strict
// interiority invariant the driver requires of every iterate.
//
// This is a known, documented approximation (see DESIGN.md "fixed bounds"):
// an alternative design eliminates fixed variables symbolically instead,
// which changes problem dimension and is not implemented here.
const FixedBoundEpsilon = 0.01

// Bounds holds componentwise lower/upper bounds, using math.Inf(-1) and
// math.Inf(1) to mark unbounded sides. Fixed bounds (l_i == u_i on input)
// are relaxed by ±FixedBoundEpsilon at construction.
type Bounds struct {
	L, U []float64
}

// NewBounds validates and relaxes raw bounds into a Bounds value.
// Returns ErrInvalidBounds if, after relaxation, some l_i > u_i.
func NewBounds(l, u []float64) (Bounds, error) {
	if len(l) != len(u) {
		return Bounds{}, ErrDimensionMismatch
	}
	lr := make([]float64, len(l))
	ur := make([]float64, len(u))
	for i := range l {
		li, ui := l[i], u[i]
		if li == ui && !math.IsInf(li, 0) {
			li -= FixedBoundEpsilon
			ui += FixedBoundEpsilon
		}
		if li > ui {
			return Bounds{}, ErrInvalidBounds
		}
		lr[i] = li
		ur[i] = ui
	}

	return Bounds{L: lr, U: ur}, nil
}

// N returns the number of variables.
func (b Bounds) N() int { return len(b.L) }

// LowerFinite reports whether l_i is finite.
func (b Bounds) LowerFinite(i int) bool { return !math.IsInf(b.L[i], -1) }

// UpperFinite reports whether u_i is finite.
func (b Bounds) UpperFinite(i int) bool { return !math.IsInf(b.U[i], 1) }

// InitialPoint returns the heuristic strictly-interior starting point
// described in the driver contract: midpoint for two-sided bounds, an
// offset of 1 from whichever single bound is finite, and 0 for free
// variables. It is not scale-aware; see DESIGN.md "initial point".
func (b Bounds) InitialPoint() []float64 {
	x0 := make([]float64, b.N())
	for i := range x0 {
		lf, uf := b.LowerFinite(i), b.UpperFinite(i)
		switch {
		case lf && uf:
			x0[i] = 0.5 * (b.L[i] + b.U[i])
		case lf:
			x0[i] = b.L[i] + 1
		case uf:
			x0[i] = b.U[i] - 1
		default:
			x0[i] = 0
		}
	}

	return x0
}
