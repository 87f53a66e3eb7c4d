// Package mpc drives the primal-dual Mehrotra predictor-corrector outer
// loop: predictor, adaptive centering, corrector, state update and
// termination, over a fixed augmented-system solver variant chosen at
// construction.
package mpc
