// Package callback provides the optional per-iteration observer the MPC
// driver invokes after each completed iteration. Callbacks must not
// mutate the solver state they are given.
package callback
