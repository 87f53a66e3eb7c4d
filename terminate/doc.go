// Package terminate provides the composable stopping predicates the MPC
// driver evaluates once per iteration: convergence, stalled progress, wall
// clock, iteration limit (owned by the driver itself) and asynchronous
// interruption.
package terminate
