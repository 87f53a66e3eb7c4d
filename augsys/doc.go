// Package augsys assembles, updates, and solves the KKT saddle-point
// system the MPC driver needs once per outer iteration, and recovers the
// bound-multiplier directions in closed form after each solve.
package augsys
