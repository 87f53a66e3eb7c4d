// Package problem defines the LP/QP data model consumed by the MPC driver:
// canonical bounds, the iterate (SolverState), the KKT residual, and the
// OptimizationProgram interface that lets the driver treat linear and
// quadratic programs uniformly.
package problem
