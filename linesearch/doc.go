// Package linesearch computes the fraction-to-the-boundary step length that
// keeps a primal-dual iterate strictly interior after applying a Newton
// direction.
package linesearch
