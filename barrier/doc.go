// Package barrier computes the interior-point barrier parameter μ that
// drives the duality gap toward zero while the driver keeps every iterate
// strictly interior.
package barrier
