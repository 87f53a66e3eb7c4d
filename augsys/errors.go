// SPDX-License-Identifier: MIT
// Package augsys: sentinel error set.
package augsys

import "errors"

// ErrNotFactorized is returned by Resolve when Solve has not yet run once
// on this StandardSystem.
var ErrNotFactorized = errors.New("augsys: Resolve called before Solve")
