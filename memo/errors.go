// SPDX-License-Identifier: MIT
// Package memo: sentinel error set.
// All errors raised by this package are defined here and matched via
// errors.Is. Inverter failures (matrix.ErrNonSquare, matrix.ErrSingular, ...)
// are NOT redefined: they propagate unchanged from the numeric backend.

package memo

import "errors"

var (
	// ErrNilTarget indicates that a nil *CachedMatrix was passed to
	// SolveOrCache. Matches the package-wide nil-argument discipline.
	ErrNilTarget = errors.New("memo: nil cached matrix")

	// ErrNilMatrix indicates that SetMatrix received a nil matrix. A nil
	// source would make every later operation fail far from the bug site,
	// so it is rejected eagerly at the setter.
	ErrNilMatrix = errors.New("memo: nil matrix")
)
