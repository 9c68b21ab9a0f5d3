// SPDX-License-Identifier: MIT
// Package memo: the cache object and the solve-or-cache decision point.
//
// CachedMatrix pairs one source matrix with at most one memoized inverse.
// The struct holds no inversion logic of its own; SolveOrCache is the only
// place the cache-miss decision is made. All state is guarded by an
// instance-scoped sync.RWMutex, so the check-then-act of a solve is atomic
// and the inverter runs at most once per invalidation epoch.

package memo

import (
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// CachedMatrix owns a matrix value and an optional cached inverse.
//
// Invariant: whenever inv is non-nil, it was stored while src held its
// current value. SetMatrix is the sole mutation path for src and it always
// clears inv, so a present cache can only go stale through the documented
// SetInverse escape hatch. There is no version counter and no revalidation
// on a cache hit; value semantics on every accessor keep the invariant from
// breaking silently through aliasing.
//
// The zero value is not usable; construct instances with New.
type CachedMatrix struct {
	mu  sync.RWMutex  // guards src and inv
	src matrix.Matrix // current source matrix, never nil after New
	inv matrix.Matrix // memoized inverse of src; nil means absent
}

// New creates a cache around an initial matrix with the inverse absent.
//
// A nil m installs the documented placeholder source: a 1×1 matrix holding
// NaN (square, smallest well-defined size). No shape validation happens
// here; a non-square source is accepted and fails later, at solve time.
//
// The input is deep-copied, so later caller-side mutation of m cannot
// reach the cache.
// Complexity: O(r*c) for the copy.
func New(m matrix.Matrix) *CachedMatrix {
	if m == nil {
		return &CachedMatrix{src: defaultSource()}
	}

	return &CachedMatrix{src: m.Clone()}
}

// SetMatrix replaces the source matrix and unconditionally clears the
// cached inverse, even when m is value-equal to the previous source.
// Invalidation keys on identity-of-last-set, not value equality: re-setting
// a previously seen matrix does not resurrect its old inverse.
//
// The input is deep-copied. A nil m is rejected with ErrNilMatrix; the
// stored source stays valid in that case and the cache is left untouched.
//
// Guarantees: after a successful call, Inverse reports absent until the
// next successful solve or SetInverse.
// Complexity: O(r*c) for the copy.
func (c *CachedMatrix) SetMatrix(m matrix.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	c.mu.Lock()
	c.src = m.Clone() // copy-in: caller keeps no alias into the cache
	c.inv = nil       // invalidate
	c.mu.Unlock()

	return nil
}

// Matrix returns a deep copy of the current source matrix.
// The copy is independent: mutating it never touches cached state.
// Complexity: O(r*c).
func (c *CachedMatrix) Matrix() matrix.Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.src.Clone()
}

// SetInverse unconditionally overwrites the cached inverse with a deep copy
// of m; nil clears the cache back to absent.
//
// This is a low-level, trust-the-caller operation: nothing checks that m is
// actually the inverse of the current source. It exists so the solve path
// can populate the cache, and it stays public for callers that obtain the
// inverse elsewhere. A poisoned cache is served verbatim by the next solve
// and discarded only by SetMatrix (or another SetInverse).
// Complexity: O(r*c) for the copy; O(1) when clearing.
func (c *CachedMatrix) SetInverse(m matrix.Matrix) {
	c.mu.Lock()
	if m == nil {
		c.inv = nil
	} else {
		c.inv = m.Clone()
	}
	c.mu.Unlock()
}

// Inverse returns a deep copy of the cached inverse and a presence flag.
// Absent cache: (nil, false). No side effects in either case.
// Complexity: O(r*c) when present, O(1) when absent.
func (c *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.inv == nil {
		return nil, false
	}

	return c.inv.Clone(), true
}

// SolveOrCache returns the inverse of c's current matrix, computing it at
// most once per invalidation epoch.
//
// Implementation:
//   - Stage 1: under the instance lock, return a copy of the cached inverse
//     when present — no recomputation, no revalidation, even for a value
//     injected via SetInverse.
//   - Stage 2: otherwise invoke the configured inverter on a copy of the
//     source, store a copy of the result, and return it.
//
// The lock spans the whole check-then-act, so concurrent callers that both
// observe an absent cache cannot both run the inverter.
//
// Inputs:
//   - c: the cache object (non-nil).
//   - opts: solve tuning, passed through opaquely to configuration —
//     WithInverter swaps the numeric backend.
//
// Returns:
//   - matrix.Matrix: the (possibly memoized) inverse; a fresh copy on every
//     call, never an alias into the cache.
//
// Errors:
//   - ErrNilTarget when c is nil.
//   - Inverter failures (matrix.ErrNonSquare, matrix.ErrSingular, ...)
//     propagate unchanged; the cache is left absent — no partial result is
//     ever stored on failure.
//
// Complexity:
//   - Hit: O(n²) for the defensive copy. Miss: the inverter's cost, O(n³)
//     for the default backend.
func SolveOrCache(c *CachedMatrix, opts ...Option) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilTarget
	}

	// Resolve effective configuration before taking the lock; option
	// application is pure and must not extend the critical section.
	cfg := gatherOptions(opts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Cache hit: serve the memoized value as-is.
	if c.inv != nil {
		return c.inv.Clone(), nil
	}

	// Cache miss: run the external capability on a private copy.
	result, err := cfg.inverter(c.src.Clone())
	if err != nil {
		return nil, err // cache stays absent
	}

	// Store and return. Two copies keep the cached value and the returned
	// value independent of each other and of the inverter's allocation.
	c.inv = result.Clone()

	return result, nil
}
