// Package memo caches the inverse of a square matrix so that repeated
// requests for the inverse of the same, unchanged matrix avoid the O(n³)
// recomputation.
//
// 🚀 What is memo?
//
//	One cache object per matrix. CachedMatrix owns a matrix value and an
//	optional cached inverse; SolveOrCache is the single memoization
//	decision point:
//	  • cache present → return it, no recomputation, no revalidation
//	  • cache absent  → invert, store, return
//	Replacing the matrix with SetMatrix unconditionally clears the cache,
//	even when the new value equals the old one. That replacement is the
//	only invalidation path; the cache keys on identity-of-last-set, not
//	value equality.
//
// ✨ Key guarantees:
//   - value semantics: every matrix is deep-copied in and out, so no caller
//     alias can mutate cached state behind the cache's back
//   - at most one inversion per invalidation epoch, even under concurrent
//     SolveOrCache callers (check-then-act runs under the instance lock)
//   - inversion failures propagate unchanged and leave the cache absent
//
// ⚠️ Sharp edge, by contract:
//
//	SetInverse overwrites the cache without validating that the value is
//	actually the inverse of the current matrix. It is a trust-the-caller
//	escape hatch; a subsequent SolveOrCache hit serves whatever was stored.
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{2, 3}, {2, 2}})
//	cm := memo.New(A)
//
//	inv, err := memo.SolveOrCache(cm) // cold: runs the inverter
//	inv, err = memo.SolveOrCache(cm)  // hit: served from cache
//
//	_ = cm.SetMatrix(B)               // invalidates
//	inv, err = memo.SolveOrCache(cm)  // recomputes for B
//
// The numeric backend defaults to matrix.Inverse and can be swapped per
// call with WithInverter (tuned routines, instrumentation, test stubs).
package memo
