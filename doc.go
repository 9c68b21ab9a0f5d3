// Package matcache memoizes the inverse of a square matrix — compute once,
// serve from cache until the matrix changes.
//
// 🚀 What is matcache?
//
//	A small, thread-safe, zero-dependency library built around one idea:
//	matrix inversion is O(n³), so a matrix that has not changed should
//	never be inverted twice.
//		• memo/   — CachedMatrix, the cache object, plus SolveOrCache
//		• matrix/ — Dense storage, LU-based Inverse, Mul, AllClose
//
// ✨ Why choose matcache?
//
//   - Minimal API – one cache object per matrix, clear, intuitive naming
//   - Rock-solid guarantees – value semantics (copy-in/copy-out), an
//     instance-scoped RW lock, at most one computation per invalidation
//   - Pure Go – no cgo, no hidden deps
//   - Swappable numerics – plug any Inverter via functional options
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{2, 3}, {2, 2}})
//	cm := memo.New(A)
//
//	inv, _ := memo.SolveOrCache(cm) // computes A⁻¹ and caches it
//	inv, _ = memo.SolveOrCache(cm)  // cache hit: no recomputation
//
//	_ = cm.SetMatrix(A)             // any replacement clears the cache
//	inv, _ = memo.SolveOrCache(cm)  // recomputes exactly once
//
// See memo/example_test.go and matrix/example_test.go for runnable examples.
package matcache
