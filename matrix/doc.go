// Package matrix provides the numeric primitives behind matcache:
// a row-major Dense storage type, the Matrix interface it implements,
// and the linear-algebra kernels the memo layer relies on.
//
// ✨ Key features:
//   - Dense: flat []float64 backing storage, cache-friendly row-major layout
//   - Inverse: A⁻¹ via Doolittle LU (no pivoting, deterministic)
//   - Mul: standard matrix product, used to verify A·A⁻¹ = I in tests
//   - AllClose: tolerance comparison |a-b| ≤ atol + rtol·|b|
//   - central validators + sentinel errors, matched via errors.Is
//
// Every kernel validates first, then runs a *Dense fast-path over the flat
// backing slice, falling back to the generic At/Set interface path for any
// other Matrix implementation. Loop orders are fixed, so results are
// deterministic across runs.
//
// Performance:
//
//   - Mul:     O(r·n·c) time, O(r·c) memory
//   - LU:      O(n³) time, O(n²) memory
//   - Inverse: O(n³) time, O(n²) memory — the entire reason memo exists
package matrix
