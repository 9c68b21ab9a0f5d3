// Package memo defines the pluggable inversion capability and its defaults.
package memo

import (
	"math"

	"github.com/katalvlaran/matcache/matrix"
)

// Inverter computes the inverse of a square matrix. It is the single
// external capability the cache depends on: given m it returns a matrix of
// the same shape, or an error for non-square or singular input.
//
// Implementations must not retain or mutate m; SolveOrCache always hands
// them a private copy, so a well-behaved Inverter is a pure function.
//
// The default is matrix.Inverse (Doolittle LU, deterministic). Tests swap
// in counting stubs via WithInverter to observe cache hits and misses.
type Inverter func(m matrix.Matrix) (matrix.Matrix, error)

// defaultInverter is the zero-configuration inversion capability.
var defaultInverter Inverter = matrix.Inverse

// defaultSourceDim is the shape of the placeholder source installed when
// New receives nil: the smallest well-defined square matrix.
const defaultSourceDim = 1

// defaultSource returns the placeholder source matrix: a 1×1 Dense holding
// NaN. It is square, so solving does not fail on shape, and NaN marks the
// cell as "no value supplied yet" the way an empty single-cell placeholder
// does in array environments.
func defaultSource() matrix.Matrix {
	m, err := matrix.NewDense(defaultSourceDim, defaultSourceDim)
	if err != nil {
		// Unreachable: defaultSourceDim is a positive constant.
		panic(err)
	}
	_ = m.Set(0, 0, math.NaN())

	return m
}
