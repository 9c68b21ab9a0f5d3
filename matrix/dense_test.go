// Package matrix_test contains unit tests for Dense storage and constructors.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			var v float64
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					v = MustAt(t, m, i, j)
					if v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDense_BadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{0, 0},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrBadShape) {
			t.Fatalf("NewDense(%d,%d): want ErrBadShape, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestNewDenseFromRows_RoundTrip(t *testing.T) {
	rows := [][]float64{
		{2, 3},
		{2, 2},
	}
	m := MustFromRows(t, rows)
	CompareExact(t, rows, m)
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("ragged input: want ErrBadShape, got %v", err)
	}
}

func TestNewDenseFromRows_Empty(t *testing.T) {
	for _, rows := range [][][]float64{nil, {}, {{}}} {
		if _, err := matrix.NewDenseFromRows(rows); !errors.Is(err, matrix.ErrBadShape) {
			t.Fatalf("empty input %v: want ErrBadShape, got %v", rows, err)
		}
	}
}

func TestNewIdentity(t *testing.T) {
	const n = 4
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}
	var i, j int
	var want, got float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			got = MustAt(t, m, i, j)
			if got != want {
				t.Fatalf("I[%d,%d]: got %g, want %g", i, j, got, want)
			}
		}
	}

	if _, err = matrix.NewIdentity(0); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("NewIdentity(0): want ErrBadShape, got %v", err)
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := MustDense(t, 2, 3)

	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{2, 0},
		{0, -1},
		{0, 3},
	} {
		if _, err := m.At(tc.i, tc.j); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
		if err := m.Set(tc.i, tc.j, 1.0); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
	}
}

func TestDense_Shape(t *testing.T) {
	m := MustDense(t, 2, 5)
	r, c := m.Shape()
	if r != 2 || c != 5 {
		t.Fatalf("Shape: got (%d,%d), want (2,5)", r, c)
	}
}

func TestDense_Clone_Independence(t *testing.T) {
	orig := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := orig.Clone()

	// mutate the original; the clone must not observe the write
	MustSet(t, orig, 0, 0, 99)
	if got := MustAt(t, cp, 0, 0); got != 1 {
		t.Fatalf("clone observed mutation of original: got %g, want 1", got)
	}

	// and the other direction
	MustSet(t, cp, 1, 1, -7)
	if got := MustAt(t, orig, 1, 1); got != 4 {
		t.Fatalf("original observed mutation of clone: got %g, want 4", got)
	}
}

func TestDense_String(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3.5, 4}})
	want := "[1, 2]\n[3.5, 4]\n"
	if got := m.String(); got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
}
