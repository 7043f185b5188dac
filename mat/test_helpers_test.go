// SPDX-License-Identifier: MIT
// Package mat_test contains shared fixtures and helpers.
//
// Purpose:
//   - Keep fixture construction one-liners so tests read as contracts.
//   - All data is finite and deterministic unless a test says otherwise.

package mat_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/mat"
)

// MustNested builds an R×C matrix from rows or fails the test.
func MustNested[T mat.Number, R, C mat.Dim](t *testing.T, rows [][]T) mat.Matrix[T, R, C] {
	t.Helper()
	m, err := mat.FromNested[T, R, C](rows)
	if err != nil {
		t.Fatalf("FromNested: %v", err)
	}

	return m
}

// MustRow builds a 1×N row vector or fails the test.
func MustRow[T mat.Number, N mat.Dim](t *testing.T, elems ...T) mat.Matrix[T, mat.D1, N] {
	t.Helper()
	v, err := mat.NewRow[T, N](elems...)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}

	return v
}

// MustCol builds an N×1 column vector or fails the test.
func MustCol[T mat.Number, N mat.Dim](t *testing.T, elems ...T) mat.Matrix[T, N, mat.D1] {
	t.Helper()
	v, err := mat.NewCol[T, N](elems...)
	if err != nil {
		t.Fatalf("NewCol: %v", err)
	}

	return v
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T mat.Number, R, C mat.Dim](t *testing.T, m mat.Matrix[T, R, C], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet[T mat.Number, R, C mat.Dim](t *testing.T, m *mat.Matrix[T, R, C], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// CompareExact asserts strict equality between m and a 2D literal,
// failing with the exact mismatch location. Use for integer-like data.
func CompareExact[T mat.Number, R, C mat.Dim](t *testing.T, want [][]T, m mat.Matrix[T, R, C]) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v T
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// ---------- bench helpers ----------

// fillRand fills m with deterministic U(-1,1) values by seed.
func fillRand[T mat.Number, R, C mat.Dim](b *testing.B, m *mat.Matrix[T, R, C], seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, T(rng.Float64()*2-1)); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
