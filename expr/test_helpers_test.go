// SPDX-License-Identifier: MIT
// Package expr_test contains fixtures and probe operands.
//
// probeExpr and failExpr implement Expr from outside the package, which
// doubles as a check that the operand contract is satisfiable by callers.

package expr_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fixmat/expr"
	"github.com/katalvlaran/fixmat/mat"
)

// errProbe is the sentinel failExpr returns from every query.
var errProbe = errors.New("probe failure")

// probeExpr wraps an operand and records every At query by cell.
type probeExpr[T mat.Number, R, C mat.Dim] struct {
	inner expr.Expr[T, R, C]
	hits  map[[2]int]int
}

func newProbe[T mat.Number, R, C mat.Dim](inner expr.Expr[T, R, C]) probeExpr[T, R, C] {
	return probeExpr[T, R, C]{inner: inner, hits: make(map[[2]int]int)}
}

func (p probeExpr[T, R, C]) Rows() int { return p.inner.Rows() }
func (p probeExpr[T, R, C]) Cols() int { return p.inner.Cols() }

func (p probeExpr[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

func (p probeExpr[T, R, C]) At(i, j int) (T, error) {
	p.hits[[2]int{i, j}]++

	return p.inner.At(i, j)
}

// total sums query counts over all cells.
func (p probeExpr[T, R, C]) total() int {
	var n int
	for _, c := range p.hits {
		n += c
	}

	return n
}

// failExpr fails every query with errProbe.
type failExpr[T mat.Number, R, C mat.Dim] struct{}

func (failExpr[T, R, C]) Rows() int {
	var r R

	return r.Size()
}

func (failExpr[T, R, C]) Cols() int {
	var c C

	return c.Size()
}

func (failExpr[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

func (failExpr[T, R, C]) At(int, int) (T, error) {
	var zero T

	return zero, errProbe
}

// mustNested builds an R×C matrix from rows or fails the test.
func mustNested[T mat.Number, R, C mat.Dim](t *testing.T, rows [][]T) mat.Matrix[T, R, C] {
	t.Helper()
	m, err := mat.FromNested[T, R, C](rows)
	if err != nil {
		t.Fatalf("FromNested: %v", err)
	}

	return m
}

// snapshot copies an evaluated result into a nested slice for diffing.
func snapshot[T mat.Number, R, C mat.Dim](t *testing.T, m mat.Matrix[T, R, C]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}

// evalAll queries every cell of an expression once, row-major, into a
// nested slice. Lets tests compare lazy views without materializing.
func evalAll[T mat.Number, R, C mat.Dim](t *testing.T, e expr.Expr[T, R, C]) [][]T {
	t.Helper()
	out := make([][]T, e.Rows())
	for i := range out {
		out[i] = make([]T, e.Cols())
		for j := range out[i] {
			v, err := e.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}

// Compile-time checks: the probes are valid operands.
var (
	_ expr.Expr[int, mat.D2, mat.D2]     = probeExpr[int, mat.D2, mat.D2]{}
	_ expr.Expr[float64, mat.D2, mat.D2] = failExpr[float64, mat.D2, mat.D2]{}
)
