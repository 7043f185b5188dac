// SPDX-License-Identifier: MIT
// Package expr — terminal materialization.

package expr

import "github.com/katalvlaran/fixmat/mat"

// Materialize evaluates e into a fresh, fully owned matrix, querying every
// (i, j) exactly once in column-major order. Nodes are pure and immutable,
// so materializing the same expression twice yields equal results.
//
// The target matrix allows non-finite floats: computed values are results,
// not input sanitation, so a NaN produced by float arithmetic survives.
//
// Errors:
//   - ErrNilExpression when e is nil.
//   - any operand failure, propagated from the element queries.
//
// Complexity: O(R·C · depth) time for a tree of the given depth, O(R·C)
// space for the result.
func Materialize[T mat.Number, R, C mat.Dim](e Expr[T, R, C]) (mat.Matrix[T, R, C], error) {
	var zero mat.Matrix[T, R, C]
	if e == nil {
		return zero, exprErrorf(opMaterialize, ErrNilExpression)
	}
	out := mat.New[T, R, C](mat.WithAllowNaN())
	rows, cols := e.Rows(), e.Cols()
	var (
		i, j int // loop iterators
		v    T
		err  error
	)
	for j = 0; j < cols; j++ { // column-major fill order
		for i = 0; i < rows; i++ {
			if v, err = e.At(i, j); err != nil {
				return zero, exprErrorf(opMaterialize, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return zero, exprErrorf(opMaterialize, err)
			}
		}
	}

	return out, nil
}
