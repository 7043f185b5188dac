// SPDX-License-Identifier: MIT
// Package expr — the operand capability contract.

package expr

import "github.com/katalvlaran/fixmat/mat"

// Expr is the capability a lazy node needs from an operand: a fixed shape
// and a per-element query. mat.Matrix satisfies it directly, so matrices
// and nodes are interchangeable operands and trees compose to arbitrary
// depth.
//
// Shape returns the zero dimension tags. Carrying R and C in a method
// signature lets node constructors infer the full shape from concrete
// operands, and makes two differently-shaped operands fail to unify at
// compile time, so the lazy layer's shape constraint costs nothing at
// runtime.
type Expr[T mat.Number, R, C mat.Dim] interface {
	Rows() int
	Cols() int
	At(i, j int) (T, error)
	Shape() (R, C)
}

// Matrices are valid operands as-is.
var _ Expr[float64, mat.D2, mat.D3] = mat.Matrix[float64, mat.D2, mat.D3]{}
