// SPDX-License-Identifier: MIT
// Package expr — lazy elementwise nodes.
//
// Every node follows one shape: store the operand(s), derive rows/cols
// from them, and answer At(i, j) by querying the operands afresh and
// applying the scalar op. No node owns result storage and nothing is
// memoized; repeated queries repeat the work, trading time for zero
// intermediate buffers.
//
// The shared plumbing lives in the unexported binary and unary bases;
// each public node contributes only its scalar function.

package expr

import "github.com/katalvlaran/fixmat/mat"

// binary holds the operand pair and shape plumbing shared by the
// elementwise binary nodes.
type binary[T mat.Number, R, C mat.Dim] struct {
	left  Expr[T, R, C]
	right Expr[T, R, C]
}

// Rows reports the left operand's rows (the right's match by construction).
func (b binary[T, R, C]) Rows() int { return b.left.Rows() }

// Cols reports the right operand's cols (the left's match by construction).
func (b binary[T, R, C]) Cols() int { return b.right.Cols() }

// Shape returns the zero dimension tags.
func (b binary[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// query runs the shared bounds check and operand queries, delegating the
// scalar combination to op.
//
// Errors:
//   - mat.ErrIndexOutOfBounds when (i, j) is outside the shape.
//   - operand failures, wrapped with the node kind and index.
func (b binary[T, R, C]) query(kind string, i, j int, op func(l, r T) T) (T, error) {
	var zero T
	if err := checkIndex(i, j, b.Rows(), b.Cols()); err != nil {
		return zero, nodeErrorf(kind, i, j, err)
	}
	lv, err := b.left.At(i, j)
	if err != nil {
		return zero, nodeErrorf(kind, i, j, err)
	}
	rv, err := b.right.At(i, j)
	if err != nil {
		return zero, nodeErrorf(kind, i, j, err)
	}

	return op(lv, rv), nil
}

// unary holds the single operand and shape plumbing shared by the
// elementwise unary nodes.
type unary[T mat.Number, R, C mat.Dim] struct {
	operand Expr[T, R, C]
}

// Rows reports the operand's rows.
func (u unary[T, R, C]) Rows() int { return u.operand.Rows() }

// Cols reports the operand's cols.
func (u unary[T, R, C]) Cols() int { return u.operand.Cols() }

// Shape returns the zero dimension tags.
func (u unary[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// query runs the shared bounds check and operand query, delegating the
// scalar transform to op.
func (u unary[T, R, C]) query(kind string, i, j int, op func(v T) T) (T, error) {
	var zero T
	if err := checkIndex(i, j, u.Rows(), u.Cols()); err != nil {
		return zero, nodeErrorf(kind, i, j, err)
	}
	v, err := u.operand.At(i, j)
	if err != nil {
		return zero, nodeErrorf(kind, i, j, err)
	}

	return op(v), nil
}

// SubExpr is the pending elementwise difference left − right, the exemplar
// lazy node. Immutable once built; evaluated one element at a time.
type SubExpr[T mat.Number, R, C mat.Dim] struct {
	binary[T, R, C]
}

// Sub composes the lazy difference l − r. Operand shapes must unify on one
// (R, C) pair or the call does not compile. Panics on a nil operand.
func Sub[T mat.Number, R, C mat.Dim](l, r Expr[T, R, C]) SubExpr[T, R, C] {
	if l == nil || r == nil {
		panic(panicNilOperand)
	}

	return SubExpr[T, R, C]{binary[T, R, C]{left: l, right: r}}
}

// At computes left(i,j) − right(i,j), afresh on every call.
func (e SubExpr[T, R, C]) At(i, j int) (T, error) {
	return e.query(kindSub, i, j, func(l, r T) T { return l - r })
}

// AddExpr is the pending elementwise sum left + right.
type AddExpr[T mat.Number, R, C mat.Dim] struct {
	binary[T, R, C]
}

// Add composes the lazy sum l + r. Panics on a nil operand.
func Add[T mat.Number, R, C mat.Dim](l, r Expr[T, R, C]) AddExpr[T, R, C] {
	if l == nil || r == nil {
		panic(panicNilOperand)
	}

	return AddExpr[T, R, C]{binary[T, R, C]{left: l, right: r}}
}

// At computes left(i,j) + right(i,j), afresh on every call.
func (e AddExpr[T, R, C]) At(i, j int) (T, error) {
	return e.query(kindAdd, i, j, func(l, r T) T { return l + r })
}

// HadamardExpr is the pending elementwise product left ⊙ right.
type HadamardExpr[T mat.Number, R, C mat.Dim] struct {
	binary[T, R, C]
}

// Hadamard composes the lazy elementwise product l ⊙ r. Panics on a nil
// operand.
func Hadamard[T mat.Number, R, C mat.Dim](l, r Expr[T, R, C]) HadamardExpr[T, R, C] {
	if l == nil || r == nil {
		panic(panicNilOperand)
	}

	return HadamardExpr[T, R, C]{binary[T, R, C]{left: l, right: r}}
}

// At computes left(i,j) · right(i,j), afresh on every call.
func (e HadamardExpr[T, R, C]) At(i, j int) (T, error) {
	return e.query(kindHadamard, i, j, func(l, r T) T { return l * r })
}

// NegExpr is the pending elementwise negation of its operand.
type NegExpr[T mat.Number, R, C mat.Dim] struct {
	unary[T, R, C]
}

// Neg composes the lazy negation −e. For unsigned element types negation
// wraps modulo 2ⁿ, as Go's unary minus does. Panics on a nil operand.
func Neg[T mat.Number, R, C mat.Dim](e Expr[T, R, C]) NegExpr[T, R, C] {
	if e == nil {
		panic(panicNilOperand)
	}

	return NegExpr[T, R, C]{unary[T, R, C]{operand: e}}
}

// At computes −operand(i,j), afresh on every call.
func (e NegExpr[T, R, C]) At(i, j int) (T, error) {
	return e.query(kindNeg, i, j, func(v T) T { return -v })
}

// ScaleExpr is the pending elementwise scaling of its operand by a fixed
// factor.
type ScaleExpr[T mat.Number, R, C mat.Dim] struct {
	unary[T, R, C]
	factor T
}

// Scale composes the lazy scaling k·e. Panics on a nil operand.
func Scale[T mat.Number, R, C mat.Dim](e Expr[T, R, C], k T) ScaleExpr[T, R, C] {
	if e == nil {
		panic(panicNilOperand)
	}

	return ScaleExpr[T, R, C]{unary: unary[T, R, C]{operand: e}, factor: k}
}

// At computes factor · operand(i,j), afresh on every call.
func (e ScaleExpr[T, R, C]) At(i, j int) (T, error) {
	return e.query(kindScale, i, j, func(v T) T { return e.factor * v })
}

// Compile-time checks: every node is itself a valid operand.
var (
	_ Expr[int, mat.D2, mat.D2]     = SubExpr[int, mat.D2, mat.D2]{}
	_ Expr[int, mat.D2, mat.D2]     = AddExpr[int, mat.D2, mat.D2]{}
	_ Expr[int, mat.D2, mat.D2]     = HadamardExpr[int, mat.D2, mat.D2]{}
	_ Expr[float64, mat.D3, mat.D1] = NegExpr[float64, mat.D3, mat.D1]{}
	_ Expr[float64, mat.D3, mat.D1] = ScaleExpr[float64, mat.D3, mat.D1]{}
)
