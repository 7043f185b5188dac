// SPDX-License-Identifier: MIT
// Package expr — sentinel errors, panic messages and wrapping helpers.
//
// Index checking shares mat.ErrIndexOutOfBounds so one bounds policy
// covers the whole module; errors.Is works across package lines.

package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixmat/mat"
)

// ErrNilExpression is returned by Materialize when handed a nil expression.
var ErrNilExpression = errors.New("expr: nil expression")

// panicNilOperand guards node constructors: composing with a nil operand
// is a programmer error, not a recoverable condition.
const panicNilOperand = "expr: nil operand"

// Node kind names and operation tags for error wrapping.
const (
	kindSub      = "Sub"
	kindAdd      = "Add"
	kindHadamard = "Hadamard"
	kindNeg      = "Neg"
	kindScale    = "Scale"

	opMaterialize = "Materialize"
)

// nodeErrorf wraps err with the node kind and the queried index.
func nodeErrorf(kind string, i, j int, err error) error {
	return fmt.Errorf("%s.At(%d,%d): %w", kind, i, j, err)
}

// exprErrorf wraps err with an operation tag.
func exprErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkIndex validates a query index against the node shape (r, c).
func checkIndex(i, j, r, c int) error {
	if i < 0 || i >= r || j < 0 || j >= c {
		return mat.ErrIndexOutOfBounds
	}

	return nil
}
