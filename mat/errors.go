// SPDX-License-Identifier: MIT
// Package mat — sentinel errors and wrapping helpers.
//
// Every runtime failure surfaces as one of the sentinels below, wrapped
// with the operation name and the offending indices or counts at the
// failure site. Match with errors.Is; inspect the message for context.

package mat

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is returned when a row or column index falls outside
// the matrix shape. The policy is uniform across the module: element
// access, single-index vector access and row/column extraction are all
// checked the same way.
var ErrIndexOutOfBounds = errors.New("mat: index out of bounds")

// ErrDimensionMismatch is returned when literal construction receives a
// number of rows, columns or elements that disagrees with the declared
// shape. The wrap always names the expected count.
var ErrDimensionMismatch = errors.New("mat: dimension mismatch")

// ErrNaNInf is returned by guarded writes and constructors when a value
// is NaN or ±Inf. The guard is on by default; disable it per matrix with
// WithAllowNaN.
var ErrNaNInf = errors.New("mat: NaN or Inf value")

// Operation and accessor name constants for unified error wrapping.
const (
	opNewRow     = "NewRow"
	opNewCol     = "NewCol"
	opFromNested = "FromNested"
	opFprint     = "Fprint"

	ctxAt  = "At"
	ctxSet = "Set"

	fnRow      = "Matrix.Row"
	fnCol      = "Matrix.Col"
	fnRowAt    = "RowAt"
	fnColAt    = "ColAt"
	fnSetRowAt = "SetRowAt"
	fnSetColAt = "SetColAt"
)

// matErrorf wraps err with the operation tag.
func matErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// accessErrorf wraps err with a method name and the offending 2D index.
func accessErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// vecErrorf wraps err with a single-index accessor name and index.
func vecErrorf(fn string, i int, err error) error {
	return fmt.Errorf("%s(%d): %w", fn, i, err)
}
