// SPDX-License-Identifier: MIT
// Package mat — presentation helpers.
//
// Rendering consumes only shape and element state: rows outer, columns
// inner, one bracketed row per line ("[1, 2]\n[3, 4]\n").

package mat

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the matrix with the default precision and delimiter.
func (m Matrix[T, R, C]) String() string {
	var sb strings.Builder
	_ = m.fprint(&sb, defaultOptions()) // strings.Builder writes cannot fail

	return sb.String()
}

// Fprint renders m to w, honoring WithPrecision and WithDelimiter.
//
// Errors:
//   - write failures from w, wrapped with the operation tag.
func Fprint[T Number, R, C Dim](w io.Writer, m Matrix[T, R, C], opts ...Option) error {
	return m.fprint(w, gatherOptions(opts...))
}

// fprint is the shared rendering loop.
func (m Matrix[T, R, C]) fprint(w io.Writer, o Options) error {
	rows, cols := m.Rows(), m.Cols()
	var (
		i, j int // loop iterators
		v    T
		err  error
	)
	for i = 0; i < rows; i++ {
		if _, err = io.WriteString(w, "["); err != nil {
			return matErrorf(opFprint, err)
		}
		for j = 0; j < cols; j++ {
			if j > 0 {
				if _, err = io.WriteString(w, o.delimiter); err != nil {
					return matErrorf(opFprint, err)
				}
			}
			v, _ = m.At(i, j) // safe: loop bounds match the shape
			if _, err = io.WriteString(w, formatElem(v, o.precision)); err != nil {
				return matErrorf(opFprint, err)
			}
		}
		if _, err = io.WriteString(w, "]\n"); err != nil {
			return matErrorf(opFprint, err)
		}
	}

	return nil
}

// formatElem renders one element. The default precision keeps integer
// values exact; an explicit precision formats through float64 with a
// fixed fraction, which suits float element types.
func formatElem[T Number](v T, precision int) string {
	if precision < 0 {
		return fmt.Sprintf("%v", v)
	}

	return strconv.FormatFloat(float64(v), 'f', precision, 64)
}
