// SPDX-License-Identifier: MIT
// Package mat — dense fixed-shape matrix storage and element access.
//
// Matrix[T, R, C] owns R·C elements of T in column-major order: element
// (i, j) lives at linear offset i + j·R, so a column is one contiguous
// run of the backing slice. The shape is carried by the dimension tags,
// never by runtime state, and therefore cannot drift.

package mat

import "fmt"

// Matrix is a dense R×C matrix of T with column-major storage.
//
// The zero value is a valid all-zeros matrix that has not allocated yet:
// reads observe zeros and the first write through a pointer receiver
// allocates the backing slice. Copying a Matrix value copies the header
// only; backing storage is shared, as with any slice-backed container.
// Use Clone for an independently owned copy; kernels never alias their
// inputs into their outputs.
type Matrix[T Number, R, C Dim] struct {
	data     []T  // column-major backing; len == R·C once allocated
	allowNaN bool // write-guard policy captured at construction
}

// New returns an allocated all-zeros R×C matrix.
// Deterministic: a single allocation, zeroing by the runtime.
// Complexity: O(R·C).
func New[T Number, R, C Dim](opts ...Option) Matrix[T, R, C] {
	o := gatherOptions(opts...)
	r, c := shapeOf[R, C]()

	return Matrix[T, R, C]{data: make([]T, r*c), allowNaN: o.allowNaN}
}

// NewRow builds a 1×N row vector from exactly N elements, the flat
// construction path. Flat literals exist only for vector shapes: the
// signatures offer no flat route to a general matrix.
//
// Errors:
//   - ErrDimensionMismatch when len(elems) != N; the wrap names N.
//   - ErrNaNInf when an element is not finite (guard is on for literals).
func NewRow[T Number, N Dim](elems ...T) (Matrix[T, D1, N], error) {
	var zero Matrix[T, D1, N]
	_, n := shapeOf[D1, N]()
	if err := checkCount(opNewRow, len(elems), n, "elements"); err != nil {
		return zero, err
	}
	v := New[T, D1, N]()
	for i, e := range elems {
		if err := checkFinite(e, v.allowNaN); err != nil {
			return zero, matErrorf(opNewRow, err)
		}
		v.data[i] = e
	}

	return v, nil
}

// NewCol builds an N×1 column vector from exactly N elements.
// The contracts mirror NewRow.
func NewCol[T Number, N Dim](elems ...T) (Matrix[T, N, D1], error) {
	var zero Matrix[T, N, D1]
	n, _ := shapeOf[N, D1]()
	if err := checkCount(opNewCol, len(elems), n, "elements"); err != nil {
		return zero, err
	}
	v := New[T, N, D1]()
	for i, e := range elems {
		if err := checkFinite(e, v.allowNaN); err != nil {
			return zero, matErrorf(opNewCol, err)
		}
		v.data[i] = e
	}

	return v, nil
}

// FromNested builds an R×C matrix from R rows of C elements each, the
// nested construction path. Construction either fully succeeds or returns
// an error; no partially filled matrix escapes.
//
// Errors:
//   - ErrDimensionMismatch when the outer length is not R, or any inner
//     length is not C; the wrap names the expected count and, for inner
//     mismatches, the offending row.
//   - ErrNaNInf when an element is not finite and the guard is on.
func FromNested[T Number, R, C Dim](rows [][]T, opts ...Option) (Matrix[T, R, C], error) {
	var zero Matrix[T, R, C]
	o := gatherOptions(opts...)
	r, c := shapeOf[R, C]()
	if len(rows) != r {
		return zero, fmt.Errorf("%s: have %d rows, want %d: %w", opFromNested, len(rows), r, ErrDimensionMismatch)
	}
	m := Matrix[T, R, C]{data: make([]T, r*c), allowNaN: o.allowNaN}
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return zero, fmt.Errorf("%s: row %d: have %d columns, want %d: %w",
				opFromNested, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err := checkFinite(rows[i][j], o.allowNaN); err != nil {
				return zero, matErrorf(opFromNested, err)
			}
			m.data[i+j*r] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count R.
func (m Matrix[T, R, C]) Rows() int { return dimSize[R]() }

// Cols returns the column count C.
func (m Matrix[T, R, C]) Cols() int { return dimSize[C]() }

// Shape returns the zero dimension tags R and C. Generic code uses it to
// recover the shape parameters from a value; package expr leans on it so
// node constructors infer their shape from the operands.
func (m Matrix[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// IsRowVector reports whether the shape is 1×C.
func (m Matrix[T, R, C]) IsRowVector() bool { return m.Rows() == 1 }

// IsColVector reports whether the shape is R×1.
func (m Matrix[T, R, C]) IsColVector() bool { return m.Cols() == 1 }

// IsScalar reports whether the shape is 1×1.
func (m Matrix[T, R, C]) IsScalar() bool { return m.IsRowVector() && m.IsColVector() }

// IsVector reports whether either dimension is 1.
func (m Matrix[T, R, C]) IsVector() bool { return m.IsRowVector() || m.IsColVector() }

// At returns the element at (i, j).
//
// Errors:
//   - ErrIndexOutOfBounds when i ∉ [0,R) or j ∉ [0,C).
func (m Matrix[T, R, C]) At(i, j int) (T, error) {
	var zero T
	r, c := m.Rows(), m.Cols()
	if err := checkIndex(i, j, r, c); err != nil {
		return zero, accessErrorf(ctxAt, i, j, err)
	}
	if m.data == nil { // unallocated zero value reads as zeros
		return zero, nil
	}

	return m.data[i+j*r], nil
}

// Set stores v at (i, j), allocating on the first write to a zero value.
//
// Errors:
//   - ErrIndexOutOfBounds when the index is outside the shape.
//   - ErrNaNInf when the guard is on and v is not finite.
func (m *Matrix[T, R, C]) Set(i, j int, v T) error {
	r, c := m.Rows(), m.Cols()
	if err := checkIndex(i, j, r, c); err != nil {
		return accessErrorf(ctxSet, i, j, err)
	}
	if err := checkFinite(v, m.allowNaN); err != nil {
		return accessErrorf(ctxSet, i, j, err)
	}
	if m.data == nil {
		m.data = make([]T, r*c)
	}
	m.data[i+j*r] = v

	return nil
}

// Clone returns a deep copy; mutations on either side stay invisible to
// the other. An unallocated zero value clones to an unallocated zero value.
// Complexity: O(R·C).
func (m Matrix[T, R, C]) Clone() Matrix[T, R, C] {
	out := Matrix[T, R, C]{allowNaN: m.allowNaN}
	if m.data != nil {
		out.data = append([]T(nil), m.data...)
	}

	return out
}

// Row copies row i into a new 1×C row vector.
//
// Errors:
//   - ErrIndexOutOfBounds when i ∉ [0,R).
func (m Matrix[T, R, C]) Row(i int) (Matrix[T, D1, C], error) {
	r, c := m.Rows(), m.Cols()
	if err := checkVecIndex(i, r); err != nil {
		return Matrix[T, D1, C]{}, vecErrorf(fnRow, i, err)
	}
	out := New[T, D1, C]()
	if m.data == nil {
		return out, nil
	}
	for j := 0; j < c; j++ { // row elements stride by R in column-major layout
		out.data[j] = m.data[i+j*r]
	}

	return out, nil
}

// Col copies column j into a new R×1 column vector.
//
// Errors:
//   - ErrIndexOutOfBounds when j ∉ [0,C).
func (m Matrix[T, R, C]) Col(j int) (Matrix[T, R, D1], error) {
	r, c := m.Rows(), m.Cols()
	if err := checkVecIndex(j, c); err != nil {
		return Matrix[T, R, D1]{}, vecErrorf(fnCol, j, err)
	}
	out := New[T, R, D1]()
	if m.data == nil {
		return out, nil
	}
	copy(out.data, m.data[j*r:(j+1)*r]) // a column is contiguous in column-major storage

	return out, nil
}

// RowAt returns the i-th element of a 1×N row vector. Only row-vector
// shapes instantiate; RowAt over a general matrix does not compile.
//
// Errors:
//   - ErrIndexOutOfBounds when i ∉ [0,N).
func RowAt[T Number, N Dim](v Matrix[T, D1, N], i int) (T, error) {
	var zero T
	if err := checkVecIndex(i, v.Cols()); err != nil {
		return zero, vecErrorf(fnRowAt, i, err)
	}
	if v.data == nil {
		return zero, nil
	}

	return v.data[i], nil // offset 0 + i·1
}

// ColAt returns the i-th element of an N×1 column vector.
//
// Errors:
//   - ErrIndexOutOfBounds when i ∉ [0,N).
func ColAt[T Number, N Dim](v Matrix[T, N, D1], i int) (T, error) {
	var zero T
	if err := checkVecIndex(i, v.Rows()); err != nil {
		return zero, vecErrorf(fnColAt, i, err)
	}
	if v.data == nil {
		return zero, nil
	}

	return v.data[i], nil // offset i + 0·N
}

// SetRowAt stores x at position i of a 1×N row vector, the writable side
// of single-index access. Allocates on the first write to a zero value.
//
// Errors:
//   - ErrIndexOutOfBounds when i ∉ [0,N).
//   - ErrNaNInf when the guard is on and x is not finite.
func SetRowAt[T Number, N Dim](v *Matrix[T, D1, N], i int, x T) error {
	n := v.Cols()
	if err := checkVecIndex(i, n); err != nil {
		return vecErrorf(fnSetRowAt, i, err)
	}
	if err := checkFinite(x, v.allowNaN); err != nil {
		return vecErrorf(fnSetRowAt, i, err)
	}
	if v.data == nil {
		v.data = make([]T, n)
	}
	v.data[i] = x

	return nil
}

// SetColAt stores x at position i of an N×1 column vector.
// The contracts mirror SetRowAt.
func SetColAt[T Number, N Dim](v *Matrix[T, N, D1], i int, x T) error {
	n := v.Rows()
	if err := checkVecIndex(i, n); err != nil {
		return vecErrorf(fnSetColAt, i, err)
	}
	if err := checkFinite(x, v.allowNaN); err != nil {
		return vecErrorf(fnSetColAt, i, err)
	}
	if v.data == nil {
		v.data = make([]T, n)
	}
	v.data[i] = x

	return nil
}

// Value converts a 1×1 matrix to its bare element. Scalar-only by
// signature; other shapes do not compile.
func Value[T Number](s Matrix[T, D1, D1]) T {
	if s.data == nil {
		var zero T
		return zero
	}

	return s.data[0]
}
