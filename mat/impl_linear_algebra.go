// SPDX-License-Identifier: MIT
// Package mat — eager linear-algebra kernels.
//
// Every kernel allocates a fresh result; inputs are never aliased into
// outputs. Shape agreement lives in the signatures (equal tags for
// elementwise work, a shared inner tag for products), so the kernels are
// total functions with no error results to thread.
//
// Determinism:
//   - Fixed loop orders, documented per kernel; identical inputs produce
//     identical outputs bit for bit.

package mat

// Identity returns the N×N identity matrix: ones on the main diagonal,
// zeros elsewhere. Square by signature; a non-square identity is not a
// type that can be written.
// Complexity: O(N²) zeroing + O(N) diagonal writes.
//
// AI-Hints:
//   - Use as the neutral element when folding chains of Mul.
func Identity[T Number, N Dim](opts ...Option) Matrix[T, N, N] {
	out := New[T, N, N](opts...)
	n := out.Rows()
	for i := 0; i < n; i++ { // fixed i order
		out.data[i+i*n] = T(1)
	}

	return out
}

// Add returns the elementwise sum a + b as a new matrix.
// Stage 1 (Prepare): allocate the result.
// Stage 2 (Execute): one flat loop over the shared column-major layout;
// an unallocated operand contributes zeros without a per-element branch.
// Complexity: O(R·C) time and space.
func Add[T Number, R, C Dim](a, b Matrix[T, R, C]) Matrix[T, R, C] {
	out := New[T, R, C]()
	switch {
	case a.data == nil && b.data == nil:
		return out
	case a.data == nil:
		copy(out.data, b.data)
		return out
	case b.data == nil:
		copy(out.data, a.data)
		return out
	}
	for k := range out.data {
		out.data[k] = a.data[k] + b.data[k]
	}

	return out
}

// AddInPlace folds o into the receiver and returns the receiver, the
// in-place counterpart of Add. A zero-value receiver allocates first.
// Complexity: O(R·C) time, O(1) extra space.
func (m *Matrix[T, R, C]) AddInPlace(o Matrix[T, R, C]) *Matrix[T, R, C] {
	if o.data == nil { // adding zeros changes nothing
		return m
	}
	if m.data == nil {
		m.data = make([]T, len(o.data))
	}
	for k := range m.data {
		m.data[k] += o.data[k]
	}

	return m
}

// Scale returns k·m as a new matrix.
// Complexity: O(R·C).
func Scale[T Number, R, C Dim](m Matrix[T, R, C], k T) Matrix[T, R, C] {
	out := New[T, R, C]()
	if m.data == nil {
		return out
	}
	for idx := range out.data {
		out.data[idx] = m.data[idx] * k
	}

	return out
}

// ScaleInPlace multiplies every element by k and returns the receiver.
// A zero-value receiver stays zero (0·k == 0) without allocating.
func (m *Matrix[T, R, C]) ScaleInPlace(k T) *Matrix[T, R, C] {
	for idx := range m.data { // nil backing: no iterations
		m.data[idx] *= k
	}

	return m
}

// Dot reduces a row vector against a column vector of the same length:
// Σ r(k)·c(k). Returns bare T, not a 1×1 matrix. The inner tag K is shared
// by both parameter types, so mismatched lengths do not compile.
// Complexity: O(K).
func Dot[T Number, K Dim](r Matrix[T, D1, K], c Matrix[T, K, D1]) T {
	var sum T
	if r.data == nil || c.data == nil {
		return sum
	}
	for k := range r.data {
		sum += r.data[k] * c.data[k]
	}

	return sum
}

// Mul returns the matrix product a×b. The inner tag K appears in both
// operand types, so incompatible products are compile errors and the
// result shape R×C falls out of the signature. Each result element is the
// dot product of a row of a and a column of b, assembled through Row/Col
// extraction: the row is hoisted per i, the column re-copied per (i, j).
// Complexity: O(R·K·C) time; R row copies and R·C column copies.
//
// AI-Hints:
//   - When multiplying repeatedly against a fixed right operand, hoist
//     b.Col(j) out of the caller's loop to save the column re-copies.
func Mul[T Number, R, K, C Dim](a Matrix[T, R, K], b Matrix[T, K, C]) Matrix[T, R, C] {
	out := New[T, R, C]()
	rows, cols := out.Rows(), out.Cols()
	var (
		i, j int               // loop iterators
		row  Matrix[T, D1, K] // left row, hoisted per i
		col  Matrix[T, K, D1] // right column
	)
	for i = 0; i < rows; i++ {
		row, _ = a.Row(i) // safe: i < R
		for j = 0; j < cols; j++ {
			col, _ = b.Col(j) // safe: j < C
			out.data[i+j*rows] = Dot(row, col)
		}
	}

	return out
}

// Transpose returns mᵀ as a new C×R matrix.
// Complexity: O(R·C); deterministic (i, j) order.
func Transpose[T Number, R, C Dim](m Matrix[T, R, C]) Matrix[T, C, R] {
	out := New[T, C, R]()
	if m.data == nil {
		return out
	}
	rows, cols := m.Rows(), m.Cols()
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[j+i*cols] = m.data[i+j*rows]
		}
	}

	return out
}
