// SPDX-License-Identifier: MIT
// Package mat — element constraint and dimension tags.
//
// Purpose:
//   - Define the Number constraint shared by every kernel.
//   - Define the Dim tags that pin a matrix shape at compile time.

package mat

// Number constrains matrix elements to Go's arithmetic kinds: signed
// integers, unsigned integers and floats. Complex and bool kinds are out.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dim is the constraint satisfied by dimension tags: empty structs whose
// Size method reports the count they stand for. Instantiating Matrix with
// two tags fixes its shape for the life of the type. Matrix[float64, D2, D3]
// is a 2×3 matrix and nothing else, and the compiler rejects any operation
// whose tags disagree.
//
// Tags beyond D12 may be declared in caller packages; Size must report a
// positive count or constructors panic (see panicNonPositiveDim).
type Dim interface {
	~struct{}
	Size() int
}

// Predeclared dimension tags. D1 doubles as the vector marker:
// Matrix[T, D1, N] is a row vector, Matrix[T, N, D1] a column vector,
// and Matrix[T, D1, D1] a scalar.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
)

func (D1) Size() int  { return 1 }
func (D2) Size() int  { return 2 }
func (D3) Size() int  { return 3 }
func (D4) Size() int  { return 4 }
func (D5) Size() int  { return 5 }
func (D6) Size() int  { return 6 }
func (D7) Size() int  { return 7 }
func (D8) Size() int  { return 8 }
func (D9) Size() int  { return 9 }
func (D10) Size() int { return 10 }
func (D11) Size() int { return 11 }
func (D12) Size() int { return 12 }

// dimSize reports the element count encoded by a dimension tag type.
func dimSize[D Dim]() int {
	var d D

	return d.Size()
}

// shapeOf reports the (rows, cols) pair encoded by the tags R and C.
// Panics when a custom tag reports a non-positive size: that is a
// programmer error, not a recoverable condition.
func shapeOf[R, C Dim]() (int, int) {
	r, c := dimSize[R](), dimSize[C]()
	if r < 1 || c < 1 {
		panic(panicNonPositiveDim)
	}

	return r, c
}
