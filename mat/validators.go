// SPDX-License-Identifier: MIT
// Package mat — runtime validators.
//
// The dimension tags discharge shape validation at compile time; what
// remains at runtime is bounds checking for indices, length checking for
// literal construction, and the numeric write guard.

package mat

import (
	"fmt"
	"math"
)

// checkIndex validates a 2D index against the shape (r, c).
func checkIndex(i, j, r, c int) error {
	if i < 0 || i >= r || j < 0 || j >= c {
		return ErrIndexOutOfBounds
	}

	return nil
}

// checkVecIndex validates a single index against length n.
func checkVecIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfBounds
	}

	return nil
}

// checkCount validates a literal element count against the declared shape.
// The returned error names the expected count so a caller can see at a
// glance what the literal should have supplied.
func checkCount(op string, have, want int, unit string) error {
	if have != want {
		return fmt.Errorf("%s: have %d %s, want %d: %w", op, have, unit, want, ErrDimensionMismatch)
	}

	return nil
}

// checkFinite validates that v is neither NaN nor ±Inf. A true allow flag
// skips the check entirely. Integer element types always pass.
func checkFinite[T Number](v T, allow bool) error {
	if allow {
		return nil
	}
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNaNInf
	}

	return nil
}
