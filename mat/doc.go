// Package mat provides dense matrices whose shape is part of the type.
//
// The mat package provides:
//
//   - Matrix[T, R, C]: column-major storage over dimension tags D1…D12,
//     so a 2×3 and a 3×2 are distinct, incompatible types and shape
//     mismatches fail to compile.
//   - Construction from flat vector literals (NewRow, NewCol), nested
//     literals (FromNested), plus New and Identity builders.
//   - Eager kernels: Add, Scale, Dot, Mul, Transpose. All of them total
//     functions, since the compiler discharged every shape precondition.
//   - Checked element access (At, Set), single-index vector access
//     (RowAt, ColAt and their setters), copying row/column extraction,
//     and scalar conversion (Value).
//
// Shapes are meant to stay small: storage is O(R·C) per value and the
// kernels are direct loops with no blocking or vectorization.
//
// See the examples in this package and in expr for usage patterns.
package mat
