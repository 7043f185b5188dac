// Package fixmat is a small linear-algebra toolkit for matrices whose
// shape is part of the type — dimension mismatches are compile errors,
// not runtime surprises.
//
// 🚀 What is fixmat?
//
//	A generics-first library for statically-shaped numeric matrices:
//		• Fixed shapes: Matrix[T, R, C] with dimension tags D1…D12
//		• Column-major storage, value-style API, explicit Clone
//		• Eager kernels: Add, Scale, Dot, Mul, Transpose, Identity
//		• Vector sugar: row/column extraction, single-index access
//		• Lazy layer: composable expression nodes (Sub, Add, Hadamard,
//		  Neg, Scale) evaluated one element at a time, no buffers
//		• Materialize: turn any expression into an owned matrix
//
// ✨ Why choose fixmat?
//
//   - Shape errors at compile time – Mul of a 2×3 by a 4×2 does not build
//   - Pure operations – the type system removed the runtime failure modes,
//     so kernels return values, not (value, error) pairs
//   - Checked access – out-of-range indices are reported, never undefined
//   - Pure Go – no cgo, no assembly, no hidden magic
//
// Everything lives under two subpackages:
//
//	mat/  — dense fixed-shape matrix: storage, construction, eager kernels
//	expr/ — lazy expression nodes over anything matrix-shaped + Materialize
//
// Quick taste:
//
//	a, _ := mat.FromNested[int, mat.D2, mat.D2]([][]int{{5, 6}, {7, 8}})
//	b, _ := mat.FromNested[int, mat.D2, mat.D2]([][]int{{1, 2}, {3, 4}})
//	d, _ := expr.Materialize(expr.Sub(a, b)) // {{4, 4}, {4, 4}}
//
// Runnable demos live in examples/.
//
//	go get github.com/katalvlaran/fixmat
package fixmat
