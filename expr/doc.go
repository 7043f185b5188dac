// Package expr provides lazy expression nodes over fixed-shape matrices.
//
// The expr package provides:
//
//   - Expr[T, R, C]: the operand capability, a fixed shape plus a
//     per-element query. mat.Matrix satisfies it, as does every node, so
//     trees compose to arbitrary depth.
//   - Binary nodes Sub (the exemplar), Add and Hadamard; unary nodes Neg
//     and Scale. A node stores its operands, owns no result buffer, and
//     recomputes each element on every query.
//   - Materialize: evaluate an expression into an owned mat.Matrix by
//     querying each position exactly once.
//
// Composing differently-shaped operands does not compile: the dimension
// tags travel through Shape(), so the type checker either unifies the
// operands' shapes or rejects the program.
//
// Queries recompute from scratch: zero extra storage, cost proportional
// to tree depth per element. Materialize once and reuse the result when
// an expression is read more than once.
package expr
