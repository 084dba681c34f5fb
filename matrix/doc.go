// Package matrix provides fixed-shape dense matrices and a lazily evaluated
// expression algebra over them.
//
// The matrix package provides:
//
//   - Expression, the capability every algebra participant implements:
//     report a shape and produce the element at a 1-indexed (row, col).
//   - Dense, the concrete row-major leaf storage with fill policies,
//     bounds-checked accessors and row/column iterators.
//   - Operator constructors (Add, Sub, Mul, Hadamard, Scale, Eq, Ne, Lt,
//     Le, Gt, Ge) that validate operand compatibility up front and build
//     expression nodes holding references to their operands; no element is
//     computed until the node is read or materialized.
//   - Materialize and Dense.AssignFrom, the conversion path from any
//     expression back into concrete storage, visiting each cell exactly once.
//
// Operand scalar types are enforced at compile time: both sides of every
// operator are Expression[T] over the same T. Shape compatibility is checked
// when the operator node is constructed, before any element is touched, and
// reported through the package sentinel errors.
//
// Repeated sub-expressions are re-evaluated per output cell; the algebra
// performs no common-subexpression caching. Materialize a shared node once
// and reuse the Dense result when that cost matters.
//
// See the examples in this package and in linalg for usage patterns.
package matrix
