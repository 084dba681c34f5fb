// Package linalg implements dense numerical solvers on top of the matrix
// algebra: Doolittle LU factorization and the element-based Jacobi iterative
// method for linear systems.
//
// Both solvers operate on already-materialized matrix.Dense values — they
// need concrete storage, not lazy expressions. Materialize any expression
// first and pass the result in.
//
// Numerical policy:
//
//   - LU performs no pivoting (deterministic elimination order); a zero
//     pivot fails fast with ErrSingular instead of dividing by zero.
//   - Jacobi checks the diagonal up front (ErrZeroDiagonal) but does not
//     verify diagonal dominance; convergence is the caller's bet, and the
//     outcome is reported in Result.Converged rather than guessed from the
//     absence of an error.
//
// See the examples for typical solve flows.
package linalg
