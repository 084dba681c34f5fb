// SPDX-License-Identifier: MIT

// Package matrix: scalar constraints and the Expression contract shared by
// every algebra participant. Errors live in errors.go and validators in
// validators.go per the package conventions.

package matrix

import "golang.org/x/exp/constraints"

// Scalar is the element type admitted by the algebra: any fixed-size integer
// or floating-point type. Both operands of a binary operator must share the
// exact same Scalar type; there is no implicit promotion — mixing, say,
// Expression[float64] with Expression[float32] does not compile.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float narrows Scalar to floating-point types. The numeric solvers (LU,
// Jacobi) divide by pivots and accumulate residuals, which is only meaningful
// over floats.
type Float interface {
	constraints.Float
}

// Expression represents one node of a lazily evaluated matrix expression:
// either a concrete leaf (Dense, sparse.CSR) or an operator node wrapping two
// operands. An Expression reports its fixed shape and produces single
// elements on demand; operator nodes never copy operand data and defer all
// arithmetic to the first read of a specific cell.
//
// At must be a pure function of the operand values at call time: no mutation,
// no observable side effect beyond the returned value. Reads outside the
// reported shape return ErrOutOfRange (surfaced from the leaf that detects it).
type Expression[T Scalar] interface {
	// Rows returns the number of rows in the expression's shape.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the expression's shape.
	// Complexity: O(1).
	Cols() int

	// At evaluates the element at 1-indexed (row, col).
	// Leaves read storage in O(1); operator nodes evaluate their subgraph
	// bottom-up for this one cell.
	At(row, col int) (T, error)
}
