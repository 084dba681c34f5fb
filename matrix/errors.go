// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate the shape before any allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a 1-indexed row or column is outside the
	// declared shape. Public indexers (At/Set) and iterator factories return
	// this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or between declared shape and supplied data: Add/Sub/Hadamard/compare on
	// different shapes, Mul where lhs.Cols != rhs.Rows, or a constructor whose
	// element data does not match rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (identity fill, LU factorization precondition).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilExpression indicates that a nil Expression (operand or receiver)
	// was passed where a value is required.
	ErrNilExpression = errors.New("matrix: nil expression")

	// ErrNotVector signals that single-index vector access was attempted on a
	// matrix that is neither 1×N nor N×1.
	ErrNotVector = errors.New("matrix: matrix is not a vector")

	// ErrUnknownFill marks a fill policy value outside the declared enum.
	ErrUnknownFill = errors.New("matrix: unknown fill policy")
)
