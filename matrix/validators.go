// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand compatibility
//     checks (the runtime half of the shape/type contract; the scalar-type
//     half is enforced by the compiler through the shared type parameter).
//   - Keep operator constructors and kernels minimal by delegating nil/shape
//     checks here.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the expression reference is non-nil.
// Returns ErrNilExpression if e == nil. Complexity: O(1).
func ValidateNotNil[T Scalar](e Expression[T]) error {
	if e == nil {
		return validatorErrorf("ValidateNotNil", ErrNilExpression)
	}

	return nil
}

// ValidateSameShape ensures expressions a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape[T Scalar](a, b Expression[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// The gate for every element-wise operator (Add, Sub, Hadamard, comparisons).
// Errors: ErrNilExpression, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape[T Scalar](a, b Expression[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// The gate for the matrix product; the result shape is (a.Rows, b.Cols).
// Errors: ErrNilExpression, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible[T Scalar](a, b Expression[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that e is square (Rows == Cols).
// Assumes e is non-nil. Returns wrapped ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare[T Scalar](e Expression[T]) error {
	if e.Rows() != e.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
// Errors: ErrNilExpression, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil[T Scalar](e Expression[T]) error {
	if err := ValidateNotNil(e); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(e); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateColumnVector ensures e is a non-nil n×1 column vector.
// Used by the iterative solvers for right-hand sides and iterates.
// Errors: ErrNilExpression, ErrNotVector, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateColumnVector[T Scalar](e Expression[T], n int) error {
	if err := ValidateNotNil(e); err != nil {
		return validatorErrorf("ValidateColumnVector", err)
	}
	if e.Cols() != 1 {
		return validatorErrorf("ValidateColumnVector", ErrNotVector)
	}
	if e.Rows() != n {
		return validatorErrorf("ValidateColumnVector", ErrDimensionMismatch)
	}

	return nil
}
