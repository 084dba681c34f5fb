// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set. Structural errors (nil inputs,
// non-square A, mismatched right-hand sides) surface the matrix package
// sentinels through the shared validators; the sentinels here cover the
// solver-specific failure modes. Tests check all of them via errors.Is.

package linalg

import "errors"

var (
	// ErrSingular is returned when a zero pivot is encountered during LU
	// factorization in the non-pivoting scheme (intentional for determinism).
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrZeroDiagonal signals a zero diagonal entry in the Jacobi system
	// matrix; the element-based update divides by A(i,i), so the solver
	// refuses to start rather than divide by zero mid-iteration.
	ErrZeroDiagonal = errors.New("linalg: zero diagonal entry")

	// ErrBadIterationBudget indicates a non-positive maximum iteration count.
	ErrBadIterationBudget = errors.New("linalg: max iterations must be > 0")

	// ErrBadTolerance indicates a tolerance that is not a finite positive value.
	ErrBadTolerance = errors.New("linalg: tolerance must be finite and > 0")
)
