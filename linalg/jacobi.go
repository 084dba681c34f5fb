// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"github.com/pairinstability/lao/matrix"
)

// opJacobi tags Jacobi errors for uniform wrapping.
const opJacobi = "Jacobi"

// Result reports the outcome of an iterative solve. Non-convergence is a
// legitimate outcome, not an error: X always holds the last iterate, and
// callers must inspect Converged rather than infer success from a nil error.
type Result[T matrix.Float] struct {
	// X is the final iterate, an n×1 column vector owned by the caller.
	X *matrix.Dense[T]
	// Converged reports whether the residual dropped below the tolerance
	// within the iteration budget.
	Converged bool
	// Iterations is the number of iterations actually performed.
	Iterations int
	// Residual is the last total absolute update Σ|x'(i) - x(i)|.
	Residual T
}

// Jacobi approximates the solution of A·x = b with the element-based Jacobi
// method: every component of the next iterate is computed from the previous
// full iterate, then the iterate is replaced wholesale. This simultaneous
// update is what distinguishes Jacobi from Gauss-Seidel and is preserved
// exactly — the right-hand side of the update never sees partially-updated
// values.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square n×n), b (n×1 column vector),
//     maxIter ≥ 1, tol finite and > 0, and every diagonal entry A(i,i) ≠ 0.
//   - Stage 2: Start from the all-ones iterate (zero can be a fixed point of
//     the iteration map, which would stall the first step). Per iteration,
//     compute x'(i) = (b(i) - Σ_{j≠i} A(i,j)·x(j)) / A(i,i) into a scratch
//     vector, accumulate the residual Σ|x'(i) - x(i)|, then swap the scratch
//     in as the new iterate.
//
// Behavior highlights:
//   - Convergence requires A to be diagonally dominant (or otherwise make
//     the iteration map contractive); that precondition is the caller's and
//     is not checked.
//   - Exhausting maxIter returns the last iterate with Converged=false and
//     a nil error.
//
// Errors:
//   - matrix.ErrNilExpression, matrix.ErrNonSquare, matrix.ErrNotVector,
//     matrix.ErrDimensionMismatch (validation).
//   - ErrBadIterationBudget, ErrBadTolerance, ErrZeroDiagonal.
//
// Complexity: Time O(maxIter × n²), Space O(n) beyond the returned iterate.
func Jacobi[T matrix.Float](a, b *matrix.Dense[T], maxIter int, tol T) (Result[T], error) {
	var res Result[T]

	// Pointer checks first: a typed nil *Dense wrapped in the Expression
	// interface slips past the interface-level nil check and panics in Rows.
	if a == nil || b == nil {
		return res, fmt.Errorf("%s: %w", opJacobi, matrix.ErrNilExpression)
	}

	// Validate the system shape.
	if err := matrix.ValidateSquareNonNil[T](a); err != nil {
		return res, fmt.Errorf("%s: %w", opJacobi, err)
	}
	n := a.Rows()
	if err := matrix.ValidateColumnVector[T](b, n); err != nil {
		return res, fmt.Errorf("%s: %w", opJacobi, err)
	}

	// Validate the iteration budget and tolerance.
	if maxIter < 1 {
		return res, fmt.Errorf("%s: %w", opJacobi, ErrBadIterationBudget)
	}
	if t := float64(tol); math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return res, fmt.Errorf("%s: %w", opJacobi, ErrBadTolerance)
	}

	// The update divides by A(i,i); refuse a zero diagonal up front rather
	// than blow up mid-iteration.
	var i, j int
	var diag T
	for i = 1; i <= n; i++ {
		diag, _ = a.At(i, i)
		if diag == 0 {
			return res, fmt.Errorf("%s: A(%d,%d): %w", opJacobi, i, i, ErrZeroDiagonal)
		}
	}

	// Initial guess: all ones.
	x, err := matrix.NewColVector[T](n)
	if err != nil {
		return res, fmt.Errorf("%s: %w", opJacobi, err)
	}
	x.Ones()
	scratch, err := matrix.NewColVector[T](n)
	if err != nil {
		return res, fmt.Errorf("%s: %w", opJacobi, err)
	}

	// Iterate. Indices are proven in range by the validation above, so
	// element errors are impossible and ignored.
	var (
		iter           int
		sum, aij, bi   T
		xj, xOld, xNew T
		residual       T
	)
	for iter = 1; iter <= maxIter; iter++ {
		// Compute the full scratch iterate from the previous iterate only.
		for i = 1; i <= n; i++ {
			sum = 0
			for j = 1; j <= n; j++ {
				if j == i {
					continue
				}
				aij, _ = a.At(i, j)
				xj, _ = x.AtVec(j)
				sum += aij * xj
			}
			bi, _ = b.AtVec(i)
			diag, _ = a.At(i, i)
			_ = scratch.SetVec(i, (bi-sum)/diag)
		}

		// Total absolute update between the two full iterates.
		residual = 0
		for i = 1; i <= n; i++ {
			xNew, _ = scratch.AtVec(i)
			xOld, _ = x.AtVec(i)
			residual += abs(xNew - xOld)
		}

		// Adopt the scratch wholesale; the old iterate becomes next scratch.
		x, scratch = scratch, x

		if residual < tol {
			return Result[T]{X: x, Converged: true, Iterations: iter, Residual: residual}, nil
		}
	}

	// Budget exhausted: report the last iterate, inspectably non-converged.
	return Result[T]{X: x, Converged: false, Iterations: maxIter, Residual: residual}, nil
}

// abs returns |v| without the float64 round-trip of math.Abs.
func abs[T matrix.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
