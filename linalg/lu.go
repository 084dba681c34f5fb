// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/pairinstability/lao/matrix"
)

// opLU tags LU errors for uniform wrapping.
const opLU = "LU"

// LU computes the Doolittle factorization A = L·U of a square matrix with
// unit diagonal on L (no pivoting). Fresh factors are returned; the input is
// never mutated.
//
// Implementation:
//   - Stage 1: Validate a (non-nil, square); allocate L as identity and U as
//     zeros.
//   - Stage 2: For each column j = 1..n, fill U's row segment
//     U(j,i) = A(j,i) - Σ_{k<j} L(j,k)·U(k,i) for i ≥ j, guard the pivot
//     U(j,j), then fill L's column segment
//     L(i,j) = (A(i,j) - Σ_{k<j} L(i,k)·U(k,j)) / U(j,j) for i > j.
//
// Behavior highlights:
//   - Deterministic elimination order; no pivoting, so identical inputs give
//     bit-identical factors.
//   - A zero pivot is detected before any division and reported as
//     ErrSingular; stability-sensitive callers must precondition upstream.
//
// Errors:
//   - matrix.ErrNilExpression, matrix.ErrNonSquare (validation).
//   - ErrSingular (zero pivot U(j,j) during elimination).
//
// Complexity: Time O(n³), Space O(n²) for the two factors.
func LU[T matrix.Float](a *matrix.Dense[T]) (l, u *matrix.Dense[T], err error) {
	// Pointer check first: a typed nil *Dense wrapped in the Expression
	// interface slips past the interface-level nil check and panics in Rows.
	if a == nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, matrix.ErrNilExpression)
	}
	// Validate input square.
	if err = matrix.ValidateSquareNonNil[T](a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}
	n := a.Rows()

	// Allocate L (unit diagonal) and U (zeros).
	if l, err = matrix.NewDense[T](n, n); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}
	if err = l.Eye(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}
	if u, err = matrix.NewDense[T](n, n); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}

	// Doolittle elimination. Indices are proven in range by the shape
	// validation above, so element errors are impossible and ignored.
	var (
		i, j, k           int
		sum, aVal         T
		lVal, uVal, uDiag T
	)
	for j = 1; j <= n; j++ {
		// U(j,i) for i >= j.
		for i = j; i <= n; i++ {
			sum = 0
			for k = 1; k < j; k++ {
				lVal, _ = l.At(j, k)
				uVal, _ = u.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = a.At(j, i)
			_ = u.Set(j, i, aVal-sum)
		}

		// Zero-pivot guard before any division.
		uDiag, _ = u.At(j, j)
		if uDiag == 0 {
			return nil, nil, fmt.Errorf("%s: pivot U(%d,%d): %w", opLU, j, j, ErrSingular)
		}

		// L(i,j) for i > j.
		for i = j + 1; i <= n; i++ {
			sum = 0
			for k = 1; k < j; k++ {
				lVal, _ = l.At(i, k)
				uVal, _ = u.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = a.At(i, j)
			_ = l.Set(i, j, (aVal-sum)/uDiag)
		}
	}

	return l, u, nil
}
