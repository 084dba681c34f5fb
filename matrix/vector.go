// SPDX-License-Identifier: MIT
// Package matrix: row/column vector conveniences.
// Vectors are ordinary Dense matrices with one dimension fixed at 1; they
// participate in the algebra unchanged because Rows or Cols reports 1.
// The single-index accessors below exist alongside the two-index form.

package matrix

// NewRowVector creates a zeroed 1×n row vector.
// Errors: ErrInvalidDimensions. Complexity: O(n).
func NewRowVector[T Scalar](n int) (*Dense[T], error) {
	return NewDense[T](1, n)
}

// NewColVector creates a zeroed n×1 column vector.
// Errors: ErrInvalidDimensions. Complexity: O(n).
func NewColVector[T Scalar](n int) (*Dense[T], error) {
	return NewDense[T](n, 1)
}

// NewRowVectorFromSlice creates a 1×len(elems) row vector copying elems.
// Errors: ErrInvalidDimensions (empty slice). Complexity: O(n).
func NewRowVectorFromSlice[T Scalar](elems []T) (*Dense[T], error) {
	return NewDenseFromSlice(1, len(elems), elems)
}

// NewColVectorFromSlice creates a len(elems)×1 column vector copying elems.
// Errors: ErrInvalidDimensions (empty slice). Complexity: O(n).
func NewColVectorFromSlice[T Scalar](elems []T) (*Dense[T], error) {
	return NewDenseFromSlice(len(elems), 1, elems)
}

// vecIndex maps the single 1-indexed vector position i onto the two-index
// form, or reports that the receiver is not a vector.
func (m *Dense[T]) vecIndex(method string, i int) (row, col int, err error) {
	switch {
	case m.rows == 1:
		return 1, i, nil
	case m.cols == 1:
		return i, 1, nil
	default:
		return 0, 0, denseErrorf(method, i, i, ErrNotVector)
	}
}

// AtVec retrieves element i (1-indexed) of a row or column vector.
// Errors: ErrNotVector on a general matrix, ErrOutOfRange outside the
// vector length. Complexity: O(1).
func (m *Dense[T]) AtVec(i int) (T, error) {
	row, col, err := m.vecIndex("AtVec", i)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.At(row, col)
}

// SetVec assigns element i (1-indexed) of a row or column vector.
// Errors: ErrNotVector, ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) SetVec(i int, v T) error {
	row, col, err := m.vecIndex("SetVec", i)
	if err != nil {
		return err
	}

	return m.Set(row, col, v)
}
