// SPDX-License-Identifier: MIT
// Package matrix: bounds-checked row and column traversal over Dense.
// Iterators are restartable and finite: the factory validates the fixed
// index against the declared shape, Next advances until the row/column is
// exhausted, and Reset rewinds to the start. Value/Set act on the element
// under the cursor, so traversal doubles as an element-reference sequence.

package matrix

// RowIter walks the elements of one fixed row, left to right.
// The iterator reads the matrix buffer directly: Value and Set are only
// valid while the matrix keeps its storage. After Dense.Reset, discard the
// iterator and build a new one once the matrix is reconstructed.
type RowIter[T Scalar] struct {
	m   *Dense[T]
	row int // fixed 1-indexed row
	col int // cursor; 0 before the first Next
}

// RowIter returns an iterator over 1-indexed row, or ErrOutOfRange when the
// row is outside the declared shape (or the matrix has been Reset).
// Complexity: O(1).
func (m *Dense[T]) RowIter(row int) (*RowIter[T], error) {
	if row < 1 || row > m.rows || len(m.data) == 0 {
		return nil, denseErrorf("RowIter", row, 0, ErrOutOfRange)
	}

	return &RowIter[T]{m: m, row: row}, nil
}

// Next advances the cursor and reports whether an element is available.
func (it *RowIter[T]) Next() bool {
	if it.col >= it.m.cols {
		return false
	}
	it.col++

	return true
}

// Value returns the element under the cursor. Valid only after a true Next.
func (it *RowIter[T]) Value() T {
	return it.m.data[(it.row-1)*it.m.cols+(it.col-1)]
}

// Set overwrites the element under the cursor. Valid only after a true Next.
func (it *RowIter[T]) Set(v T) {
	it.m.data[(it.row-1)*it.m.cols+(it.col-1)] = v
}

// Col returns the 1-indexed column of the cursor position.
func (it *RowIter[T]) Col() int {
	return it.col
}

// Reset rewinds the iterator to before the first element.
func (it *RowIter[T]) Reset() {
	it.col = 0
}

// ColIter walks the elements of one fixed column, top to bottom.
// Same lifetime contract as RowIter: not valid across a Dense.Reset.
type ColIter[T Scalar] struct {
	m   *Dense[T]
	col int // fixed 1-indexed column
	row int // cursor; 0 before the first Next
}

// ColIter returns an iterator over 1-indexed col, or ErrOutOfRange when the
// column is outside the declared shape (or the matrix has been Reset).
// Complexity: O(1).
func (m *Dense[T]) ColIter(col int) (*ColIter[T], error) {
	if col < 1 || col > m.cols || len(m.data) == 0 {
		return nil, denseErrorf("ColIter", 0, col, ErrOutOfRange)
	}

	return &ColIter[T]{m: m, col: col}, nil
}

// Next advances the cursor and reports whether an element is available.
func (it *ColIter[T]) Next() bool {
	if it.row >= it.m.rows {
		return false
	}
	it.row++

	return true
}

// Value returns the element under the cursor. Valid only after a true Next.
func (it *ColIter[T]) Value() T {
	return it.m.data[(it.row-1)*it.m.cols+(it.col-1)]
}

// Set overwrites the element under the cursor. Valid only after a true Next.
func (it *ColIter[T]) Set(v T) {
	it.m.data[(it.row-1)*it.m.cols+(it.col-1)] = v
}

// Row returns the 1-indexed row of the cursor position.
func (it *ColIter[T]) Row() int {
	return it.row
}

// Reset rewinds the iterator to before the first element.
func (it *ColIter[T]) Reset() {
	it.row = 0
}
