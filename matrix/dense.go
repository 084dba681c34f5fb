// SPDX-License-Identifier: MIT
// Dense is the concrete leaf of the expression algebra: a fixed-shape,
// row-major matrix holding its elements in a single flat slice for cache
// friendliness. All element access is 1-indexed; the logical position
// (r, c) maps to flat offset (r-1)*cols + (c-1).

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major rows×cols matrix of T values.
// The backing slice always holds rows*cols elements, except after Reset,
// which drops the buffer entirely.
type Dense[T Scalar] struct {
	rows, cols int // fixed shape, never mutated after construction
	data       []T // flat backing storage, length == rows*cols
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows*cols) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFromSlice creates a rows×cols Dense from a flat, row-major element
// slice. The slice is copied, so the caller keeps ownership of elems.
// Stage 1 (Validate): shape positive, len(elems) == rows*cols.
// Stage 2 (Prepare): allocate and copy.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func NewDenseFromSlice[T Scalar](rows, cols int, elems []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(elems) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromSlice: %d elements for %dx%d shape: %w",
			len(elems), rows, cols, ErrDimensionMismatch)
	}
	data := make([]T, rows*cols)
	copy(data, elems)

	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense from nested per-row data. Every row must
// have the same length; the shape is taken from the nesting.
// Errors: ErrInvalidDimensions (no rows or empty first row),
// ErrDimensionMismatch (ragged rows).
// Complexity: O(rows*cols).
func NewDenseFromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	data := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d elements, want %d: %w",
				i+1, len(row), c, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return &Dense[T]{rows: r, cols: c, data: data}, nil
}

// NewDenseFill creates a rows×cols Dense initialized by the given fill
// policy. FillRand uses a time-seeded generator; use Rand with an explicit
// source when reproducibility matters.
// Errors: ErrInvalidDimensions, ErrNonSquare (FillEye on rows != cols),
// ErrUnknownFill.
// Complexity: O(rows*cols).
func NewDenseFill[T Scalar](rows, cols int, fill Fill) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.apply(fill); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.cols
}

// indexOf computes the flat index for 1-indexed (row, col) or returns
// ErrOutOfRange. A Reset matrix has no backing buffer, so every access
// fails the final guard until the matrix is reconstructed.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 1 || row > m.rows {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 1 || col > m.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	idx := (row-1)*m.cols + (col - 1)
	if idx >= len(m.data) {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return idx, nil
}

// At retrieves the element at 1-indexed (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the backing slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at 1-indexed (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the backing slice.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. The copy owns an
// independent backing buffer, so mutations never interfere (value
// semantics). Complexity: O(rows*cols).
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{rows: m.rows, cols: m.cols, data: copyData}
}

// IsEmpty reports whether the matrix holds no elements (only true after
// Reset). Complexity: O(1).
func (m *Dense[T]) IsEmpty() bool {
	return len(m.data) == 0
}

// Reset drops the backing buffer, leaving the matrix empty. The declared
// shape is retained for Rows/Cols queries, but element access and traversal
// fail with ErrOutOfRange until the matrix is rebuilt.
func (m *Dense[T]) Reset() {
	m.data = nil
}

// Print writes the matrix to w in row-major order: elements separated by
// single spaces, one row per line. Diagnostic output only, not a stable
// serialization format.
// Complexity: O(rows*cols).
func (m *Dense[T]) Print(w io.Writer) error {
	var i, j int
	for i = 1; i <= m.rows; i++ {
		for j = 1; j <= m.cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 1 {
				if _, err = io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err = fmt.Fprintf(w, "%v", v); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer using the same layout as Print.
// An empty (Reset) matrix renders as the empty string.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	if err := m.Print(&sb); err != nil {
		return ""
	}

	return sb.String()
}
