// SPDX-License-Identifier: MIT
// CSR is the compressed-sparse-row leaf of the expression algebra.
// Let nnz be the number of stored non-zeros: values holds them row by row,
// colIdx holds their 1-indexed columns (sorted within each row), and rowPtr
// has rows+1 entries with rowPtr[r-1]..rowPtr[r] delimiting row r's segment;
// the final entry is always nnz.

package sparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pairinstability/lao/matrix"
)

// ErrMalformedInput indicates CSV input that cannot be parsed into scalars.
var ErrMalformedInput = errors.New("sparse: malformed input")

// csrErrorf wraps an underlying error with CSR method context.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a fixed-shape sparse matrix in compressed-sparse-row format.
type CSR[T matrix.Scalar] struct {
	rows, cols int
	values     []T   // non-zero values, row-major
	colIdx     []int // 1-indexed column per stored value
	rowPtr     []int // len rows+1; row r occupies [rowPtr[r-1], rowPtr[r])
}

// New creates an empty (all-zero) rows×cols CSR matrix.
// Errors: matrix.ErrInvalidDimensions. Complexity: O(rows).
func New[T matrix.Scalar](rows, cols int) (*CSR[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return &CSR[T]{rows: rows, cols: cols, rowPtr: make([]int, rows+1)}, nil
}

// FromExpression materializes e into CSR form, storing only its non-zero
// cells. The expression is evaluated exactly once per cell, row-major, so
// insertion order keeps each row's columns sorted without extra work.
// Errors: matrix.ErrNilExpression plus any leaf error.
// Complexity: O(rows*cols × subgraph cost per cell).
func FromExpression[T matrix.Scalar](e matrix.Expression[T]) (*CSR[T], error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, fmt.Errorf("FromExpression: %w", err)
	}
	s, err := New[T](e.Rows(), e.Cols())
	if err != nil {
		return nil, fmt.Errorf("FromExpression: %w", err)
	}
	var i, j int
	var v T
	for i = 1; i <= s.rows; i++ {
		for j = 1; j <= s.cols; j++ {
			if v, err = e.At(i, j); err != nil {
				return nil, fmt.Errorf("FromExpression: %w", err)
			}
			if v != 0 {
				// append keeps row-major, column-sorted order by construction
				s.values = append(s.values, v)
				s.colIdx = append(s.colIdx, j)
			}
		}
		s.rowPtr[i] = len(s.values)
	}

	return s, nil
}

// FromCSV reads a rows×cols matrix from comma-separated text, one row per
// record, and stores its non-zero entries. The record and field counts must
// match the declared shape exactly.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch,
// ErrMalformedInput (unparseable field), plus reader errors.
// Complexity: O(rows*cols).
func FromCSV(r io.Reader, rows, cols int) (*CSR[float64], error) {
	s, err := New[float64](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromCSV: %w", err)
	}
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("FromCSV: %w: %w", ErrMalformedInput, err)
	}
	if len(records) != rows {
		return nil, fmt.Errorf("FromCSV: %d records for %d rows: %w",
			len(records), rows, matrix.ErrDimensionMismatch)
	}
	for i, record := range records {
		if len(record) != cols {
			return nil, fmt.Errorf("FromCSV: record %d has %d fields, want %d: %w",
				i+1, len(record), cols, matrix.ErrDimensionMismatch)
		}
		for j, field := range record {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("FromCSV: record %d field %d: %w", i+1, j+1, ErrMalformedInput)
			}
			if v != 0 {
				s.values = append(s.values, v)
				s.colIdx = append(s.colIdx, j+1)
			}
		}
		s.rowPtr[i+1] = len(s.values)
	}

	return s, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (s *CSR[T]) Rows() int {
	return s.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (s *CSR[T]) Cols() int {
	return s.cols
}

// NNZ returns the number of stored non-zero elements. Complexity: O(1).
func (s *CSR[T]) NNZ() int {
	return len(s.values)
}

// find locates the storage position of 1-indexed (row, col) within the
// row's sorted column segment. Returns the insertion point and whether the
// element is present. Complexity: O(log nnz-in-row).
func (s *CSR[T]) find(row, col int) (pos int, found bool) {
	start, end := s.rowPtr[row-1], s.rowPtr[row]
	i := sort.SearchInts(s.colIdx[start:end], col)
	pos = start + i

	return pos, pos < end && s.colIdx[pos] == col
}

// At retrieves the element at 1-indexed (row, col); absent cells are zero.
// Errors: matrix.ErrOutOfRange. Complexity: O(log nnz-in-row).
func (s *CSR[T]) At(row, col int) (T, error) {
	var zero T
	if row < 1 || row > s.rows || col < 1 || col > s.cols {
		return zero, csrErrorf("At", row, col, matrix.ErrOutOfRange)
	}
	if pos, found := s.find(row, col); found {
		return s.values[pos], nil
	}

	return zero, nil
}

// Set assigns v at 1-indexed (row, col): updates in place, inserts a new
// non-zero, or removes the stored element when v is zero.
// Errors: matrix.ErrOutOfRange.
// Complexity: O(log nnz-in-row) for updates, O(nnz) for insert/remove.
func (s *CSR[T]) Set(row, col int, v T) error {
	if row < 1 || row > s.rows || col < 1 || col > s.cols {
		return csrErrorf("Set", row, col, matrix.ErrOutOfRange)
	}
	pos, found := s.find(row, col)
	switch {
	case found && v != 0:
		s.values[pos] = v
	case found: // v == 0: drop the stored element
		s.values = append(s.values[:pos], s.values[pos+1:]...)
		s.colIdx = append(s.colIdx[:pos], s.colIdx[pos+1:]...)
		for r := row; r <= s.rows; r++ {
			s.rowPtr[r]--
		}
	case v != 0: // insert at pos, shifting the tail
		s.values = append(s.values, 0)
		copy(s.values[pos+1:], s.values[pos:])
		s.values[pos] = v
		s.colIdx = append(s.colIdx, 0)
		copy(s.colIdx[pos+1:], s.colIdx[pos:])
		s.colIdx[pos] = col
		for r := row; r <= s.rows; r++ {
			s.rowPtr[r]++
		}
	}

	return nil
}

// Clone returns a deep copy of the CSR matrix. Complexity: O(rows + nnz).
func (s *CSR[T]) Clone() *CSR[T] {
	c := &CSR[T]{
		rows:   s.rows,
		cols:   s.cols,
		values: make([]T, len(s.values)),
		colIdx: make([]int, len(s.colIdx)),
		rowPtr: make([]int, len(s.rowPtr)),
	}
	copy(c.values, s.values)
	copy(c.colIdx, s.colIdx)
	copy(c.rowPtr, s.rowPtr)

	return c
}

// IsEmpty reports whether the matrix stores no non-zero elements.
// Complexity: O(1).
func (s *CSR[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Zeros drops every stored element; in CSR an all-zero matrix is an empty
// storage set. Complexity: O(rows).
func (s *CSR[T]) Zeros() {
	s.values = nil
	s.colIdx = nil
	for i := range s.rowPtr {
		s.rowPtr[i] = 0
	}
}

// Reset is an alias of Zeros: with only non-zeros stored, emptying the
// matrix and zeroing it are the same operation.
func (s *CSR[T]) Reset() {
	s.Zeros()
}

// Eye overwrites the matrix with the identity pattern. Square shapes only.
// Errors: matrix.ErrNonSquare. Complexity: O(rows).
func (s *CSR[T]) Eye() error {
	if s.rows != s.cols {
		return fmt.Errorf("Eye: %w", matrix.ErrNonSquare)
	}
	s.Zeros()
	s.values = make([]T, s.rows)
	s.colIdx = make([]int, s.rows)
	for i := 1; i <= s.rows; i++ {
		s.values[i-1] = 1
		s.colIdx[i-1] = i
		s.rowPtr[i] = i
	}

	return nil
}

// FillFunc replaces every stored non-zero with a fresh generator value,
// leaving the sparsity pattern untouched. Zero cells stay zero — use
// FromExpression to rebuild the pattern instead.
// Complexity: O(nnz).
func (s *CSR[T]) FillFunc(fn func() T) {
	for i := range s.values {
		s.values[i] = fn()
	}
}
