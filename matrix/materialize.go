// SPDX-License-Identifier: MIT
// Package matrix: materialization — the conversion path from any expression
// back into concrete Dense storage. Every output cell is visited exactly
// once, in deterministic row-major order, and the whole subgraph is
// evaluated bottom-up for that cell independently.

package matrix

// Materialize evaluates e into a freshly allocated Dense of the same shape.
// Stage 1 (Validate): e non-nil; allocate Dense(e.Rows(), e.Cols()).
// Stage 2 (Execute): fixed i→j sweep, one At per output cell.
// Errors: ErrNilExpression, ErrInvalidDimensions, plus any error surfaced by
// the expression's leaves.
// Complexity: O(rows*cols × subgraph cost per cell).
func Materialize[T Scalar](e Expression[T]) (*Dense[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	out, err := NewDense[T](e.Rows(), e.Cols())
	if err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	if err = out.assign(opMaterialize, e); err != nil {
		return nil, err
	}

	return out, nil
}

// AssignFrom evaluates e into the receiver's existing storage — the
// assignment form of materialization. The destination shape must equal the
// expression shape; on any error the receiver is left unmodified for shape
// mismatches, but a mid-evaluation leaf error may leave it partially
// written (destination contents are unspecified on failure).
// Errors: ErrNilExpression, ErrDimensionMismatch, ErrOutOfRange (receiver
// was Reset), plus leaf errors.
// Complexity: O(rows*cols × subgraph cost per cell).
func (m *Dense[T]) AssignFrom(e Expression[T]) error {
	if err := ValidateNotNil(e); err != nil {
		return matrixErrorf(opAssign, err)
	}
	if err := ValidateSameShape[T](m, e); err != nil {
		return matrixErrorf(opAssign, err)
	}

	return m.assign(opAssign, e)
}

// assign writes every cell of e into the receiver, row-major. Shapes are
// assumed equal (validated by the callers).
func (m *Dense[T]) assign(tag string, e Expression[T]) error {
	var i, j int
	var v T
	var err error
	for i = 1; i <= m.rows; i++ {
		for j = 1; j <= m.cols; j++ {
			v, err = e.At(i, j)
			if err != nil {
				return matrixErrorf(tag, err)
			}
			if err = m.Set(i, j, v); err != nil {
				return matrixErrorf(tag, err)
			}
		}
	}

	return nil
}
