// Package matrix_test: the central operand compatibility checks.
package matrix_test

import (
	"testing"

	"github.com/pairinstability/lao/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil checks nil detection.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nil), matrix.ErrNilExpression)

	m := mustDense(t, [][]float64{{1}})
	require.NoError(t, matrix.ValidateNotNil[float64](m))
}

// TestValidateSameShape checks shape equality in both dimensions.
func TestValidateSameShape(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})
	c := mustDense(t, [][]float64{{1, 2}})
	d := mustDense(t, [][]float64{{1}, {2}})

	require.NoError(t, matrix.ValidateSameShape[float64](a, b))                              // equal 2x2 shapes
	require.ErrorIs(t, matrix.ValidateSameShape[float64](a, c), matrix.ErrDimensionMismatch) // row mismatch
	require.ErrorIs(t, matrix.ValidateSameShape[float64](c, d), matrix.ErrDimensionMismatch) // transposed shapes differ
}

// TestValidateBinarySameShape checks the composite nil+shape gate.
func TestValidateBinarySameShape(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})

	require.ErrorIs(t, matrix.ValidateBinarySameShape[float64](nil, a), matrix.ErrNilExpression)
	require.ErrorIs(t, matrix.ValidateBinarySameShape[float64](a, nil), matrix.ErrNilExpression)
	require.NoError(t, matrix.ValidateBinarySameShape[float64](a, a))
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}})      // 1x3
	b := mustDense(t, [][]float64{{1}, {2}, {3}})  // 3x1
	c := mustDense(t, [][]float64{{1, 2}, {3, 4}}) // 2x2

	require.NoError(t, matrix.ValidateMulCompatible[float64](a, b))                              // 1x3 × 3x1 composes
	require.ErrorIs(t, matrix.ValidateMulCompatible[float64](a, c), matrix.ErrDimensionMismatch) // inner 3 vs 2
	require.ErrorIs(t, matrix.ValidateMulCompatible[float64](nil, b), matrix.ErrNilExpression)
}

// TestValidateSquare checks the squareness rules used by the solvers.
func TestValidateSquare(t *testing.T) {
	sq := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	rect := mustDense(t, [][]float64{{1, 2}})

	require.NoError(t, matrix.ValidateSquare[float64](sq))
	require.ErrorIs(t, matrix.ValidateSquare[float64](rect), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateSquareNonNil[float64](sq))
	require.ErrorIs(t, matrix.ValidateSquareNonNil[float64](nil), matrix.ErrNilExpression)
	require.ErrorIs(t, matrix.ValidateSquareNonNil[float64](rect), matrix.ErrNonSquare)
}

// TestValidateColumnVector checks the right-hand-side gate.
func TestValidateColumnVector(t *testing.T) {
	col, err := matrix.NewColVectorFromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	row, err := matrix.NewRowVectorFromSlice([]float64{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateColumnVector[float64](col, 3))                              // 3x1 against n=3
	require.ErrorIs(t, matrix.ValidateColumnVector[float64](col, 4), matrix.ErrDimensionMismatch) // wrong length
	require.ErrorIs(t, matrix.ValidateColumnVector[float64](row, 3), matrix.ErrNotVector)         // row, not column
	require.ErrorIs(t, matrix.ValidateColumnVector[float64](nil, 3), matrix.ErrNilExpression)
}
