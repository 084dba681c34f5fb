// Package sparse_test: CSR storage semantics and composition with the
// dense expression algebra.
package sparse_test

import (
	"strings"
	"testing"

	"github.com/pairinstability/lao/matrix"
	"github.com/pairinstability/lao/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewValidation ensures the shape gate matches the dense constructors.
func TestNewValidation(t *testing.T) {
	_, err := sparse.New[float64](0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = sparse.New[float64](3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	s, err := sparse.New[float64](3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, s.Rows())
	require.Equal(t, 4, s.Cols())
	require.Equal(t, 0, s.NNZ()) // fresh CSR stores nothing
	require.True(t, s.IsEmpty())
}

// TestSetAtRoundTrip covers inserts, updates, reads of absent cells and
// the remove-on-zero rule.
func TestSetAtRoundTrip(t *testing.T) {
	s, err := sparse.New[float64](3, 3)
	require.NoError(t, err)

	require.NoError(t, s.Set(1, 3, 5)) // insert into row 1
	require.NoError(t, s.Set(2, 1, 7)) // insert into row 2
	require.NoError(t, s.Set(1, 1, 2)) // insert before an existing column
	require.Equal(t, 3, s.NNZ())

	v, err := s.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	v, err = s.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	v, err = s.At(3, 3) // never written: implicit zero
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	require.NoError(t, s.Set(1, 3, 9)) // update in place
	require.Equal(t, 3, s.NNZ())       // no new storage
	v, err = s.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	require.NoError(t, s.Set(1, 1, 0)) // writing zero removes the element
	require.Equal(t, 2, s.NNZ())
	v, err = s.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	require.NoError(t, s.Set(3, 2, 0)) // zero into an absent cell is a no-op
	require.Equal(t, 2, s.NNZ())
}

// TestAtSetOutOfRange ensures 1-indexed bounds are enforced.
func TestAtSetOutOfRange(t *testing.T) {
	s, err := sparse.New[float64](2, 2)
	require.NoError(t, err)

	_, err = s.At(0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = s.At(1, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = s.Set(3, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = s.Set(1, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFromExpression materializes a dense leaf into CSR, keeping only non-zeros.
func TestFromExpression(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 0},
		{3, 0, 0},
		{0, 0, 4},
	})
	require.NoError(t, err)

	s, err := sparse.FromExpression[float64](d)
	require.NoError(t, err)
	require.Equal(t, 3, s.NNZ()) // only the three non-zeros are stored

	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			want, derr := d.At(i, j)
			require.NoError(t, derr)
			got, serr := s.At(i, j)
			require.NoError(t, serr)
			require.Equal(t, want, got) // full round-trip through CSR
		}
	}

	_, err = sparse.FromExpression[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilExpression)
}

// TestFromCSV parses comma-separated text into CSR.
func TestFromCSV(t *testing.T) {
	in := "0,2.5,0\n1,0,0\n0,0,-3\n"

	s, err := sparse.FromCSV(strings.NewReader(in), 3, 3)
	require.NoError(t, err)
	require.Equal(t, 3, s.NNZ())

	v, err := s.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	v, err = s.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, -3.0, v)
	v, err = s.At(2, 2) // zero cell stays implicit
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestFromCSVErrors covers shape disagreement and unparseable fields.
func TestFromCSVErrors(t *testing.T) {
	_, err := sparse.FromCSV(strings.NewReader("1,2\n3,4\n"), 3, 2) // 2 records, 3 declared rows
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = sparse.FromCSV(strings.NewReader("1,2,3\n4,5,6\n"), 2, 2) // 3 fields, 2 declared cols
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = sparse.FromCSV(strings.NewReader("1,x\n3,4\n"), 2, 2) // non-numeric field
	require.ErrorIs(t, err, sparse.ErrMalformedInput)

	_, err = sparse.FromCSV(strings.NewReader(""), 0, 2) // invalid declared shape
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestEye verifies the identity pattern and its non-square rejection.
func TestEye(t *testing.T) {
	s, err := sparse.New[float64](3, 3)
	require.NoError(t, err)
	require.NoError(t, s.Set(1, 3, 7)) // pre-existing data must be cleared

	require.NoError(t, s.Eye())
	require.Equal(t, 3, s.NNZ()) // exactly n stored entries
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			v, aerr := s.At(i, j)
			require.NoError(t, aerr)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}

	rect, err := sparse.New[float64](2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.Eye(), matrix.ErrNonSquare)
}

// TestZerosAndClone verifies bulk clearing and deep copies.
func TestZerosAndClone(t *testing.T) {
	s, err := sparse.New[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, s.Set(1, 1, 1))
	require.NoError(t, s.Set(2, 2, 2))

	c := s.Clone()
	require.NoError(t, c.Set(1, 1, 9)) // mutate the clone only

	v, err := s.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original unchanged

	s.Zeros() // drop all stored elements
	require.Equal(t, 0, s.NNZ())
	require.True(t, s.IsEmpty())
	v, err = s.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	require.Equal(t, 2, c.NNZ()) // clone keeps its own storage
}

// TestComposesWithDense verifies a CSR leaf participates in the dense
// algebra: sparse + dense composes, evaluates lazily and materializes.
func TestComposesWithDense(t *testing.T) {
	s, err := sparse.New[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, s.Set(1, 1, 5))
	require.NoError(t, s.Set(2, 2, 7))

	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	sum, err := matrix.Add[float64](s, d) // CSR is just another Expression leaf
	require.NoError(t, err)

	out, err := matrix.Materialize(sum)
	require.NoError(t, err)

	want := [][]float64{{6, 2}, {3, 11}}
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			v, aerr := out.At(i, j)
			require.NoError(t, aerr)
			require.Equal(t, want[i-1][j-1], v)
		}
	}

	prod, err := matrix.Mul[float64](s, d) // diag(5,7) × d
	require.NoError(t, err)
	v, err := prod.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 21.0, v) // 7·3
}

// TestFillFunc verifies the pattern-preserving value rewrite.
func TestFillFunc(t *testing.T) {
	s, err := sparse.New[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, s.Set(1, 2, 3))
	require.NoError(t, s.Set(2, 1, 4))

	s.FillFunc(func() float64 { return 1 }) // rewrite stored values only

	v, err := s.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = s.At(1, 1) // zero cells keep their implicit zero
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
	require.Equal(t, 2, s.NNZ()) // the pattern is untouched
}
