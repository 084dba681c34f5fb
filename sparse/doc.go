// Package sparse provides a compressed-sparse-row (CSR) matrix that
// participates in the matrix expression algebra as another leaf.
//
// CSR stores only non-zero elements in three arrays (values, column indices,
// row pointers), trading O(log nnz-per-row) element lookups for O(nnz)
// memory. It implements matrix.Expression, so sparse leaves compose with
// dense operands through the same operator constructors and materialize the
// same way.
//
// Sparse matrices are best when the zero fraction is large; for small or
// dense data use matrix.Dense directly.
package sparse
