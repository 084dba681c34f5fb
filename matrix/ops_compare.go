// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison nodes.
//
// Each comparison applies its scalar relation per cell and yields 1 or 0 in
// the operands' own scalar type (boolean-as-scalar); cells are evaluated
// independently, never short-circuited across the matrix. Like the
// arithmetic nodes, comparisons validate shape compatibility at composition
// time and defer all evaluation to At.

package matrix

// compareNode wraps two same-shape operands and a scalar relation.
type compareNode[T Scalar] struct {
	lhs, rhs Expression[T]
	relation func(a, b T) bool
	tag      string
}

// Rows returns the operands' common row count. Complexity: O(1).
func (e *compareNode[T]) Rows() int { return e.lhs.Rows() }

// Cols returns the operands' common column count. Complexity: O(1).
func (e *compareNode[T]) Cols() int { return e.lhs.Cols() }

// At evaluates the relation at one cell, producing 1 (holds) or 0 (does not).
func (e *compareNode[T]) At(row, col int) (T, error) {
	var zero T
	av, err := e.lhs.At(row, col)
	if err != nil {
		return zero, matrixErrorf(e.tag, err)
	}
	bv, err := e.rhs.At(row, col)
	if err != nil {
		return zero, matrixErrorf(e.tag, err)
	}
	if e.relation(av, bv) {
		return 1, nil
	}

	return 0, nil
}

// compare is the shared constructor behind the public comparison operators.
func compare[T Scalar](lhs, rhs Expression[T], tag string, relation func(a, b T) bool) (Expression[T], error) {
	if err := ValidateBinarySameShape(lhs, rhs); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return &compareNode[T]{lhs: lhs, rhs: rhs, relation: relation, tag: tag}, nil
}

// Eq builds the lazy element-wise equality check: 1 where lhs(r,c) == rhs(r,c), else 0.
// Errors: ErrNilExpression, ErrDimensionMismatch (composition-time).
func Eq[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	return compare(lhs, rhs, opEq, func(a, b T) bool { return a == b })
}

// Ne builds the lazy element-wise non-equality check: 1 where lhs(r,c) != rhs(r,c), else 0.
func Ne[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	return compare(lhs, rhs, opNe, func(a, b T) bool { return a != b })
}

// Lt builds the lazy element-wise less-than check: 1 where lhs(r,c) < rhs(r,c), else 0.
func Lt[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	return compare(lhs, rhs, opLt, func(a, b T) bool { return a < b })
}

// Le builds the lazy element-wise less-than-or-equal check: 1 where lhs(r,c) <= rhs(r,c), else 0.
func Le[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	return compare(lhs, rhs, opLe, func(a, b T) bool { return a <= b })
}

// Gt builds the lazy element-wise greater-than check: 1 where lhs(r,c) > rhs(r,c), else 0.
func Gt[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	return compare(lhs, rhs, opGt, func(a, b T) bool { return a > b })
}

// Ge builds the lazy element-wise greater-than-or-equal check: 1 where lhs(r,c) >= rhs(r,c), else 0.
func Ge[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	return compare(lhs, rhs, opGe, func(a, b T) bool { return a >= b })
}
