// SPDX-License-Identifier: MIT
// Package matrix: arithmetic operator nodes of the expression algebra.
//
// Purpose:
//   - Declare the operator constructors (Add, Sub, Mul, Hadamard, Scale) and
//     the unexported node types backing them.
//   - Each constructor runs the shape contract through the central validators
//     and refuses to build a node on mismatch — failures happen at
//     composition time, before any element is computed.
//
// Notes:
//   - Nodes hold their operands by reference and never copy data; evaluation
//     is deferred to At, which combines single operand elements per cell.
//   - Chained expressions deepen the graph rather than flattening it, so
//     repeated sub-expressions are re-evaluated per output cell (no CSE).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opHadamard    = "Hadamard"
	opScale       = "Scale"
	opEq          = "Eq"
	opNe          = "Ne"
	opLt          = "Lt"
	opLe          = "Le"
	opGt          = "Gt"
	opGe          = "Ge"
	opMaterialize = "Materialize"
	opAssign      = "AssignFrom"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so call sites keep matching sentinels through errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise is the shared node behind every same-shape binary operator.
// It wraps both operands by reference and applies combine to a single pair
// of elements per At call. The shape is the (validated, equal) operand shape.
type elementwise[T Scalar] struct {
	lhs, rhs Expression[T]
	combine  func(a, b T) T
	tag      string // operation tag for error wrapping
}

// Rows returns the operands' common row count. Complexity: O(1).
func (e *elementwise[T]) Rows() int { return e.lhs.Rows() }

// Cols returns the operands' common column count. Complexity: O(1).
func (e *elementwise[T]) Cols() int { return e.lhs.Cols() }

// At evaluates combine(lhs(row,col), rhs(row,col)).
// Complexity: O(cost of the operand subgraphs at one cell).
func (e *elementwise[T]) At(row, col int) (T, error) {
	var zero T
	av, err := e.lhs.At(row, col)
	if err != nil {
		return zero, matrixErrorf(e.tag, err)
	}
	bv, err := e.rhs.At(row, col)
	if err != nil {
		return zero, matrixErrorf(e.tag, err)
	}

	return e.combine(av, bv), nil
}

// Add builds the lazy element-wise sum lhs + rhs.
// Stage 1 (Validate): operands non-nil with identical shapes.
// Stage 2 (Compose): wrap both operands in a deferred node; no elements are
// read here.
// Errors: ErrNilExpression, ErrDimensionMismatch (composition-time).
// Complexity: O(1) to compose; O(subgraph) per evaluated cell.
func Add[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	if err := ValidateBinarySameShape(lhs, rhs); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &elementwise[T]{lhs: lhs, rhs: rhs, tag: opAdd,
		combine: func(a, b T) T { return a + b }}, nil
}

// Sub builds the lazy element-wise difference lhs - rhs.
// Validation and cost identical to Add.
func Sub[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	if err := ValidateBinarySameShape(lhs, rhs); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return &elementwise[T]{lhs: lhs, rhs: rhs, tag: opSub,
		combine: func(a, b T) T { return a - b }}, nil
}

// Hadamard builds the lazy element-wise product lhs ⊙ rhs.
// Hadamard ≠ matrix multiplication; use Mul for lhs × rhs.
// Validation and cost identical to Add.
func Hadamard[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	if err := ValidateBinarySameShape(lhs, rhs); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return &elementwise[T]{lhs: lhs, rhs: rhs, tag: opHadamard,
		combine: func(a, b T) T { return a * b }}, nil
}

// product is the matrix-product node. Its shape is (lhs.Rows, rhs.Cols);
// the inner dimension is captured at composition time.
type product[T Scalar] struct {
	lhs, rhs Expression[T]
	inner    int // lhs.Cols == rhs.Rows, fixed at composition
}

// Rows returns the left operand's row count. Complexity: O(1).
func (e *product[T]) Rows() int { return e.lhs.Rows() }

// Cols returns the right operand's column count. Complexity: O(1).
func (e *product[T]) Cols() int { return e.rhs.Cols() }

// At evaluates the dot product Σ_k lhs(row,k)·rhs(k,col) for k in
// [1, inner]. Each At on a product node costs a full inner-dimension sweep
// of both operand subgraphs — materialize the operands first when a product
// sits under further products.
func (e *product[T]) At(row, col int) (T, error) {
	var dot, zero T
	for k := 1; k <= e.inner; k++ {
		av, err := e.lhs.At(row, k)
		if err != nil {
			return zero, matrixErrorf(opMul, err)
		}
		bv, err := e.rhs.At(k, col)
		if err != nil {
			return zero, matrixErrorf(opMul, err)
		}
		dot += av * bv
	}

	return dot, nil
}

// Mul builds the lazy matrix product lhs × rhs with shape
// (lhs.Rows, rhs.Cols).
// Stage 1 (Validate): operands non-nil, lhs.Cols == rhs.Rows.
// Stage 2 (Compose): capture the inner dimension and wrap the operands.
// Errors: ErrNilExpression, ErrDimensionMismatch (composition-time).
// Complexity: O(1) to compose; O(inner × subgraph) per evaluated cell.
func Mul[T Scalar](lhs, rhs Expression[T]) (Expression[T], error) {
	if err := ValidateMulCompatible(lhs, rhs); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &product[T]{lhs: lhs, rhs: rhs, inner: lhs.Cols()}, nil
}

// scaled is the scalar-product node: alpha · operand, same shape as the
// operand. Scalar multiplication commutes, so a single node covers both the
// alpha*M and M*alpha forms.
type scaled[T Scalar] struct {
	alpha   T
	operand Expression[T]
}

// Rows returns the operand's row count. Complexity: O(1).
func (e *scaled[T]) Rows() int { return e.operand.Rows() }

// Cols returns the operand's column count. Complexity: O(1).
func (e *scaled[T]) Cols() int { return e.operand.Cols() }

// At evaluates alpha · operand(row, col).
func (e *scaled[T]) At(row, col int) (T, error) {
	v, err := e.operand.At(row, col)
	if err != nil {
		var zero T
		return zero, matrixErrorf(opScale, err)
	}

	return e.alpha * v, nil
}

// Scale builds the lazy scalar product alpha · e. Being commutative it
// serves both the left- and right-scalar forms.
// Errors: ErrNilExpression.
// Complexity: O(1) to compose; O(subgraph) per evaluated cell.
func Scale[T Scalar](alpha T, e Expression[T]) (Expression[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &scaled[T]{alpha: alpha, operand: e}, nil
}
