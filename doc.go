// Package lao is a fixed-shape numeric linear algebra library built around
// lazily evaluated expression graphs.
//
// Matrices compose through operator constructors (Add, Sub, Mul, Hadamard,
// Scale, element-wise comparisons) that build expression nodes instead of
// allocating intermediate results; nothing is computed until a node is
// materialized into concrete storage. Dense direct and iterative solvers sit
// on top of that algebra.
//
// The library is organized under three subpackages:
//
//	matrix/ — expression graph, dense row-major storage, operators,
//	          iterators and materialization
//	linalg/ — Doolittle LU factorization and the element-based Jacobi
//	          iterative solver
//	sparse/ — compressed-sparse-row leaf expressions that compose with
//	          the dense algebra
//
// Quick example — the whole right-hand side is a single deferred graph:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{5, 6}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{2, 3}})
//	c, _ := matrix.NewDenseFromRows([][]float64{{3, 1}})
//	sum, _ := matrix.Add[float64](a, b)
//	sum, _ = matrix.Add(sum, c)
//	expr, _ := matrix.Sub(sum, b)
//	d, _ := matrix.Materialize(expr) // [[8 7]], evaluated here, once per cell
//
// All element access is 1-indexed, matching the mathematical notation the
// solvers are written in.
//
//	go get github.com/pairinstability/lao
package lao
