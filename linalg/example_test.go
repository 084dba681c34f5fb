package linalg_test

import (
	"fmt"

	"github.com/pairinstability/lao/linalg"
	"github.com/pairinstability/lao/matrix"
)

// ExampleLU factors a matrix and prints one entry of each factor.
func ExampleLU() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})

	l, u, _ := linalg.LU(a)

	l21, _ := l.At(2, 1)
	u22, _ := u.At(2, 2)
	fmt.Printf("L(2,1)=%.1f U(2,2)=%.1f\n", l21, u22)

	// Output:
	// L(2,1)=1.5 U(2,2)=-1.5
}

// ExampleJacobi solves a diagonally dominant system iteratively.
func ExampleJacobi() {
	a, _ := matrix.NewDenseFromRows([][]float64{{10, 1}, {2, 12}})
	b, _ := matrix.NewColVectorFromSlice([]float64{12, 25})

	res, _ := linalg.Jacobi(a, b, 100, 1e-9)

	x1, _ := res.X.AtVec(1)
	x2, _ := res.X.AtVec(2)
	fmt.Printf("converged=%v x=(%.4f, %.4f)\n", res.Converged, x1, x2)

	// Output:
	// converged=true x=(1.0085, 1.9153)
}
