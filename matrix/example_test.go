// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlopt/matrix"
)

// ExampleMatVec multiplies a 2×2 coefficient matrix by a parameter vector.
func ExampleMatVec() {
	a, _ := matrix.FromRows([][]float32{{2, 1}, {3, 0}})
	x := matrix.NewVector[float32](1, 1)
	y, _ := matrix.MatVec(a, x)
	fmt.Print(y)
	// Output:
	// [3]
	// [3]
}

// ExampleInverse shows the ErrSingular contract on a rank-deficient matrix.
func ExampleInverse() {
	a, _ := matrix.FromRows([][]float32{{1, 1}, {2, 2}})
	_, err := matrix.Inverse(a)
	fmt.Println(err)

	b, _ := matrix.FromRows([][]float32{{2, 0}, {0, 4}})
	inv, _ := matrix.Inverse(b)
	fmt.Print(inv)
	// Output:
	// Inverse: LU: zero pivot in column 1: matrix: singular matrix
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleDense_Column walks a column lazily.
func ExampleDense_Column() {
	a, _ := matrix.FromFunc(3, 2, func(i, j int) float32 { return float32(10*i + j) })
	col, _ := a.Column(1)
	fmt.Println(slices.Collect(col.All()))
	// Output:
	// [1 11 21]
}
