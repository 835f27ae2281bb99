// SPDX-License-Identifier: MIT
package lsq_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/lsq"
	"github.com/katalvlaran/lvlopt/matrix"
)

// ExampleSolver_Step solves 2x+y = 3, 3x = 3 with J = A, which makes the
// Gauss–Newton step exact.
func ExampleSolver_Step() {
	a, _ := matrix.FromRows([][]float64{{2, 1}, {3, 0}})
	b := matrix.NewVector[float64](3, 3)
	model, _ := lsq.NewLinearModel(a, b, 1)

	x1, res, err := lsq.NewSolver[float64]().Step(model, matrix.NewVector[float64](10.4, 0.4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("accepted=%v alpha=%g\n", res.Accepted, res.Alpha)
	fmt.Printf("x1 close to (1, 1): %v\n", matrix.AllClose(matrix.NewVector[float64](1, 1), x1, 1e-9))
	// Output:
	// accepted=true alpha=1
	// x1 close to (1, 1): true
}

// ExampleSolveStep shows the singular normal matrix of a rank-deficient
// system and the damped remedy.
func ExampleSolveStep() {
	a, _ := matrix.FromRows([][]float32{{1, 1}, {2, 2}})
	b := matrix.NewVector[float32](1, 2)
	x0 := matrix.NewVector[float32](0, 0)

	_, _, err := lsq.SolveStep(a, b, x0, 0)
	fmt.Println(err != nil)
	_, res, err := lsq.SolveStep(a, b, x0, 0.1)
	fmt.Println(err == nil, res.Accepted)
	// Output:
	// true
	// true true
}
