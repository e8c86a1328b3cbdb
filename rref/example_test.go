// SPDX-License-Identifier: MIT
package rref_test

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rref"
	"github.com/katalvlaran/rref/trace"
)

// ExampleReduce solves the classic 3×3 system
//
//	2x +  y −  z =   8
//	−3x − y + 2z = −11
//	−2x + y + 2z =  −3
//
// and reads the solution out of the augment block.
func ExampleReduce() {
	coeff, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	rhs, _ := matrix.NewDenseFromRows([][]float64{{8}, {-11}, {-3}})

	// Collect the step-by-step trace instead of printing it.
	var buf trace.Buffer
	res, err := rref.Reduce(coeff, rhs, rref.WithSink(&buf), rref.WithSnapshots(false))
	if err != nil {
		fmt.Println("reduce failed:", err)
		return
	}

	sol, _ := res.AugmentBlock()
	x, _ := sol.At(0, 0)
	y, _ := sol.At(1, 0)
	z, _ := sol.At(2, 0)
	fmt.Println(res.Meta.Consistency)
	fmt.Printf("x=%g y=%g z=%g\n", x, y, z)
	fmt.Printf("det=%g\n", res.Meta.Determinant)
	// Output:
	// unique solution
	// x=2 y=3 z=-1
	// det=-1
}

// ExampleInvert inverts a diagonal matrix; the inverse of diag(2, 4) is
// diag(1/2, 1/4).
func ExampleInvert() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})

	res, err := rref.Invert(m, rref.WithSink(trace.NewCounter(0)))
	if err != nil {
		fmt.Println("invert failed:", err)
		return
	}

	a, _ := res.Reduced.At(0, 0)
	b, _ := res.Reduced.At(1, 1)
	fmt.Printf("inv = diag(%g, %g)\n", a, b)
	// Output:
	// inv = diag(0.5, 0.25)
}
