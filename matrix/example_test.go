// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tao/matrix"
)

// ExampleNewDenseFromRows builds a matrix from a nested literal and multiplies it.
func ExampleNewDenseFromRows() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
	c, _ := matrix.Mul[float64](a, b)
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleDense_At shows the bounds-checked accessor and its diagnostic.
func ExampleDense_At() {
	m, _ := matrix.NewDense[int](3, 3)
	_, err := m.At(3, 0)
	fmt.Println(errors.Is(err, matrix.ErrOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// Dense.At(3,0): row 3 outside [0,3): matrix: index out of range
}

// ExampleFixed_Add adds two fixed-size vectors; mixing shapes would not compile.
func ExampleFixed_Add() {
	a := matrix.NewVec3(1.0, 2.0, 3.0)
	b := matrix.NewVec3(100.0, 200.0, 300.0)
	fmt.Print(a.Add(b))
	// Output:
	// [101]
	// [202]
	// [303]
}

// ExampleMul4Vec applies a homogeneous translation to a point.
func ExampleMul4Vec() {
	tr := matrix.NewMat4([16]float64{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	})
	p := matrix.NewVec4(1.0, 2.0, 3.0, 1.0)
	fmt.Println(matrix.Mul4Vec(tr, p).Values())
	// Output:
	// [11 22 33 1]
}

// ExampleApproxEqual shows the strict tolerance comparison.
func ExampleApproxEqual() {
	a, _ := matrix.NewRow(1.0, 2.0)
	b, _ := matrix.NewRow(1.00001, 2.0)
	fmt.Println(matrix.Equal[float64](a, b))
	fmt.Println(matrix.ApproxEqual[float64](a, b))
	fmt.Println(matrix.ApproxEqual[float64](a, b, matrix.WithTolerance(1e-6)))
	// Output:
	// false
	// true
	// false
}
