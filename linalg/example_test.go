// SPDX-License-Identifier: MIT
package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/tao/linalg"
	"github.com/katalvlaran/tao/matrix"
)

func ExampleCross3() {
	a := matrix.NewVec3(1.0, 2.0, 3.0)
	b := matrix.NewVec3(1.0, 5.0, 7.0)
	c := linalg.Cross3(a, b)
	fmt.Println(c.Values(), linalg.DotFixed(a, c), linalg.DotFixed(b, c))
	// Output:
	// [-1 -4 3] 0 0
}

func ExampleDet4() {
	m := matrix.NewMat4([16]float64{
		5, 3, -2, -6,
		1, 2, 7, 4,
		-10, 3, 5, -3,
		-4, 2, 6, 1,
	})
	fmt.Println(linalg.Det4(m))
	prod := matrix.Mul4(linalg.Inverse4(m), m)
	fmt.Println(linalg.IsIdentityApprox[float64](&prod))
	// Output:
	// 174
	// true
}

func ExampleDot() {
	a, _ := matrix.NewCol(1.0, 2.0, 3.0)
	b, _ := matrix.NewRow(100.0, 200.0, 300.0)
	d, err := linalg.Dot[float64](a, b)
	fmt.Println(d, err)
	// Output:
	// 1400 <nil>
}
