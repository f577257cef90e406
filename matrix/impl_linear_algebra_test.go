// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/tao/matrix"
	"github.com/stretchr/testify/require"
)

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type takes the interface path and produces identical results.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()
	base := randDense(t, 3, 4, 7)
	wrapped := hide{base}

	type binOp func(a, b matrix.Matrix[float64]) (*matrix.Dense[float64], error)
	ops := map[string]binOp{
		"Add":      matrix.Add[float64],
		"Sub":      matrix.Sub[float64],
		"Hadamard": matrix.Hadamard[float64],
	}
	for name, op := range ops {
		fast, err := op(base, base)
		require.NoError(t, err, name)
		slow, err := op(wrapped, base)
		require.NoError(t, err, name)
		require.Equal(t, fast.Values(), slow.Values(), name)
	}

	tr1, err := matrix.Transpose[float64](base)
	require.NoError(t, err)
	tr2, err := matrix.Transpose[float64](wrapped)
	require.NoError(t, err)
	require.True(t, tr1.Equal(tr2))
}

func TestElementWiseOps(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}})
	b := MustRows(t, [][]float64{{100, 200, 300}})

	tests := []struct {
		name string
		op   func() (*matrix.Dense[float64], error)
		want []float64
	}{
		{"Add", func() (*matrix.Dense[float64], error) { return matrix.Add[float64](a, b) }, []float64{101, 202, 303}},
		{"Sub", func() (*matrix.Dense[float64], error) { return matrix.Sub[float64](a, b) }, []float64{-99, -198, -297}},
		{"Div", func() (*matrix.Dense[float64], error) { return matrix.Div[float64](a, b) }, []float64{0.01, 0.01, 0.01}},
		{"Hadamard", func() (*matrix.Dense[float64], error) { return matrix.Hadamard[float64](a, b) }, []float64{100, 400, 900}},
		{"Neg", func() (*matrix.Dense[float64], error) { return matrix.Neg[float64](a) }, []float64{-1, -2, -3}},
		{"Scale", func() (*matrix.Dense[float64], error) { return matrix.Scale[float64](a, 2) }, []float64{2, 4, 6}},
		{"DivScalar", func() (*matrix.Dense[float64], error) { return matrix.DivScalar[float64](b, 100) }, []float64{1, 2, 3}},
		{"ScalarDiv", func() (*matrix.Dense[float64], error) { return matrix.ScalarDiv[float64](6, a) }, []float64{6, 3, 2}},
		{"ElementWise", func() (*matrix.Dense[float64], error) {
			return matrix.ElementWise[float64](a, b, func(x, y float64) float64 { return y - 2*x })
		}, []float64{98, 196, 294}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op()
			require.NoError(t, err)
			require.InDeltaSlice(t, tc.want, got.Values(), 1e-12)
			require.Equal(t, []float64{1, 2, 3}, a.Values(), "operand mutated")
		})
	}
}

func TestAbsInt(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int{{-1, 2}, {0, -7}})
	got, err := matrix.Abs[int](m)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 7}, got.Values())
}

func TestBinaryShapeMismatch(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)
	for name, fn := range map[string]func(x, y matrix.Matrix[float64]) (*matrix.Dense[float64], error){
		"Add":      matrix.Add[float64],
		"Sub":      matrix.Sub[float64],
		"Div":      matrix.Div[float64],
		"Hadamard": matrix.Hadamard[float64],
	} {
		_, err := fn(a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
		_, err = fn(nil, b)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
	}
	_, err := matrix.Neg[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInPlaceVariants(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}})
	b := MustRows(t, [][]float64{{100, 200, 300}})

	got, err := a.AddInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, got)
	require.Equal(t, []float64{101, 202, 303}, a.Values())

	_, err = a.SubInPlace(b)
	require.NoError(t, err)
	_, err = a.SubInPlace(b)
	require.NoError(t, err)
	require.Equal(t, []float64{-99, -198, -297}, a.Values())

	c := MustRows(t, [][]float64{{2, 4, 6}})
	require.Same(t, c, c.DivScalarInPlace(2))
	require.Equal(t, []float64{1, 2, 3}, c.Values())
	c.ScaleInPlace(2).NegInPlace()
	require.Equal(t, []float64{-2, -4, -6}, c.Values())

	_, err = c.HadamardInPlace(c)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 16, 36}, c.Values())
	_, err = c.DivInPlace(MustRows(t, [][]float64{{4, 4, 4}}))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 9}, c.Values())

	_, err = c.ElementWiseInPlace(hide{c}, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	require.Equal(t, []float64{2, 8, 18}, c.Values())
}

// TestInPlaceAtomicity checks that a failed in-place call leaves the receiver untouched.
func TestInPlaceAtomicity(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	before := a.Values()

	_, err := a.AddInPlace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.SubInPlace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Equal(t, before, a.Values())
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})
	c, err := matrix.Mul[int](a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	require.Equal(t, []int{58, 64, 139, 154}, c.Values())

	_, err = matrix.Mul[int](a, a)
	require.ErrorIs(t, err, matrix.ErrIncompatibleShapes)
	_, err = matrix.Mul[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulIdentity is the neutral-element scenario: A × I == A.
func TestMulIdentity(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randDense(t, n, n, int64(n))
			id, err := matrix.NewIdentity[float64](n)
			require.NoError(t, err)
			left, err := matrix.Mul[float64](id, a)
			require.NoError(t, err)
			right, err := matrix.Mul[float64](a, id)
			require.NoError(t, err)
			require.True(t, left.Equal(a))
			require.True(t, right.Equal(a))
		})
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose[int](m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Values())
	require.True(t, m.Transposed().Equal(tr))

	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.True(t, matrix.Equal[float64](a, a.Copy()))
	require.True(t, a.Equal(hide{a.Copy()}))
	require.False(t, matrix.Equal[float64](a, MustRows(t, [][]float64{{1, 2, 3, 4}})))
	require.False(t, matrix.Equal[float64](a, nil))

	b := a.Copy()
	require.NoError(t, b.Set(1, 1, 4.000001))
	require.False(t, a.Equal(b))
	require.True(t, a.ApproxEqual(b))
}

// TestApproxEqualStrictBoundary pins |a-b| < tol as strict.
func TestApproxEqualStrictBoundary(t *testing.T) {
	t.Parallel()
	zero := MustRows(t, [][]float64{{0}})
	atTol := MustRows(t, [][]float64{{matrix.DefaultTolerance}})
	require.False(t, matrix.ApproxEqual[float64](zero, atTol), "difference equal to tol is not close")
	require.True(t, matrix.ApproxEqual[float64](zero, MustRows(t, [][]float64{{0.00005}})))

	one := MustRows(t, [][]float64{{1}})
	half := MustRows(t, [][]float64{{1.5}})
	require.False(t, matrix.ApproxEqual[float64](one, half, matrix.WithTolerance(0.5)))
	require.True(t, matrix.ApproxEqual[float64](one, half, matrix.WithTolerance(0.75)))

	nan := MustRows(t, [][]float64{{math.NaN()}})
	require.False(t, matrix.ApproxEqual[float64](nan, nan))
	require.False(t, matrix.ApproxEqual[float64](one, MustDense(t, 1, 2)))
}

func TestApproxEqualInt(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]int{{1, 2}})
	b := MustRows(t, [][]int{{1, 3}})
	require.False(t, matrix.ApproxEqual[int](a, b))
	require.True(t, matrix.ApproxEqual[int](a, b, matrix.WithTolerance(1.5)))
}

func TestFacades(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Sum[float64](a, b)
	require.NoError(t, err)
	add, err := matrix.Add[float64](a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(add))

	diff, err := matrix.Diff[float64](b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4, 4}, diff.Values())

	prod, err := matrix.Product[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{19, 22, 43, 50}, prod.Values())

	had, err := matrix.HadamardProd[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 12, 21, 32}, had.Values())

	tr, err := matrix.T[float64](a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 4}, tr.Values())

	sc, err := matrix.ScaleBy[float64](a, -1)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -2, -3, -4}, sc.Values())

	z, err := matrix.ZerosLike[float64](a)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, z.Values())
	z2, err := matrix.NewZeros[float64](1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, z2.Cols())

	id, err := matrix.IdentityLike[float64](a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1}, id.Values())
	_, err = matrix.IdentityLike[float64](MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewIdentity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cl, err := matrix.CloneMatrix[float64](a)
	require.NoError(t, err)
	require.NoError(t, cl.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt[float64](t, a, 0, 0))

	_, err = matrix.CloneMatrix[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilFixed *matrix.Mat3d
	_, err = matrix.CloneMatrix[float64](nilFixed)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestIntegerDivisionTruncates documents Go semantics for integer T.
func TestIntegerDivisionTruncates(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int{{7, -7}})
	got, err := matrix.DivScalar[int](m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3, -3}, got.Values())

	require.Panics(t, func() { _, _ = matrix.DivScalar[int](m, 0) })
}

func TestFloatDivisionByZero(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, -1, 0}})
	got, err := matrix.DivScalar[float64](m, 0)
	require.NoError(t, err)
	v := got.Values()
	require.True(t, math.IsInf(v[0], 1))
	require.True(t, math.IsInf(v[1], -1))
	require.True(t, math.IsNaN(v[2]))
}
