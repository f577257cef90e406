// SPDX-License-Identifier: MIT

// Package linalg - vector operations.
//
// Complexity: every operation here is O(n) in the vector length.

package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tao/matrix"
)

const (
	opNorm     = "Norm"
	opUnitize  = "Unitize"
	opDot      = "Dot"
	opCross    = "Cross"
	opDistance = "Distance"
	opLerp     = "Lerp"
)

// sqrtOf converts through float64; integer results truncate toward zero.
func sqrtOf[T matrix.Number](x T) T { return T(math.Sqrt(float64(x))) }

// Dot returns Σ a[i]*b[i] for two vectors of equal length. Row and column
// orientation may differ.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not a vector, or
// lengths differ).
func Dot[T matrix.Number](a, b matrix.Matrix[T]) (T, error) {
	av, bv, err := vectorPair(opDot, a, b)
	if err != nil {
		return 0, err
	}

	return dotOf[T](av, bv), nil
}

// DotFixed returns Σ a[i]*b[i] for two vectors of the same shape.
func DotFixed[T matrix.Number, S matrix.Shape[T]](a, b matrix.Fixed[T, S]) T {
	return dotOf[T](a.Values(), b.Values())
}

// Norm returns the Euclidean length sqrt(v·v). The zero vector has norm 0.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not a vector).
func Norm[T matrix.Number](v matrix.Matrix[T]) (T, error) {
	vals, err := vectorValues(opNorm, v)
	if err != nil {
		return 0, err
	}

	return sqrtOf(dotOf[T](vals, vals)), nil
}

// NormFixed returns the Euclidean length of v.
func NormFixed[T matrix.Number, S matrix.Shape[T]](v matrix.Fixed[T, S]) T {
	return sqrtOf(DotFixed(v, v))
}

// Unitize returns v / Norm(v) with the shape of v. A zero vector is not
// guarded and yields NaN cells for floats.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Unitize[T matrix.Number](v matrix.Matrix[T]) (*matrix.Dense[T], error) {
	n, err := Norm(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUnitize, err)
	}

	return matrix.DivScalar(v, n)
}

// UnitizeFixed returns v / NormFixed(v).
func UnitizeFixed[T matrix.Number, S matrix.Shape[T]](v matrix.Fixed[T, S]) matrix.Fixed[T, S] {
	return v.DivScalar(NormFixed(v))
}

// Cross returns the cross product of two 3-element vectors as a 3×1 column.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (an operand that
// is not a 3-element vector).
func Cross[T matrix.Number](a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	av, err := vector3Values(a)
	if err != nil {
		return nil, err
	}
	bv, err := vector3Values(b)
	if err != nil {
		return nil, err
	}
	c := crossOf([3]T(av), [3]T(bv))

	return matrix.NewCol(c[:]...)
}

// Cross3 returns a × b for 3-vectors.
func Cross3[T matrix.Number](a, b matrix.Vec3[T]) matrix.Vec3[T] {
	c := crossOf([3]T(a.Array()), [3]T(b.Array()))

	return matrix.NewVec3(c[0], c[1], c[2])
}

// Distance returns Norm(a - b).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Distance[T matrix.Number](a, b matrix.Matrix[T]) (T, error) {
	d, err := matrix.Sub(a, b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDistance, err)
	}
	n, err := Norm[T](d)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDistance, err)
	}

	return n, nil
}

// DistanceFixed returns NormFixed(a - b).
func DistanceFixed[T matrix.Number, S matrix.Shape[T]](a, b matrix.Fixed[T, S]) T {
	return NormFixed(a.Sub(b))
}

// Lerp returns (1-t)*p0 + t*p1. t is not clamped, so values outside [0,1]
// extrapolate. Any two matrices of the same shape are accepted.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Lerp[T matrix.Number](t T, p0, p1 matrix.Matrix[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateBinarySameShape(p0, p1); err != nil {
		return nil, fmt.Errorf("%s: %w", opLerp, err)
	}
	a, err := matrix.Scale(p0, 1-t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLerp, err)
	}
	b, err := matrix.Scale(p1, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLerp, err)
	}

	return a.AddInPlace(b)
}

// LerpFixed returns (1-t)*p0 + t*p1 for any fixed shape.
func LerpFixed[T matrix.Number, S matrix.Shape[T]](t T, p0, p1 matrix.Fixed[T, S]) matrix.Fixed[T, S] {
	return p0.Scale(1 - t).Add(p1.Scale(t))
}

// Lerp3 returns (1-t)*p0 + t*p1 for 3-vectors.
func Lerp3[T matrix.Number](t T, p0, p1 matrix.Vec3[T]) matrix.Vec3[T] {
	return LerpFixed(t, p0, p1)
}
