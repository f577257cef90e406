// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/tao/matrix"
)

// flat is the element storage read by the kernels below: a slice from a
// Dense or a shape array from a Fixed.
type flat[T matrix.Number] interface {
	~[]T | ~[2]T | ~[3]T | ~[4]T | ~[9]T | ~[16]T
}

// dotOf returns Σ a[k]*b[k]; len(a) == len(b) by contract.
func dotOf[T matrix.Number, A, B flat[T]](a A, b B) T {
	var r T
	for k := 0; k < len(a); k++ {
		r += a[k] * b[k]
	}

	return r
}

// crossOf returns the 3-vector cross product of a and b.
func crossOf[T matrix.Number](a, b [3]T) [3]T {
	return [3]T{
		a[1]*b[2] - a[2]*b[1],
		-(a[0]*b[2] - a[2]*b[0]),
		a[0]*b[1] - a[1]*b[0],
	}
}

// ---------- interface plumbing ----------

// vectorValues validates v as a vector and returns a row-major copy of it.
func vectorValues[T matrix.Number](tag string, v matrix.Matrix[T]) ([]T, error) {
	if err := matrix.ValidateVector(v); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	d, err := matrix.AsDense(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return d.Values(), nil
}

// vector3Values returns the cells of a 3-element vector. Any other shape,
// a 3×3 matrix included, is reported as matrix.ErrInvalidDimensions.
func vector3Values[T matrix.Number](v matrix.Matrix[T]) ([]T, error) {
	if err := matrix.ValidateNotNil(v); err != nil {
		return nil, fmt.Errorf("%s: %w", opCross, err)
	}
	r, c := v.Rows(), v.Cols()
	if !(r == 3 && c == 1) && !(r == 1 && c == 3) {
		return nil, fmt.Errorf("%s: %dx%d, want a 3-vector: %w", opCross, r, c, matrix.ErrInvalidDimensions)
	}

	return vectorValues(opCross, v)
}

// vectorPair returns both operands' values after checking they have equal length.
func vectorPair[T matrix.Number](tag string, a, b matrix.Matrix[T]) ([]T, []T, error) {
	av, err := vectorValues(tag, a)
	if err != nil {
		return nil, nil, err
	}
	bv, err := vectorValues(tag, b)
	if err != nil {
		return nil, nil, err
	}
	if len(av) != len(bv) {
		return nil, nil, fmt.Errorf("%s: lengths %d and %d: %w", tag, len(av), len(bv), matrix.ErrDimensionMismatch)
	}

	return av, bv, nil
}

// mat4Values returns the 16 row-major cells of a 4×4 matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
func mat4Values[T matrix.Number](tag string, m matrix.Matrix[T]) ([16]T, error) {
	var out [16]T
	if err := matrix.ValidateNotNil(m); err != nil {
		return out, fmt.Errorf("%s: %w", tag, err)
	}
	if m.Rows() != 4 || m.Cols() != 4 {
		return out, fmt.Errorf("%s: %dx%d, want 4x4: %w", tag, m.Rows(), m.Cols(), matrix.ErrInvalidDimensions)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return out, fmt.Errorf("%s: %w", tag, err)
	}
	copy(out[:], d.Values())

	return out, nil
}
