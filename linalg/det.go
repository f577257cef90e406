// SPDX-License-Identifier: MIT

// Package linalg - 4×4 determinant & inverse, identity checks.
//
// Determinant and inverse share the 16 closed-form cofactors of a 4×4
// matrix: det is the first-row expansion over them (24 products in total)
// and the inverse is the adjugate scaled by 1/det.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/tao/matrix"
)

const (
	opDet4x4     = "Det4x4"
	opInverse4x4 = "Inverse4x4"
)

// adjugate4 returns the transposed cofactor matrix of m (row-major).
func adjugate4[T matrix.Number](m [16]T) [16]T {
	var inv [16]T
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	return inv
}

// det4 expands along the first row using the cofactors in adj.
func det4[T matrix.Number](m, adj [16]T) T {
	return m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
}

// scale4 returns adj * (1/det).
func scale4[T matrix.Number](adj [16]T, det T) [16]T {
	k := 1 / det
	for i := range adj {
		adj[i] *= k
	}

	return adj
}

// Det4 returns the determinant of a 4×4 matrix.
func Det4[T matrix.Number](m matrix.Mat4[T]) T {
	a := [16]T(m.Array())

	return det4(a, adjugate4(a))
}

// Det4x4 returns the determinant of any 4×4 Matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (not 4×4).
func Det4x4[T matrix.Number](m matrix.Matrix[T]) (T, error) {
	a, err := mat4Values(opDet4x4, m)
	if err != nil {
		return 0, err
	}

	return det4(a, adjugate4(a)), nil
}

// Inverse4 returns adj(m) * (1/det(m)).
// A singular float matrix yields Inf/NaN cells; an integer one panics.
func Inverse4[T matrix.Number](m matrix.Mat4[T]) matrix.Mat4[T] {
	a := [16]T(m.Array())
	adj := adjugate4(a)

	return matrix.NewMat4(scale4(adj, det4(a, adj)))
}

// Inverse4x4 returns the inverse of any 4×4 Matrix as a new Dense.
// Singularity is not an error: see Inverse4.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (not 4×4).
func Inverse4x4[T matrix.Number](m matrix.Matrix[T]) (*matrix.Dense[T], error) {
	a, err := mat4Values(opInverse4x4, m)
	if err != nil {
		return nil, err
	}
	adj := adjugate4(a)
	inv := scale4(adj, det4(a, adj))
	out, err := matrix.NewDenseFromSlice(4, 4, inv[:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse4x4, err)
	}

	return out, nil
}

// IsIdentity reports whether m is square with exact 1 on the diagonal and
// 0 elsewhere. Nil or non-square input yields false.
func IsIdentity[T matrix.Number](m matrix.Matrix[T]) bool {
	id, err := matrix.IdentityLike(m)
	if err != nil {
		return false
	}

	return matrix.Equal[T](m, id)
}

// IsIdentityApprox is IsIdentity with the strict tolerance comparison of
// matrix.ApproxEqual.
func IsIdentityApprox[T matrix.Number](m matrix.Matrix[T], opts ...matrix.Option) bool {
	id, err := matrix.IdentityLike(m)
	if err != nil {
		return false
	}

	return matrix.ApproxEqual[T](m, id, opts...)
}
