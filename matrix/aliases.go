// SPDX-License-Identifier: MIT

// Package matrix: named vector and matrix shapes for graphics-style code.
//
// Vectors are column matrices (N×1) by default; RowVecN is the 1×N form.
// Every alias is a plain Fixed, so all Fixed methods apply unchanged.

package matrix

// Column vectors.
type (
	Vec2[T Number] = Fixed[T, S2x1[T]]
	Vec3[T Number] = Fixed[T, S3x1[T]]
	Vec4[T Number] = Fixed[T, S4x1[T]]
)

// Row vectors.
type (
	RowVec2[T Number] = Fixed[T, S1x2[T]]
	RowVec3[T Number] = Fixed[T, S1x3[T]]
	RowVec4[T Number] = Fixed[T, S1x4[T]]
)

// Square matrices.
type (
	Mat2[T Number] = Fixed[T, S2x2[T]]
	Mat3[T Number] = Fixed[T, S3x3[T]]
	Mat4[T Number] = Fixed[T, S4x4[T]]
)

// Concrete element types.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec3i = Vec3[int]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

// NewVec2 returns the column vector (x, y).
func NewVec2[T Number](x, y T) Vec2[T] { return Vec2[T]{data: S2x1[T]{x, y}} }

// NewVec3 returns the column vector (x, y, z).
func NewVec3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{data: S3x1[T]{x, y, z}} }

// NewVec4 returns the column vector (x, y, z, w).
func NewVec4[T Number](x, y, z, w T) Vec4[T] { return Vec4[T]{data: S4x1[T]{x, y, z, w}} }

// NewMat4 returns a 4×4 matrix from 16 row-major values.
func NewMat4[T Number](vals [16]T) Mat4[T] { return Mat4[T]{data: S4x4[T](vals)} }

// NewMat3 returns a 3×3 matrix from 9 row-major values.
func NewMat3[T Number](vals [9]T) Mat3[T] { return Mat3[T]{data: S3x3[T](vals)} }

// NewMat2 returns a 2×2 matrix from 4 row-major values.
func NewMat2[T Number](vals [4]T) Mat2[T] { return Mat2[T]{data: S2x2[T](vals)} }
