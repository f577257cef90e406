// SPDX-License-Identifier: MIT

// Package matrix provides generic dense matrices in two storage flavours that
// share one set of algorithms.
//
// The matrix package provides:
//
//   - Dense[T]: heap-backed, shape chosen at runtime (NewDense, NewDenseFromRows,
//     NewCol, NewRow, NewIdentity).
//   - Fixed[T, S]: inline storage whose shape S (S3x1, S4x4, ...) is a type,
//     so element-wise operands with different shapes do not compile. Named
//     aliases cover the usual graphics types (Vec3d, Mat4f, ...).
//   - Element-wise arithmetic (Add, Sub, Div, Hadamard, Neg, Abs, Scale,
//     DivScalar, ScalarDiv) with in-place variants, the matrix product Mul,
//     Transpose, exact Equal and tolerance-based ApproxEqual.
//
// Elements are constrained by Number: signed integers and floats.
// Storage is row-major; the cell (i, j) of an r×c matrix lives at i*c + j.
//
// Errors are sentinel values (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with call-site context; test them with errors.Is. Operations validate
// shapes before writing, so a failed in-place call leaves its receiver untouched.
//
// Integer division follows Go semantics: it truncates toward zero and a zero
// divisor panics. Float division by zero yields ±Inf or NaN.
//
// Concurrency: matrices are plain values with no internal locking. Concurrent
// reads are safe; any write concurrent with another access is a data race.
//
// See the examples in this package and in linalg for usage patterns.
package matrix
