// SPDX-License-Identifier: MIT

// Package linalg provides vector and small-matrix operations on top of the
// matrix package.
//
// Two forms are offered for most operations:
//
//   - Interface forms (Norm, Dot, Cross, Distance, Lerp, Det4x4, Inverse4x4)
//     accept any matrix.Matrix[T] and validate shapes at runtime, returning the
//     matrix package sentinels (matrix.ErrDimensionMismatch, ...).
//   - Fixed forms (NormFixed, DotFixed, Cross3, DistanceFixed, Lerp3, Det4,
//     Inverse4) take matrix.Fixed values whose shapes the compiler checks; they
//     never return errors.
//
// Vectors are N×1 or 1×N matrices. Numeric hazards are not guarded: Unitize of
// a zero vector and Inverse4 of a singular matrix produce Inf/NaN for floats.
// For integer element types Norm and the spherical angles truncate toward zero,
// and Inverse4 scales by the integer 1/det, which panics when det is 0.
package linalg
