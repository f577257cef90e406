// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and fixed-size variants.
// This file intentionally contains ONLY the element constraint, the public
// Matrix interface and the flat-storage constraint consumed by kernels.

package matrix

// Number is the element constraint for every matrix in this package.
// Unsigned integers are excluded: negation is part of the operation set.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Implemented by *Dense[T] (heap, runtime shape) and *Fixed[T, S]
// (inline, shape fixed by S). Values are not safe for concurrent mutation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[T]
}

// store is the flat row-major storage accepted by the shared kernels:
// a heap slice (Dense) or an inline array of up to 16 cells (Fixed).
// Indexing and len are legal on every member of the type set.
type store[T Number] interface {
	~[]T |
		~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// abs returns |x| for any Number.
func abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
