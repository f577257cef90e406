// SPDX-License-Identifier: MIT

// Package matrix: compile-time shapes for the fixed-size variant.
//
// A shape is a named array type whose length is rows*cols and whose Dims
// method reports the extents. Because the storage IS the shape type, two
// Fixed values only mix when their shapes are the same type, so element-wise
// mismatches are rejected by the compiler.
//
// Callers may declare their own shapes:
//
//	type S2x3[T matrix.Number] [6]T
//
//	func (S2x3[T]) Dims() (rows, cols int) { return 2, 3 }

package matrix

// Shape is satisfied by named arrays of 1..16 elements that report their dims.
// rows*cols must equal the array length; constructors verify it.
type Shape[T Number] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
	Dims() (rows, cols int)
}

// Column shapes.
type (
	S2x1[T Number] [2]T
	S3x1[T Number] [3]T
	S4x1[T Number] [4]T
)

// Row shapes.
type (
	S1x2[T Number] [2]T
	S1x3[T Number] [3]T
	S1x4[T Number] [4]T
)

// Square shapes.
type (
	S2x2[T Number] [4]T
	S3x3[T Number] [9]T
	S4x4[T Number] [16]T
)

func (S2x1[T]) Dims() (rows, cols int) { return 2, 1 }
func (S3x1[T]) Dims() (rows, cols int) { return 3, 1 }
func (S4x1[T]) Dims() (rows, cols int) { return 4, 1 }
func (S1x2[T]) Dims() (rows, cols int) { return 1, 2 }
func (S1x3[T]) Dims() (rows, cols int) { return 1, 3 }
func (S1x4[T]) Dims() (rows, cols int) { return 1, 4 }
func (S2x2[T]) Dims() (rows, cols int) { return 2, 2 }
func (S3x3[T]) Dims() (rows, cols int) { return 3, 3 }
func (S4x4[T]) Dims() (rows, cols int) { return 4, 4 }

// validateShape checks that S declares positive dims covering its storage exactly.
func validateShape[T Number, S Shape[T]]() error {
	var s S
	r, c := s.Dims()
	if r <= 0 || c <= 0 || r*c != len(s) {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}
