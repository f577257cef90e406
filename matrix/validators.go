// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and literal checks.
//  - Keep kernels/facades minimal by delegating nil/shape/literal checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except error values).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Every public mutation calls its validator BEFORE touching storage.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// nilChecker is implemented by the package's pointer types so that a typed
// nil stored in a Matrix can be detected without reflection.
type nilChecker interface {
	isNil() bool
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense or *Fixed) stored in the interface is treated as nil too.
// Complexity: O(1).
func ValidateNotNil[T Number](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if n, ok := m.(nilChecker); ok && n.isNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures rows > 0 and cols > 0.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDims(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil with equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the operand check of every element-wise binary
// operation. Kept as a separate name so call sites read as intent.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape[T Number](a, b Matrix[T]) error {
	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrIncompatibleShapes.
func ValidateMulCompatible[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrIncompatibleShapes)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare[T Number](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector checks that m is non-nil and degenerate (N×1 or 1×N).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateVector[T Number](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != 1 && m.Cols() != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateVector: %dx%d", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateLiteral checks a nested initializer: non-empty, no empty row,
// no ragged rows. It returns the derived (rows, cols).
// Errors: ErrInvalidLiteral.
// Complexity: O(rows).
func ValidateLiteral[T Number](rows [][]T) (int, int, error) {
	if len(rows) == 0 {
		return 0, 0, validatorErrorf("ValidateLiteral: empty list", ErrInvalidLiteral)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) == 0 {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateLiteral: row %d is empty", i), ErrInvalidLiteral)
		}
		if len(row) != cols {
			return 0, 0, validatorErrorf(
				fmt.Sprintf("ValidateLiteral: row %d has %d elements, want %d", i, len(row), cols),
				ErrInvalidLiteral)
		}
	}

	return len(rows), cols, nil
}

// validateFlatLen checks a flat initializer has exactly rows*cols elements.
func validateFlatLen(n, rows, cols int) error {
	if n != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateLiteral: %d elements for %dx%d", n, rows, cols),
			ErrInvalidLiteral)
	}

	return nil
}
