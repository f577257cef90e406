// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. No exported function panics on
// user-triggered error conditions; numeric hazards (x/0, singular inverse)
// are not errors and propagate as IEEE-754 Inf/NaN.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached by the wrappers below ("Dense.At(3,0): row 3 outside [0,3): ...");
// callers still match the sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/literal -> dimension mismatch -> index range.

var (
	// ErrInvalidDimensions is returned when a requested shape has rows<=0 or cols<=0,
	// or when a fixed shape type declares dims that do not match its storage.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidLiteral indicates a malformed initializer: empty list, empty row,
	// ragged rows, or a flat list whose length differs from rows*cols.
	ErrInvalidLiteral = errors.New("matrix: invalid literal")

	// ErrDimensionMismatch indicates operands whose shapes disagree for an
	// element-wise or assignment operation, or a literal whose derived shape
	// differs from a statically declared fixed shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleShapes indicates a product A×B with A.Cols != B.Rows.
	ErrIncompatibleShapes = errors.New("matrix: incompatible shapes for product")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Elem/SetElem) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rangeErrorf builds an ErrOutOfRange citing the offending index and the extents.
//
//	Dense.At(3,0): row 3 outside [0,3): matrix: index out of range
func rangeErrorf(owner, method string, row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return fmt.Errorf("%s.%s(%d,%d): row %d outside [0,%d): %w",
			owner, method, row, col, row, rows, ErrOutOfRange)
	}

	return fmt.Errorf("%s.%s(%d,%d): col %d outside [0,%d): %w",
		owner, method, row, col, col, cols, ErrOutOfRange)
}
