// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, heap) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Reset: O(r*c).
//
// Concurrency:
//   - A Dense is a plain value container: concurrent mutation (Set, Reset,
//     *InPlace) without external locking is a data race. Clone/Copy produce
//     independent storage suitable for hand-off to another goroutine.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ownerDense = "Dense"   // owner tag used in error wrappers
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxElem    = "Elem"    // single-index read
	ctxSetElem = "SetElem" // single-index write
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix with a runtime shape.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts (> 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf("NewDense", err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newDenseUnchecked allocates without validation; callers guarantee rows,cols > 0.
func newDenseUnchecked[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewDenseFilled creates an r×c matrix with every element set to v.
// Errors: ErrInvalidDimensions. Complexity: O(r*c).
func NewDenseFilled[T Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	ewFill(&m.data, v)

	return m, nil
}

// NewSquare creates an n×n zero matrix. Equivalent to NewDense(n, n).
func NewSquare[T Number](n int) (*Dense[T], error) {
	return NewDense[T](n, n)
}

// NewDenseFromRows builds a matrix from a rectangular nested literal.
//
// Implementation:
//   - Stage 1: ValidateLiteral (non-empty, no empty row, no ragged rows).
//   - Stage 2: allocate rows×cols and copy row-major.
//
// Errors:
//   - ErrInvalidLiteral for empty/ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Example:
//
//	m, _ := NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
func NewDenseFromRows[T Number](rows [][]T) (*Dense[T], error) {
	r, c, err := ValidateLiteral(rows)
	if err != nil {
		return nil, matrixErrorf("NewDenseFromRows", err)
	}
	m := newDenseUnchecked[T](r, c)
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseFromSlice builds a rows×cols matrix filled row-major from vals.
// The input slice is copied, never retained.
// Errors: ErrInvalidDimensions, ErrInvalidLiteral (len(vals) != rows*cols).
func NewDenseFromSlice[T Number](rows, cols int, vals []T) (*Dense[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf("NewDenseFromSlice", err)
	}
	if err := validateFlatLen(len(vals), rows, cols); err != nil {
		return nil, matrixErrorf("NewDenseFromSlice", err)
	}
	m := newDenseUnchecked[T](rows, cols)
	copy(m.data, vals)

	return m, nil
}

// NewCol builds an N×1 column vector.
// Errors: ErrInvalidLiteral when no values are given.
func NewCol[T Number](vals ...T) (*Dense[T], error) {
	if len(vals) == 0 {
		return nil, matrixErrorf("NewCol", ErrInvalidLiteral)
	}

	return NewDenseFromSlice(len(vals), 1, vals)
}

// NewRow builds a 1×N row vector.
// Errors: ErrInvalidLiteral when no values are given.
func NewRow[T Number](vals ...T) (*Dense[T], error) {
	if len(vals) == 0 {
		return nil, matrixErrorf("NewRow", ErrInvalidLiteral)
	}

	return NewDenseFromSlice(1, len(vals), vals)
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

func (m *Dense[T]) isNil() bool { return m == nil }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Errors carry the owner/method tag, the offending index and the extents.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, rangeErrorf(ownerDense, method, row, col, m.r, m.c)
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; the error cites the index and the extents.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// vecIndex maps a single index onto a degenerate (N×1 or 1×N) matrix.
func (m *Dense[T]) vecIndex(method string, i int) (int, error) {
	if m.r != 1 && m.c != 1 {
		return 0, fmt.Errorf("%s.%s(%d): %dx%d is not a vector: %w",
			ownerDense, method, i, m.r, m.c, ErrDimensionMismatch)
	}
	if i < 0 || i >= len(m.data) {
		return 0, fmt.Errorf("%s.%s(%d): index %d outside [0,%d): %w",
			ownerDense, method, i, i, len(m.data), ErrOutOfRange)
	}

	return i, nil
}

// Elem reads element i of a row or column vector.
// Errors: ErrDimensionMismatch (not a vector), ErrOutOfRange.
func (m *Dense[T]) Elem(i int) (T, error) {
	off, err := m.vecIndex(ctxElem, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off], nil
}

// SetElem writes element i of a row or column vector.
// Errors: ErrDimensionMismatch (not a vector), ErrOutOfRange.
func (m *Dense[T]) SetElem(i int, v T) error {
	off, err := m.vecIndex(ctxSetElem, i)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy as a Matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.Copy() }

// Copy returns a deep copy with its concrete type.
// Complexity: O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Values returns a row-major copy of the elements.
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Reset overwrites every element with v. Always succeeds.
// Complexity: O(r*c).
func (m *Dense[T]) Reset(v T) { ewFill(&m.data, v) }

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging, not for hot paths.
func (m *Dense[T]) String() string {
	return formatRows(m.r, m.c, func(k int) T { return m.data[k] })
}

// formatRows is shared by Dense and Fixed.
func formatRows[T Number](rows, cols int, at func(k int) T) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * cols
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", at(base+j))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m as *Dense[T] when it is one (fast-path probe).
func asDense[T Number](m Matrix[T]) (*Dense[T], bool) {
	d, ok := m.(*Dense[T])

	return d, ok && d != nil
}

// toDense materializes any Matrix into a fresh Dense via At.
// Shape is assumed valid (validated by the caller).
func toDense[T Number](m Matrix[T]) (*Dense[T], error) {
	if d, ok := asDense(m); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out := newDenseUnchecked[T](r, c)
	var i, j int
	var v T
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// AsDense returns a Dense holding the values of m: m itself when it already is
// a *Dense, otherwise a fresh copy.
// Errors: ErrNilMatrix.
func AsDense[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return toDense(m)
}
