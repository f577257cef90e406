// SPDX-License-Identifier: MIT

// Package matrix - Fixed storage (row-major, inline) & safe accessors.
//
// Purpose:
//   - Provide a compile-time-shaped matrix whose cells live inline in a value
//     (no heap allocation), selected by a Shape type (S3x1, S4x4, ...).
//   - Share every loop with Dense: Fixed passes its array to the same kernels.
//
// Behavior highlights:
//   - The zero value is a ready-to-use zero matrix of shape S.
//   - Assignment copies (value semantics); use a pointer for in-place updates.
//   - *Fixed[T, S] implements Matrix[T], so fixed and dynamic operands mix in
//     the package-level functions (Add, Mul, Equal, ...).
//
// Complexity quicksheet:
//   - At/Set: O(1); Clone: O(r*c) copy, no allocation beyond the returned pointer.

package matrix

import "fmt"

const ownerFixed = "Fixed"

// Fixed is a row-major matrix whose shape is fixed by S.
type Fixed[T Number, S Shape[T]] struct {
	data S // inline row-major storage, len == rows*cols
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Fixed[float64, S4x4[float64]])(nil)
	_ fmt.Stringer    = Fixed[float64, S3x1[float64]]{}
)

// FixedOf wraps a shape literal into a Fixed. The literal's length is checked
// by the compiler, which makes this the preferred flat-literal constructor:
//
//	m := matrix.FixedOf[float64](matrix.S2x2[float64]{1, 2, 3, 4})
func FixedOf[T Number, S Shape[T]](s S) Fixed[T, S] { return Fixed[T, S]{data: s} }

// NewFixed returns the zero matrix of shape S after checking that S declares
// dims matching its storage.
// Errors: ErrInvalidDimensions (malformed custom shape).
func NewFixed[T Number, S Shape[T]]() (Fixed[T, S], error) {
	var m Fixed[T, S]
	if err := validateShape[T, S](); err != nil {
		return m, matrixErrorf("NewFixed", err)
	}

	return m, nil
}

// NewFixedFilled returns a matrix of shape S with every element set to v.
// Errors: ErrInvalidDimensions (malformed custom shape).
func NewFixedFilled[T Number, S Shape[T]](v T) (Fixed[T, S], error) {
	m, err := NewFixed[T, S]()
	if err != nil {
		return m, err
	}
	ewFill(&m.data, v)

	return m, nil
}

// NewFixedFromSlice fills a matrix of shape S row-major from a flat list.
//
// Errors:
//   - ErrInvalidDimensions (malformed custom shape).
//   - ErrInvalidLiteral when len(vals) != rows*cols.
func NewFixedFromSlice[T Number, S Shape[T]](vals []T) (Fixed[T, S], error) {
	m, err := NewFixed[T, S]()
	if err != nil {
		return m, err
	}
	r, c := m.Dims()
	if err = validateFlatLen(len(vals), r, c); err != nil {
		return m, matrixErrorf("NewFixedFromSlice", err)
	}
	ewCopy[T](&m.data, vals)

	return m, nil
}

// NewFixedFromRows fills a matrix of shape S from a nested literal.
//
// Implementation:
//   - Stage 1: ValidateLiteral (non-empty, no empty row, not ragged).
//   - Stage 2: compare the derived shape with S.Dims().
//   - Stage 3: copy row-major.
//
// Errors:
//   - ErrInvalidLiteral for malformed input.
//   - ErrDimensionMismatch when the literal's shape differs from S.
func NewFixedFromRows[T Number, S Shape[T]](rows [][]T) (Fixed[T, S], error) {
	m, err := NewFixed[T, S]()
	if err != nil {
		return m, err
	}
	r, c, err := ValidateLiteral(rows)
	if err != nil {
		return m, matrixErrorf("NewFixedFromRows", err)
	}
	wr, wc := m.Dims()
	if r != wr || c != wc {
		return m, fmt.Errorf("NewFixedFromRows: expected (%d,%d), got (%d,%d): %w",
			wr, wc, r, c, ErrDimensionMismatch)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// FixedFromMatrix copies any Matrix of the same extents into shape S.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func FixedFromMatrix[T Number, S Shape[T]](src Matrix[T]) (Fixed[T, S], error) {
	m, err := NewFixed[T, S]()
	if err != nil {
		return m, err
	}
	if err = ValidateNotNil(src); err != nil {
		return m, matrixErrorf("FixedFromMatrix", err)
	}
	if err = ValidateSameShape[T](&m, src); err != nil {
		return m, matrixErrorf("FixedFromMatrix", err)
	}
	d, err := toDense(src)
	if err != nil {
		return m, matrixErrorf("FixedFromMatrix", err)
	}
	ewCopy[T](&m.data, d.data)

	return m, nil
}

// Dims returns (rows, cols) as declared by S.
func (m Fixed[T, S]) Dims() (rows, cols int) { return m.data.Dims() }

// Rows returns the row count declared by S.
func (m Fixed[T, S]) Rows() int {
	r, _ := m.data.Dims()

	return r
}

// Cols returns the column count declared by S.
func (m Fixed[T, S]) Cols() int {
	_, c := m.data.Dims()

	return c
}

// Len returns rows*cols.
func (m Fixed[T, S]) Len() int { return len(m.data) }

func (m Fixed[T, S]) indexOf(method string, row, col int) (int, error) {
	r, c := m.data.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return 0, rangeErrorf(ownerFixed, method, row, col, r, c)
	}
	off := row*c + col
	if off >= len(m.data) {
		return 0, fmt.Errorf("%s.%s(%d,%d): %w", ownerFixed, method, row, col, ErrInvalidDimensions)
	}

	return off, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m Fixed[T, S]) At(row, col int) (T, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Fixed[T, S]) Set(row, col int, v T) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Elem reads element i of a row or column vector shape.
// Errors: ErrDimensionMismatch (not a vector), ErrOutOfRange.
func (m Fixed[T, S]) Elem(i int) (T, error) {
	var zero T
	r, c := m.data.Dims()
	if r != 1 && c != 1 {
		return zero, fmt.Errorf("%s.%s(%d): %dx%d is not a vector: %w", ownerFixed, ctxElem, i, r, c, ErrDimensionMismatch)
	}
	if i < 0 || i >= len(m.data) {
		return zero, fmt.Errorf("%s.%s(%d): index %d outside [0,%d): %w", ownerFixed, ctxElem, i, i, len(m.data), ErrOutOfRange)
	}

	return m.data[i], nil
}

// SetElem writes element i of a row or column vector shape.
// Errors: ErrDimensionMismatch (not a vector), ErrOutOfRange.
func (m *Fixed[T, S]) SetElem(i int, v T) error {
	r, c := m.data.Dims()
	if r != 1 && c != 1 {
		return fmt.Errorf("%s.%s(%d): %dx%d is not a vector: %w", ownerFixed, ctxSetElem, i, r, c, ErrDimensionMismatch)
	}
	if i < 0 || i >= len(m.data) {
		return fmt.Errorf("%s.%s(%d): index %d outside [0,%d): %w", ownerFixed, ctxSetElem, i, i, len(m.data), ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// Array returns a copy of the inline storage, e.g. S3x1[T]{x, y, z}.
func (m Fixed[T, S]) Array() S { return m.data }

// Values returns a row-major copy of the elements as a slice.
func (m Fixed[T, S]) Values() []T {
	out := make([]T, len(m.data))
	ewCopy[T](&out, m.data)

	return out
}

// Clone returns a deep copy as a Matrix.
func (m *Fixed[T, S]) Clone() Matrix[T] {
	cp := *m

	return &cp
}

// Dense copies m into a heap-backed Dense of the same shape.
func (m Fixed[T, S]) Dense() *Dense[T] {
	r, c := m.data.Dims()
	d := newDenseUnchecked[T](r, c)
	ewCopy[T](&d.data, m.data)

	return d
}

// Reset overwrites every element with v.
func (m *Fixed[T, S]) Reset(v T) { ewFill(&m.data, v) }

func (m *Fixed[T, S]) isNil() bool { return m == nil }

// String renders rows like Dense.String.
func (m Fixed[T, S]) String() string {
	r, c := m.data.Dims()

	return formatRows(r, c, func(k int) T { return m.data[k] })
}
