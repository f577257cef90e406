// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed by the delegated call; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Identity returns the identity of square shape S.
// Errors: ErrInvalidDimensions (malformed shape), ErrDimensionMismatch (not square).
func Identity[T Number, S Shape[T]]() (Fixed[T, S], error) {
	m, err := NewFixed[T, S]()
	if err != nil {
		return m, err
	}
	r, c := m.Dims()
	if r != c {
		return m, matrixErrorf("Identity", ErrDimensionMismatch)
	}
	for i := 0; i < r; i++ {
		m.data[i*c+i] = 1
	}

	return m, nil
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Matrix.Clone.
// Errors: ErrNilMatrix.
func CloneMatrix[T Number](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); m must be square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.Rows())
}

// ---------- Linear Algebra aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a - b.
func Diff[T Number](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise a ⊙ b.
func HadamardProd[T Number](a, b Matrix[T]) (*Dense[T], error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Number](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: alpha*m.
func ScaleBy[T Number](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }
