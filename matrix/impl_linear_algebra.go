// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise engine, sum, difference, division, negation, scalar scaling,
// transpose, matrix product and comparisons. All functions perform strict
// fail-fast validation BEFORE any write and return wrapped sentinels.
//
// Purpose:
//   - Declare the canonical kernels' public surface (validation + allocation).
//   - Define operation tags for deterministic error reporting.
//
// Notes:
//   - Loops live in ops_elementwise.go; this file never iterates cells itself.
//   - *Dense operands are used in place; other Matrix implementations are
//     materialized once through At (generic fallback).
//   - Numeric hazards are not checked: x/0 yields ±Inf/NaN for floats and the
//     Go runtime divide-by-zero panic for integer element types.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opElementWise = "ElementWise"
	opAdd         = "Add"
	opSub         = "Sub"
	opDiv         = "Div"
	opHadamard    = "Hadamard"
	opNeg         = "Neg"
	opAbs         = "Abs"
	opScale       = "Scale"
	opDivScalar   = "DivScalar"
	opScalarDiv   = "ScalarDiv"
	opMul         = "Mul"
	opTranspose   = "Transpose"
)

// binary validates a and b, then writes op(a[i,j], b[i,j]) into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize non-Dense operands once; run ewApply on flat buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func binary[T Number](a, b Matrix[T], op func(x, y T) T, tag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := newDenseUnchecked[T](da.r, da.c)
	ewApply(&res.data, da.data, db.data, op)

	return res, nil
}

// unary validates m, then writes op(m[i,j]) into a fresh Dense.
func unary[T Number](m Matrix[T], op func(x T) T, tag string) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := newDenseUnchecked[T](dm.r, dm.c)
	ewMap(&res.data, dm.data, op)

	return res, nil
}

// ElementWise produces C[i,j] = op(A[i,j], B[i,j]) for equally shaped A and B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Add/Sub/Div/Hadamard are ElementWise with a fixed operator; prefer them
//     for readability and stable error tags.
func ElementWise[T Number](a, b Matrix[T], op func(x, y T) T) (*Dense[T], error) {
	return binary(a, b, op, opElementWise)
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T Number](a, b Matrix[T]) (*Dense[T], error) { return binary(a, b, opAddFn[T], opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Number](a, b Matrix[T]) (*Dense[T], error) { return binary(a, b, opSubFn[T], opSub) }

// Div computes the element-wise quotient C[i,j] = A[i,j] / B[i,j].
// Zero divisors are not checked.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Div[T Number](a, b Matrix[T]) (*Dense[T], error) { return binary(a, b, opDivFn[T], opDiv) }

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T Number](a, b Matrix[T]) (*Dense[T], error) {
	return binary(a, b, opMulFn[T], opHadamard)
}

// Neg returns the additive inverse -M.
// Errors: ErrNilMatrix.
func Neg[T Number](m Matrix[T]) (*Dense[T], error) { return unary(m, opNegFn[T], opNeg) }

// Abs returns |M| element-wise.
// Errors: ErrNilMatrix.
func Abs[T Number](m Matrix[T]) (*Dense[T], error) { return unary(m, opAbsFn[T], opAbs) }

// Scale returns k*M. Scalar multiplication commutes: Scale(m, k) is both
// k*M and M*k, so there is a single entry point.
// Errors: ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Number](m Matrix[T], k T) (*Dense[T], error) {
	return unary(m, func(x T) T { return k * x }, opScale)
}

// DivScalar returns M/k element-wise. k == 0 is not checked.
// Errors: ErrNilMatrix.
func DivScalar[T Number](m Matrix[T], k T) (*Dense[T], error) {
	return unary(m, func(x T) T { return x / k }, opDivScalar)
}

// ScalarDiv returns k/M element-wise: C[i,j] = k / M[i,j]. Zero cells are not checked.
// Errors: ErrNilMatrix.
func ScalarDiv[T Number](k T, m Matrix[T]) (*Dense[T], error) {
	return unary(m, func(x T) T { return k / x }, opScalarDiv)
}

// Mul performs the conventional product C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: allocate (A.Rows × B.Cols) and run the i→j→k kernel.
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleShapes.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). No blocking/Strassen: correctness over throughput.
func Mul[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newDenseUnchecked[T](da.r, db.c)
	mulKernel[T](&res.data, da.data, db.data, da.r, da.c, db.c)

	return res, nil
}

// Transpose returns a new (cols×rows) matrix with R[i,j] = M[j,i].
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDenseUnchecked[T](dm.c, dm.r)
	transposeKernel[T](&res.data, dm.data, dm.r, dm.c)

	return res, nil
}

// resolvePair resolves both operands to Dense for comparison; ok=false when
// either is nil, shapes differ, or an element cannot be read.
func resolvePair[T Number](a, b Matrix[T]) (*Dense[T], *Dense[T], bool) {
	if ValidateBinarySameShape(a, b) != nil {
		return nil, nil, false
	}
	da, err := toDense(a)
	if err != nil {
		return nil, nil, false
	}
	db, err := toDense(b)
	if err != nil {
		return nil, nil, false
	}

	return da, db, true
}

// Equal reports exact equality: same shape and every element equal.
// Shape differences (and nil operands) yield false, never an error.
// Complexity: O(r*c).
func Equal[T Number](a, b Matrix[T]) bool {
	da, db, ok := resolvePair(a, b)

	return ok && ewEqual[T](da.data, db.data)
}

// ApproxEqual reports whether a and b share a shape and every cell satisfies
// |a[i,j]-b[i,j]| < tol (strict). tol defaults to DefaultTolerance (0.0001)
// and is configured with WithTolerance.
//
// Behavior highlights:
//   - A cell differing by exactly tol is NOT close.
//   - NaN is never close to anything.
//
// Complexity: O(r*c).
func ApproxEqual[T Number](a, b Matrix[T], opts ...Option) bool {
	o := gatherOptions(opts...)
	da, db, ok := resolvePair(a, b)

	return ok && ewClose[T](da.data, db.data, o.tol)
}

// ---------- In-place variants on *Dense (compound assignment) ----------

// ElementWiseInPlace sets m[i,j] = op(m[i,j], b[i,j]) and returns m.
// b may be m itself.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error m is left untouched.
func (m *Dense[T]) ElementWiseInPlace(b Matrix[T], op func(x, y T) T) (*Dense[T], error) {
	return m.binaryInPlace(b, op, opElementWise)
}

func (m *Dense[T]) binaryInPlace(b Matrix[T], op func(x, y T) T, tag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape[T](m, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	ewApply(&m.data, m.data, db.data, op)

	return m, nil
}

// AddInPlace performs m += b and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m untouched).
func (m *Dense[T]) AddInPlace(b Matrix[T]) (*Dense[T], error) {
	return m.binaryInPlace(b, opAddFn[T], opAdd)
}

// SubInPlace performs m -= b and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m untouched).
func (m *Dense[T]) SubInPlace(b Matrix[T]) (*Dense[T], error) {
	return m.binaryInPlace(b, opSubFn[T], opSub)
}

// DivInPlace performs m /= b element-wise and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m untouched).
func (m *Dense[T]) DivInPlace(b Matrix[T]) (*Dense[T], error) {
	return m.binaryInPlace(b, opDivFn[T], opDiv)
}

// HadamardInPlace performs m *= b element-wise and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m untouched).
func (m *Dense[T]) HadamardInPlace(b Matrix[T]) (*Dense[T], error) {
	return m.binaryInPlace(b, opMulFn[T], opHadamard)
}

// ScaleInPlace performs m *= k and returns m. Always succeeds.
func (m *Dense[T]) ScaleInPlace(k T) *Dense[T] {
	ewMap(&m.data, m.data, func(x T) T { return k * x })

	return m
}

// DivScalarInPlace performs m /= k and returns m. k == 0 is not checked.
func (m *Dense[T]) DivScalarInPlace(k T) *Dense[T] {
	ewMap(&m.data, m.data, func(x T) T { return x / k })

	return m
}

// NegInPlace negates every element and returns m.
func (m *Dense[T]) NegInPlace() *Dense[T] {
	ewMap(&m.data, m.data, opNegFn[T])

	return m
}

// Equal reports exact equality with b (shape and values).
func (m *Dense[T]) Equal(b Matrix[T]) bool { return Equal[T](m, b) }

// ApproxEqual reports |m-b| < tol cell-wise (see package-level ApproxEqual).
func (m *Dense[T]) ApproxEqual(b Matrix[T], opts ...Option) bool {
	return ApproxEqual[T](m, b, opts...)
}

// Transposed returns the transpose of m as a new Dense. Always succeeds.
func (m *Dense[T]) Transposed() *Dense[T] {
	res := newDenseUnchecked[T](m.c, m.r)
	transposeKernel[T](&res.data, m.data, m.r, m.c)

	return res
}
