// SPDX-License-Identifier: MIT

// Package matrix - arithmetic on the fixed-size variant.
//
// Element-wise operations take operands of the SAME Fixed[T, S] type, so a
// shape mismatch is a compile error rather than a runtime check; none of these
// methods return an error. Products and transposes change the shape and are
// provided as generic functions (runtime-checked) plus statically shaped
// helpers for the common square and vector cases.

package matrix

import "fmt"

// ElementWise returns op(m[i,j], b[i,j]) for every cell.
func (m Fixed[T, S]) ElementWise(b Fixed[T, S], op func(x, y T) T) Fixed[T, S] {
	var out Fixed[T, S]
	ewApply(&out.data, m.data, b.data, op)

	return out
}

// ElementWiseInPlace sets m[i,j] = op(m[i,j], b[i,j]) and returns m.
func (m *Fixed[T, S]) ElementWiseInPlace(b Fixed[T, S], op func(x, y T) T) *Fixed[T, S] {
	ewApply(&m.data, m.data, b.data, op)

	return m
}

func (m Fixed[T, S]) mapped(op func(x T) T) Fixed[T, S] {
	var out Fixed[T, S]
	ewMap(&out.data, m.data, op)

	return out
}

// Add returns m + b.
func (m Fixed[T, S]) Add(b Fixed[T, S]) Fixed[T, S] { return m.ElementWise(b, opAddFn[T]) }

// Sub returns m - b.
func (m Fixed[T, S]) Sub(b Fixed[T, S]) Fixed[T, S] { return m.ElementWise(b, opSubFn[T]) }

// Div returns m / b element-wise. Zero divisors are not checked.
func (m Fixed[T, S]) Div(b Fixed[T, S]) Fixed[T, S] { return m.ElementWise(b, opDivFn[T]) }

// Hadamard returns m ⊙ b (element-wise product).
func (m Fixed[T, S]) Hadamard(b Fixed[T, S]) Fixed[T, S] { return m.ElementWise(b, opMulFn[T]) }

// Neg returns -m.
func (m Fixed[T, S]) Neg() Fixed[T, S] { return m.mapped(opNegFn[T]) }

// Abs returns |m| element-wise.
func (m Fixed[T, S]) Abs() Fixed[T, S] { return m.mapped(opAbsFn[T]) }

// Scale returns k*m (== m*k).
func (m Fixed[T, S]) Scale(k T) Fixed[T, S] { return m.mapped(func(x T) T { return k * x }) }

// DivScalar returns m/k. k == 0 is not checked.
func (m Fixed[T, S]) DivScalar(k T) Fixed[T, S] { return m.mapped(func(x T) T { return x / k }) }

// ScalarDiv returns k/m element-wise.
func (m Fixed[T, S]) ScalarDiv(k T) Fixed[T, S] { return m.mapped(func(x T) T { return k / x }) }

// AddInPlace performs m += b and returns m.
func (m *Fixed[T, S]) AddInPlace(b Fixed[T, S]) *Fixed[T, S] {
	return m.ElementWiseInPlace(b, opAddFn[T])
}

// SubInPlace performs m -= b and returns m.
func (m *Fixed[T, S]) SubInPlace(b Fixed[T, S]) *Fixed[T, S] {
	return m.ElementWiseInPlace(b, opSubFn[T])
}

// DivInPlace performs m /= b element-wise and returns m.
func (m *Fixed[T, S]) DivInPlace(b Fixed[T, S]) *Fixed[T, S] {
	return m.ElementWiseInPlace(b, opDivFn[T])
}

// HadamardInPlace performs m *= b element-wise and returns m.
func (m *Fixed[T, S]) HadamardInPlace(b Fixed[T, S]) *Fixed[T, S] {
	return m.ElementWiseInPlace(b, opMulFn[T])
}

// ScaleInPlace performs m *= k and returns m.
func (m *Fixed[T, S]) ScaleInPlace(k T) *Fixed[T, S] {
	ewMap(&m.data, m.data, func(x T) T { return k * x })

	return m
}

// DivScalarInPlace performs m /= k and returns m.
func (m *Fixed[T, S]) DivScalarInPlace(k T) *Fixed[T, S] {
	ewMap(&m.data, m.data, func(x T) T { return x / k })

	return m
}

// NegInPlace negates every element and returns m.
func (m *Fixed[T, S]) NegInPlace() *Fixed[T, S] {
	ewMap(&m.data, m.data, opNegFn[T])

	return m
}

// Equal reports exact equality with b.
func (m Fixed[T, S]) Equal(b Fixed[T, S]) bool { return ewEqual[T](m.data, b.data) }

// ApproxEqual reports |m[i,j]-b[i,j]| < tol for every cell (DefaultTolerance
// unless WithTolerance is given). Differing shapes cannot reach this method;
// use the package-level ApproxEqual to compare across shapes.
func (m Fixed[T, S]) ApproxEqual(b Fixed[T, S], opts ...Option) bool {
	return ewClose[T](m.data, b.data, gatherOptions(opts...).tol)
}

// ---------- shape-changing operations ----------

// MulFixed computes C = A × B into shape C.
//
// Implementation:
//   - Stage 1: check A.Cols == B.Rows (ErrIncompatibleShapes).
//   - Stage 2: check C dims == (A.Rows, B.Cols) (ErrDimensionMismatch).
//   - Stage 3: run the shared product kernel into inline storage.
//
// Prefer Mul2/Mul3/Mul4 and Mul2Vec/Mul3Vec/Mul4Vec when the shapes are the
// common square/vector ones: those are checked by the compiler instead.
func MulFixed[T Number, A, B, C Shape[T]](a Fixed[T, A], b Fixed[T, B]) (Fixed[T, C], error) {
	var out Fixed[T, C]
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return out, fmt.Errorf("%s: %dx%d × %dx%d: %w", opMul, ar, ac, br, bc, ErrIncompatibleShapes)
	}
	cr, cc := out.Dims()
	if cr != ar || cc != bc {
		return out, fmt.Errorf("%s: result %dx%d, want %dx%d: %w", opMul, cr, cc, ar, bc, ErrDimensionMismatch)
	}
	mulKernel[T](&out.data, a.data, b.data, ar, ac, bc)

	return out, nil
}

// TransposeFixed returns mᵀ in shape R, which must be (cols × rows) of S.
// Errors: ErrDimensionMismatch.
func TransposeFixed[T Number, S, R Shape[T]](m Fixed[T, S]) (Fixed[T, R], error) {
	var out Fixed[T, R]
	r, c := m.Dims()
	or, oc := out.Dims()
	if or != c || oc != r {
		return out, fmt.Errorf("%s: result %dx%d, want %dx%d: %w", opTranspose, or, oc, c, r, ErrDimensionMismatch)
	}
	transposeKernel[T](&out.data, m.data, r, c)

	return out, nil
}

// mulStatic runs the product kernel for shapes the caller's signature already
// guarantees compatible.
func mulStatic[T Number, A, B, C Shape[T]](a Fixed[T, A], b Fixed[T, B]) Fixed[T, C] {
	var out Fixed[T, C]
	ar, ac := a.Dims()
	_, bc := b.Dims()
	mulKernel[T](&out.data, a.data, b.data, ar, ac, bc)

	return out
}

// transposeStatic transposes a square shape into a fresh value.
func transposeStatic[T Number, S Shape[T]](m Fixed[T, S]) Fixed[T, S] {
	var out Fixed[T, S]
	r, c := m.Dims()
	transposeKernel[T](&out.data, m.data, r, c)

	return out
}

// Transposed returns mᵀ for a square shape.
// Errors: ErrDimensionMismatch when S is not square; use TransposeFixed then.
func (m Fixed[T, S]) Transposed() (Fixed[T, S], error) {
	r, c := m.Dims()
	if r != c {
		return m, fmt.Errorf("%s.%s: %dx%d is not square: %w", ownerFixed, opTranspose, r, c, ErrDimensionMismatch)
	}

	return transposeStatic(m), nil
}

// Mul2 returns a × b for 2×2 matrices.
func Mul2[T Number](a, b Mat2[T]) Mat2[T] { return mulStatic[T, S2x2[T], S2x2[T], S2x2[T]](a, b) }

// Mul3 returns a × b for 3×3 matrices.
func Mul3[T Number](a, b Mat3[T]) Mat3[T] { return mulStatic[T, S3x3[T], S3x3[T], S3x3[T]](a, b) }

// Mul4 returns a × b for 4×4 matrices.
func Mul4[T Number](a, b Mat4[T]) Mat4[T] { return mulStatic[T, S4x4[T], S4x4[T], S4x4[T]](a, b) }

// Mul2Vec returns m × v for a 2×2 matrix and a 2-vector.
func Mul2Vec[T Number](m Mat2[T], v Vec2[T]) Vec2[T] {
	return mulStatic[T, S2x2[T], S2x1[T], S2x1[T]](m, v)
}

// Mul3Vec returns m × v for a 3×3 matrix and a 3-vector.
func Mul3Vec[T Number](m Mat3[T], v Vec3[T]) Vec3[T] {
	return mulStatic[T, S3x3[T], S3x1[T], S3x1[T]](m, v)
}

// Mul4Vec returns m × v for a 4×4 matrix and a 4-vector.
func Mul4Vec[T Number](m Mat4[T], v Vec4[T]) Vec4[T] {
	return mulStatic[T, S4x4[T], S4x1[T], S4x1[T]](m, v)
}

// Transpose2 returns mᵀ for a 2×2 matrix.
func Transpose2[T Number](m Mat2[T]) Mat2[T] { return transposeStatic(m) }

// Transpose3 returns mᵀ for a 3×3 matrix.
func Transpose3[T Number](m Mat3[T]) Mat3[T] { return transposeStatic(m) }

// Transpose4 returns mᵀ for a 4×4 matrix.
func Transpose4[T Number](m Mat4[T]) Mat4[T] { return transposeStatic(m) }

// ColToRow3 returns the 1×3 transpose of a 3-vector.
func ColToRow3[T Number](v Vec3[T]) RowVec3[T] {
	var out RowVec3[T]
	transposeKernel[T](&out.data, v.data, 3, 1)

	return out
}
