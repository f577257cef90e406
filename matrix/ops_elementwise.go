// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the *private* flat-storage kernels (ew*, mul*, transpose*) shared by
//     Dense (heap slice) and Fixed (inline array). Every loop of the package lives
//     here exactly once; public operations only validate, allocate and delegate.
//
// Design:
//   - Kernels are generic over store[T] (~[]T | ~[1]T | ... | ~[16]T), so the same
//     code is instantiated for []T and for [N]T without copying into slices.
//   - Shapes are validated by the caller BEFORE a kernel runs: kernels never fail,
//     which makes every public mutation atomic (no partial writes on error).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→j→k for products).
//   - No allocations inside kernels.

package matrix

// ewApply writes dst[k] = op(a[k], b[k]) for every cell.
// dst may alias a (in-place variants pass the receiver's own storage).
// Time: O(n). Space: O(1).
func ewApply[T Number, D, A, B store[T]](dst *D, a A, b B, op func(x, y T) T) {
	n := len(*dst)
	for k := 0; k < n; k++ {
		(*dst)[k] = op(a[k], b[k])
	}
}

// ewMap writes dst[k] = op(a[k]) for every cell.
// Time: O(n). Space: O(1).
func ewMap[T Number, D, A store[T]](dst *D, a A, op func(x T) T) {
	n := len(*dst)
	for k := 0; k < n; k++ {
		(*dst)[k] = op(a[k])
	}
}

// ewFill overwrites every cell with v.
func ewFill[T Number, D store[T]](dst *D, v T) {
	n := len(*dst)
	for k := 0; k < n; k++ {
		(*dst)[k] = v
	}
}

// ewCopy copies src into dst cell by cell; lengths are equal by contract.
func ewCopy[T Number, D, S store[T]](dst *D, src S) {
	n := len(*dst)
	for k := 0; k < n; k++ {
		(*dst)[k] = src[k]
	}
}

// ewEqual reports whether a and b hold identical values cell by cell.
func ewEqual[T Number, A, B store[T]](a A, b B) bool {
	n := len(a)
	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// ewClose reports whether |a[k]-b[k]| < tol for every cell (strict).
// NaN never compares close, so a NaN cell makes the result false.
func ewClose[T Number, A, B store[T]](a A, b B, tol float64) bool {
	n := len(a)
	for k := 0; k < n; k++ {
		if !(float64(abs(a[k]-b[k])) < tol) {
			return false
		}
	}

	return true
}

// mulKernel computes dst = a × b for a (r×n) and b (n×c), dst (r×c).
// Textbook i→j→k accumulation; dst must not alias a or b.
// Time: O(r*n*c). Space: O(1).
func mulKernel[T Number, D, A, B store[T]](dst *D, a A, b B, r, n, c int) {
	var i, j, k, rowA, rowD int
	var acc T
	for i = 0; i < r; i++ {
		rowA = i * n
		rowD = i * c
		for j = 0; j < c; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += a[rowA+k] * b[k*c+j]
			}
			(*dst)[rowD+j] = acc
		}
	}
}

// transposeKernel writes dst (c×r) = srcᵀ for src (r×c).
// Time: O(r*c). Space: O(1).
func transposeKernel[T Number, D, S store[T]](dst *D, src S, r, c int) {
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			(*dst)[j*r+i] = src[base+j]
		}
	}
}

// Element operators shared by Dense and Fixed arithmetic.
func opAddFn[T Number](x, y T) T { return x + y }
func opSubFn[T Number](x, y T) T { return x - y }
func opDivFn[T Number](x, y T) T { return x / y }
func opMulFn[T Number](x, y T) T { return x * y }
func opNegFn[T Number](x T) T    { return -x }
func opAbsFn[T Number](x T) T    { return abs(x) }
