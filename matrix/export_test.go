// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels and the options snapshot to
// matrix_test without widening the production API. Being a _test.go file it
// is compiled only by `go test`.

// EwCloseForTest runs the strict tolerance kernel over two flat slices.
func EwCloseForTest(a, b []float64, tol float64) bool { return ewClose[float64](a, b, tol) }

// MulKernelForTest runs the product kernel into a fresh slice.
func MulKernelForTest(a, b []float64, r, n, c int) []float64 {
	dst := make([]float64, r*c)
	mulKernel[float64](&dst, a, b, r, n, c)

	return dst
}

// TransposeKernelForTest runs the transpose kernel on an inline array,
// exercising the array instantiation of the shared kernels.
func TransposeKernelForTest(src [6]int, r, c int) [6]int {
	var dst [6]int
	transposeKernel[int](&dst, src, r, c)

	return dst
}

// GatheredTolerance reports the tolerance resolved from opts.
func GatheredTolerance(opts ...Option) float64 { return gatherOptions(opts...).tol }
