// SPDX-License-Identifier: MIT

// Package geometry holds angle-unit helpers used alongside linalg's
// spherical-angle functions.
package geometry

import "math"

// Float is the element constraint for angle conversions.
type Float interface {
	~float32 | ~float64
}

// Radians converts degrees to radians: π·deg/180.
func Radians[T Float](deg T) T { return T(math.Pi * float64(deg) / 180) }

// Degrees converts radians to degrees: 180·rad/π.
func Degrees[T Float](rad T) T { return T(180 * float64(rad) / math.Pi) }
