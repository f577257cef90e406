// Package tao is a small generic linear-algebra toolkit for graphics-style
// code: dense matrices with runtime or compile-time shapes, and the vector
// operations built on them.
//
// ✨ What's inside?
//
//	matrix/   - Dense[T] (heap, runtime shape) & Fixed[T, S] (inline, shape is a type),
//	            element-wise arithmetic, products, transpose, equality & tolerance checks
//	linalg/   - norm, unit vectors, dot & cross products, distance, lerp,
//	            spherical angles, 4×4 determinant & inverse, identity checks
//	geometry/ - degree/radian helpers
//
// Quick example:
//
//	a := matrix.NewVec3(1.0, 2.0, 3.0)
//	b := matrix.NewVec3(1.0, 5.0, 7.0)
//	c := linalg.Cross3(a, b) // (-1, -4, 3)
//	_ = linalg.DotFixed(a, c) // 0
//
// Errors are sentinel values from the matrix package, matched with errors.Is.
// Nothing here allocates goroutines or holds global state; matrix values are
// not safe for concurrent mutation without external locking.
//
// Dependency direction: linalg → matrix; geometry stands alone.
package tao
