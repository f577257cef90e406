// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit, property and
//     benchmark files of this package.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tao/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing operations onto the interface (At/Set) fallback path.
type hide struct{ matrix.Matrix[float64] }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a Dense from a nested literal or fails the test.
func MustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet[T matrix.Number](tb testing.TB, m matrix.Matrix[T], i, j int, v T) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// fillDenseRand fills m with values in [-1, 1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet[float64](tb, m, i, j, rng.Float64()*2-1)
		}
	}
}

// randDense allocates and fills an r×c matrix from seed.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	m := MustDense(tb, r, c)
	fillDenseRand(tb, m, seed)

	return m
}
