// SPDX-License-Identifier: MIT
// Package cramer_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (seeded integer matrices) so the
//     cofactor expansion is exact and property checks can compare with ==.

package cramer_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cramer/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths.
type hide struct{ matrix.Matrix }

// mustDense builds a *matrix.Dense from rows or fails the test.
func mustDense(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// randomInts returns an r×c matrix of integers in [-5, 5].
// Integer entries keep cofactor sums exact for the sizes used in tests.
func randomInts(rng *rand.Rand, r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return out
}

// identity returns the n×n identity as rows.
func identity(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	return out
}

// diagonallyDominant returns an n×(n+1) augmented system whose coefficient
// part is strictly diagonally dominant, hence non-singular and well conditioned.
func diagonallyDominant(rng *rand.Rand, n int) [][]float64 {
	rows := randomInts(rng, n, n+1)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				if rows[i][j] < 0 {
					sum -= rows[i][j]
				} else {
					sum += rows[i][j]
				}
			}
		}
		rows[i][i] = sum + 1
	}

	return rows
}

// gonumDet is the reference determinant (LU with partial pivoting).
func gonumDet(rows [][]float64) float64 {
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, r := range rows {
		data = append(data, r...)
	}

	return mat.Det(mat.NewDense(n, n, data))
}

// gonumSolve is the reference solution of an augmented system.
func gonumSolve(tb testing.TB, rows [][]float64) []float64 {
	tb.Helper()
	n := len(rows)
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rows[i][j])
		}
		b.SetVec(i, rows[i][n])
	}
	var x mat.VecDense
	require.NoError(tb, x.SolveVec(a, b))

	return x.RawVector().Data
}
