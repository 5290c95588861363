// SPDX-License-Identifier: MIT

package cramer_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cramer/cramer"
	"github.com/katalvlaran/cramer/matrix"
)

func TestDeterminant_Empty(t *testing.T) {
	d, err := cramer.Determinant(mustDense(t, nil))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestDeterminant_OneByOne checks det([[x]]) == x.
func TestDeterminant_OneByOne(t *testing.T) {
	for _, x := range []float64{0, 1, -7, 3.25, 1e300} {
		d, err := cramer.Determinant(mustDense(t, [][]float64{{x}}))
		require.NoError(t, err)
		assert.Equal(t, x, d)
	}
}

// TestDeterminant_TwoByTwo checks the closed form a*d − b*c on random input.
func TestDeterminant_TwoByTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 100; k++ {
		a, b, c, e := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		d, err := cramer.Determinant(mustDense(t, [][]float64{{a, b}, {c, e}}))
		require.NoError(t, err)
		assert.InDelta(t, a*e-b*c, d, 1e-12)
	}
}

func TestDeterminant_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
		{"singular 3x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := cramer.Determinant(mustDense(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 7; n++ {
		d, err := cramer.Determinant(mustDense(t, identity(n)))
		require.NoError(t, err)
		assert.Equal(t, 1.0, d, "n=%d", n)
	}
}

func TestDeterminant_ZeroRow(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 2; n <= 6; n++ {
		for zero := 0; zero < n; zero++ {
			rows := randomInts(rng, n, n)
			for j := range rows[zero] {
				rows[zero][j] = 0
			}
			d, err := cramer.Determinant(mustDense(t, rows))
			require.NoError(t, err)
			assert.Zero(t, d, "n=%d zero row=%d", n, zero)
		}
	}
}

// TestDeterminant_RowSwapNegates swaps two rows of random N≤5 matrices.
func TestDeterminant_RowSwapNegates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for k := 0; k < 200; k++ {
		n := 2 + rng.Intn(4)
		rows := randomInts(rng, n, n)
		p, q := rng.Intn(n), rng.Intn(n)
		if p == q {
			q = (p + 1) % n
		}
		orig, err := cramer.Determinant(mustDense(t, rows))
		require.NoError(t, err)

		rows[p], rows[q] = rows[q], rows[p]
		swapped, err := cramer.Determinant(mustDense(t, rows))
		require.NoError(t, err)
		assert.Equal(t, -orig, swapped, "n=%d swap(%d,%d)", n, p, q)
	}
}

// TestDeterminant_MatchesReference compares against gonum's LU determinant.
func TestDeterminant_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 7; n++ {
		rows := randomInts(rng, n, n)
		d, err := cramer.Determinant(mustDense(t, rows))
		require.NoError(t, err)
		assert.InDelta(t, gonumDet(rows), d, 1e-6*math.Max(1, math.Abs(d)), "n=%d", n)
	}
}

// TestExpandAlongRow_AgreesWithRowZero expands random matrices along every row.
func TestExpandAlongRow_AgreesWithRowZero(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 5; n++ {
		m := mustDense(t, randomInts(rng, n, n))
		want, err := cramer.Determinant(m)
		require.NoError(t, err)
		for row := 0; row < n; row++ {
			got, err := cramer.ExpandAlongRow(m, row)
			require.NoError(t, err)
			assert.Equal(t, want, got, "n=%d row=%d", n, row)
		}
	}
}

func TestExpandAlongRow_Errors(t *testing.T) {
	_, err := cramer.ExpandAlongRow(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err = cramer.ExpandAlongRow(m, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = cramer.ExpandAlongRow(mustDense(t, [][]float64{{1, 2, 3}}), 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant_TransposeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for n := 1; n <= 5; n++ {
		m := mustDense(t, randomInts(rng, n, n))
		mt, err := matrix.Transpose(m)
		require.NoError(t, err)
		d, err := cramer.Determinant(m)
		require.NoError(t, err)
		dt, err := cramer.Determinant(mt)
		require.NoError(t, err)
		assert.Equal(t, d, dt, "n=%d", n)
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := cramer.Determinant(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = cramer.Determinant(typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = cramer.Determinant(mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDeterminant_NaNPropagates verifies IEEE 754 propagation is untouched.
func TestDeterminant_NaNPropagates(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, math.NaN(), 6}, {7, 8, 9}}, matrix.WithNoValidateNaNInf())
	d, err := cramer.Determinant(m)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))

	m = mustDense(t, [][]float64{{math.Inf(1), 0}, {0, 1}}, matrix.WithNoValidateNaNInf())
	d, err = cramer.Determinant(m)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestDeterminant_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for n := 1; n <= 7; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = rng.NormFloat64()
			}
		}
		m := mustDense(t, rows)
		seq, err := cramer.Determinant(m)
		require.NoError(t, err)
		for _, workers := range []int{1, 2, 8} {
			par, err := cramer.Determinant(m, cramer.WithParallel(), cramer.WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, seq, par, "n=%d workers=%d", n, workers)
		}
	}
}

// TestDeterminant_GenericMatrix forces the non-*Dense extraction path.
func TestDeterminant_GenericMatrix(t *testing.T) {
	rows := [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}
	d, err := cramer.Determinant(hide{mustDense(t, rows)})
	require.NoError(t, err)
	assert.Equal(t, -306.0, d)

	e, err := cramer.ExpandAlongRow(hide{mustDense(t, rows)}, 2)
	require.NoError(t, err)
	assert.Equal(t, -306.0, e)
}

func TestDeterminant_DoesNotMutate(t *testing.T) {
	rows := [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}
	m := mustDense(t, rows)
	before := m.ToRows()
	_, err := cramer.Determinant(m, cramer.WithParallel())
	require.NoError(t, err)
	assert.Equal(t, before, m.ToRows())
}

func TestMinor(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	cases := []struct {
		row, col int
		want     [][]float64
	}{
		{0, 0, [][]float64{{5, 6}, {8, 9}}},
		{0, 1, [][]float64{{4, 6}, {7, 9}}},
		{1, 2, [][]float64{{1, 2}, {7, 8}}},
		{2, 0, [][]float64{{2, 3}, {5, 6}}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d,%d", tc.row, tc.col), func(t *testing.T) {
			sub, err := cramer.Minor(m, tc.row, tc.col)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sub.ToRows())
		})
	}

	// The minor is an independent copy.
	sub, err := cramer.Minor(m, 0, 0)
	require.NoError(t, err)
	require.NoError(t, sub.Set(0, 0, 100))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	_, err = cramer.Minor(m, 3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = cramer.Minor(m, 0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestWithWorkers_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { cramer.WithWorkers(0) })
}
