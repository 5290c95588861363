// SPDX-License-Identifier: MIT

package cramer

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cramer/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opDeterminant = "Determinant"
	opExpandRow   = "ExpandAlongRow"
	opMinor       = "Minor"
	opSolve       = "Solve"
	opResidual    = "Residual"
	opValidate    = "ValidateSystem"
)

// Determinant computes det(m) by recursive cofactor expansion along row 0.
//
// Algorithm:
//   - 0×0 → 0 (degenerate default), 1×1 → a00, 2×2 → a00*a11 − a01*a10.
//   - N>2: Σ_i row0[i] * det(minor_0i) * (−1)^i, the sign starting at +1,
//     each minor a fresh (N−1)×(N−1) copy of rows 1..N−1 without column i.
//
// Behavior highlights:
//   - Pure: the input is never mutated and no state is shared between calls.
//   - NaN/±Inf propagate under IEEE 754; nothing is special-cased.
//   - WithParallel() evaluates the N top-level minors concurrently and sums the
//     terms in column order, so the value is identical to the sequential path.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (facade guards only; the
//     recursive kernel itself never validates).
//
// Complexity:
//   - Time O(N!), Space O(N²) per recursion level. Intended for small N.
func Determinant(m matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, cramerErrorf(opDeterminant, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, cramerErrorf(opDeterminant, err)
	}
	buf, err := rowMajor(m)
	if err != nil {
		return 0, cramerErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	return o.det(buf, m.Rows()), nil
}

// det dispatches to the sequential or parallel kernel.
func (o Options) det(a []float64, n int) float64 {
	if o.parallel && n > 2 {
		return cofactorParallel(a, n, o.workers)
	}

	return cofactor(a, n)
}

// cofactor is the recursive kernel over a flat row-major n×n buffer.
// It assumes len(a) == n*n.
func cofactor(a []float64, n int) float64 {
	switch n {
	case 0:
		return 0
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	var sum float64
	sign := 1.0
	for i := 0; i < n; i++ {
		// float64() pins the rounding of each term so the parallel path,
		// which stores terms before summing, yields the same bits.
		sum += float64(a[i] * cofactor(minor(a, n, 0, i), n-1) * sign)
		sign = -sign
	}

	return sum
}

// cofactorParallel evaluates the row-0 terms concurrently, then sums them
// left to right exactly as cofactor does.
func cofactorParallel(a []float64, n, workers int) float64 {
	terms := make([]float64, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		g.Go(func() error {
			terms[i] = float64(a[i] * cofactor(minor(a, n, 0, i), n-1) * sign)
			return nil
		})
	}
	_ = g.Wait() // terms never fail

	var sum float64
	for _, t := range terms {
		sum += t
	}

	return sum
}

// minor copies a without row r and column c into a fresh (n−1)×(n−1) buffer.
// Columns before c keep their index; columns after c shift left by one.
func minor(a []float64, n, r, c int) []float64 {
	k := n - 1
	out := make([]float64, k*k)
	di := 0
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		base := i * n
		dj := 0
		for j := 0; j < n; j++ {
			if j == c {
				continue
			}
			out[di*k+dj] = a[base+j]
			dj++
		}
		di++
	}

	return out
}

// Minor returns the (N−1)×(N−1) submatrix of m without row and col, as an
// independent *matrix.Dense.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrOutOfRange.
func Minor(m matrix.Matrix, row, col int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, cramerErrorf(opMinor, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, cramerErrorf(opMinor, err)
	}
	n := m.Rows()
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, cramerErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, matrix.ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, cramerErrorf(opMinor, err)
	}

	return d.Induced(skip(n, row), skip(n, col))
}

// ExpandAlongRow computes det(m) by Laplace expansion along the given row:
// Σ_j (−1)^(row+j) * m[row][j] * det(Minor(m, row, j)).
//
// It is a second, independently structured route to the determinant (minors
// are materialized through matrix.Dense.Induced) and agrees with Determinant
// up to floating-point rounding for every row.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrOutOfRange.
func ExpandAlongRow(m matrix.Matrix, row int) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, cramerErrorf(opExpandRow, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, cramerErrorf(opExpandRow, err)
	}
	n := m.Rows()
	if n == 0 {
		return 0, nil
	}
	if row < 0 || row >= n {
		return 0, cramerErrorf(opExpandRow, fmt.Errorf("row %d: %w", row, matrix.ErrOutOfRange))
	}
	if n == 1 {
		return m.At(0, 0)
	}

	var sum float64
	for j := 0; j < n; j++ {
		v, err := m.At(row, j)
		if err != nil {
			return 0, cramerErrorf(opExpandRow, err)
		}
		sub, err := Minor(m, row, j)
		if err != nil {
			return 0, cramerErrorf(opExpandRow, err)
		}
		d, err := Determinant(sub)
		if err != nil {
			return 0, cramerErrorf(opExpandRow, err)
		}
		if (row+j)%2 == 1 {
			d = -d
		}
		sum += v * d
	}

	return sum, nil
}

// skip returns 0..n-1 without x.
func skip(n, x int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != x {
			idx = append(idx, i)
		}
	}

	return idx
}

// rowMajor extracts a flat row-major copy of m.
// *matrix.Dense takes the single-copy fast-path; other implementations go
// through At.
func rowMajor(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RawRowMajor(), nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if out[i*c+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// asDense returns m itself when it is a *matrix.Dense, otherwise a Dense copy.
// The copy keeps non-finite values as they are.
func asDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	rows := make([][]float64, r)
	var err error
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return matrix.NewFromRows(rows, matrix.WithNoValidateNaNInf())
}
