// SPDX-License-Identifier: MIT

package cramer

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cramer/matrix"
)

// Solve solves the N×N linear system held in an N×(N+1) augmented matrix
// by Cramer's Rule.
//
// Implementation:
//   - Stage 1: denominator = columns 0..N−1 (copy), rhs = column N (copy).
//   - Stage 2: D = Determinant(denominator), computed once for all unknowns.
//   - Stage 3: for a = 0..N−1, numerator = fresh copy of the denominator with
//     column a replaced by rhs; x[a] = det(numerator) / D.
//
// Behavior highlights:
//   - The empty system (0 rows) yields an empty, non-nil vector and no error.
//   - x[i] belongs to the unknown of coefficient column i.
//   - system is never mutated.
//   - |D| ≤ singular epsilon returns ErrSingular (wrapped with D) unless
//     WithAllowSingular() is set, in which case the quotients are returned
//     as computed (±Inf, or NaN when the numerator is also zero).
//   - WithParallel() evaluates the numerators concurrently; each x[a] is
//     independent so the result does not depend on scheduling.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch, ErrSingular.
//
// Complexity:
//   - Time O(N·N!), Space O(N²) per numerator.
func Solve(system matrix.Matrix, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(system); err != nil {
		return nil, cramerErrorf(opSolve, err)
	}
	n := system.Rows()
	if n == 0 {
		return []float64{}, nil
	}
	if system.Cols() != n+1 {
		return nil, cramerErrorf(opSolve, fmt.Errorf("%dx%d: %w", n, system.Cols(), ErrShapeMismatch))
	}
	o := gatherOptions(opts...)

	denominator, rhs, err := split(system)
	if err != nil {
		return nil, cramerErrorf(opSolve, err)
	}
	d := o.det(denominator.RawRowMajor(), n)
	if !o.allowSingular && math.Abs(d) <= o.singularEps {
		return nil, cramerErrorf(opSolve, fmt.Errorf("det=%g: %w", d, ErrSingular))
	}

	x := make([]float64, n)
	unknown := func(a int) error {
		num, err := numerator(denominator, rhs, a)
		if err != nil {
			return err
		}
		// The inner determinant stays sequential; concurrency lives at this level.
		x[a] = cofactor(num.RawRowMajor(), n) / d

		return nil
	}

	if !o.parallel {
		for a := 0; a < n; a++ {
			if err = unknown(a); err != nil {
				return nil, cramerErrorf(opSolve, err)
			}
		}

		return x, nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for a := 0; a < n; a++ {
		a := a // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error { return unknown(a) })
	}
	if err = g.Wait(); err != nil {
		return nil, cramerErrorf(opSolve, err)
	}

	return x, nil
}

// split separates an N×(N+1) system into its N×N coefficient matrix and the
// right-hand-side column. Both results are independent copies.
func split(system matrix.Matrix) (*matrix.Dense, []float64, error) {
	d, err := asDense(system)
	if err != nil {
		return nil, nil, err
	}
	n := d.Rows()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	denominator, err := d.Induced(all, all)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := d.Col(n)
	if err != nil {
		return nil, nil, err
	}

	return denominator, rhs, nil
}

// numerator returns a copy of denominator whose column a holds rhs.
func numerator(denominator *matrix.Dense, rhs []float64, a int) (*matrix.Dense, error) {
	num := denominator.Clone().(*matrix.Dense)
	for i, v := range rhs {
		if err := num.Set(i, a, v); err != nil {
			return nil, err
		}
	}

	return num, nil
}
