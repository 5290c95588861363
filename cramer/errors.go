// SPDX-License-Identifier: MIT
// Package cramer: sentinel error set.
// Every message is prefixed with "cramer: ..."; facades wrap sentinels with an
// operation tag via cramerErrorf, callers match with errors.Is.
//
// Matrix-level failures (nil input, non-square determinant input) surface the
// matrix package sentinels (matrix.ErrNilMatrix, matrix.ErrNonSquare).

package cramer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem is returned by ValidateSystem when the system has zero rows.
	// Solve itself treats the empty system as vacuous and returns an empty vector.
	ErrEmptySystem = errors.New("cramer: system has zero rows")

	// ErrShapeMismatch indicates an augmented matrix whose column count is not rows+1.
	ErrShapeMismatch = errors.New("cramer: system is not N x (N+1)")

	// ErrSingular indicates that the coefficient determinant vanished (within the
	// configured tolerance), so the system has no unique solution.
	ErrSingular = errors.New("cramer: no unique solution (coefficient determinant is zero)")
)

// cramerErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func cramerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
