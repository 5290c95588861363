// SPDX-License-Identifier: MIT

package cramer

import (
	"fmt"

	"github.com/katalvlaran/cramer/matrix"
)

// ValidateSystem runs the boundary checks that must pass before Solve is
// attempted on user input: the system is non-nil, has at least one row and
// is N×(N+1).
//
// Errors (in this priority): matrix.ErrNilMatrix, ErrEmptySystem, ErrShapeMismatch.
func ValidateSystem(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return cramerErrorf(opValidate, err)
	}
	if m.Rows() == 0 {
		return cramerErrorf(opValidate, ErrEmptySystem)
	}
	if m.Cols() != m.Rows()+1 {
		return cramerErrorf(opValidate, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrShapeMismatch))
	}

	return nil
}

// Residual returns A·x − b for the augmented system [A | b], letting callers
// check how well a solution satisfies the original equations.
//
// Errors: those of ValidateSystem, plus matrix.ErrDimensionMismatch when
// len(x) != N.
func Residual(system matrix.Matrix, x []float64) ([]float64, error) {
	if err := ValidateSystem(system); err != nil {
		return nil, cramerErrorf(opResidual, err)
	}
	a, b, err := split(system)
	if err != nil {
		return nil, cramerErrorf(opResidual, err)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, cramerErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}
