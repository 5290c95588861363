// SPDX-License-Identifier: MIT

// Package report renders solver input, results and precondition failures
// as plain text.
//
// Layout follows the classic console program: the parsed matrix is echoed for
// confirmation, then each unknown is printed as "var{i} = {value}" with a
// 1-based index.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cramer/cramer"
	"github.com/katalvlaran/cramer/matrix"
)

// DefaultPrecision is the number of significant digits used for values.
const DefaultPrecision = 6

// Messages shown for the boundary failures of a system.
const (
	MsgEmptySystem   = "ERROR: There were zero rows of numbers in your text file."
	MsgShapeMismatch = "ERROR: The provided matrix of numbers is not an N x (N+1) matrix."
	MsgSingular      = "ERROR: The system has no unique solution (the coefficient determinant is zero)."
)

// Option configures the writers.
type Option func(*options)

type options struct {
	precision int
}

// WithPrecision sets the significant digits; p < 0 prints the shortest
// representation that round-trips.
func WithPrecision(p int) Option {
	return func(o *options) { o.precision = p }
}

func gather(opts []Option) options {
	o := options{precision: DefaultPrecision}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// FormatValue formats v with the given number of significant digits.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// WriteMatrix echoes m, one row per line, values separated by a space.
func WriteMatrix(w io.Writer, m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	o := gather(opts)
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatValue(v, o.precision))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteSolution prints one "var{i+1} = {value}" line per unknown.
func WriteSolution(w io.Writer, x []float64, opts ...Option) error {
	o := gather(opts)
	for i, v := range x {
		if _, err := fmt.Fprintf(w, "var%d = %s\n", i+1, FormatValue(v, o.precision)); err != nil {
			return err
		}
	}

	return nil
}

// WriteResidual prints the largest absolute residual component.
func WriteResidual(w io.Writer, r []float64, opts ...Option) error {
	o := gather(opts)
	var worst float64
	for _, v := range r {
		if v < 0 {
			v = -v
		}
		if v > worst {
			worst = v
		}
	}
	_, err := fmt.Fprintf(w, "max |A*x - b| = %s\n", FormatValue(worst, o.precision))

	return err
}

// ErrorMessage maps known solver failures to their user-facing text.
// Unknown errors are rendered with their own message.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, cramer.ErrEmptySystem):
		return MsgEmptySystem
	case errors.Is(err, cramer.ErrShapeMismatch):
		return MsgShapeMismatch
	case errors.Is(err, cramer.ErrSingular):
		return MsgSingular
	default:
		return "ERROR: " + err.Error()
	}
}

// WriteError prints ErrorMessage(err) on its own line.
func WriteError(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, ErrorMessage(err))

	return werr
}
