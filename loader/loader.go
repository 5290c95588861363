// SPDX-License-Identifier: MIT

// Package loader reads augmented systems from comma-separated text.
//
// Format: one equation per line, coefficients followed by the right-hand
// side, separated by commas. Integral and decimal values are accepted, as is
// whitespace around fields. Blank lines are ignored.
//
//	1,1,1,6
//	0,2,5,-4
//	2,5,-1,27
//
// The loader only guarantees a rectangular, finite matrix. Whether it is a
// valid N×(N+1) system is checked by cramer.ValidateSystem.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cramer/matrix"
)

var (
	// ErrRaggedRows indicates rows with differing numbers of fields.
	// It wraps matrix.ErrBadShape.
	ErrRaggedRows = fmt.Errorf("loader: rows have differing lengths: %w", matrix.ErrBadShape)

	// ErrNotANumber indicates a field that does not parse as a float64.
	ErrNotANumber = errors.New("loader: field is not a number")
)

// DefaultComma separates fields within a row.
const DefaultComma = ','

// Option configures Read.
type Option func(*options)

type options struct {
	comma   rune
	comment rune
}

// WithComma sets the field separator (e.g. ';' or '\t').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithComment makes lines starting with r be skipped.
func WithComment(r rune) Option {
	return func(o *options) { o.comment = r }
}

// Read parses r into a *matrix.Dense.
//
// Errors:
//   - ErrRaggedRows when a row's field count differs from the first row's.
//   - ErrNotANumber (with 1-based line and field) for unparsable or
//     non-finite fields.
//   - I/O and quoting errors from the underlying reader, wrapped.
//
// An input without data rows yields a 0×0 matrix and no error.
func Read(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	o := options{comma: DefaultComma}
	for _, set := range opts {
		set(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = o.comment
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 0 // first record fixes the width

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("line %d: %w", pe.Line, ErrRaggedRows)
			}
			return nil, fmt.Errorf("loader: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return matrix.NewFromRows(rows)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// parseRow converts one record; line is used for error context only.
func parseRow(rec []string, line int) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("line %d field %d %q: %w", line, j+1, field, ErrNotANumber)
		}
		row[j] = v
	}

	return row, nil
}
