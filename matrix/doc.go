// Package matrix provides the dense numeric storage used by the cramer solver.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 arrays with
//     bounds-checked accessors that return errors instead of panicking.
//   - Dense, a row-major implementation (offset = i*cols + j) with copying
//     submatrix extraction (Induced) and row/column copies.
//   - NewFromRows, which ingests [][]float64 input (e.g., from the loader)
//     under an explicit numeric policy (NaN/Inf rejection by default).
//   - Central validators (ValidateNotNil, ValidateSquare, ...) and a few
//     kernels (MatVec, Transpose, AllClose) shared by higher layers.
//
// All matrices are value data: every derived matrix is a fresh, independent
// copy, so callers never observe aliasing between a Dense and its submatrices.
//
//	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//		// handle matrix.ErrBadShape / matrix.ErrNaNInf
//	}
//	v, _ := m.At(1, 0) // 3
package matrix
