// Package cramer is a small toolkit for solving square linear systems by
// Cramer's Rule, from a dense matrix type up to a command-line front end.
//
// 🚀 What is in the module?
//
//	• Dense storage: a row-major float64 matrix with copy-on-extract helpers
//	• Determinants: recursive cofactor expansion, optional parallel fan-out
//	• Solver: shared denominator, one numerator per unknown, singular guard
//	• Text I/O: whitespace/CSV loader and fixed-format report writer
//
// Everything is organized under these subpackages:
//
//	matrix/     - Matrix interface, Dense, validators, MatVec/Transpose/AllClose
//	cramer/     - Determinant, Minor, ExpandAlongRow, Solve, ValidateSystem, Residual
//	loader/     - augmented-matrix reader (io.Reader / file)
//	report/     - matrix, solution, residual and error rendering
//	cmd/cramer/ - the cramer CLI
//	examples/   - a runnable mesh-current circuit walkthrough
//
// Quick example (x + y = 3, x − y = 1):
//
//	[1  1 | 3]
//	[1 -1 | 1]   →   x = 2, y = 1
//
//	go install github.com/katalvlaran/cramer/cmd/cramer@latest
package cramer
