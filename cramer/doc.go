// Package cramer solves square linear systems by Cramer's Rule, with
// determinants computed by recursive cofactor expansion.
//
// 🚀 What is Cramer's Rule?
//
//	For A·x = b with det(A) ≠ 0, each unknown is a ratio of determinants:
//	x_i = det(A_i) / det(A), where A_i is A with column i replaced by b.
//	Given the augmented matrix [A | b] (N rows, N+1 columns), Solve builds
//	the coefficient (denominator) matrix once and one numerator per unknown.
//
// ✨ Key features:
//   - Determinant: classroom cofactor expansion along row 0 with closed-form
//     base cases for 0×0, 1×1 and 2×2.
//   - ExpandAlongRow / Minor: Laplace expansion along any row, for cross-checks.
//   - Solve: shared denominator, fresh numerator copies, input never mutated.
//   - Singular systems are reported as ErrSingular by default; opt back into
//     raw ±Inf/NaN quotients with WithAllowSingular().
//   - Optional WithParallel() evaluation of independent determinants.
//   - ValidateSystem / Residual for the boundary layer (CLI, services).
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/cramer/cramer"
//	  "github.com/katalvlaran/cramer/matrix"
//	)
//
//	// x + y = 3, x − y = 1
//	sys, _ := matrix.NewFromRows([][]float64{{1, 1, 3}, {1, -1, 1}})
//	x, err := cramer.Solve(sys)
//	// x == [2 1]
//
// Performance:
//
//   - Determinant: O(N!) time; Solve: O(N·N!). Intended for a handful of
//     unknowns; use an elimination-based solver beyond that.
package cramer
