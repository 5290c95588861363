// SPDX-License-Identifier: MIT

// Package cramer: functional options for Determinant and Solve.
//
// Design goals:
//   - Deterministic behavior: parallel evaluation sums terms in column order,
//     so results are bit-identical to the sequential path.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package cramer

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallel evaluates cofactors and numerators sequentially.
	DefaultParallel = false

	// DefaultAllowSingular makes Solve fail with ErrSingular when the
	// coefficient determinant vanishes.
	DefaultAllowSingular = false

	// DefaultSingularEpsilon is the |D| threshold at or below which the system
	// is singular. Zero means "exactly zero".
	DefaultSingularEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "cramer: WithSingularEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "cramer: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	parallel      bool    // DefaultParallel
	workers       int     // GOMAXPROCS unless WithWorkers
	allowSingular bool    // DefaultAllowSingular
	singularEps   float64 // DefaultSingularEpsilon
}

// WithParallel evaluates independent determinants concurrently: the row-0
// minors inside Determinant and the per-unknown numerators inside Solve.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithWorkers caps concurrent goroutines used under WithParallel.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithAllowSingular restores the classroom behavior: a zero coefficient
// determinant is not detected and every unknown becomes ±Inf or NaN.
func WithAllowSingular() Option {
	return func(o *Options) { o.allowSingular = true }
}

// WithSingularEpsilon treats |D| ≤ eps as singular.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Notes:
//   - Cofactor expansion of integer-valued systems is exact up to moderate N,
//     so the default 0 matches the mathematical definition; raise eps for
//     measured (noisy) coefficients.
func WithSingularEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		parallel:      DefaultParallel,
		workers:       runtime.GOMAXPROCS(0),
		allowSingular: DefaultAllowSingular,
		singularEps:   DefaultSingularEpsilon,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
