// SPDX-License-Identifier: MIT

// Package centrality: functional configuration for the power-iteration
// facade. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global RNG, no hidden state; seeded sources
//     and explicit start vectors make runs reproducible bit for bit.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); data-dependent failures are returned as sentinel errors.

package centrality

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps refinement steps when WithMaxIterations is
	// not supplied. Sized for the tens-to-low-hundreds node graphs the
	// visualizations rebuild on every tick.
	DefaultMaxIterations = 100

	// DefaultTolerance is the convergence threshold on the Euclidean norm
	// of the per-step update delta.
	DefaultTolerance = 0.01

	// DefaultSymmetryEps is the epsilon for the pre-iteration symmetry
	// check (structural validation, not convergence).
	DefaultSymmetryEps = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "centrality: WithMaxIterations: n must be ≥ 0"
	panicToleranceInvalid     = "centrality: WithTolerance: tol must be finite, non-negative"
	panicSymmetryEpsInvalid   = "centrality: WithSymmetryEps: eps must be finite, non-negative"
	panicRandNil              = "centrality: WithRand: rng must be non-nil"
	panicStartEmpty           = "centrality: WithStart: start vector must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; PowerIteration accepts ...Option and
// resolves them via gatherOptions.
type options struct {
	maxIterations int        // ≥ 0; DefaultMaxIterations
	tolerance     float64    // ≥ 0, finite; DefaultTolerance
	symmetryEps   float64    // ≥ 0, finite; DefaultSymmetryEps
	checkSymmetry bool       // default true; WithoutSymmetryCheck disables
	rng           *rand.Rand // initial-vector source; nil ⇒ time-seeded
	start         []float64  // explicit initial vector; overrides rng
}

// ---------- Constructors (WithX) ----------

// WithMaxIterations sets the upper bound on refinement steps.
// n = 0 is legal and returns the normalized initial vector untouched.
// Panics if n < 0. Complexity: O(1).
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("%s, got %d", panicMaxIterationsInvalid, n))
	}

	return func(o *options) { o.maxIterations = n }
}

// WithTolerance sets the convergence threshold on ‖r₊ − r‖₂.
// tol = 0 forces the loop to run the full iteration cap (the comparison is
// strict, so even an exactly-zero delta does not early-terminate).
// Panics if tol is negative, NaN or ±Inf. Complexity: O(1).
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("%s, got %g", panicToleranceInvalid, tol))
	}

	return func(o *options) { o.tolerance = tol }
}

// WithSymmetryEps sets the epsilon for the pre-iteration symmetry check.
// Panics if eps is negative, NaN or ±Inf. Complexity: O(1).
func WithSymmetryEps(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("%s, got %g", panicSymmetryEpsInvalid, eps))
	}

	return func(o *options) { o.symmetryEps = eps }
}

// WithoutSymmetryCheck disables the O(n²) symmetry validation.
// For callers that build the matrix via SetSym (symmetric by construction)
// and invoke the routine on every simulation tick, the check is pure
// overhead; skipping it shifts responsibility for the symmetry invariant
// onto the caller. Complexity: O(1).
func WithoutSymmetryCheck() Option {
	return func(o *options) { o.checkSymmetry = false }
}

// WithRand sets the source used to draw the initial vector, replacing the
// default time-seeded source. Supplying rand.New(rand.NewSource(seed))
// makes the whole run deterministic. Panics if rng is nil. Complexity: O(1).
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *options) { o.rng = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithStart supplies the initial vector explicitly, bypassing the random
// draw entirely. The vector is copied (the caller's slice is never retained
// or mutated) and normalized before the first step; its length is validated
// against the matrix dimension at call time. Use it for deterministic
// fixed-point tests and warm restarts across simulation ticks.
// Panics if start is nil or empty. Complexity: O(len(start)).
func WithStart(start []float64) Option {
	if len(start) == 0 {
		panic(panicStartEmpty)
	}
	cp := append([]float64(nil), start...)

	return func(o *options) { o.start = cp }
}

// ---------- Resolution ----------

// gatherOptions applies opts over the documented defaults and returns the
// effective configuration. Deterministic: application order is the caller's
// argument order, last write wins.
func gatherOptions(opts ...Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		symmetryEps:   DefaultSymmetryEps,
		checkSymmetry: true,
		rng:           nil, // resolved lazily to a time-seeded source
		start:         nil,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// source returns the RNG to draw the initial vector from, creating a
// time-seeded one when the caller supplied none. Matches the reference
// behavior: unseeded runs differ, seeded runs reproduce.
func (o *options) source() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
