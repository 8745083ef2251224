// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional configuration for topology constructors.
//
// Defaults:
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (constant unit edge weight)
//
// Determinism: same options + seed + parameters ⇒ identical adjacency.
// Panics are confined to WithX constructors and indicate programmer error.

package builder

import "math/rand"

// Option mutates the builder configuration. Safe to apply repeatedly
// (last wins).
type Option func(*config)

// config stores the effective configuration after applying Option setters.
// It is intentionally unexported; constructors accept ...Option and resolve
// them via newConfig.
type config struct {
	// RNG for stochastic choices; nil means "no randomness" and makes the
	// random topologies fail fast with ErrNeedRandSource.
	rng *rand.Rand

	// weightFn produces each edge weight; defaults to constant 1.
	weightFn WeightFn
}

// WithRand sets the RNG used by stochastic constructors and weight
// functions. Panics if r is nil ("no randomness" is expressed by omitting
// the option, not by passing nil).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand: rng must be non-nil")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))) —
// the reproducible-fixture knob.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn replaces the constant unit weight with a custom generator.
// Panics if fn is nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn: fn must be non-nil")
	}

	return func(c *config) { c.weightFn = fn }
}

// newConfig resolves opts over the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
