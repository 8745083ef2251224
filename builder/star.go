// SPDX-License-Identifier: MIT
// Package: builder
//
// star.go — implementation of Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes): one hub plus at least one leaf.
//   • Node 0 is the hub; leaves are 1..n-1, connected in ascending order.
//   • Weight policy: cfg.weightFn(cfg.rng); unit weights by default.
//   • Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   • Deterministic leaf order and weights for a fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/ostrov/centrograph/matrix"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubIndex     = 0
)

// Star builds the n-node star S_{n-1}: hub 0 connected to every leaf.
func Star(n int, opts ...Option) (*matrix.Dense, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}

	for leaf := 1; leaf < n; leaf++ {
		w := cfg.weightFn(cfg.rng)
		if err = m.SetSym(hubIndex, leaf, w); err != nil {
			return nil, fmt.Errorf("%s: SetSym(%d,%d): %w", methodStar, hubIndex, leaf, err)
		}
	}

	return m, nil
}
