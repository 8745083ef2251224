// SPDX-License-Identifier: MIT
// Package: builder
//
// bipartite.go — CompleteBipartite(nLeft,nRight) and
// RandomBipartite(nLeft,nRight,p): the buyer/seller topologies.
//
// Contract:
//   • nLeft ≥ 1 and nRight ≥ 1 (else ErrTooFewNodes).
//   • Left partition occupies indices 0..nLeft-1, right partition
//     nLeft..nLeft+nRight-1; only cross edges are ever emitted, so the
//     result is bipartite by construction.
//   • RandomBipartite: 0 ≤ p ≤ 1 (else ErrInvalidProbability); a rand
//     source is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs none.
//   • Weight policy: cfg.weightFn(cfg.rng); unit weights by default.
//   • Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   • Stable emission order: i asc over the left side, inner j asc over the
//     right side; identical seeds reproduce identical matrices.

package builder

import (
	"fmt"

	"github.com/ostrov/centrograph/matrix"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomBipartite   = "RandomBipartite"
	minPartitionSize        = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// CompleteBipartite builds K_{nLeft,nRight} as an adjacency matrix.
func CompleteBipartite(nLeft, nRight int, opts ...Option) (*matrix.Dense, error) {
	return bipartite(methodCompleteBipartite, nLeft, nRight, probMax, newConfig(opts...))
}

// RandomBipartite builds a bipartite graph where each cross edge is present
// independently with probability p.
func RandomBipartite(nLeft, nRight int, p float64, opts ...Option) (*matrix.Dense, error) {
	// Validate probability: must lie in the closed interval [0,1].
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%g outside [%g,%g]: %w",
			methodRandomBipartite, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	// Stochastic path demands a source; p ∈ {0,1} is deterministic.
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
	}

	return bipartite(methodRandomBipartite, nLeft, nRight, p, cfg)
}

// bipartite emits cross edges with per-edge probability p using the
// resolved configuration. Callers have already validated p and the rng.
func bipartite(method string, nLeft, nRight int, p float64, cfg config) (*matrix.Dense, error) {
	// Early validation: both partitions must be non-empty.
	if nLeft < minPartitionSize || nRight < minPartitionSize {
		return nil, fmt.Errorf("%s: nLeft=%d, nRight=%d (each must be ≥ %d): %w",
			method, nLeft, nRight, minPartitionSize, ErrTooFewNodes)
	}

	n := nLeft + nRight
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Emit cross edges in stable (i over left, j over right) order.
	for i := 0; i < nLeft; i++ {
		for j := nLeft; j < n; j++ {
			// Bernoulli trial; p==1 (complete) skips the draw entirely so
			// the deterministic path consumes no randomness.
			if p < probMax {
				if p == probMin || cfg.rng.Float64() > p {
					continue
				}
			}
			w := cfg.weightFn(cfg.rng)
			if err = m.SetSym(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: SetSym(%d,%d): %w", method, i, j, err)
			}
		}
	}

	return m, nil
}
