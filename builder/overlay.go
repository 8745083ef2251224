// SPDX-License-Identifier: MIT
// Package: builder
//
// overlay.go — SparseOverlay(base, p): random chords over an existing
// topology, the "ring plus random triangles" texture of the animated
// visualizations.
//
// Contract:
//   • base must be non-nil (else ErrNilMatrix); it is cloned, never mutated.
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability); a rand source is required for
//     0 < p < 1 (else ErrNeedRandSource).
//   • Each absent off-diagonal pair (i<j, base[i,j]==0) gains an edge
//     independently with probability p; existing edges are left untouched.
//   • Weight policy: cfg.weightFn(cfg.rng); unit weights by default.
//
// Determinism:
//   • Fixed upper-triangle scan order i asc, j asc; identical seeds
//     reproduce identical overlays.

package builder

import (
	"fmt"

	"github.com/ostrov/centrograph/matrix"
)

const methodSparseOverlay = "SparseOverlay"

// SparseOverlay returns a copy of base with random chords added where base
// has no edge.
func SparseOverlay(base *matrix.Dense, p float64, opts ...Option) (*matrix.Dense, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: %w", methodSparseOverlay, ErrNilMatrix)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%g outside [%g,%g]: %w",
			methodSparseOverlay, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodSparseOverlay, ErrNeedRandSource)
	}

	m := base.Clone()
	n := m.N()
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", methodSparseOverlay, i, j, err)
			}
			if v != 0 {
				continue // existing edge, keep as is
			}
			if p < probMax {
				if p == probMin || cfg.rng.Float64() > p {
					continue
				}
			}
			w := cfg.weightFn(cfg.rng)
			if err = m.SetSym(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: SetSym(%d,%d): %w", methodSparseOverlay, i, j, err)
			}
		}
	}

	return m, nil
}
