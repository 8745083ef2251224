// SPDX-License-Identifier: MIT
// Package: builder
//
// ring.go — implementation of Ring(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1, written
//     symmetrically (SetSym) so the adjacency is undirected by construction.
//   • Weight policy: cfg.weightFn(cfg.rng); unit weights by default.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) for the zeroed matrix + O(n) edge writes.
//   • Space: O(n²) for the result.
//
// Determinism:
//   • Deterministic edge emission order by increasing i.
//   • Deterministic weights given a fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/ostrov/centrograph/matrix"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring builds the n-node simple cycle C_n as an adjacency matrix.
func Ring(n int, opts ...Option) (*matrix.Dense, error) {
	// Validate parameter domain early (fail fast, no work on invalid input).
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}

	// Emit ring edges in ascending i; i==n-1 connects back to 0.
	for i := 0; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if err = m.SetSym(i, (i+1)%n, w); err != nil {
			return nil, fmt.Errorf("%s: SetSym(%d,%d): %w", methodRing, i, (i+1)%n, err)
		}
	}

	return m, nil
}
