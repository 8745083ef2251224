// SPDX-License-Identifier: MIT
// Package: builder
//
// dope.go — Dope(n, node, strength): one-hot bias vectors for the
// centrality doping experiments.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • 0 ≤ node < n (else ErrNodeOutOfRange).
//   • strength must be finite (else ErrInvalidStrength); zero is legal and
//     yields the unperturbed all-zeros bias.

package builder

import (
	"fmt"
	"math"
)

const methodDope = "Dope"

// Dope returns a length-n bias vector with strength at the chosen node and
// zeros elsewhere, index-aligned with the adjacency matrices this package
// produces.
func Dope(n, node int, strength float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodDope, n, ErrTooFewNodes)
	}
	if node < 0 || node >= n {
		return nil, fmt.Errorf("%s: node=%d outside [0,%d): %w", methodDope, node, n, ErrNodeOutOfRange)
	}
	if math.IsNaN(strength) || math.IsInf(strength, 0) {
		return nil, fmt.Errorf("%s: strength=%g: %w", methodDope, strength, ErrInvalidStrength)
	}

	b := make([]float64, n)
	b[node] = strength

	return b, nil
}
