// SPDX-License-Identifier: MIT
// Package centrality: sentinel error set.
// Dimension and symmetry violations reuse the matrix package sentinels
// (ErrDimensionMismatch, ErrAsymmetry, ErrNilVector) so that one condition
// maps to exactly one sentinel across the module; this file adds only the
// conditions that belong to the iteration itself. Tests match via errors.Is.

package centrality

import "errors"

var (
	// ErrEmptyMatrix is returned for a nil or zero-dimension adjacency
	// matrix. There is no meaningful centrality over zero nodes, so we
	// fail fast instead of dividing by zero later. (matrix.Dense cannot
	// actually represent N=0, so in practice this guards nil inputs.)
	ErrEmptyMatrix = errors.New("centrality: empty adjacency matrix")

	// ErrDegenerateVector is returned when an iterate loses all magnitude:
	// a zero initial draw, a zero update sign (μ == 0), or a zero matrix
	// with zero bias collapsing every iterate to the zero vector. The
	// alternative — silently renormalizing zero — would NaN-poison the
	// centrality vector and corrupt every downstream consumer invisibly.
	ErrDegenerateVector = errors.New("centrality: degenerate zero-norm iterate")
)
