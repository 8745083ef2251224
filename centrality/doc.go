// Package centrality approximates eigenvector centrality — the dominant
// eigenvector of a graph's adjacency matrix — via affine power iteration
// with sign normalization.
//
// The centrality package provides:
//
//   - PowerIteration: repeatedly applies the adjacency matrix to a unit
//     vector, adds an optional per-node "doping" bias, corrects the sign of
//     the update against sign oscillation, renormalizes, and stops once the
//     per-step delta drops below tolerance.
//   - Functional options for the iteration cap, tolerance, symmetry
//     validation, and the initial-vector source (seeded RNG or an explicit
//     start vector for deterministic tests and warm restarts).
//   - A Result carrying the unit-norm centrality vector together with
//     converged/iterations diagnostics, so callers can distinguish a settled
//     vector from an exhausted iteration cap.
//
// The doping bias turns pure power iteration into an affine fixed-point
// search: a one-hot bias injects a constant external signal at one node and
// the returned vector shows how that signal propagates through the network's
// centrality structure.
//
// The routine is pure and reentrant: it never mutates its inputs, holds no
// shared state, and concurrent calls over different matrices need no
// synchronization. Worst-case cost is O(maxIterations · n²) time and O(n)
// auxiliary space.
package centrality
