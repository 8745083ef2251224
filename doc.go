// Package centrograph computes eigenvector centrality for evolving random
// graphs — the numeric heart of network visualizations that resize and
// recolor nodes on every simulation tick.
//
// 🚀 What is centrograph?
//
//	A small, deterministic toolkit that brings together:
//		• Power iteration: signed dominant-eigenvector extraction with an
//		  additive "doping" bias, the one reusable algorithm behind the charts
//		• Matrix primitives: a dense symmetric adjacency container with the
//		  vector kernels the iteration needs (MatVec, dot, norm)
//		• Builders: seeded ring / star / bipartite / sparse-overlay topologies
//		  that produce index-aligned adjacency matrices
//		• History: a SQLite-backed per-tick centrality series, ready to feed
//		  a line chart
//
// ✨ Why choose centrograph?
//
//   - Deterministic – every stochastic path accepts a seed; same inputs,
//     same vector
//   - Fail-fast – dimension and degeneracy violations surface as sentinel
//     errors, never as NaN-poisoned output
//   - Pure Go – no cgo-backed math libraries
//
// Everything is organized under four subpackages and one binary:
//
//	centrality/ — affine power iteration with sign normalization
//	matrix/     — dense adjacency matrices + vector kernels
//	builder/    — deterministic random-graph constructors & doping vectors
//	history/    — per-tick centrality series persisted to SQLite
//	cmd/        — the centrograph CLI (build → iterate → record → print)
//
// Quick ASCII example:
//
//	    1
//	    │
//	2───0───3      a star S₄: node 0 carries the highest centrality,
//	    │          the four leaves share one magnitude.
//	    4
//
// Rendering, force layouts and animation loops live in the consumers of this
// module; centrograph stops at the numbers.
package centrograph
