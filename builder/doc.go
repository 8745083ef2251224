// Package builder provides deterministic constructors for the graph
// topologies the centrality visualizations animate: rings, stars,
// buyer/seller bipartite graphs, and sparse random overlays.
//
// Every constructor returns an index-aligned *matrix.Dense adjacency matrix
// (symmetric, unit weights unless a weight function is configured) ready to
// feed centrality.PowerIteration, plus a Dope helper that produces the
// one-hot bias vectors used to inject an external signal at a chosen node.
//
// Determinism contract: the same parameters, options and seed produce an
// identical matrix, bit for bit. Stochastic constructors require a rand
// source (WithSeed / WithRand) and fail fast with ErrNeedRandSource when
// none is configured.
package builder
