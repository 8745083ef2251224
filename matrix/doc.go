// Package matrix provides the dense adjacency representation and vector
// kernels used by centrograph's spectral routines.
//
// The matrix package provides:
//
//   - Dense: a square, row-major adjacency matrix with O(1) bounds-checked
//     element access and O(n²) memory, built fresh by callers on every
//     simulation tick.
//   - FromRows for ingesting caller-built nested slices with strict
//     ragged-row and NaN/Inf rejection.
//   - Vector kernels (MatVec, Dot, Norm, Normalize) with reusable output
//     buffers for tick-frequency callers.
//
// Dense matrices are best for the dense-or-small graphs the visualizations
// operate on (tens to low hundreds of nodes), where O(n²) memory is
// acceptable and flat storage keeps the power-iteration hot loop cache
// friendly.
//
// See the centrality package for the consumer of these kernels.
package matrix
