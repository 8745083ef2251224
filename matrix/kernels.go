// SPDX-License-Identifier: MIT
// Package matrix: vector kernels consumed by the power-iteration loop.
// All kernels perform strict fail-fast validation, return plain sentinels
// wrapped with an operation tag, and never mutate their matrix operand.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMatVec    = "MatVec"
	opDot       = "Dot"
	opNormalize = "Normalize"
)

// kernelErrorf wraps err with an operation tag, preserving the original
// error via %w so call sites still match with errors.Is.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x into dst and returns it.
//
// Contract: m non-nil; len(x) == m.N(); dst is either nil (a fresh slice is
// allocated) or a caller-reused buffer with len(dst) == m.N(). Buffer reuse
// exists for tick-frequency callers that rebuild the matrix every frame but
// want zero allocation churn in the iteration loop.
//
// Determinism: fixed i→j loop order.
// Complexity: Time O(n²), Space O(n) only when dst is nil.
func MatVec(m *Dense, x, dst []float64) ([]float64, error) {
	// Validate matrix and operand vector.
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	// Resolve the output buffer.
	if dst == nil {
		dst = make([]float64, m.n)
	} else if len(dst) != m.n {
		return nil, kernelErrorf(opMatVec, ErrDimensionMismatch)
	}

	// Flat, row-major dot products; skipping zero x[j] helps on the sparse
	// adjacency rows the builders produce.
	var i, j, base int
	var acc, xv float64
	for i = 0; i < m.n; i++ {
		acc = NormZero
		base = i * m.n
		for j = 0; j < m.n; j++ {
			xv = x[j]
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		dst[i] = acc
	}

	return dst, nil
}

// Dot returns the inner product x·y.
// Contract: len(x) == len(y); nil slices rejected.
// Complexity: O(n) time, O(1) space.
func Dot(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, kernelErrorf(opDot, ErrNilVector)
	}
	if len(x) != len(y) {
		return 0, kernelErrorf(opDot, ErrDimensionMismatch)
	}

	acc := NormZero
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc, nil
}

// Norm returns the Euclidean (L2) norm of x. A nil or empty slice has norm 0.
// Complexity: O(n) time, O(1) space.
func Norm(x []float64) float64 {
	acc := NormZero
	for _, v := range x {
		acc += v * v
	}

	return math.Sqrt(acc)
}

// Normalize scales x in place to unit Euclidean norm.
//
// A zero-norm input has no direction to normalize onto; dividing through
// would NaN-poison the vector, so Normalize returns ErrZeroVector instead
// and leaves x untouched.
// Complexity: O(n) time, O(1) space.
func Normalize(x []float64) error {
	if x == nil {
		return kernelErrorf(opNormalize, ErrNilVector)
	}

	norm := Norm(x)
	if norm == NormZero {
		return kernelErrorf(opNormalize, ErrZeroVector)
	}

	inv := 1.0 / norm
	for i := range x {
		x[i] *= inv
	}

	return nil
}
