// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and the centrality facade minimal by delegating nil/length/
//    symmetry checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their own operation tags.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The symmetry check runs O(n²) on the upper triangle only (see
//    Dense.Symmetric).

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric ensures m is non-nil and symmetric within eps.
// Fixed sequence: NotNil → Symmetric. Use before spectral methods to fail
// fast instead of converging to garbage. Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := m.Symmetric(eps); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	return nil
}
