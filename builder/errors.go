// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context via %w.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, nLeft, nRight) is
// smaller than the allowed minimum for the requested topology.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without a configured rand source (WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rand source required")

// ErrNodeOutOfRange indicates that a node index is outside [0, n).
var ErrNodeOutOfRange = errors.New("builder: node index out of range")

// ErrNilMatrix indicates that a nil base matrix was passed to an overlay
// constructor.
var ErrNilMatrix = errors.New("builder: nil base matrix")

// ErrInvalidStrength indicates that a doping strength is NaN or ±Inf.
var ErrInvalidStrength = errors.New("builder: doping strength must be finite")
