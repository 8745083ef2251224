// SPDX-License-Identifier: MIT
// Package: history
//
// errors.go — sentinel errors for the tick store.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition
//     site; methods attach context (tick, node, path) via %w.

package history

import "errors"

// ErrEmptyScores indicates that RecordTick was called with a nil or empty
// score vector.
var ErrEmptyScores = errors.New("history: empty score vector")

// ErrNegativeTick indicates a tick index below zero.
var ErrNegativeTick = errors.New("history: tick must be ≥ 0")

// ErrTickNotFound indicates that the requested tick has no recorded rows.
var ErrTickNotFound = errors.New("history: tick not found")

// ErrNodeOutOfRange indicates a negative node index.
var ErrNodeOutOfRange = errors.New("history: node index out of range")

// ErrBadScore indicates that a score value is NaN or ±Inf; the store only
// accepts finite values.
var ErrBadScore = errors.New("history: score must be finite")
