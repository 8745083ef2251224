// SPDX-License-Identifier: MIT

// Package history persists per-tick centrality scores in a SQLite
// database, so simulation runs can be replayed and individual nodes can
// be charted over time.
//
// What this package offers:
//   - Store — a thin handle over one SQLite file (modernc.org/sqlite,
//     pure Go, no cgo); the schema is bootstrapped on Open.
//   - RecordTick(tick, scores) — one transactional write per tick: either
//     the whole score vector lands or none of it does.
//   - Tick(tick) / NodeSeries(node) / Ticks() / Count() — the read side:
//     a full snapshot, one node's trajectory, and simple inventory.
//
// Storage model:
//
//	scores(tick INTEGER, node INTEGER, score REAL, PRIMARY KEY(tick, node))
//
// Ticks are append-only from the caller's point of view; re-recording an
// existing tick overwrites it atomically (the transaction deletes the old
// rows first). All methods are safe for use from a single goroutine; the
// connection pool is capped at one because SQLite serializes writers
// anyway.
//
// Error policy:
//   - Sentinel errors (ErrEmptyScores, ErrTickNotFound, ...) are matched
//     with errors.Is; driver errors are wrapped with %w and method context.
package history
