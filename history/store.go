// SPDX-License-Identifier: MIT
// Package: history
//
// store.go — SQLite-backed tick store.
//
// Contract:
//   • Open bootstraps the schema (CREATE TABLE IF NOT EXISTS) and caps the
//     pool at one connection; SQLite serializes writers regardless.
//   • RecordTick is atomic: delete-then-insert inside one transaction, so a
//     re-recorded tick is replaced wholesale or left untouched on error.
//   • Reads return rows ordered by node (Tick) or by tick (NodeSeries) so
//     output is deterministic for charting.
//   • Only sentinel errors escape for semantic failures; driver errors are
//     wrapped with %w and the method tag.

package history

import (
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite"
)

// schemaDDL bootstraps the single scores table. The composite primary key
// makes (tick, node) pairs unique and gives the read queries an index.
const schemaDDL = `CREATE TABLE IF NOT EXISTS scores (
  tick  INTEGER NOT NULL,
  node  INTEGER NOT NULL,
  score REAL    NOT NULL,
  PRIMARY KEY (tick, node)
)`

// Point is one (tick, score) sample of a node's trajectory.
type Point struct {
	Tick  int
	Score float64
}

// Store is a handle over one SQLite database file holding tick history.
// The zero value is not usable; obtain one via Open.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists. The special path ":memory:" yields an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %q: %w", path, err)
	}

	// SQLite doesn't support concurrent writes.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: bootstrap schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database path this store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("history: close: %w", err)
	}

	return nil
}

// RecordTick stores the full score vector for one tick. Index i of scores
// is node i. Re-recording an existing tick replaces its rows atomically.
func (s *Store) RecordTick(tick int, scores []float64) error {
	if tick < 0 {
		return fmt.Errorf("RecordTick: tick=%d: %w", tick, ErrNegativeTick)
	}
	if len(scores) == 0 {
		return fmt.Errorf("RecordTick: %w", ErrEmptyScores)
	}
	for node, v := range scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("RecordTick: node=%d score=%g: %w", node, v, ErrBadScore)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("RecordTick: begin: %w", err)
	}
	// Rollback is a no-op after Commit; keeping it deferred covers every
	// early-return path below.
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.Exec(`DELETE FROM scores WHERE tick = ?`, tick); err != nil {
		return fmt.Errorf("RecordTick: clear tick %d: %w", tick, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scores (tick, node, score) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("RecordTick: prepare: %w", err)
	}
	defer stmt.Close()

	for node, v := range scores {
		if _, err = stmt.Exec(tick, node, v); err != nil {
			return fmt.Errorf("RecordTick: insert (tick=%d, node=%d): %w", tick, node, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("RecordTick: commit: %w", err)
	}

	return nil
}

// Tick returns the full score vector recorded for one tick, ordered by
// node index. Returns ErrTickNotFound when the tick has no rows.
func (s *Store) Tick(tick int) ([]float64, error) {
	if tick < 0 {
		return nil, fmt.Errorf("Tick: tick=%d: %w", tick, ErrNegativeTick)
	}

	rows, err := s.db.Query(`SELECT score FROM scores WHERE tick = ? ORDER BY node`, tick)
	if err != nil {
		return nil, fmt.Errorf("Tick: query: %w", err)
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var v float64
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("Tick: scan: %w", err)
		}
		scores = append(scores, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("Tick: rows: %w", err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("Tick: tick=%d: %w", tick, ErrTickNotFound)
	}

	return scores, nil
}

// NodeSeries returns one node's score trajectory across all recorded
// ticks, ordered by tick. An unknown node yields an empty series, not an
// error: absence of data is a legitimate query result.
func (s *Store) NodeSeries(node int) ([]Point, error) {
	if node < 0 {
		return nil, fmt.Errorf("NodeSeries: node=%d: %w", node, ErrNodeOutOfRange)
	}

	rows, err := s.db.Query(`SELECT tick, score FROM scores WHERE node = ? ORDER BY tick`, node)
	if err != nil {
		return nil, fmt.Errorf("NodeSeries: query: %w", err)
	}
	defer rows.Close()

	var series []Point
	for rows.Next() {
		var p Point
		if err = rows.Scan(&p.Tick, &p.Score); err != nil {
			return nil, fmt.Errorf("NodeSeries: scan: %w", err)
		}
		series = append(series, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("NodeSeries: rows: %w", err)
	}

	return series, nil
}

// Ticks returns every distinct recorded tick in ascending order.
func (s *Store) Ticks() ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT tick FROM scores ORDER BY tick`)
	if err != nil {
		return nil, fmt.Errorf("Ticks: query: %w", err)
	}
	defer rows.Close()

	var ticks []int
	for rows.Next() {
		var t int
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("Ticks: scan: %w", err)
		}
		ticks = append(ticks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("Ticks: rows: %w", err)
	}

	return ticks, nil
}

// Count returns the number of distinct recorded ticks.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT tick) FROM scores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	return n, nil
}
