// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major adjacency matrix,
// storing elements in a flat slice for performance and cache friendliness.
// Adjacency matrices are always square; Dense enforces that at construction.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of float64 values.
// n is the dimension and data holds n*n elements in row-major order.
type Dense struct {
	n    int       // dimension (rows == cols)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate dimension
	if n <= 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FromRows builds a Dense from caller-owned nested slices.
// Stage 1 (Validate): non-empty, square, no ragged rows, all entries finite.
// Stage 2 (Execute): copy rows into flat storage (input is never retained).
// Complexity: O(n²) time and memory.
//
// Errors:
//   - ErrBadShape            (empty input),
//   - ErrNonSquare           (len(rows[i]) != len(rows) overall shape),
//   - ErrDimensionMismatch   (ragged row),
//   - ErrNaNInf              (non-finite entry).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}

	m := &Dense{n: n, data: make([]float64, n*n)}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		// Ragged rows silently corrupt index alignment downstream; reject.
		if len(rows[i]) != n {
			if len(rows[i]) == len(rows[0]) {
				// Uniform rows of the wrong width: the input is rectangular.
				return nil, fmt.Errorf("FromRows: row width %d != %d: %w", len(rows[i]), n, ErrNonSquare)
			}

			return nil, fmt.Errorf("FromRows: ragged row %d: %w", i, ErrDimensionMismatch)
		}
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*n+j] = v
		}
	}

	return m, nil
}

// N returns the matrix dimension (number of nodes).
// Complexity: O(1).
func (m *Dense) N() int {
	return m.n // rows == cols by construction
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col); v must be finite.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Finite-value policy: never let NaN/Inf into the backing store, where it
	// would poison every downstream dot product invisibly.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// SetSym assigns v at (row, col) AND (col, row) in one call — the natural
// write for an undirected edge. Same validation as Set.
// Complexity: O(1).
func (m *Dense) SetSym(row, col int, v float64) error {
	if err := m.Set(row, col, v); err != nil {
		return err
	}
	if row == col {
		return nil // loop entry, single cell
	}

	return m.Set(col, row, v)
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Symmetric reports whether |m[i,j]-m[j,i]| <= eps for every pair,
// scanning the upper triangle only. eps must be >= 0 (caller contract).
// Returns ErrAsymmetry naming the first offending pair.
// Complexity: O(n²) time, O(1) space.
func (m *Dense) Symmetric(eps float64) error {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if math.Abs(m.data[i*m.n+j]-m.data[j*m.n+i]) > eps {
				return fmt.Errorf("Symmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
