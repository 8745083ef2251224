// Package matrix_test contains unit tests for the Dense adjacency container.
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrov/centrograph/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("%dx%d", n, n), func(t *testing.T) {
			m, err := matrix.NewDense(n)
			require.NoError(t, err)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			var v float64
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					v, err = m.At(i, j)
					require.NoError(t, err)
					if v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%d) must be 0", i, j, n)
					}
				}
			}
		})
	}
}

func TestNewDense_BadShape(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := matrix.NewDense(n)
		if !errors.Is(err, matrix.ErrBadShape) {
			t.Fatalf("NewDense(%d): expected ErrBadShape, got %v", n, err)
		}
	}
}

func TestFromRows_RoundTrip(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())

	// Mutating the caller slice must not affect the matrix (copy semantics).
	rows[0][1] = 42
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestFromRows_Rejections(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", [][]float64{}, matrix.ErrBadShape},
		{"ragged", [][]float64{{0, 1}, {1}}, matrix.ErrDimensionMismatch},
		{"rectangular", [][]float64{{0, 1, 2}, {1, 0, 3}}, matrix.ErrNonSquare},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, matrix.ErrNaNInf},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Fatalf("FromRows(%s): expected %v, got %v", tc.name, tc.want, err)
			}
		})
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err = m.At(rc[0], rc[1]); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): expected ErrOutOfRange, got %v", rc[0], rc[1], err)
		}
		if err = m.Set(rc[0], rc[1], 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): expected ErrOutOfRange, got %v", rc[0], rc[1], err)
		}
	}

	// Set must refuse non-finite values.
	if err = m.Set(0, 0, math.NaN()); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("Set(NaN): expected ErrNaNInf, got %v", err)
	}
}

func TestDense_SetSymMirrors(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 2, 5))

	a, err := m.At(0, 2)
	require.NoError(t, err)
	b, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, a)
	require.Equal(t, 5.0, b)

	// Loop entry writes a single cell and must not error.
	require.NoError(t, m.SetSym(1, 1, 7))
	require.NoError(t, m.Symmetric(0))
}

func TestDense_Symmetric(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{0, 1},
		{1.5, 0},
	})
	require.NoError(t, err)

	if err = m.Symmetric(0.1); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("expected ErrAsymmetry, got %v", err)
	}
	// Within a generous epsilon the same matrix passes.
	require.NoError(t, m.Symmetric(1.0))
}

func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig, "Clone must not alias the original storage")
}
