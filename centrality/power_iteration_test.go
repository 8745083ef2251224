// Package centrality_test contains unit tests for the affine power-iteration
// facade. The scenarios cover the unit-norm guarantee, convergence and sign
// behavior, doping propagation, degeneracy reporting, and both iteration
// boundaries (zero cap, zero tolerance).
package centrality_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrov/centrograph/centrality"
	"github.com/ostrov/centrograph/matrix"
)

const tol = 1e-9

// pair returns the 2-node unit-weight graph A = [[0,1],[1,0]].
func pair(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]float64{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)

	return m
}

// triangle returns K₃ — the smallest graph with a strictly dominant
// eigenvalue (2 vs −1), so power iteration genuinely contracts on it.
func triangle(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)

	return m
}

// star returns S₄: center node 0 connected to nodes 1..4 with weight 1.
func star(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(5)
	require.NoError(t, err)
	for leaf := 1; leaf <= 4; leaf++ {
		require.NoError(t, m.SetSym(0, leaf, 1))
	}

	return m
}

// ------------------------------------------------------------------------
// Validation: errors are returned for invalid inputs, matched via errors.Is.
// ------------------------------------------------------------------------

func TestPowerIteration_NilMatrix(t *testing.T) {
	_, err := centrality.PowerIteration(nil, nil)
	if !errors.Is(err, centrality.ErrEmptyMatrix) {
		t.Fatalf("expected ErrEmptyMatrix, got %v", err)
	}
}

func TestPowerIteration_BiasLengthMismatch(t *testing.T) {
	_, err := centrality.PowerIteration(pair(t), []float64{1})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestPowerIteration_StartLengthMismatch(t *testing.T) {
	_, err := centrality.PowerIteration(pair(t), nil, centrality.WithStart([]float64{1, 2, 3}))
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestPowerIteration_NonFiniteBiasRejected(t *testing.T) {
	// A NaN or ±Inf bias entry would poison μ and the norm, silently
	// turning the whole result vector into NaNs under a nil error. It must
	// be rejected up front instead.
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := centrality.PowerIteration(pair(t), []float64{bad, 0},
			centrality.WithStart([]float64{1, 1}))
		if !errors.Is(err, matrix.ErrNaNInf) {
			t.Fatalf("bias entry %g: expected ErrNaNInf, got %v", bad, err)
		}
	}
}

func TestPowerIteration_NonFiniteStartRejected(t *testing.T) {
	_, err := centrality.PowerIteration(pair(t), nil,
		centrality.WithStart([]float64{math.NaN(), 1}))
	if !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("expected ErrNaNInf, got %v", err)
	}
}

func TestPowerIteration_AsymmetryRejected(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{0, 1},
		{2, 0},
	})
	require.NoError(t, err)

	_, err = centrality.PowerIteration(m, nil, centrality.WithSeed(1))
	if !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("expected ErrAsymmetry, got %v", err)
	}

	// The same matrix passes once the caller opts out of the check.
	_, err = centrality.PowerIteration(m, nil,
		centrality.WithSeed(1), centrality.WithoutSymmetryCheck())
	require.NoError(t, err)
}

func TestPowerIteration_SymmetryEpsWidensTolerance(t *testing.T) {
	// A mirror defect of 1e-6 trips the default eps (1e-9) but is within a
	// widened one, so the same matrix goes from rejected to accepted.
	m, err := matrix.FromRows([][]float64{
		{0, 1},
		{1 + 1e-6, 0},
	})
	require.NoError(t, err)

	_, err = centrality.PowerIteration(m, nil, centrality.WithStart([]float64{1, 1}))
	if !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("expected ErrAsymmetry under the default eps, got %v", err)
	}

	res, err := centrality.PowerIteration(m, nil,
		centrality.WithStart([]float64{1, 1}),
		centrality.WithSymmetryEps(1e-3))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 1.0, matrix.Norm(res.Vector), 1e-9)
}

// ------------------------------------------------------------------------
// Degeneracy: zero-norm iterates surface as ErrDegenerateVector, never NaN.
// ------------------------------------------------------------------------

func TestPowerIteration_IsolatedNode(t *testing.T) {
	// An isolated node with zero bias: the first update is the zero vector;
	// the implementation reports the degeneracy instead of returning NaN.
	m, err := matrix.FromRows([][]float64{{0}})
	require.NoError(t, err)

	_, err = centrality.PowerIteration(m, []float64{0}, centrality.WithStart([]float64{1}))
	if !errors.Is(err, centrality.ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}

func TestPowerIteration_ZeroMatrixZeroBias(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	_, err = centrality.PowerIteration(m, nil, centrality.WithStart([]float64{1, 1, 1}))
	if !errors.Is(err, centrality.ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}

func TestPowerIteration_ZeroStartVector(t *testing.T) {
	_, err := centrality.PowerIteration(pair(t), nil, centrality.WithStart([]float64{0, 0}))
	if !errors.Is(err, centrality.ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}

// ------------------------------------------------------------------------
// Fixed points and convergence.
// ------------------------------------------------------------------------

func TestPowerIteration_TwoNodePair(t *testing.T) {
	// A symmetric pair: both nodes are equivalent, so the dominant eigenvector is
	// (1,1)/√2. Starting on the symmetric axis lands exactly on it.
	res, err := centrality.PowerIteration(pair(t), nil,
		centrality.WithStart([]float64{1, 1}),
		centrality.WithMaxIterations(1000))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.InDelta(t, 0.7071, res.Vector[0], 1e-4)
	require.InDelta(t, 0.7071, res.Vector[1], 1e-4)
}

func TestPowerIteration_StarGraph(t *testing.T) {
	// On the star S₄ the fixed point weights the center twice as much as
	// each leaf: (2,1,1,1,1)/√8.
	res, err := centrality.PowerIteration(star(t), nil,
		centrality.WithStart([]float64{2, 1, 1, 1, 1}))
	require.NoError(t, err)
	require.True(t, res.Converged)

	center := math.Abs(res.Vector[0])
	require.InDelta(t, 2.0/math.Sqrt(8), center, tol)
	for leaf := 1; leaf <= 4; leaf++ {
		lv := math.Abs(res.Vector[leaf])
		require.Greater(t, center, lv, "center must dominate leaf %d", leaf)
		require.InDelta(t, 1.0/math.Sqrt(8), lv, tol, "all leaves share one magnitude")
	}
}

func TestPowerIteration_DopingRaisesCenter(t *testing.T) {
	// Doping the center of the star must strictly raise its
	// centrality relative to the undoped fixed point.
	m := star(t)
	start := centrality.WithStart([]float64{2, 1, 1, 1, 1})

	undoped, err := centrality.PowerIteration(m, nil, start)
	require.NoError(t, err)

	doped, err := centrality.PowerIteration(m, []float64{1, 0, 0, 0, 0},
		start, centrality.WithMaxIterations(1000))
	require.NoError(t, err)

	require.Greater(t, math.Abs(doped.Vector[0]), math.Abs(undoped.Vector[0]))
}

func TestPowerIteration_BiasOnlyPropagation(t *testing.T) {
	// A zero matrix with a one-hot bias converges onto the doped node: the
	// external signal is the only thing feeding the iterate.
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	res, err := centrality.PowerIteration(m, []float64{1, 0, 0},
		centrality.WithStart([]float64{1, 1, 1}))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 1.0, res.Vector[0], tol)
	require.InDelta(t, 0.0, res.Vector[1], tol)
	require.InDelta(t, 0.0, res.Vector[2], tol)
}

func TestPowerIteration_SignStability(t *testing.T) {
	// Two runs from different positively-scaled starts must agree up to a
	// consistent global sign (entrywise ratio +1 here, both in the positive
	// orthant).
	m := triangle(t)

	r1, err := centrality.PowerIteration(m, nil, centrality.WithStart([]float64{1, 0.5, 0.25}))
	require.NoError(t, err)
	require.True(t, r1.Converged)

	r2, err := centrality.PowerIteration(m, nil, centrality.WithStart([]float64{0.2, 0.8, 0.5}))
	require.NoError(t, err)
	require.True(t, r2.Converged)

	want := 1.0 / math.Sqrt(3)
	for i := 0; i < 3; i++ {
		require.InDelta(t, want, math.Abs(r1.Vector[i]), 0.02)
		require.InDelta(t, 1.0, r1.Vector[i]/r2.Vector[i], 0.05)
	}
}

func TestPowerIteration_FixedPointIdempotence(t *testing.T) {
	// Once converged, re-feeding the result as the start and running one
	// more step moves the vector by less than the tolerance.
	m := triangle(t)

	first, err := centrality.PowerIteration(m, nil, centrality.WithSeed(7))
	require.NoError(t, err)
	require.True(t, first.Converged)

	second, err := centrality.PowerIteration(m, nil,
		centrality.WithStart(first.Vector),
		centrality.WithMaxIterations(1))
	require.NoError(t, err)
	require.True(t, second.Converged)

	var delta float64
	for i := range first.Vector {
		d := second.Vector[i] - first.Vector[i]
		delta += d * d
	}
	require.Less(t, math.Sqrt(delta), centrality.DefaultTolerance)
}

func TestPowerIteration_NegativeDominantEigenvalue(t *testing.T) {
	// diag(-2, 1) has dominant eigenvalue −2. Without the sign(μ) step the
	// iterate would flip sign every step and never settle; with it, the run
	// converges onto the first axis.
	m, err := matrix.FromRows([][]float64{
		{-2, 0},
		{0, 1},
	})
	require.NoError(t, err)

	res, err := centrality.PowerIteration(m, nil,
		centrality.WithStart([]float64{0.6, 0.8}),
		centrality.WithMaxIterations(200))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 1.0, math.Abs(res.Vector[0]), 0.02)
	require.Less(t, math.Abs(res.Vector[1]), 0.05)
}

// ------------------------------------------------------------------------
// Guarantees: unit norm, determinism, input immutability, boundaries.
// ------------------------------------------------------------------------

func TestPowerIteration_UnitNorm(t *testing.T) {
	// Oscillating (star) and contracting (triangle) dynamics alike must
	// return unit-norm vectors, converged or not.
	for _, m := range []*matrix.Dense{star(t), triangle(t), pair(t)} {
		for seed := int64(1); seed <= 5; seed++ {
			res, err := centrality.PowerIteration(m, nil, centrality.WithSeed(seed))
			require.NoError(t, err)
			require.InDelta(t, 1.0, matrix.Norm(res.Vector), tol)
		}
	}
}

func TestPowerIteration_Deterministic(t *testing.T) {
	m := triangle(t)

	a, err := centrality.PowerIteration(m, nil, centrality.WithSeed(42))
	require.NoError(t, err)
	b, err := centrality.PowerIteration(m, nil, centrality.WithSeed(42))
	require.NoError(t, err)

	// Same seed ⇒ bit-identical vector and identical iteration count.
	require.Equal(t, a.Vector, b.Vector)
	require.Equal(t, a.Iterations, b.Iterations)
	require.Equal(t, a.Converged, b.Converged)
}

func TestPowerIteration_InputsNotMutated(t *testing.T) {
	m := triangle(t)
	snapshot := m.String()
	bias := []float64{0.5, 0, 0}
	start := []float64{3, 4, 5}

	_, err := centrality.PowerIteration(m, bias, centrality.WithStart(start))
	require.NoError(t, err)

	require.Equal(t, snapshot, m.String(), "matrix must not be mutated")
	require.Equal(t, []float64{0.5, 0, 0}, bias, "bias must not be mutated")
	require.Equal(t, []float64{3, 4, 5}, start, "start must not be mutated")
}

func TestPowerIteration_ZeroIterations(t *testing.T) {
	// maxIterations = 0 returns the normalized initial vector unchanged.
	res, err := centrality.PowerIteration(pair(t), nil,
		centrality.WithStart([]float64{3, 4}),
		centrality.WithMaxIterations(0))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 0, res.Iterations)
	require.InDelta(t, 0.6, res.Vector[0], tol)
	require.InDelta(t, 0.8, res.Vector[1], tol)
}

func TestPowerIteration_ZeroTolerance(t *testing.T) {
	// tolerance = 0 with the strict < comparison never early-terminates,
	// even at an exact fixed point where the delta is exactly zero.
	res, err := centrality.PowerIteration(triangle(t), nil,
		centrality.WithStart([]float64{1, 1, 1}),
		centrality.WithTolerance(0),
		centrality.WithMaxIterations(5))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 5, res.Iterations)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0/math.Sqrt(3), res.Vector[i], tol)
	}
}
