package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvstream/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClone_IsDeep verifies that mutating a clone leaves the source untouched.
func TestClone_IsDeep(t *testing.T) {
	v := vector.Of(1, 2, 3)
	c := v.Clone()
	c[0] = 42

	assert.Equal(t, vector.Of(1, 2, 3), v, "source must not observe clone mutation")
	assert.Nil(t, vector.Vector(nil).Clone(), "nil clones to nil")
}

// TestArithmetic_InPlace checks the element-wise and scalar kernels.
func TestArithmetic_InPlace(t *testing.T) {
	v := vector.Of(1, 2, 3)
	require.NoError(t, v.Add(vector.Of(1, 1, 1)))
	assert.Equal(t, vector.Of(2, 3, 4), v)

	require.NoError(t, v.Sub(vector.Of(2, 2, 2)))
	assert.Equal(t, vector.Of(0, 1, 2), v)

	require.NoError(t, v.Mul(vector.Of(3, 3, 3)))
	assert.Equal(t, vector.Of(0, 3, 6), v)

	require.NoError(t, v.Div(vector.Of(3, 3, 3)))
	assert.Equal(t, vector.Of(0, 1, 2), v)

	v.Scale(4)
	assert.Equal(t, vector.Of(0, 4, 8), v)

	v.DivScalar(2)
	assert.Equal(t, vector.Of(0, 2, 4), v)

	require.NoError(t, v.AddScaled(0.5, vector.Of(2, 2, 2)))
	assert.Equal(t, vector.Of(1, 3, 5), v)
}

// TestArithmetic_MismatchLeavesReceiver ensures failed ops do not mutate.
func TestArithmetic_MismatchLeavesReceiver(t *testing.T) {
	v := vector.Of(1, 2)
	err := v.Add(vector.Of(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	assert.EqualError(t, err, "vector: dimensionality mismatch: expected 2 got 3")
	assert.Equal(t, vector.Of(1, 2), v)

	assert.ErrorIs(t, v.Blend(vector.Of(1), 0.5), vector.ErrDimensionMismatch)
	assert.ErrorIs(t, v.CopyFrom(vector.Of(1)), vector.ErrDimensionMismatch)
	assert.ErrorIs(t, vector.CheckDim(v, 3), vector.ErrDimensionMismatch)
	assert.NoError(t, vector.CheckDim(v, 2))
}

// TestBlend_Interpolates checks the exponential moving-average update.
func TestBlend_Interpolates(t *testing.T) {
	v := vector.Of(0, 0)
	require.NoError(t, v.Blend(vector.Of(4, 2), 0.25))
	assert.InDeltaSlice(t, []float64{1, 0.5}, v, 1e-12)

	require.NoError(t, v.Blend(vector.Of(9, 9), 0))
	assert.InDeltaSlice(t, []float64{1, 0.5}, v, 1e-12, "rate 0 is a no-op")

	require.NoError(t, v.Blend(vector.Of(9, 9), 1))
	assert.InDeltaSlice(t, []float64{9, 9}, v, 1e-12, "rate 1 copies target")
}

// TestQueries covers Magnitude, Min, Max and their empty-vector errors.
func TestQueries(t *testing.T) {
	v := vector.Of(3, -4)
	assert.InDelta(t, 5.0, v.Magnitude(), 1e-12)

	lo, err := v.Min()
	require.NoError(t, err)
	assert.Equal(t, -4.0, lo)

	hi, err := v.Max()
	require.NoError(t, err)
	assert.Equal(t, 3.0, hi)

	_, err = vector.Vector{}.Min()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = vector.Vector{}.Max()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	assert.Equal(t, 0.0, vector.Vector{}.Magnitude())

	m := vector.Of(1, 5)
	require.NoError(t, m.MinInPlace(vector.Of(2, 4)))
	assert.Equal(t, vector.Of(1, 4), m)
	require.NoError(t, m.MaxInPlace(vector.Of(3, 0)))
	assert.Equal(t, vector.Of(3, 4), m)
}

// TestMetrics verifies L2, L1 and L∞ on a 3-4-5 triangle.
func TestMetrics(t *testing.T) {
	a, b := vector.Of(0, 0), vector.Of(3, 4)

	d, err := vector.Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	d, err = vector.Manhattan.Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, d, 1e-12)

	d, err = vector.Chebyshev.Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, d, 1e-12)

	_, err = vector.Distance(a, vector.Of(1))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	assert.Equal(t, a, vector.Of(0, 0), "distance must not mutate its arguments")
}

// TestParseMetric round-trips every metric through its name.
func TestParseMetric(t *testing.T) {
	for _, m := range []vector.Metric{vector.Euclidean, vector.Manhattan, vector.Chebyshev} {
		got, err := vector.ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := vector.ParseMetric("cosine")
	assert.Error(t, err)
}

// TestNearest_TieKeepsFirst ensures ties resolve to the earliest candidate.
func TestNearest_TieKeepsFirst(t *testing.T) {
	x := vector.Of(0, 0)
	cands := []vector.Vector{vector.Of(2, 0), vector.Of(1, 0), vector.Of(0, 1)}

	i, d := vector.Euclidean.Nearest(x, cands)
	assert.Equal(t, 1, i)
	assert.InDelta(t, 1.0, d, 1e-12)

	i, d = vector.Euclidean.Nearest(x, nil)
	assert.Equal(t, -1, i)
	assert.True(t, math.IsInf(d, 1))
}

// TestRandom_Deterministic checks range and reproducibility of Random.
func TestRandom_Deterministic(t *testing.T) {
	a, err := vector.Random(8, -1, 1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := vector.Random(8, -1, 1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must yield identical vectors")
	for _, c := range a {
		assert.GreaterOrEqual(t, c, -1.0)
		assert.Less(t, c, 1.0)
	}

	_, err = vector.Random(2, 1, 0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, vector.ErrInvalidRange)
	assert.True(t, vector.Equal(vector.Of(1, 2), vector.Of(1, 2+1e-12), 1e-9))
	assert.False(t, vector.Equal(vector.Of(1, 2), vector.Of(1), 1e-9))
}

// TestCheckFinite names the first NaN or ±Inf component.
func TestCheckFinite(t *testing.T) {
	assert.NoError(t, vector.CheckFinite(vector.Of(0, -1, 1e308)))
	assert.NoError(t, vector.CheckFinite(nil))

	for _, v := range []vector.Vector{
		vector.Of(0, math.NaN()),
		vector.Of(math.Inf(1), 0),
		vector.Of(1, math.Inf(-1), math.NaN()),
	} {
		err := vector.CheckFinite(v)
		assert.ErrorIs(t, err, vector.ErrNonFinite, "%v", v)
	}
	assert.ErrorContains(t, vector.CheckFinite(vector.Of(1, math.Inf(-1), math.NaN())), "component 1 is -Inf")
}
