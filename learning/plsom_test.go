package learning_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvstream/learning"
	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPLSOM_ReservoirKeepsDispersedPoints checks capacity and replacement.
func TestPLSOM_ReservoirKeepsDispersedPoints(t *testing.T) {
	m, _ := som.New(2, 2, 2)
	p, err := learning.NewPLSOM(m, 0)
	require.NoError(t, err)

	for _, x := range []vector.Vector{vector.Of(0, 0), vector.Of(1, 0), vector.Of(0, 1)} {
		require.NoError(t, p.Learn(x))
	}
	assert.Len(t, p.Reservoir(), 3, "capacity is 1+dim")
	assert.InDelta(t, math.Sqrt2, p.Diameter(), 1e-12)

	require.NoError(t, p.Learn(vector.Of(0.5, 0.5)))
	assert.InDelta(t, math.Sqrt2, p.Diameter(), 1e-12, "an interior point does not enter")

	require.NoError(t, p.Learn(vector.Of(5, 5)))
	assert.Len(t, p.Reservoir(), 3)
	assert.InDelta(t, 5*math.Sqrt2, p.Diameter(), 1e-12)
}

// TestPLSOM_ReducesError repeatedly presents one point.
func TestPLSOM_ReducesError(t *testing.T) {
	m, _ := som.New(3, 3, 2)
	m.Randomize(0, 1, rand.New(rand.NewSource(4)))
	p, _ := learning.NewPLSOM(m, 1)
	x := vector.Of(0.5, 0.5)

	_, before, _ := m.BestMatchingUnit(x)
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Learn(x))
		assert.LessOrEqual(t, p.Epsilon(), learning.MaxEpsilon)
	}
	_, after, _ := m.BestMatchingUnit(x)
	assert.Less(t, after, before)
}

// TestPLSOM_Errors covers parameter and dimensionality checks.
func TestPLSOM_Errors(t *testing.T) {
	m, _ := som.New(2, 2, 2)
	_, err := learning.NewPLSOM(m, math.Inf(1))
	assert.ErrorIs(t, err, learning.ErrInvalidParams)

	p, _ := learning.NewPLSOM(m, 1)
	assert.ErrorIs(t, p.Learn(vector.Of(1)), vector.ErrDimensionMismatch)
	assert.Empty(t, p.Reservoir())
}

// TestPLSOM_NonFiniteLeavesState rejects NaN and ±Inf before the reservoir or
// any prototype changes.
func TestPLSOM_NonFiniteLeavesState(t *testing.T) {
	m, _ := som.New(2, 2, 2)
	p, _ := learning.NewPLSOM(m, 1)
	require.NoError(t, p.Learn(vector.Of(0.2, 0.4)))
	before, reservoir, diameter := m.Codebook(), p.Reservoir(), p.Diameter()

	for _, bad := range []vector.Vector{
		vector.Of(math.NaN(), 0),
		vector.Of(0, math.Inf(1)),
	} {
		assert.ErrorIs(t, p.Learn(bad), vector.ErrNonFinite)
	}
	assert.Equal(t, before, m.Codebook())
	assert.Equal(t, reservoir, p.Reservoir())
	assert.Equal(t, diameter, p.Diameter())
}
