package som_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation rejects empty lattices.
func TestNew_Validation(t *testing.T) {
	_, err := som.New(0, 3, 2)
	assert.ErrorIs(t, err, som.ErrInvalidSize)
	_, err = som.New(3, 3, 0)
	assert.ErrorIs(t, err, som.ErrInvalidSize)

	m, err := som.New(4, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, m.Size())
	assert.Equal(t, som.Hexagonal, m.Topology())
	assert.Equal(t, vector.Euclidean, m.Metric())
	assert.InDelta(t, 5.0, m.Diagonal(), 1e-12)
}

// TestOptions_PanicOnUnknownEnums rejects topology and metric values outside
// the defined constants.
func TestOptions_PanicOnUnknownEnums(t *testing.T) {
	assert.PanicsWithValue(t, "som: WithTopology: unknown topology", func() { som.WithTopology(som.Topology(7)) })
	assert.PanicsWithValue(t, "som: WithTopology: unknown topology", func() { som.WithTopology(som.Topology(-1)) })
	assert.PanicsWithValue(t, "som: WithMetric: unknown metric", func() { som.WithMetric(vector.Metric(7)) })

	assert.NotPanics(t, func() {
		m, err := som.New(2, 2, 1, som.WithTopology(som.Rectangular), som.WithMetric(vector.Chebyshev))
		require.NoError(t, err)
		assert.Equal(t, som.Rectangular, m.Topology())
		assert.Equal(t, vector.Chebyshev, m.Metric())
	})
}

// TestNeurons_RowMajor checks iteration order and coordinate lookup.
func TestNeurons_RowMajor(t *testing.T) {
	m, _ := som.New(3, 2, 1)
	ns := m.Neurons()
	require.Len(t, ns, 6)
	for i, n := range ns {
		assert.Equal(t, i%3, n.X)
		assert.Equal(t, i/3, n.Y)
		assert.Equal(t, i, n.Index(3))
	}

	n, err := m.Neuron(2, 1)
	require.NoError(t, err)
	assert.Same(t, ns[5], n)

	_, err = m.Neuron(3, 0)
	assert.ErrorIs(t, err, som.ErrOutOfBounds)
}

// TestTopology_Distances compares rectangular and hexagonal geometry.
func TestTopology_Distances(t *testing.T) {
	assert.InDelta(t, math.Sqrt2, som.Rectangular.Distance(0, 0, 1, 1), 1e-12)

	// In a hexagonal lattice the six neighbours of (1,1) are all 1 apart.
	for _, c := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {2, 0}, {1, 2}, {2, 2}} {
		assert.InDelta(t, 1.0, som.Hexagonal.Distance(1, 1, c[0], c[1]), 1e-12, "neighbour %v", c)
	}

	m, _ := som.New(3, 3, 1, som.WithTopology(som.Rectangular))
	a, _ := m.Neuron(0, 0)
	b, _ := m.Neuron(2, 0)
	assert.InDelta(t, 2.0, m.LatticeDistance(a, b), 1e-12)

	tp, err := som.ParseTopology("rectangular")
	require.NoError(t, err)
	assert.Equal(t, som.Rectangular, tp)
	_, err = som.ParseTopology("toroid")
	assert.Error(t, err)
}

// TestBestMatchingUnit_Ties resolves ties to the first neuron in row-major order.
func TestBestMatchingUnit_Ties(t *testing.T) {
	m, _ := som.New(2, 2, 2)
	protos := []vector.Vector{vector.Of(1, 1), vector.Of(0, 0.5), vector.Of(0.5, 0), vector.Of(0, 0.5)}
	for i, n := range m.Neurons() {
		require.NoError(t, n.Prototype.CopyFrom(protos[i]))
	}

	bmu, d, err := m.BestMatchingUnit(vector.Of(0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 1, bmu.X)
	assert.Equal(t, 0, bmu.Y)
	assert.Equal(t, 0.0, d)

	_, _, err = m.BestMatchingUnit(vector.Of(0))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestRandomize_CodebookAndQE checks randomization, copies and quantization error.
func TestRandomize_CodebookAndQE(t *testing.T) {
	m, _ := som.New(3, 3, 2, som.WithMetric(vector.Manhattan))
	m.Randomize(0, 1, rand.New(rand.NewSource(1)))

	cb := m.Codebook()
	require.Len(t, cb, 9)
	for _, p := range cb {
		for _, c := range p {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.Less(t, c, 1.0)
		}
	}
	cb[0][0] = 42
	assert.NotEqual(t, 42.0, m.Neurons()[0].Prototype[0], "Codebook returns copies")

	qe, err := m.QuantizationError(m.Codebook())
	require.NoError(t, err)
	assert.Equal(t, 0.0, qe, "every prototype is its own BMU")

	_, err = m.QuantizationError(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)
}

// TestPrototypesUpdated_Notifies verifies the listener hook.
func TestPrototypesUpdated_Notifies(t *testing.T) {
	m, _ := som.New(1, 1, 1)
	n := 0
	m.SubscribeFunc(func() { n++ })
	m.PrototypesUpdated()
	assert.Equal(t, 1, n)
}

// TestGaussian_Cutoff covers the valid window and degenerate sigma.
func TestGaussian_Cutoff(t *testing.T) {
	h, ok := som.Gaussian(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, h)

	h, ok = som.Gaussian(1, 1)
	assert.True(t, ok)
	assert.InDelta(t, math.Exp(-0.5), h, 1e-12)

	_, ok = som.Gaussian(10, 1)
	assert.False(t, ok, "exp(-50) is below the 0.01 floor")

	_, ok = som.Gaussian(0, 0)
	assert.True(t, ok)
	_, ok = som.Gaussian(1, 0)
	assert.False(t, ok)
	_, ok = som.Gaussian(math.NaN(), 1)
	assert.False(t, ok)
}

// TestDecay_Endpoints checks exponential and linear schedules.
func TestDecay_Endpoints(t *testing.T) {
	assert.InDelta(t, 1.0, som.Decay(1, 0.01, 0, 10), 1e-12)
	assert.InDelta(t, 0.1, som.Decay(1, 0.01, 5, 10), 1e-12)
	assert.InDelta(t, 0.01, som.Decay(1, 0.01, 10, 10), 1e-12)
	assert.Equal(t, 0.01, som.Decay(1, 0.01, 3, 0))

	assert.Equal(t, 1.0, som.Linear(1, 0, 0, 4))
	assert.InDelta(t, 0.75, som.Linear(1, 0, 1, 4), 1e-12)
	assert.Equal(t, 0.0, som.Linear(1, 0, 9, 4))
}
