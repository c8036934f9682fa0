package som

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvstream/notify"
	"github.com/katalvlaran/lvstream/vector"
)

const (
	panicTopology = "som: WithTopology: unknown topology"
	panicMetric   = "som: WithMetric: unknown metric"
)

// Option configures a Map before creation. Constructors panic on values
// outside the defined constants.
type Option func(*Map)

// WithTopology selects the lattice geometry (default Hexagonal).
func WithTopology(t Topology) Option {
	if t != Rectangular && t != Hexagonal {
		panic(panicTopology)
	}

	return func(m *Map) { m.topology = t }
}

// WithMetric selects the feature-space metric used by BMU search (default Euclidean).
func WithMetric(metric vector.Metric) Option {
	switch metric {
	case vector.Euclidean, vector.Manhattan, vector.Chebyshev:
	default:
		panic(panicMetric)
	}

	return func(m *Map) { m.metric = metric }
}

// Map is a width×height lattice of prototype neurons.
//
// Map is not goroutine-safe: one learning goroutine mutates prototypes and
// calls PrototypesUpdated; listeners that render the map on another goroutine
// should copy through Codebook from inside their OnUpdate callback.
type Map struct {
	notify.Notifier

	width, height, dim int
	topology           Topology
	metric             vector.Metric
	neurons            []*Neuron // row-major
}

// New creates a lattice whose prototypes are all zero vectors.
func New(width, height, dim int, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 || dim <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d dim=%d", ErrInvalidSize, width, height, dim)
	}
	m := &Map{
		width:    width,
		height:   height,
		dim:      dim,
		topology: Hexagonal,
		metric:   vector.Euclidean,
		neurons:  make([]*Neuron, 0, width*height),
	}
	for _, opt := range opts {
		opt(m)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.neurons = append(m.neurons, &Neuron{X: x, Y: y, Prototype: vector.New(dim)})
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Dim returns the prototype dimensionality.
func (m *Map) Dim() int { return m.dim }

// Size returns width·height.
func (m *Map) Size() int { return len(m.neurons) }

// Topology returns the lattice geometry.
func (m *Map) Topology() Topology { return m.topology }

// Metric returns the feature-space metric.
func (m *Map) Metric() vector.Metric { return m.metric }

// Diagonal returns √(width² + height²), the scale used for relative radii.
func (m *Map) Diagonal() float64 {
	return math.Hypot(float64(m.width), float64(m.height))
}

// Neuron returns the neuron at (x, y).
func (m *Map) Neuron(x, y int) (*Neuron, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}

	return m.neurons[y*m.width+x], nil
}

// Neurons returns the live neurons in row-major order. Learning algorithms
// mutate prototypes through it; callers must not reslice or reorder it.
func (m *Map) Neurons() []*Neuron { return m.neurons }

// Randomize draws every prototype component uniformly from [lo, hi).
func (m *Map) Randomize(lo, hi float64, rng *rand.Rand) {
	for _, n := range m.neurons {
		n.Prototype.Randomize(lo, hi, rng)
	}
}

// BestMatchingUnit returns the neuron whose prototype is nearest to input and
// that distance. Ties resolve to the first neuron in row-major order.
//
// Errors:
//   - vector.ErrDimensionMismatch (wrapped) when len(input) != Dim().
//
// Complexity: O(N·d) for N neurons.
func (m *Map) BestMatchingUnit(input vector.Vector) (*Neuron, float64, error) {
	if err := vector.CheckDim(input, m.dim); err != nil {
		return nil, 0, fmt.Errorf("som: BestMatchingUnit: %w", err)
	}
	bmu, d := m.bmu(input)

	return bmu, d, nil
}

// bmu is the unchecked search.
func (m *Map) bmu(input vector.Vector) (*Neuron, float64) {
	best, bestDist := m.neurons[0], math.Inf(1)
	for _, n := range m.neurons {
		if d := m.metric.Unchecked(input, n.Prototype); d < bestDist {
			best, bestDist = n, d
		}
	}

	return best, bestDist
}

// LatticeDistance returns the topological distance between two neurons.
func (m *Map) LatticeDistance(a, b *Neuron) float64 {
	return m.topology.Distance(a.X, a.Y, b.X, b.Y)
}

// PrototypesUpdated notifies listeners that a batch of prototype changes is complete.
func (m *Map) PrototypesUpdated() { m.Notify() }

// Codebook returns deep copies of every prototype in row-major order.
func (m *Map) Codebook() []vector.Vector {
	out := make([]vector.Vector, len(m.neurons))
	for i, n := range m.neurons {
		out[i] = n.Prototype.Clone()
	}

	return out
}

// QuantizationError returns the mean BMU distance over data.
func (m *Map) QuantizationError(data []vector.Vector) (float64, error) {
	if len(data) == 0 {
		return 0, vector.ErrEmpty
	}
	var sum float64
	for _, x := range data {
		if err := vector.CheckDim(x, m.dim); err != nil {
			return 0, fmt.Errorf("som: QuantizationError: %w", err)
		}
		_, d := m.bmu(x)
		sum += d
	}

	return sum / float64(len(data)), nil
}
