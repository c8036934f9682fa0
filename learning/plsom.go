package learning

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/vector"
)

// MaxEpsilon caps the PLSOM adaptive learning coefficient.
const MaxEpsilon = 0.5

// PLSOM is the parameter-less online SOM.
//
// A reservoir of the 1+dim most dispersed inputs seen so far estimates the
// input diameter S. Each step uses
//
//	ε      = min(qe/S, MaxEpsilon)
//	radius = range · ln(1 + ε(e−1))
//
// and moves every neuron inside the neighbourhood window by ε·h toward x.
type PLSOM struct {
	m          *som.Map
	rangeScale float64 // range, in lattice units
	capacity   int
	reservoir  []vector.Vector
	diameter   float64
	epsilon    float64
}

// NewPLSOM binds an online trainer to m. neighborhoodRange is the radius at
// ε=1 in lattice units; a non-positive value selects half the diagonal.
func NewPLSOM(m *som.Map, neighborhoodRange float64) (*PLSOM, error) {
	if math.IsNaN(neighborhoodRange) || math.IsInf(neighborhoodRange, 0) {
		return nil, fmt.Errorf("%w: neighbourhood range must be finite", ErrInvalidParams)
	}
	if neighborhoodRange <= 0 {
		neighborhoodRange = m.Diagonal() / 2
	}

	return &PLSOM{
		m:          m,
		rangeScale: neighborhoodRange,
		capacity:   1 + m.Dim(),
	}, nil
}

// Diameter returns the current estimate S of the input diameter.
func (p *PLSOM) Diameter() float64 { return p.diameter }

// Epsilon returns the learning coefficient of the last step.
func (p *PLSOM) Epsilon() float64 { return p.epsilon }

// Reservoir returns copies of the retained inputs.
func (p *PLSOM) Reservoir() []vector.Vector {
	out := make([]vector.Vector, len(p.reservoir))
	for i, r := range p.reservoir {
		out[i] = r.Clone()
	}

	return out
}

// Learn performs one online update.
//
// Errors:
//   - vector.ErrDimensionMismatch (wrapped) when len(x) != Map().Dim().
//   - vector.ErrNonFinite (wrapped) when a component is NaN or ±Inf.
//
// Complexity: O(N·d + k²·d) for N neurons and a reservoir of k = 1+d inputs.
func (p *PLSOM) Learn(x vector.Vector) error {
	bmu, qe, err := p.m.BestMatchingUnit(x)
	if err != nil {
		return fmt.Errorf("learning: PLSOM.Learn: %w", err)
	}
	if err := vector.CheckFinite(x); err != nil {
		return fmt.Errorf("learning: PLSOM.Learn: %w", err)
	}
	p.observe(x)

	switch {
	case qe == 0:
		p.epsilon = 0
	case p.diameter == 0:
		p.epsilon = MaxEpsilon
	default:
		p.epsilon = math.Min(qe/p.diameter, MaxEpsilon)
	}
	radius := p.rangeScale * math.Log(1+p.epsilon*(math.E-1))

	for _, n := range p.m.Neurons() {
		h, ok := som.Gaussian(p.m.LatticeDistance(bmu, n), radius)
		if !ok {
			continue
		}
		_ = n.Prototype.Blend(x, p.epsilon*h)
	}
	p.m.PrototypesUpdated()

	return nil
}

// observe offers x to the reservoir. Once full, x replaces the member whose
// removal yields the largest total pairwise distance, if that beats the
// current total.
func (p *PLSOM) observe(x vector.Vector) {
	metric := p.m.Metric()
	if len(p.reservoir) < p.capacity {
		p.reservoir = append(p.reservoir, x.Clone())
		p.diameter = p.spread()
		return
	}

	k := len(p.reservoir)
	rowSum := make([]float64, k)
	var total float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d := metric.Unchecked(p.reservoir[i], p.reservoir[j])
			rowSum[i] += d
			rowSum[j] += d
			total += d
		}
	}
	toX := make([]float64, k)
	var sumToX float64
	for i, r := range p.reservoir {
		toX[i] = metric.Unchecked(x, r)
		sumToX += toX[i]
	}

	best, bestTotal := -1, total
	for i := 0; i < k; i++ {
		if cand := total - rowSum[i] + sumToX - toX[i]; cand > bestTotal {
			best, bestTotal = i, cand
		}
	}
	if best >= 0 {
		_ = p.reservoir[best].CopyFrom(x)
		p.diameter = p.spread()
	}
}

// spread returns the largest pairwise distance in the reservoir.
func (p *PLSOM) spread() float64 {
	metric := p.m.Metric()
	var s float64
	for i := 0; i < len(p.reservoir); i++ {
		for j := i + 1; j < len(p.reservoir); j++ {
			s = math.Max(s, metric.Unchecked(p.reservoir[i], p.reservoir[j]))
		}
	}

	return s
}
