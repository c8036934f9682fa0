package learning

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/vector"
)

// BatchParams configures the batch schedule.
type BatchParams struct {
	OrderEpochs    int     // epochs at Sigma0
	ConvergeEpochs int     // epochs decaying Sigma0 → SigmaF
	Sigma0         float64 // initial radius, fraction of the diagonal
	SigmaF         float64 // final radius, fraction of the diagonal
}

// DefaultBatchParams returns a schedule suited to small maps.
func DefaultBatchParams() BatchParams {
	return BatchParams{OrderEpochs: 10, ConvergeEpochs: 40, Sigma0: 0.5, SigmaF: 0.02}
}

// Validate checks the schedule.
func (p BatchParams) Validate() error {
	if p.OrderEpochs < 0 || p.ConvergeEpochs < 0 {
		return fmt.Errorf("%w: epoch counts must be non-negative", ErrInvalidParams)
	}
	if !(p.Sigma0 > 0) || !(p.SigmaF > 0) || p.SigmaF > p.Sigma0 {
		return fmt.Errorf("%w: need 0 < SigmaF ≤ Sigma0, got %g, %g", ErrInvalidParams, p.SigmaF, p.Sigma0)
	}

	return nil
}

// Batch trains a map epoch by epoch.
type Batch struct {
	m      *som.Map
	p      BatchParams
	phase  Phase
	epoch  int // epoch within the current phase
	epochs int // total epochs run

	num []vector.Vector // per-neuron weighted input sum
	den []float64       // per-neuron weight sum
}

// NewBatch binds a trainer to m.
func NewBatch(m *som.Map, p BatchParams) (*Batch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &Batch{
		m:   m,
		p:   p,
		num: make([]vector.Vector, m.Size()),
		den: make([]float64, m.Size()),
	}
	for i := range b.num {
		b.num[i] = vector.New(m.Dim())
	}
	b.skipEmptyPhases()

	return b, nil
}

// Phase returns the current phase.
func (b *Batch) Phase() Phase { return b.phase }

// Epochs returns the number of epochs run so far.
func (b *Batch) Epochs() int { return b.epochs }

// Sigma returns the relative radius the next epoch will use.
func (b *Batch) Sigma() float64 {
	switch b.phase {
	case Ordering:
		return b.p.Sigma0
	case Converging:
		return som.Decay(b.p.Sigma0, b.p.SigmaF, b.epoch, b.p.ConvergeEpochs-1)
	default:
		return b.p.SigmaF
	}
}

// Train runs every remaining epoch of the schedule over data.
func (b *Batch) Train(data []vector.Vector) error {
	for b.phase != Done {
		if err := b.Epoch(data); err != nil {
			return err
		}
	}

	return nil
}

// TrainWeighted runs every remaining epoch of the schedule over samples.
func (b *Batch) TrainWeighted(samples []WeightedSample) error {
	for b.phase != Done {
		if err := b.EpochWeighted(samples); err != nil {
			return err
		}
	}

	return nil
}

// Epoch runs one unweighted epoch: every neuron becomes the
// neighbourhood-weighted mean of the inputs, then the schedule advances.
// The whole batch is validated before any prototype changes.
//
// Errors:
//   - ErrEmptyData when data is empty.
//   - vector.ErrDimensionMismatch (wrapped) when an input has the wrong length.
//   - vector.ErrNonFinite (wrapped) when an input has a NaN or ±Inf component.
//
// Complexity: O(n·N·d) for n inputs and N neurons.
func (b *Batch) Epoch(data []vector.Vector) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	for _, x := range data {
		if err := vector.CheckDim(x, b.m.Dim()); err != nil {
			return fmt.Errorf("learning: Epoch: %w", err)
		}
		if err := vector.CheckFinite(x); err != nil {
			return fmt.Errorf("learning: Epoch: %w", err)
		}
	}
	radius := b.Sigma() * b.m.Diagonal()
	for _, x := range data {
		b.accumulate(x, 1, radius)
	}
	b.apply()

	return nil
}

// EpochWeighted runs one epoch where each sample counts weight/maxWeight.
//
// Errors: those of Epoch, plus ErrInvalidWeight for a weight that is not a
// positive finite number.
func (b *Batch) EpochWeighted(samples []WeightedSample) error {
	if len(samples) == 0 {
		return ErrEmptyData
	}
	maxW := 0.0
	for _, s := range samples {
		if err := vector.CheckDim(s.Vector, b.m.Dim()); err != nil {
			return fmt.Errorf("learning: EpochWeighted: %w", err)
		}
		if err := vector.CheckFinite(s.Vector); err != nil {
			return fmt.Errorf("learning: EpochWeighted: %w", err)
		}
		if !(s.Weight > 0) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("%w: %g", ErrInvalidWeight, s.Weight)
		}
		maxW = math.Max(maxW, s.Weight)
	}
	radius := b.Sigma() * b.m.Diagonal()
	for _, s := range samples {
		b.accumulate(s.Vector, s.Weight/maxW, radius)
	}
	b.apply()

	return nil
}

// accumulate spreads x over the BMU's neighbourhood.
func (b *Batch) accumulate(x vector.Vector, w, radius float64) {
	bmu, _, _ := b.m.BestMatchingUnit(x)
	for i, n := range b.m.Neurons() {
		h, ok := som.Gaussian(b.m.LatticeDistance(bmu, n), radius)
		if !ok {
			continue
		}
		_ = b.num[i].AddScaled(w*h, x)
		b.den[i] += w * h
	}
}

// apply writes the accumulated means, resets accumulators and advances the schedule.
func (b *Batch) apply() {
	for i, n := range b.m.Neurons() {
		if b.den[i] > 0 {
			_ = n.Prototype.CopyFrom(b.num[i])
			n.Prototype.DivScalar(b.den[i])
		}
		b.num[i].Scale(0)
		b.den[i] = 0
	}
	b.epochs++
	b.advance()
	b.m.PrototypesUpdated()
}

func (b *Batch) advance() {
	if b.phase == Done {
		return
	}
	b.epoch++
	b.skipEmptyPhases()
}

// skipEmptyPhases moves past phases whose epoch budget is spent.
func (b *Batch) skipEmptyPhases() {
	if b.phase == Ordering && b.epoch >= b.p.OrderEpochs {
		b.phase, b.epoch = Converging, 0
	}
	if b.phase == Converging && b.epoch >= b.p.ConvergeEpochs {
		b.phase, b.epoch = Done, 0
	}
}
