package ubisom

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvstream/filter"
	"github.com/katalvlaran/lvstream/internal/rng"
	"github.com/katalvlaran/lvstream/notify"
	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/vector"
)

// Option configures a Model before creation.
type Option func(*settings)

type settings struct {
	seed    int64
	cascade bool
}

// WithSeed seeds prototype randomization. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed }
}

// WithCascadeFilters smooths QE, activity and drift with filter.Cascade
// instead of a single filter.RunningMean.
func WithCascadeFilters() Option {
	return func(s *settings) { s.cascade = true }
}

// Metrics is a point-in-time view of the self-monitoring signals.
type Metrics struct {
	Phase             Phase
	Iterations        int64
	QuantizationError float64 // running mean
	Activity          float64 // running mean
	Drift             float64 // running mean
}

// Model is a UbiSOM bound to a lattice.
//
// The learning goroutine owns every field. Listeners run on that goroutine
// and may take Metrics or timestamp copies from inside OnUpdate.
type Model struct {
	notify.Notifier

	m       *som.Map
	p       Params
	rng     *rand.Rand
	qeScale float64 // maximum BMU distance in [0,1]^d under the map metric

	actTS []int64 // 0 = updated this step, −k = k steps ago
	bmuTS []int64 // 0 = BMU this step, −k = k steps ago

	qe, activity, drift filter.Filter

	st         state
	iterations int64
}

// New binds a UbiSOM to m, randomizes its prototypes in [0,1) and starts in
// the Ordering phase.
func New(m *som.Map, p Params, opts ...Option) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	newFilter := func() (filter.Filter, error) {
		if s.cascade {
			return filter.NewCascade(p.T)
		}
		return filter.NewRunningMean(p.T)
	}
	model := &Model{
		m:       m,
		p:       p,
		rng:     rng.New(s.seed),
		qeScale: maxDistance(m.Metric(), m.Dim()),
		actTS:   make([]int64, m.Size()),
		bmuTS:   make([]int64, m.Size()),
	}
	var err error
	if model.qe, err = newFilter(); err != nil {
		return nil, err
	}
	if model.activity, err = newFilter(); err != nil {
		return nil, err
	}
	if model.drift, err = newFilter(); err != nil {
		return nil, err
	}
	m.Randomize(0, 1, model.rng)

	return model, nil
}

// maxDistance is the diameter of the unit hypercube under metric.
func maxDistance(metric vector.Metric, dim int) float64 {
	switch metric {
	case vector.Manhattan:
		return float64(dim)
	case vector.Chebyshev:
		return 1
	default:
		return math.Sqrt(float64(dim))
	}
}

// Map returns the underlying lattice.
func (u *Model) Map() *som.Map { return u.m }

// Params returns the schedule.
func (u *Model) Params() Params { return u.p }

// Phase returns the current phase.
func (u *Model) Phase() Phase { return u.st.phase }

// Iterations returns the number of learned inputs.
func (u *Model) Iterations() int64 { return u.iterations }

// DriftReference returns the drift captured by the last ConvergingState.
func (u *Model) DriftReference() float64 { return u.st.driftRef }

// Drift returns the running-mean drift.
func (u *Model) Drift() float64 { return u.drift.LastOutput() }

// Activity returns the running-mean active fraction.
func (u *Model) Activity() float64 { return u.activity.LastOutput() }

// QuantizationError returns the running-mean normalized QE.
func (u *Model) QuantizationError() float64 { return u.qe.LastOutput() }

// Metrics returns all monitoring signals at once.
func (u *Model) Metrics() Metrics {
	return Metrics{
		Phase:             u.st.phase,
		Iterations:        u.iterations,
		QuantizationError: u.qe.LastOutput(),
		Activity:          u.activity.LastOutput(),
		Drift:             u.drift.LastOutput(),
	}
}

// ActivityTimestamps returns a row-major copy of the per-neuron activity timestamps.
func (u *Model) ActivityTimestamps() []int64 { return append([]int64(nil), u.actTS...) }

// BMUTimestamps returns a row-major copy of the per-neuron BMU timestamps.
func (u *Model) BMUTimestamps() []int64 { return append([]int64(nil), u.bmuTS...) }

// Learn presents one input: BMU search, phase schedule, AdjustWeights.
//
// Errors:
//   - vector.ErrDimensionMismatch (wrapped) when len(x) != Map().Dim().
//   - vector.ErrNonFinite (wrapped) when a component is NaN or ±Inf.
//
// Complexity: O(N·d) for a lattice of N neurons.
func (u *Model) Learn(x vector.Vector) error {
	bmu, _, err := u.m.BestMatchingUnit(x)
	if err != nil {
		return fmt.Errorf("ubisom: Learn: %w", err)
	}
	if err := vector.CheckFinite(x); err != nil {
		return fmt.Errorf("ubisom: Learn: %w", err)
	}
	alpha, sigma := u.st.schedule(u.p, u.drift.LastOutput())
	u.adjust(bmu, x, alpha, sigma)
	u.st.t++

	return nil
}

// AdjustWeights performs the self-monitoring update around bmu with the
// given learning rate and relative radius: timestamps age, neurons inside the
// neighbourhood move toward x by alpha·h, the running means absorb one sample
// and listeners are notified.
//
// Errors:
//   - vector.ErrDimensionMismatch (wrapped) when len(x) != Map().Dim().
//   - vector.ErrNonFinite (wrapped) when a component is NaN or ±Inf.
//   - som.ErrOutOfBounds (wrapped) when bmu is nil or not on the lattice.
//
// Complexity: O(N·d) for a lattice of N neurons.
func (u *Model) AdjustWeights(bmu *som.Neuron, x vector.Vector, alpha, sigma float64) error {
	if err := vector.CheckDim(x, u.m.Dim()); err != nil {
		return fmt.Errorf("ubisom: AdjustWeights: %w", err)
	}
	if err := vector.CheckFinite(x); err != nil {
		return fmt.Errorf("ubisom: AdjustWeights: %w", err)
	}
	if bmu == nil {
		return fmt.Errorf("ubisom: AdjustWeights: %w", som.ErrOutOfBounds)
	}
	if _, err := u.m.Neuron(bmu.X, bmu.Y); err != nil {
		return fmt.Errorf("ubisom: AdjustWeights: %w", err)
	}
	u.adjust(bmu, x, alpha, sigma)

	return nil
}

func (u *Model) adjust(bmu *som.Neuron, x vector.Vector, alpha, sigma float64) {
	rawQE := u.m.Metric().Unchecked(bmu.Prototype, x) / u.qeScale
	radius := sigma * u.m.Diagonal()
	bmuIdx := bmu.Index(u.m.Width())
	window := -int64(u.p.T)

	active := 0
	for i, n := range u.m.Neurons() {
		if i == bmuIdx {
			u.bmuTS[i] = 0
		} else {
			u.bmuTS[i]--
		}
		if h, ok := som.Gaussian(u.m.LatticeDistance(bmu, n), radius); ok {
			u.actTS[i] = 0
			_ = n.Prototype.Blend(x, alpha*h)
		} else {
			u.actTS[i]--
		}
		if u.actTS[i] > window {
			active++
		}
	}
	act := float64(active) / float64(u.m.Size())

	qeMean := u.qe.Filter(rawQE)
	actMean := u.activity.Filter(act)
	var d float64
	if u.st.phase == Ordering {
		d = u.p.Beta * rawQE
	} else {
		d = u.p.Beta*qeMean + (1-u.p.Beta)*(1-actMean)
	}
	u.drift.Filter(d)
	u.iterations++

	u.m.PrototypesUpdated()
	u.Notify()
}

// ConvergingState captures the current drift as the reference for the
// Converging schedule and switches phase.
func (u *Model) ConvergingState() {
	u.st = state{phase: Converging, driftRef: u.drift.LastOutput()}
}

// OrderingState re-randomizes every prototype, resets the per-neuron
// timestamps and switches back to Ordering.
func (u *Model) OrderingState() {
	u.m.Randomize(0, 1, u.rng)
	for i := range u.actTS {
		u.actTS[i] = 0
		u.bmuTS[i] = 0
	}
	u.st = state{phase: Ordering}
}
