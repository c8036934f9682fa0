package streamart

import (
	"errors"
	"math"
)

// Sentinel errors for the StreamART2A engine.
var (
	// ErrInvalidRange indicates a query whose upper bound precedes its lower bound.
	ErrInvalidRange = errors.New("streamart: invalid timestamp range (high < low)")

	// ErrInvalidConfig indicates construction parameters that cannot work together.
	ErrInvalidConfig = errors.New("streamart: invalid configuration")
)

// Defaults (single source of truth for Options zero behaviour).
const (
	// DefaultInputMin is the lower bound of every input component.
	DefaultInputMin = 0.0
	// DefaultInputMax is the upper bound of every input component.
	DefaultInputMax = 1.0
	// DefaultLearningRate is the resonance blending rate.
	DefaultLearningRate = 0.05
	// DefaultLandmarkWindow is the number of inputs between archive checkpoints.
	DefaultLandmarkWindow = 1000
	// DefaultMaxActive is q, the active codebook bound.
	DefaultMaxActive = 50
	// DefaultArchiveCapacity is K, the archive bound.
	DefaultArchiveCapacity = 1000
)

// MatchTolerance absorbs floating round-off in the vigilance test:
// a category matches when similarity ≥ vigilance − MatchTolerance.
const MatchTolerance = 1e-13

// MinVigilance is the floor applied when a merge would push vigilance to or
// below zero (only possible with inputs outside [min, max]).
const MinVigilance = 1e-12

const (
	panicLearningRate   = "streamart: WithLearningRate: rate must be in [0, 1]"
	panicLandmarkWindow = "streamart: WithLandmarkWindow: window must be positive"
	panicMaxActive      = "streamart: WithMaxActive: q must be positive"
	panicArchiveCap     = "streamart: WithArchiveCapacity: K must be positive"
	panicInputRange     = "streamart: WithInputRange: bounds must be finite"
)

// Option mutates Options. Constructors panic only on nonsensical literals.
type Option func(*Options)

// Options is the resolved construction-time configuration. Immutable once the
// engine is built.
type Options struct {
	InputMin        float64
	InputMax        float64
	LearningRate    float64
	LandmarkWindow  int
	MaxActive       int
	ArchiveCapacity int
	Seed            int64
}

// DefaultOptions returns Options populated with the Default* constants.
func DefaultOptions() Options {
	return Options{
		InputMin:        DefaultInputMin,
		InputMax:        DefaultInputMax,
		LearningRate:    DefaultLearningRate,
		LandmarkWindow:  DefaultLandmarkWindow,
		MaxActive:       DefaultMaxActive,
		ArchiveCapacity: DefaultArchiveCapacity,
	}
}

// WithInputRange sets the per-component bounds [min, max] of the input space.
// max > min is checked by New.
func WithInputRange(min, max float64) Option {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		panic(panicInputRange)
	}

	return func(o *Options) { o.InputMin, o.InputMax = min, max }
}

// WithLearningRate sets the resonance blending rate.
func WithLearningRate(rate float64) Option {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		panic(panicLearningRate)
	}

	return func(o *Options) { o.LearningRate = rate }
}

// WithLandmarkWindow sets the number of inputs per landmark window.
func WithLandmarkWindow(n int) Option {
	if n <= 0 {
		panic(panicLandmarkWindow)
	}

	return func(o *Options) { o.LandmarkWindow = n }
}

// WithMaxActive sets q, the bound on active categories.
func WithMaxActive(q int) Option {
	if q <= 0 {
		panic(panicMaxActive)
	}

	return func(o *Options) { o.MaxActive = q }
}

// WithArchiveCapacity sets K, the bound on archived categories.
func WithArchiveCapacity(k int) Option {
	if k <= 0 {
		panic(panicArchiveCap)
	}

	return func(o *Options) { o.ArchiveCapacity = k }
}

// WithSeed seeds the stream that mints category IDs. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
