package filter

import "errors"

// ErrInvalidWindow indicates a non-positive window length.
var ErrInvalidWindow = errors.New("filter: window must be positive")

// CascadeStages is the number of RunningMean stages chained by Cascade.
const CascadeStages = 3

// resumEvery bounds floating-point drift in the running sum: after this many
// evictions the sum is recomputed from the ring.
const resumEvery = 1 << 16

// Filter smooths a scalar signal.
type Filter interface {
	// Filter feeds value and returns the updated smoothed output.
	Filter(value float64) float64
	// LastOutput returns the most recent output (0 before any sample).
	LastOutput() float64
	// Reset discards every sample.
	Reset()
}

// RunningMean is a fixed-window moving average.
type RunningMean struct {
	ring    []float64
	head    int // next write position
	count   int // samples currently in ring (≤ len(ring))
	sum     float64
	evicted int
	last    float64
}

// NewRunningMean returns a running mean over the last window samples.
func NewRunningMean(window int) (*RunningMean, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &RunningMean{ring: make([]float64, window)}, nil
}

// Window returns the configured window length.
func (r *RunningMean) Window() int { return len(r.ring) }

// Len returns the number of samples currently averaged.
func (r *RunningMean) Len() int { return r.count }

// Filter implements Filter.
func (r *RunningMean) Filter(value float64) float64 {
	if r.count == len(r.ring) {
		r.sum -= r.ring[r.head]
		r.evicted++
	} else {
		r.count++
	}
	r.ring[r.head] = value
	r.sum += value
	r.head = (r.head + 1) % len(r.ring)

	if r.evicted >= resumEvery {
		r.resum()
	}
	r.last = r.sum / float64(r.count)

	return r.last
}

// resum recomputes the running sum from scratch.
func (r *RunningMean) resum() {
	var s float64
	for i := 0; i < r.count; i++ {
		s += r.ring[i]
	}
	r.sum = s
	r.evicted = 0
}

// LastOutput implements Filter.
func (r *RunningMean) LastOutput() float64 { return r.last }

// Reset implements Filter.
func (r *RunningMean) Reset() {
	for i := range r.ring {
		r.ring[i] = 0
	}
	r.head, r.count, r.evicted = 0, 0, 0
	r.sum, r.last = 0, 0
}

// Cascade chains CascadeStages running means: the output of stage i is the
// input of stage i+1.
type Cascade struct {
	stages [CascadeStages]*RunningMean
}

// NewCascade returns a cascade whose every stage averages window samples.
func NewCascade(window int) (*Cascade, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	c := &Cascade{}
	for i := range c.stages {
		c.stages[i] = &RunningMean{ring: make([]float64, window)}
	}

	return c, nil
}

// Filter implements Filter.
func (c *Cascade) Filter(value float64) float64 {
	out := value
	for _, s := range c.stages {
		out = s.Filter(out)
	}

	return out
}

// LastOutput implements Filter.
func (c *Cascade) LastOutput() float64 { return c.stages[CascadeStages-1].LastOutput() }

// Reset implements Filter.
func (c *Cascade) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}
