package streamart

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvstream/archive"
	"github.com/katalvlaran/lvstream/internal/rng"
	"github.com/katalvlaran/lvstream/notify"
	"github.com/katalvlaran/lvstream/vector"
)

// Engine is the StreamART2A online clusterer.
//
// The active codebook and the counters are owned by the goroutine calling
// Learn. The archive is shared with readers under mu.
type Engine struct {
	notify.Notifier

	dim      int
	opts     Options
	manifold float64 // (max−min)·√dim

	active    []*MicroCategory // insertion order
	vigilance float64
	step      int64
	ids       *rand.Rand

	mu      sync.RWMutex // guards archive
	archive *archive.Bounded[*MicroCategory]
}

// New builds an engine for inputs of dimensionality dim.
//
// Errors:
//   - ErrInvalidConfig when dim ≤ 0 or InputMax ≤ InputMin.
func New(dim int, opts ...Option) (*Engine, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimensionality must be positive, got %d", ErrInvalidConfig, dim)
	}
	o := gatherOptions(opts...)
	if !(o.InputMax > o.InputMin) {
		return nil, fmt.Errorf("%w: input range [%g, %g] is empty", ErrInvalidConfig, o.InputMin, o.InputMax)
	}
	arc, err := archive.New[*MicroCategory](o.ArchiveCapacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Engine{
		dim:       dim,
		opts:      o,
		manifold:  (o.InputMax - o.InputMin) * math.Sqrt(float64(dim)),
		vigilance: 1,
		ids:       rng.New(o.Seed),
		archive:   arc,
	}, nil
}

// Dim returns the input dimensionality.
func (e *Engine) Dim() int { return e.dim }

// Options returns the resolved configuration.
func (e *Engine) Options() Options { return e.opts }

// InputManifold returns the diameter of the input space, (max−min)·√dim.
func (e *Engine) InputManifold() float64 { return e.manifold }

// Step returns the number of inputs learned so far.
func (e *Engine) Step() int64 { return e.step }

// Vigilance returns the current vigilance in (0, 1].
func (e *Engine) Vigilance() float64 { return e.vigilance }

// ActiveSize returns the number of categories in the current window.
func (e *Engine) ActiveSize() int { return len(e.active) }

// ActiveCodebook returns deep copies of the current window's categories in
// insertion order. Like Learn, it must be called from the learning goroutine.
func (e *Engine) ActiveCodebook() []*MicroCategory {
	out := make([]*MicroCategory, len(e.active))
	for i, c := range e.active {
		out[i] = c.Copy()
	}

	return out
}

// Learn feeds one input to the engine.
//
// The input is validated before any state changes and the engine never
// retains it; committed categories own a copy. At a landmark boundary the
// active codebook moves to the archive and listeners are notified.
//
// Errors:
//   - vector.ErrDimensionMismatch (wrapped) when len(input) != Dim().
//   - vector.ErrNonFinite (wrapped) when a component is NaN or ±Inf.
//
// Complexity: O(q·d) per call, plus O(q²·d) when a merge is required and
// O(q·log K) at a landmark boundary.
func (e *Engine) Learn(input vector.Vector) error {
	if err := vector.CheckDim(input, e.dim); err != nil {
		return fmt.Errorf("streamart: Learn: %w", err)
	}
	if err := vector.CheckFinite(input); err != nil {
		return fmt.Errorf("streamart: Learn: %w", err)
	}
	e.step++

	if len(e.active) == 0 {
		e.commit(input)
	} else {
		best, dist := e.nearest(input)
		if e.similarity(dist) >= e.vigilance-MatchTolerance {
			e.resonate(best, input)
		} else {
			e.commit(input)
		}
	}

	for len(e.active) > e.opts.MaxActive {
		e.mergeClosest()
	}

	if e.step%int64(e.opts.LandmarkWindow) == 0 {
		e.landmark()
	}

	return nil
}

// similarity maps a Euclidean distance to 1 − d/manifold.
func (e *Engine) similarity(dist float64) float64 {
	return 1 - dist/e.manifold
}

// nearest returns the active category closest to x; ties keep the earliest.
func (e *Engine) nearest(x vector.Vector) (*MicroCategory, float64) {
	var best *MicroCategory
	bestDist := math.Inf(1)
	for _, c := range e.active {
		if d := vector.Euclidean.Unchecked(x, c.Prototype); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist
}

func (e *Engine) resonate(c *MicroCategory, x vector.Vector) {
	_ = c.Prototype.Blend(x, e.opts.LearningRate)
	c.IncrementWeight()
	c.SetTimestamp(e.step)
}

func (e *Engine) commit(x vector.Vector) {
	e.active = append(e.active, &MicroCategory{
		ID:              e.newID(),
		Prototype:       x.Clone(),
		Timestamp:       e.step,
		Weight:          1,
		VigilanceRadius: 1,
	})
}

// mergeClosest replaces the two most similar active categories by their
// weighted mean, kept at the position of the earlier one. Vigilance drops to
// the pair's similarity when that is lower.
func (e *Engine) mergeClosest() {
	if len(e.active) < 2 {
		return
	}
	bi, bj := 0, 1
	bestDist := vector.Euclidean.Unchecked(e.active[0].Prototype, e.active[1].Prototype)
	for i := 0; i < len(e.active); i++ {
		for j := i + 1; j < len(e.active); j++ {
			d := vector.Euclidean.Unchecked(e.active[i].Prototype, e.active[j].Prototype)
			if d < bestDist {
				bi, bj, bestDist = i, j, d
			}
		}
	}

	merged, _ := Merge(e.active[bi], e.active[bj], e.step)
	merged.ID = e.newID()
	e.active[bi] = merged
	e.active = append(e.active[:bj], e.active[bj+1:]...)

	if s := e.similarity(bestDist); s < e.vigilance {
		e.vigilance = math.Max(s, MinVigilance)
	}
}

// landmark archives the active codebook as one atomic unit and opens a new window.
func (e *Engine) landmark() {
	e.mu.Lock()
	for _, c := range e.active {
		c.SetVigilanceRadius(e.vigilance)
		e.archive.Insert(c.Timestamp, c)
	}
	e.active = nil
	e.mu.Unlock()

	e.vigilance = 1
	e.Notify()
}

func (e *Engine) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(e.ids)
	if err != nil {
		return uuid.Nil
	}

	return id
}

// ArchiveSize returns the number of archived categories.
func (e *Engine) ArchiveSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.archive.Len()
}

// CodebookBetween returns deep copies of archived categories whose timestamp
// lies in [low, high], in ascending timestamp order.
//
// Errors:
//   - ErrInvalidRange when high < low.
func (e *Engine) CodebookBetween(low, high int64) ([]*MicroCategory, error) {
	if high < low {
		return nil, fmt.Errorf("%w: low=%d high=%d", ErrInvalidRange, low, high)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*MicroCategory, 0)
	e.archive.Range(low, high, func(_ int64, c *MicroCategory) bool {
		out = append(out, c.Copy())
		return true
	})

	return out, nil
}

// CodebookUntil returns deep copies of archived categories with timestamp ≤ horizon.
func (e *Engine) CodebookUntil(horizon int64) []*MicroCategory {
	out, _ := e.CodebookBetween(math.MinInt64, horizon)

	return out
}

// Codebook returns deep copies of the whole archive.
func (e *Engine) Codebook() []*MicroCategory {
	return e.CodebookUntil(math.MaxInt64)
}

// Reset discards the active codebook and the archive, restarts counting and
// reseeds the ID stream, so replaying a stream reproduces the same IDs.
// Listeners stay subscribed.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.archive.Clear()
	e.mu.Unlock()

	e.active = nil
	e.step = 0
	e.vigilance = 1
	e.ids = rng.New(e.opts.Seed)
}
