package learning

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvstream/streamart"
	"github.com/katalvlaran/lvstream/vector"
)

// Sentinel errors for training.
var (
	// ErrEmptyData indicates an epoch without samples.
	ErrEmptyData = errors.New("learning: training data is empty")

	// ErrInvalidWeight indicates a non-positive or non-finite sample weight.
	ErrInvalidWeight = errors.New("learning: sample weight must be positive and finite")

	// ErrInvalidParams indicates unusable trainer parameters.
	ErrInvalidParams = errors.New("learning: invalid parameters")
)

// WeightedSample is one training input with a relative importance.
type WeightedSample struct {
	Vector vector.Vector
	Weight float64
}

// FromCategories converts micro-categories into weighted samples. Prototypes
// are shared, not copied; the trainer never mutates its inputs.
func FromCategories(cats []*streamart.MicroCategory) []WeightedSample {
	out := make([]WeightedSample, len(cats))
	for i, c := range cats {
		out[i] = WeightedSample{Vector: c.Prototype, Weight: float64(c.Weight)}
	}

	return out
}

// Phase is the batch trainer's position in its schedule.
type Phase int

const (
	// Ordering holds sigma at its initial value.
	Ordering Phase = iota
	// Converging decays sigma toward its final value.
	Converging
	// Done means the configured schedule is exhausted; further epochs use the final sigma.
	Done
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Ordering:
		return "ordering"
	case Converging:
		return "converging"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
