package ubisom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstream/som"
)

// Phase tags the UbiSOM state.
type Phase int

const (
	// Ordering is the initial, cold-start phase.
	Ordering Phase = iota
	// Converging tracks the stream with drift-scaled parameters.
	Converging
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Ordering:
		return "ordering"
	case Converging:
		return "converging"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// state is the tagged variant: phase plus the parameters its schedule needs.
type state struct {
	phase    Phase
	t        int     // steps spent in the phase
	driftRef float64 // Converging only
}

// schedule returns (α, σ) for the next step.
func (s *state) schedule(p Params, drift float64) (alpha, sigma float64) {
	switch s.phase {
	case Converging:
		ratio := 1.0
		if s.driftRef > 0 {
			ratio = math.Min(1, drift/s.driftRef)
		}
		return p.AlphaF * ratio, p.SigmaF * ratio
	default:
		return som.Linear(p.Alpha0, p.AlphaF, s.t, p.T), som.Linear(p.Sigma0, p.SigmaF, s.t, p.T)
	}
}
