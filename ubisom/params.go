package ubisom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams indicates unusable UbiSOM parameters.
var ErrInvalidParams = errors.New("ubisom: invalid parameters")

// Params holds the UbiSOM schedule.
type Params struct {
	Alpha0 float64 // initial learning rate
	AlphaF float64 // final learning rate
	Sigma0 float64 // initial radius, fraction of the diagonal
	SigmaF float64 // final radius, fraction of the diagonal
	Beta   float64 // QE weight in the drift composite
	T      int     // self-monitoring window length
}

// DefaultParams returns the published UbiSOM defaults.
func DefaultParams() Params {
	return Params{
		Alpha0: 0.1,
		AlphaF: 0.08,
		Sigma0: 0.6,
		SigmaF: 0.2,
		Beta:   0.7,
		T:      2000,
	}
}

// Validate checks 0 < αF ≤ α0 ≤ 1, 0 < σF ≤ σ0 ≤ 1, β ∈ [0,1] and T > 0.
func (p Params) Validate() error {
	switch {
	case !(p.AlphaF > 0) || p.AlphaF > p.Alpha0 || p.Alpha0 > 1:
		return fmt.Errorf("%w: need 0 < AlphaF ≤ Alpha0 ≤ 1, got %g, %g", ErrInvalidParams, p.AlphaF, p.Alpha0)
	case !(p.SigmaF > 0) || p.SigmaF > p.Sigma0 || p.Sigma0 > 1:
		return fmt.Errorf("%w: need 0 < SigmaF ≤ Sigma0 ≤ 1, got %g, %g", ErrInvalidParams, p.SigmaF, p.Sigma0)
	case math.IsNaN(p.Beta) || p.Beta < 0 || p.Beta > 1:
		return fmt.Errorf("%w: Beta must be in [0,1], got %g", ErrInvalidParams, p.Beta)
	case p.T <= 0:
		return fmt.Errorf("%w: T must be positive, got %d", ErrInvalidParams, p.T)
	}

	return nil
}
