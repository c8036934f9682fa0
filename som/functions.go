package som

import "math"

// Neighbourhood cut-off window: Gaussian values outside [NeighborhoodMin, 1]
// (or non-finite) are treated as "no update" for that neuron.
const (
	NeighborhoodMin = 0.01
	NeighborhoodMax = 1.0
)

// Gaussian returns exp(−dist²/(2σ²)) and whether the value is inside the
// update window. A zero or negative sigma only admits dist == 0.
func Gaussian(dist, sigma float64) (float64, bool) {
	if sigma <= 0 {
		if dist == 0 {
			return 1, true
		}
		return 0, false
	}
	h := math.Exp(-(dist * dist) / (2 * sigma * sigma))
	if math.IsNaN(h) || math.IsInf(h, 0) || h < NeighborhoodMin || h > NeighborhoodMax {
		return h, false
	}

	return h, true
}

// Decay interpolates exponentially from initial (epoch 0) to final
// (epoch == horizon): initial·(final/initial)^(epoch/horizon).
// A non-positive horizon returns final.
func Decay(initial, final float64, epoch, horizon int) float64 {
	if horizon <= 0 {
		return final
	}

	return initial * math.Pow(final/initial, float64(epoch)/float64(horizon))
}

// Linear interpolates linearly from initial to final over horizon steps and
// clamps to final beyond it.
func Linear(initial, final float64, step, horizon int) float64 {
	if horizon <= 0 || step >= horizon {
		return final
	}
	if step <= 0 {
		return initial
	}

	return initial + (final-initial)*float64(step)/float64(horizon)
}
