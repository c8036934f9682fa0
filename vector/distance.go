// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the Euclidean distance between a and b.
// Neither argument is mutated.
func Distance(a, b Vector) (float64, error) {
	return Euclidean.Distance(a, b)
}

// Distance returns the distance between a and b under metric m.
// Returns a wrapped ErrDimensionMismatch when lengths differ.
func (m Metric) Distance(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, mismatch(len(a), len(b))
	}

	return m.Unchecked(a, b), nil
}

// Unchecked computes the distance without validating lengths.
// It is the hot-path kernel for BMU and nearest-category searches where
// dimensionality was validated once on entry.
func (m Metric) Unchecked(a, b Vector) float64 {
	if len(a) == 0 {
		return 0
	}
	switch m {
	case Manhattan:
		return floats.Distance(a, b, 1)
	case Chebyshev:
		return floats.Distance(a, b, math.Inf(1))
	default:
		return floats.Distance(a, b, 2)
	}
}

// Nearest returns the index of the candidate closest to x under metric m and
// the corresponding distance. Ties keep the first candidate in slice order.
// Returns -1 when candidates is empty.
func (m Metric) Nearest(x Vector, candidates []Vector) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		if d := m.Unchecked(x, c); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, bestDist
}
