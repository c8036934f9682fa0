// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for vector operations.
var (
	// ErrDimensionMismatch indicates two vectors (or a vector and a configured
	// dimensionality) disagree on length.
	ErrDimensionMismatch = errors.New("vector: dimensionality mismatch")

	// ErrEmpty indicates a zero-length vector where at least one component is required.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrInvalidRange indicates lo > hi (or non-finite bounds) for range-based construction.
	ErrInvalidRange = errors.New("vector: invalid range")

	// ErrNonFinite indicates a NaN or ±Inf component.
	ErrNonFinite = errors.New("vector: non-finite component")
)

// Vector is a fixed-dimension ordered sequence of float64 components.
// Methods with a pointer-free receiver mutate the backing array in place;
// use Clone whenever the caller must not observe the mutation.
type Vector []float64

// Metric selects a distance function between two vectors of equal length.
type Metric int

const (
	// Euclidean is the L2 distance. It is the default metric everywhere.
	Euclidean Metric = iota

	// Manhattan is the L1 distance.
	Manhattan

	// Chebyshev is the L∞ distance.
	Chebyshev
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric maps a metric name (as produced by String) back to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "", "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	default:
		return Euclidean, fmt.Errorf("vector: unknown metric %q", name)
	}
}

// mismatch builds the canonical wrapped dimensionality error.
func mismatch(expected, got int) error {
	return fmt.Errorf("%w: expected %d got %d", ErrDimensionMismatch, expected, got)
}

// CheckDim returns a wrapped ErrDimensionMismatch when len(v) != dim.
// Engines call it once at their public entry point and then use the
// unchecked kernels for the rest of the step.
func CheckDim(v Vector, dim int) error {
	if len(v) != dim {
		return mismatch(dim, len(v))
	}

	return nil
}

// CheckFinite returns a wrapped ErrNonFinite naming the first NaN or ±Inf
// component of v.
//
// Complexity: O(len(v)).
func CheckFinite(v Vector) error {
	hasNaN := floats.HasNaN(v)
	for i, c := range v {
		if math.IsInf(c, 0) || (hasNaN && math.IsNaN(c)) {
			return fmt.Errorf("%w: component %d is %g", ErrNonFinite, i, c)
		}
	}

	return nil
}
