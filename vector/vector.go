// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// New returns a zero vector of the given dimensionality.
// Panics if dim is negative (programmer error), mirroring make.
func New(dim int) Vector {
	return make(Vector, dim)
}

// Of builds a Vector from literal components. The slice is copied.
func Of(components ...float64) Vector {
	v := make(Vector, len(components))
	copy(v, components)

	return v
}

// Random returns a vector whose components are drawn uniformly from [lo, hi).
// The caller owns rng; identical seeds yield identical vectors.
func Random(dim int, lo, hi float64, rng *rand.Rand) (Vector, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, ErrInvalidRange
	}
	v := make(Vector, dim)
	v.Randomize(lo, hi, rng)

	return v, nil
}

// Randomize overwrites every component with a uniform draw from [lo, hi).
// Bounds are not validated; use Random for the checked variant.
func (v Vector) Randomize(lo, hi float64, rng *rand.Rand) {
	span := hi - lo
	for i := range v {
		v[i] = lo + rng.Float64()*span
	}
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v) }

// Clone returns a deep copy of v. A nil vector clones to nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// CopyFrom overwrites v with the components of src.
func (v Vector) CopyFrom(src Vector) error {
	if len(v) != len(src) {
		return mismatch(len(v), len(src))
	}
	copy(v, src)

	return nil
}

// Add performs v ← v + o.
func (v Vector) Add(o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	floats.Add(v, o)

	return nil
}

// Sub performs v ← v − o.
func (v Vector) Sub(o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	floats.Sub(v, o)

	return nil
}

// Mul performs the element-wise product v ← v ⊙ o.
func (v Vector) Mul(o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	floats.Mul(v, o)

	return nil
}

// Div performs the element-wise quotient v ← v ⊘ o.
// Division by a zero component follows IEEE-754 (±Inf or NaN).
func (v Vector) Div(o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	floats.Div(v, o)

	return nil
}

// Scale performs v ← c·v.
func (v Vector) Scale(c float64) {
	floats.Scale(c, v)
}

// DivScalar performs v ← v / c.
func (v Vector) DivScalar(c float64) {
	floats.Scale(1/c, v)
}

// AddScaled performs v ← v + c·o.
func (v Vector) AddScaled(c float64, o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	floats.AddScaled(v, c, o)

	return nil
}

// Blend moves v toward target: v ← rate·target + (1−rate)·v.
// rate=0 leaves v unchanged, rate=1 copies target.
func (v Vector) Blend(target Vector, rate float64) error {
	if len(v) != len(target) {
		return mismatch(len(v), len(target))
	}
	blend(v, target, rate)

	return nil
}

// blend is the unchecked kernel behind Blend; callers guarantee equal lengths.
func blend(v, target Vector, rate float64) {
	for i := range v {
		v[i] += rate * (target[i] - v[i])
	}
}

// Magnitude returns the Euclidean norm ‖v‖₂.
func (v Vector) Magnitude() float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// Min returns the smallest component. Returns ErrEmpty for a zero-length vector.
func (v Vector) Min() (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmpty
	}

	return floats.Min(v), nil
}

// Max returns the largest component. Returns ErrEmpty for a zero-length vector.
func (v Vector) Max() (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmpty
	}

	return floats.Max(v), nil
}

// MinInPlace performs the per-component minimum v ← min(v, o).
func (v Vector) MinInPlace(o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	for i := range v {
		v[i] = math.Min(v[i], o[i])
	}

	return nil
}

// MaxInPlace performs the per-component maximum v ← max(v, o).
func (v Vector) MaxInPlace(o Vector) error {
	if len(v) != len(o) {
		return mismatch(len(v), len(o))
	}
	for i := range v {
		v[i] = math.Max(v[i], o[i])
	}

	return nil
}

// Equal reports whether a and b have the same length and every component
// differs by at most tol.
func Equal(a, b Vector, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	return floats.EqualApprox(a, b, tol)
}
