// SPDX-License-Identifier: MIT

// Package vector provides the fixed-dimension numeric vector used by every
// learning engine in lvstream.
//
// 🚀 What is a Vector?
//
//	A Vector is a plain []float64 with value semantics on demand:
//	  • Clone: explicit deep copy before any mutation that must not alias
//	  • In-place ops: Add, Sub, Mul, Div, Scale, DivScalar, Blend mutate the receiver
//	  • Queries: Magnitude, Min, Max, Distance never mutate
//
// ✨ Key features:
//   - checked arithmetic: every binary op verifies dimensionality first and
//     returns a wrapped ErrDimensionMismatch without touching the receiver
//   - pluggable distance Metric: Euclidean (L2), Manhattan (L1), Chebyshev (L∞)
//   - deterministic Random construction from a caller-supplied *rand.Rand
//
// Kernels delegate to gonum.org/v1/gonum/floats.
//
//	v := vector.Of(0.1, 0.2)
//	w := v.Clone()
//	_ = w.Blend(vector.Of(1, 1), 0.5) // w ← 0.5·(1,1) + 0.5·w
//	d, _ := vector.Distance(v, w)
package vector
