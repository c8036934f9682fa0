package ubisom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSchedule_Ordering interpolates linearly over T and then holds.
func TestSchedule_Ordering(t *testing.T) {
	p := Params{Alpha0: 0.5, AlphaF: 0.1, Sigma0: 0.9, SigmaF: 0.1, Beta: 0.5, T: 4}
	s := state{phase: Ordering}

	a, sg := s.schedule(p, 0)
	assert.InDelta(t, 0.5, a, 1e-12)
	assert.InDelta(t, 0.9, sg, 1e-12)

	s.t = 2
	a, sg = s.schedule(p, 0)
	assert.InDelta(t, 0.3, a, 1e-12)
	assert.InDelta(t, 0.5, sg, 1e-12)

	s.t = 10
	a, sg = s.schedule(p, 0)
	assert.InDelta(t, 0.1, a, 1e-12)
	assert.InDelta(t, 0.1, sg, 1e-12)
}

// TestSchedule_Converging scales the final values by drift/driftRef, capped at 1.
func TestSchedule_Converging(t *testing.T) {
	p := Params{Alpha0: 0.5, AlphaF: 0.1, Sigma0: 0.9, SigmaF: 0.2, Beta: 0.5, T: 4}
	s := state{phase: Converging, driftRef: 0.4}

	a, sg := s.schedule(p, 0.2)
	assert.InDelta(t, 0.05, a, 1e-12)
	assert.InDelta(t, 0.1, sg, 1e-12)

	a, sg = s.schedule(p, 0.8)
	assert.InDelta(t, 0.1, a, 1e-12)
	assert.InDelta(t, 0.2, sg, 1e-12)

	s.driftRef = 0
	a, sg = s.schedule(p, 0.3)
	assert.InDelta(t, 0.1, a, 1e-12, "zero reference falls back to the final values")
	assert.InDelta(t, 0.2, sg, 1e-12)
}
