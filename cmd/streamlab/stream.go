package main

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvstream/config"
	"github.com/katalvlaran/lvstream/vector"
)

// centerMargin keeps cluster centers away from the unit-cube border so most
// samples need no clamping.
const centerMargin = 0.15

// mixture draws samples from a Gaussian mixture whose centers jump once at
// DriftAt.
type mixture struct {
	cfg     config.Stream
	rng     *rand.Rand
	centers []vector.Vector
}

func newMixture(cfg config.Stream, rng *rand.Rand) *mixture {
	m := &mixture{cfg: cfg, rng: rng}
	m.reseed()

	return m
}

// reseed draws a fresh set of centers.
func (m *mixture) reseed() {
	m.centers = make([]vector.Vector, m.cfg.Clusters)
	for i := range m.centers {
		m.centers[i], _ = vector.Random(m.cfg.Dim, centerMargin, 1-centerMargin, m.rng)
	}
}

// sample returns one point clamped to [0,1]^dim.
func (m *mixture) sample() vector.Vector {
	c := m.centers[m.rng.Intn(len(m.centers))]
	x := vector.New(m.cfg.Dim)
	for i := range x {
		x[i] = math.Min(1, math.Max(0, c[i]+m.rng.NormFloat64()*m.cfg.Spread))
	}

	return x
}

// produce sends cfg.Steps samples on a channel it closes when done or when ctx ends.
func (m *mixture) produce(ctx context.Context) <-chan vector.Vector {
	out := make(chan vector.Vector, m.cfg.Buffer)
	go func() {
		defer close(out)
		for step := 1; step <= m.cfg.Steps; step++ {
			if m.cfg.DriftAt > 0 && step == m.cfg.DriftAt {
				m.reseed()
			}
			select {
			case out <- m.sample():
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
