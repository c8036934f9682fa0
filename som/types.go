package som

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvstream/vector"
)

// Sentinel errors for lattice operations.
var (
	// ErrInvalidSize indicates a non-positive width, height or dimensionality.
	ErrInvalidSize = errors.New("som: width, height and dimensionality must be positive")

	// ErrOutOfBounds indicates lattice coordinates outside the grid.
	ErrOutOfBounds = errors.New("som: lattice coordinates out of bounds")
)

// Topology selects the lattice geometry.
type Topology int

const (
	// Rectangular places neurons on a square grid.
	Rectangular Topology = iota

	// Hexagonal places neurons on a hexagonal grid (odd rows offset by ½).
	Hexagonal
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Rectangular:
		return "rectangular"
	case Hexagonal:
		return "hexagonal"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// ParseTopology maps a name produced by String back to a Topology.
func ParseTopology(name string) (Topology, error) {
	switch name {
	case "rectangular":
		return Rectangular, nil
	case "", "hexagonal":
		return Hexagonal, nil
	default:
		return Hexagonal, fmt.Errorf("som: unknown topology %q", name)
	}
}

// rowHeight is the vertical spacing of hexagonal rows.
var rowHeight = math.Sqrt(3) / 2

// position returns the planar coordinates of grid cell (x, y).
func (t Topology) position(x, y int) (float64, float64) {
	if t == Hexagonal {
		px := float64(x)
		if y%2 == 1 {
			px += 0.5
		}
		return px, float64(y) * rowHeight
	}

	return float64(x), float64(y)
}

// Distance returns the lattice distance between cells (x1,y1) and (x2,y2).
func (t Topology) Distance(x1, y1, x2, y2 int) float64 {
	ax, ay := t.position(x1, y1)
	bx, by := t.position(x2, y2)

	return math.Hypot(ax-bx, ay-by)
}

// Neuron owns a prototype and its lattice coordinates.
type Neuron struct {
	X, Y      int
	Prototype vector.Vector
}

// Index returns the row-major index of n in a lattice of the given width.
func (n *Neuron) Index(width int) int { return n.Y*width + n.X }
