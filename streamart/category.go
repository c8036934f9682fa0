package streamart

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/lvstream/vector"
)

// MicroCategory is a weighted, timestamped prototype summarizing a local
// cluster of recent inputs.
type MicroCategory struct {
	// ID is a stable identity across snapshots. Copies share it; merges mint a new one.
	ID uuid.UUID

	// Prototype is exclusively owned by the category.
	Prototype vector.Vector

	// Timestamp is the engine step of the last update.
	Timestamp int64

	// Weight counts the inputs absorbed (≥ 1).
	Weight int64

	// VigilanceRadius is the vigilance in force when the category was archived.
	VigilanceRadius float64
}

// NewMicroCategory returns a category centered at a copy of prototype with
// timestamp 0, weight 1 and vigilance radius 1.
func NewMicroCategory(prototype vector.Vector) (*MicroCategory, error) {
	if len(prototype) == 0 {
		return nil, vector.ErrEmpty
	}

	return &MicroCategory{
		Prototype:       prototype.Clone(),
		Weight:          1,
		VigilanceRadius: 1,
	}, nil
}

// Copy returns a deep copy, prototype included.
func (c *MicroCategory) Copy() *MicroCategory {
	cp := *c
	cp.Prototype = c.Prototype.Clone()

	return &cp
}

// IncrementWeight adds one absorbed input.
func (c *MicroCategory) IncrementWeight() { c.Weight++ }

// SetTimestamp records the step of the last update.
func (c *MicroCategory) SetTimestamp(t int64) { c.Timestamp = t }

// SetVigilanceRadius records the vigilance in force at archival.
func (c *MicroCategory) SetVigilanceRadius(r float64) { c.VigilanceRadius = r }

// Merge combines a and b into a new category whose prototype is the
// weight-proportional mean of both prototypes and whose weight is their sum.
// The result carries timestamp ts and a zero ID; neither input is modified.
func Merge(a, b *MicroCategory, ts int64) (*MicroCategory, error) {
	if err := vector.CheckDim(b.Prototype, len(a.Prototype)); err != nil {
		return nil, err
	}
	total := float64(a.Weight + b.Weight)
	p := a.Prototype.Clone()
	p.Scale(float64(a.Weight) / total)
	_ = p.AddScaled(float64(b.Weight)/total, b.Prototype)

	return &MicroCategory{
		Prototype:       p,
		Timestamp:       ts,
		Weight:          a.Weight + b.Weight,
		VigilanceRadius: 1,
	}, nil
}
