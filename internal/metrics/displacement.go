package metrics

import (
	"math"

	"github.com/san-kum/randwalk/internal/walk"
)

func dist2(p walk.Point) float64 {
	return float64(p.X*p.X + p.Y*p.Y)
}

// Displacement is the Euclidean distance of the last point from the origin.
type Displacement struct {
	last walk.Point
}

func NewDisplacement() *Displacement { return &Displacement{} }

func (d *Displacement) Name() string { return "displacement" }

func (d *Displacement) Observe(p walk.Point, step int) { d.last = p }

func (d *Displacement) Value() float64 { return math.Sqrt(dist2(d.last)) }

func (d *Displacement) Reset() { d.last = walk.Point{} }

// MaxExcursion is the largest distance from the origin reached.
type MaxExcursion struct {
	max float64
}

func NewMaxExcursion() *MaxExcursion { return &MaxExcursion{} }

func (m *MaxExcursion) Name() string { return "max_excursion" }

func (m *MaxExcursion) Observe(p walk.Point, step int) {
	m.max = math.Max(m.max, dist2(p))
}

func (m *MaxExcursion) Value() float64 { return math.Sqrt(m.max) }

func (m *MaxExcursion) Reset() { m.max = 0 }

// MeanSquared is the mean squared distance from the origin over all points.
type MeanSquared struct {
	sum     float64
	samples int
}

func NewMeanSquared() *MeanSquared { return &MeanSquared{} }

func (m *MeanSquared) Name() string { return "msd" }

func (m *MeanSquared) Observe(p walk.Point, step int) {
	m.sum += dist2(p)
	m.samples++
}

func (m *MeanSquared) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSquared) Reset() {
	m.sum = 0
	m.samples = 0
}
