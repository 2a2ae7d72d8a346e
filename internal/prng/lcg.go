package prng

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// CanvasLCG reproduces the canvas library's seeded random(): a 32-bit LCG
// whose seed is truncated to uint32.
type CanvasLCG struct {
	state uint32
}

func NewCanvasLCG() *CanvasLCG { return &CanvasLCG{} }

func (c *CanvasLCG) Seed(v int64) {
	c.state = uint32(v)
}

func (c *CanvasLCG) Next() float64 {
	c.state = c.state*lcgMultiplier + lcgIncrement
	return float64(c.state) / lcgModulus
}
