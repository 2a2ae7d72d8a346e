package walk

// Point is a lattice position.
type Point struct {
	X, Y int
}

// Walk is an ordered sequence of lattice points. Consecutive points differ
// by exactly one unit vector and the first point is the origin.
type Walk []Point

// Len returns the number of points, which is depth+1 for a generated walk.
func (w Walk) Len() int { return len(w) }

// Depth returns the number of steps.
func (w Walk) Depth() int {
	if len(w) == 0 {
		return 0
	}
	return len(w) - 1
}

// Source is a seeded pseudo-random source. Seed replaces all internal state
// and Next returns values in [0, 1).
type Source interface {
	Seed(v int64)
	Next() float64
}

// BoundingBox is the extent of a walk.
type BoundingBox struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`
}

// Width returns the number of columns the walk spans.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows the walk spans.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY + 1 }

// Config is a resolved registry entry. It is passed by value and never
// mutated after resolution.
type Config struct {
	Name  string      `json:"name"`
	Seed  int64       `json:"seed"`
	Depth int         `json:"depth"`
	Algo  string      `json:"algo"`
	Stats BoundingBox `json:"stats"`
}
