package walk

import "math"

// MaxDepth bounds the number of steps in one walk. Generate allocates every
// point up front, so the registry cannot ask for more than this.
const MaxDepth = 1_000_000

// directions is the fixed step table: right, left, up, down.
var directions = [4]Point{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// Direction maps a uniform draw to an index into the step table.
// Values at or above 1 clamp to the last entry; NaN and negatives map to 0.
func Direction(u float64) int {
	if math.IsNaN(u) || u <= 0 {
		return 0
	}
	d := int(math.Floor(u * float64(len(directions))))
	if d >= len(directions) {
		return len(directions) - 1
	}
	return d
}

// Step returns the unit vector for a direction index.
func Step(dir int) Point {
	return directions[dir]
}

// DirectionOf returns the direction index of a unit step, or -1 if (dx, dy)
// is not one.
func DirectionOf(dx, dy int) int {
	for i, d := range directions {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	return -1
}

// Generate draws depth steps from an already seeded source.
func Generate(src Source, depth int) (Walk, error) {
	if depth < 0 || depth > MaxDepth {
		return nil, Errorf("generate", ErrConfiguration, "depth must be in [0, %d], got %d", MaxDepth, depth)
	}
	if src == nil {
		return nil, Errorf("generate", ErrConfiguration, "nil source")
	}

	w := make(Walk, 1, depth+1)
	x, y := 0, 0
	for i := 0; i < depth; i++ {
		d := directions[Direction(src.Next())]
		x += d.X
		y += d.Y
		w = append(w, Point{x, y})
	}
	return w, nil
}
