package walk

// Bounds computes the bounding box in a single pass. An empty walk yields
// the degenerate box at the origin.
func Bounds(w Walk) BoundingBox {
	var b BoundingBox
	for _, p := range w {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}
