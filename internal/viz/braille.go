package viz

import (
	"strings"

	"github.com/san-kum/randwalk/internal/walk"
)

// Braille dot bits by (row, column) within a cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Braille is a dot canvas of cols x rows braille cells, addressed in dots
// (cols*2 x rows*4).
type Braille struct {
	cols, rows int
	cells      []rune
}

func NewBraille(cols, rows int) *Braille {
	b := &Braille{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	b.Clear()
	return b
}

func (b *Braille) Clear() {
	for i := range b.cells {
		b.cells[i] = brailleBlank
	}
}

func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.cols || row >= b.rows {
		return
	}
	b.cells[row*b.cols+col] |= pixelMap[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is raised.
func (b *Braille) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= b.cols || y/4 >= b.rows {
		return false
	}
	return b.cells[(y/4)*b.cols+x/2]&pixelMap[y%4][x%2] != 0
}

// DrawLine draws a line using Bresenham's algorithm.
func (b *Braille) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		sb.WriteString(string(b.cells[row*b.cols : (row+1)*b.cols]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Thumbnail scales w into a cols x rows braille canvas, keeping the aspect
// ratio of its bounding box. Rows grow downwards like the preview image.
func Thumbnail(w walk.Walk, cols, rows int) *Braille {
	b := NewBraille(cols, rows)
	if len(w) == 0 || cols <= 0 || rows <= 0 {
		return b
	}

	box := walk.Bounds(w)
	spanX := float64(max(box.Width()-1, 1))
	spanY := float64(max(box.Height()-1, 1))
	scale := min(float64(cols*2-1)/spanX, float64(rows*4-1)/spanY)

	project := func(p walk.Point) (int, int) {
		return int(float64(p.X-box.MinX) * scale), int(float64(p.Y-box.MinY) * scale)
	}

	px, py := project(w[0])
	b.Set(px, py)
	for _, p := range w[1:] {
		x, y := project(p)
		b.DrawLine(px, py, x, y)
		px, py = x, y
	}
	return b
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
