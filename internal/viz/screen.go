package viz

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/randwalk/internal/raster"
)

// Screen is a terminal drawing surface. Each character cell shows two
// vertically stacked pixels using the upper half block, so a cols x rows
// screen is cols x rows*2 pixels. Text occupies whole cells.
type Screen struct {
	cols, rows int
	pix        []color.RGBA
	text       []rune
	textFg     []color.RGBA
}

func NewScreen(cols, rows int) *Screen {
	s := &Screen{}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the buffers. Contents are cleared to black.
func (s *Screen) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
	s.pix = make([]color.RGBA, cols*rows*2)
	for i := range s.pix {
		s.pix[i] = color.RGBA{A: 255}
	}
	s.text = make([]rune, cols*rows)
	s.textFg = make([]color.RGBA, cols*rows)
}

// Cells returns the size in character cells.
func (s *Screen) Cells() (int, int) { return s.cols, s.rows }

func (s *Screen) Size() (int, int) { return s.cols, s.rows * 2 }

func (s *Screen) LineHeight() int { return 2 }

func (s *Screen) TextWidth(str string) int { return lipgloss.Width(str) }

func (s *Screen) Background(c color.RGBA) {
	for i := range s.pix {
		s.pix[i] = c
	}
	for i := range s.text {
		s.text[i] = 0
	}
}

func (s *Screen) Blit(img *raster.Image) {
	if img == nil {
		return
	}
	w, h := s.Size()
	w, h = min(w, img.Width), min(h, img.Height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.pix[y*s.cols+x] = img.At(x, y)
		}
	}
	for i := range s.text {
		s.text[i] = 0
	}
}

func (s *Screen) Dot(x, y, size int, c color.RGBA) {
	if size < 1 {
		size = 1
	}
	s.Bar(x-size/2, y-size/2, size, size, c)
}

func (s *Screen) Bar(x, y, w, h int, c color.RGBA) {
	sw, sh := s.Size()
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, sw, sh))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			s.pix[py*s.cols+px] = c
			s.text[(py/2)*s.cols+px] = 0
		}
	}
}

// Text writes str into the cell row containing pixel row y.
func (s *Screen) Text(x, y int, str string, c color.RGBA) {
	if y < 0 || y/2 >= s.rows {
		return
	}
	row := y / 2
	col := x
	for _, r := range str {
		if col >= s.cols {
			break
		}
		if col >= 0 {
			s.text[row*s.cols+col] = r
			s.textFg[row*s.cols+col] = c
		}
		col++
	}
}

// At returns the pixel at (x, y).
func (s *Screen) At(x, y int) color.RGBA {
	w, h := s.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return color.RGBA{}
	}
	return s.pix[y*s.cols+x]
}

// Image copies the pixels into an RGBA image, ignoring text.
func (s *Screen) Image() *image.RGBA {
	w, h := s.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range s.pix {
		base := i * 4
		img.Pix[base+0] = c.R
		img.Pix[base+1] = c.G
		img.Pix[base+2] = c.B
		img.Pix[base+3] = c.A
	}
	return img
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

type cellStyle struct {
	fg, bg color.RGBA
}

// String renders the screen, batching runs of cells with equal colours into
// a single styled span.
func (s *Screen) String() string {
	var b strings.Builder
	var run strings.Builder

	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var cur cellStyle
		run.Reset()
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(hexColor(cur.fg)).Background(hexColor(cur.bg))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for col := 0; col < s.cols; col++ {
			top := s.pix[(row*2)*s.cols+col]
			bottom := s.pix[(row*2+1)*s.cols+col]

			glyph, st := '▀', cellStyle{fg: top, bg: bottom}
			if r := s.text[row*s.cols+col]; r != 0 {
				glyph, st = r, cellStyle{fg: s.textFg[row*s.cols+col], bg: top}
			}
			if st != cur && run.Len() > 0 {
				flush()
			}
			cur = st
			run.WriteRune(glyph)
		}
		flush()
	}
	return b.String()
}
