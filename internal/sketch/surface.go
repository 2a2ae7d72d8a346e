package sketch

import (
	"image/color"

	"github.com/san-kum/randwalk/internal/raster"
)

// Surface is the drawing target of a session. Coordinates are pixels with
// the origin in the top-left corner. Implementations clip out-of-range
// drawing.
type Surface interface {
	Size() (width, height int)
	LineHeight() int
	Background(c color.RGBA)
	Blit(img *raster.Image)
	Dot(x, y, size int, c color.RGBA)
	Bar(x, y, w, h int, c color.RGBA)
	Text(x, y int, s string, c color.RGBA)
}

// TextMeasurer is implemented by surfaces that can report the drawn width
// of a string. Messages are centred when it is available.
type TextMeasurer interface {
	TextWidth(s string) int
}
