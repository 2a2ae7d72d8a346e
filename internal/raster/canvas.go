package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an in-memory drawing surface. Each Capture appends the current
// contents as a GIF frame.
type Canvas struct {
	img  *image.RGBA
	face font.Face
	rec  Recorder
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerate, width, height)
	}
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}, nil
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image. Captured frames are kept.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDegenerate, width, height)
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (c *Canvas) LineHeight() int {
	return c.face.Metrics().Height.Ceil()
}

func (c *Canvas) Background(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Blit copies img to the top-left corner, clipped to the canvas.
func (c *Canvas) Blit(img *Image) {
	if img == nil {
		return
	}
	draw.Draw(c.img, img.RGBA().Bounds(), img.RGBA(), image.Point{}, draw.Src)
}

// Dot fills a size x size square centred on (x, y).
func (c *Canvas) Dot(x, y, size int, col color.RGBA) {
	if size < 1 {
		size = 1
	}
	x0, y0 := x-size/2, y-size/2
	c.Bar(x0, y0, size, size, col)
}

func (c *Canvas) Bar(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// At reads back a pixel of the current contents.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Capture snapshots the canvas as a GIF frame shown for delay hundredths of
// a second.
func (c *Canvas) Capture(delay int) {
	c.rec.Capture(c.img, delay)
}

func (c *Canvas) Frames() int {
	return c.rec.Frames()
}

func (c *Canvas) EncodeGIF(w io.Writer) error {
	return c.rec.Encode(w)
}

// TextWidth reports the drawn width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}
