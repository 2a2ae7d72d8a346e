// Package raster turns a walk into a fixed-size pixel buffer and provides a
// headless drawing surface for recording animations.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/san-kum/randwalk/internal/walk"
)

// ErrDegenerate is returned for zero or negative image dimensions.
var ErrDegenerate = fmt.Errorf("raster: degenerate image size: %w", walk.ErrConfiguration)

// Image is an RGBA preview of a whole walk, 4 bytes per pixel, row-major.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// Render rasterizes every point of w into a width x height image. The walk
// origin sits at (width/2, height/2). Points outside the image are skipped.
func Render(w walk.Walk, width, height int, bg, fg uint8) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerate, width, height)
	}

	img := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
	for base := 0; base < len(img.Pix); base += 4 {
		img.Pix[base+0] = bg
		img.Pix[base+1] = bg
		img.Pix[base+2] = bg
		img.Pix[base+3] = 255
	}

	ox, oy := width/2, height/2
	for _, p := range w {
		x, y := ox+p.X, oy+p.Y
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		base := (y*width + x) * 4
		img.Pix[base+0] = fg
		img.Pix[base+1] = fg
		img.Pix[base+2] = fg
		img.Pix[base+3] = 255
	}
	return img, nil
}

// At returns the pixel at (x, y), or transparent black outside the image.
func (im *Image) At(x, y int) color.RGBA {
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		return color.RGBA{}
	}
	base := (y*im.Width + x) * 4
	return color.RGBA{R: im.Pix[base], G: im.Pix[base+1], B: im.Pix[base+2], A: im.Pix[base+3]}
}

// RGBA shares the pixel buffer as an *image.RGBA.
func (im *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    im.Pix,
		Stride: im.Width * 4,
		Rect:   image.Rect(0, 0, im.Width, im.Height),
	}
}

func (im *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, im.RGBA())
}
