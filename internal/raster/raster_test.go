package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/randwalk/internal/walk"
)

func TestRenderRoundTrip(t *testing.T) {
	w := walk.Walk{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}}
	img, err := Render(w, 10, 8, 220, 140)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	fg := color.RGBA{140, 140, 140, 255}
	bg := color.RGBA{220, 220, 220, 255}
	hit := make(map[[2]int]bool)
	for _, p := range w {
		x, y := 5+p.X, 4+p.Y
		hit[[2]int{x, y}] = true
		if got := img.At(x, y); got != fg {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, fg)
		}
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if hit[[2]int{x, y}] {
				continue
			}
			if got := img.At(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestRenderOutOfBounds(t *testing.T) {
	// Points on and past every edge; only (0,0) and (1,1) land inside a 4x4.
	w := walk.Walk{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -3, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -3}, {X: 1, Y: 1}, {X: 100, Y: -100}}
	img, err := Render(w, 4, 4, 0, 255)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(img.Pix) != 4*4*4 {
		t.Fatalf("pix len = %d", len(img.Pix))
	}

	lit := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.At(x, y).R == 255 {
				lit++
			}
		}
	}
	if lit != 2 {
		t.Errorf("lit pixels = %d, want 2", lit)
	}
	if img.At(2, 2).R != 255 || img.At(3, 3).R != 255 {
		t.Error("expected in-bounds points at (2,2) and (3,3)")
	}
}

func TestRenderDegenerate(t *testing.T) {
	sizes := [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}}
	for _, s := range sizes {
		_, err := Render(walk.Walk{{X: 0, Y: 0}}, s[0], s[1], 0, 0)
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("Render(%dx%d) err = %v, want ErrDegenerate", s[0], s[1], err)
		}
		if !errors.Is(err, walk.ErrConfiguration) {
			t.Errorf("Render(%dx%d) should wrap ErrConfiguration", s[0], s[1])
		}
	}
}

func TestEncodePNG(t *testing.T) {
	img, err := Render(walk.Walk{{X: 0, Y: 0}}, 3, 3, 10, 200)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, _, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 200 {
		t.Errorf("center red = %d, want 200", r>>8)
	}
}

func TestCanvasDrawing(t *testing.T) {
	c, err := NewCanvas(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{255, 0, 0, 255}

	c.Background(white)
	c.Dot(10, 10, 2, red)
	if got := c.At(10, 10); got != red {
		t.Errorf("dot pixel = %v", got)
	}
	if got := c.At(0, 0); got != white {
		t.Errorf("background pixel = %v", got)
	}

	c.Bar(-5, 0, 100, 3, red)
	if got := c.At(19, 2); got != red {
		t.Errorf("clipped bar pixel = %v", got)
	}

	img, _ := Render(walk.Walk{{X: 0, Y: 0}}, 4, 4, 0, 0)
	c.Blit(img)
	if got := c.At(3, 3); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("blit pixel = %v", got)
	}
	if got := c.At(10, 10); got != red {
		t.Errorf("blit should not touch pixels outside the image, got %v", got)
	}

	if c.LineHeight() != 13 {
		t.Errorf("line height = %d, want 13", c.LineHeight())
	}
}

func TestCanvasGIF(t *testing.T) {
	c, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.EncodeGIF(&bytes.Buffer{}); err == nil {
		t.Error("expected error with no frames")
	}

	c.Background(color.RGBA{0, 0, 0, 255})
	c.Capture(2)
	c.Dot(4, 4, 2, color.RGBA{255, 0, 0, 255})
	c.Capture(2)

	var buf bytes.Buffer
	if err := c.EncodeGIF(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("frames = %d, want 2", len(anim.Image))
	}
}

func TestRecorderSave(t *testing.T) {
	var rec Recorder
	path := filepath.Join(t.TempDir(), "walk.gif")
	if err := rec.Save(path); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("err = %v, want ErrNoFrames", err)
	}

	img, _ := Render(walk.Walk{{X: 0, Y: 0}, {X: 1, Y: 0}}, 6, 6, 220, 140)
	rec.Capture(img.RGBA(), 5)
	rec.Capture(img.RGBA(), 5)
	if err := rec.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 || anim.Delay[0] != 5 {
		t.Errorf("frames=%d delay=%v", len(anim.Image), anim.Delay)
	}

	rec.Reset()
	if rec.Frames() != 0 {
		t.Error("reset should drop frames")
	}
}
