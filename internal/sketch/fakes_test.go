package sketch_test

import (
	"context"
	"image/color"

	"github.com/san-kum/randwalk/internal/raster"
)

type call struct {
	op    string
	x, y  int
	text  string
	color color.RGBA
}

// recorder is a Surface that remembers every draw call.
type recorder struct {
	w, h  int
	calls []call
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) LineHeight() int  { return 10 }

func (r *recorder) Background(c color.RGBA) {
	r.calls = append(r.calls, call{op: "background", color: c})
}

func (r *recorder) Blit(img *raster.Image) {
	r.calls = append(r.calls, call{op: "blit", x: img.Width, y: img.Height})
}

func (r *recorder) Dot(x, y, size int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "dot", x: x, y: y, color: c})
}

func (r *recorder) Bar(x, y, w, h int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "bar", x: x, y: y, color: c})
}

func (r *recorder) Text(x, y int, s string, c color.RGBA) {
	r.calls = append(r.calls, call{op: "text", x: x, y: y, text: s, color: c})
}

func (r *recorder) take() []call {
	c := r.calls
	r.calls = nil
	return c
}

func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

type staticFetcher struct {
	data []byte
	err  error
}

func (f staticFetcher) Fetch(ctx context.Context) ([]byte, error) {
	return f.data, f.err
}
