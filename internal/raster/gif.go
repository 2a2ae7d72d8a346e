package raster

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// ErrNoFrames is returned when encoding an empty recording.
var ErrNoFrames = errors.New("raster: no frames captured")

// Recorder collects frames for an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delays []int
}

// Capture quantizes img to the Plan 9 palette and appends it as a frame
// shown for delay hundredths of a second.
func (r *Recorder) Capture(img image.Image, delay int) {
	frame := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, draw.Src)
	r.frames = append(r.frames, frame)
	r.delays = append(r.delays, delay)
}

func (r *Recorder) Frames() int {
	return len(r.frames)
}

func (r *Recorder) Reset() {
	r.frames = nil
	r.delays = nil
}

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for i, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delays[i])
	}
	return gif.EncodeAll(w, &anim)
}

// Save encodes the recording to path.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
