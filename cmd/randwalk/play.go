package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/sketch"
	"github.com/san-kum/randwalk/internal/viz"
)

func playCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "play [name]",
		Short:       "animate a registry entry in the terminal",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE:        runPlay,
	}
}

func pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "pick",
		Short:       "choose a registry entry from a menu and animate it",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := fetchDocument(cmd)
			if err != nil {
				return err
			}
			loader, err := newLoader()
			if err != nil {
				return err
			}
			return viz.RunPicker(cmd.Context(), doc.Names(), loader, liveOptions(""), logger)
		},
	}
}

func liveOptions(name string) viz.Options {
	return viz.Options{
		Name:    name,
		FPS:     cfg.Sketch.FPS,
		DataDir: cfg.DataDir,
		Sketch:  sketch.OptionsFromConfig(cfg.Sketch),
	}
}

// runPlay starts the live view. A missing name is looked up as the empty
// string, which ends in the not-found message.
func runPlay(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	loader, err := newLoader()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}
	return viz.Run(cmd.Context(), loader, liveOptions(name), logger)
}

func renderCommand() *cobra.Command {
	var (
		width, height int
		output        string
	)
	c := &cobra.Command{
		Use:   "render <name>",
		Short: "write the full-walk preview as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := loadWalk(cmd, args[0])
			if err != nil {
				return err
			}
			theme := sketch.OptionsFromConfig(cfg.Sketch).Theme
			img, err := raster.Render(out.Walk, width, height, theme.PreviewBackground, theme.PreviewPath)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := img.EncodePNG(f); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%dx%d, %d points)\n", output, width, height, len(out.Walk))
			return nil
		},
	}
	c.Flags().IntVar(&width, "width", 800, "image width")
	c.Flags().IntVar(&height, "height", 600, "image height")
	c.Flags().StringVarP(&output, "output", "o", "walk.png", "output file")
	return c
}

func recordCommand() *cobra.Command {
	var (
		width, height int
		output        string
		showStats     bool
		every         int
	)
	c := &cobra.Command{
		Use:   "record <name>",
		Short: "record the animation headlessly as a GIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := newLoader()
			if err != nil {
				return err
			}
			canvas, err := raster.NewCanvas(width, height)
			if err != nil {
				return err
			}

			opts := sketch.OptionsFromConfig(cfg.Sketch)
			opts.ShowStats = showStats
			session := sketch.NewSession(args[0], canvas, loader, opts)
			session.OnCanvasReady(width, height)
			session.Complete(session.OnLoad(cmd.Context()))
			if err := session.Err(); err != nil {
				return fmt.Errorf("%s: %w", sketch.FailureMessage(err), err)
			}

			frames, err := record(session, canvas, cfg.Sketch.FPS, every)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := canvas.EncodeGIF(f); err != nil {
				return err
			}
			logger.Info("recorded", zap.String("name", args[0]), zap.Int("frames", frames))
			fmt.Printf("wrote %s (%d frames)\n", output, frames)
			return nil
		},
	}
	c.Flags().IntVar(&width, "width", 320, "frame width")
	c.Flags().IntVar(&height, "height", 240, "frame height")
	c.Flags().StringVarP(&output, "output", "o", "walk.gif", "output file")
	c.Flags().BoolVar(&showStats, "stats", false, "draw the stats overlay")
	c.Flags().IntVar(&every, "every", 25, "capture one frame every N ticks")
	return c
}

// record ticks the session on a synthetic clock until it is done, capturing
// the canvas every n drawing ticks and once at the end.
func record(session *sketch.Session, canvas *raster.Canvas, fps, n int) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if n < 1 {
		n = 1
	}
	step := time.Second / time.Duration(fps)
	delay := max(int(step*time.Duration(n)/(10*time.Millisecond)), 2)

	if session.State() == sketch.StateMessage {
		return 0, fmt.Errorf("session is not ready to animate")
	}

	now := time.Unix(0, 0)
	draws := 0
	for session.State() != sketch.StateDone {
		if session.OnTick(now) {
			draws++
			if draws%n == 0 {
				canvas.Capture(delay)
			}
		}
		now = now.Add(step)
	}
	if draws%n != 0 {
		canvas.Capture(delay)
	}
	return canvas.Frames(), nil
}
