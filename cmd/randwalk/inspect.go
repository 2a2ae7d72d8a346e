package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/randwalk/internal/export"
	"github.com/san-kum/randwalk/internal/metrics"
	"github.com/san-kum/randwalk/internal/prng"
	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/sketch"
	"github.com/san-kum/randwalk/internal/storage"
	"github.com/san-kum/randwalk/internal/viz"
	"github.com/san-kum/randwalk/internal/walk"
)

func exportCommand() *cobra.Command {
	var (
		format string
		output string
		scale  int
	)
	c := &cobra.Command{
		Use:   "export <name>",
		Short: "export a walk as svg, json, csv or png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := loadWalk(cmd, args[0])
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			theme := sketch.OptionsFromConfig(cfg.Sketch).Theme
			switch format {
			case "svg":
				return export.WriteSVG(w, out.Walk, theme, scale)
			case "json":
				return export.WriteJSON(w, out.Config, out.Walk, metrics.Compute(out.Walk))
			case "csv":
				return export.WriteCSV(w, out.Walk)
			case "png":
				if output == "" {
					return fmt.Errorf("png export needs --output")
				}
				box := out.Config.Stats
				img, err := raster.Render(out.Walk, 2*max(-box.MinX, box.MaxX)+1, 2*max(-box.MinY, box.MaxY)+1,
					theme.PreviewBackground, theme.PreviewPath)
				if err != nil {
					return err
				}
				return img.EncodePNG(w)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	c.Flags().StringVar(&format, "format", "svg", "svg, json, csv or png")
	c.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	c.Flags().IntVar(&scale, "scale", 4, "svg pixels per lattice unit")
	return c
}

func statsCommand() *cobra.Command {
	var save bool
	c := &cobra.Command{
		Use:   "stats <name>",
		Short: "show bounding box, metrics and a thumbnail of a walk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := loadWalk(cmd, args[0])
			if err != nil {
				return err
			}
			values := metrics.Compute(out.Walk)
			printWalk(out.Config, out.Walk, values)

			if save {
				st := storage.New(runsDir(), logger)
				if err := st.Init(); err != nil {
					return err
				}
				runID, err := st.Save(out.Config, out.Walk, values)
				if err != nil {
					return err
				}
				fmt.Printf("\nrun id: %s\n", runID)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&save, "save", false, "store the walk under the data directory")
	return c
}

func printWalk(cfg walk.Config, w walk.Walk, values map[string]float64) {
	box := cfg.Stats
	var b strings.Builder
	b.WriteString(viz.Row("name", cfg.Name) + "\n")
	b.WriteString(viz.Row("seed", fmt.Sprint(cfg.Seed)) + "\n")
	b.WriteString(viz.Row("depth", fmt.Sprint(cfg.Depth)) + "\n")
	b.WriteString(viz.Row("algo", cfg.Algo) + "\n")
	b.WriteString(viz.Row("x range", fmt.Sprintf("%d..%d", box.MinX, box.MaxX)) + "\n")
	b.WriteString(viz.Row("y range", fmt.Sprintf("%d..%d", box.MinY, box.MaxY)) + "\n")

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(viz.Row(name, fmt.Sprintf("%.3f", values[name])) + "\n")
	}
	fmt.Println(viz.BoxWithTitle("walk", strings.TrimSuffix(b.String(), "\n"), 44))
	fmt.Println()
	fmt.Print(viz.Thumbnail(w, 40, 12).String())

	if len(w) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(distanceProfile(w, 80),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("distance from origin by step"),
		))
	}
}

// distanceProfile samples the distance from the origin at no more than n
// evenly spaced steps.
func distanceProfile(w walk.Walk, n int) []float64 {
	stride := max((len(w)+n-1)/n, 1)
	out := make([]float64, 0, n)
	for i := 0; i < len(w); i += stride {
		p := w[i]
		out = append(out, math.Hypot(float64(p.X), float64(p.Y)))
	}
	return out
}

func surveyCommand() *cobra.Command {
	var (
		algo  string
		from  int64
		count int
		depth int
	)
	c := &cobra.Command{
		Use:   "survey",
		Short: "generate many seeds in parallel and compare their metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if !prng.Known(algo) {
				return fmt.Errorf("unknown algorithm: %s", algo)
			}

			seeds := make([]int64, count)
			for i := range seeds {
				seeds[i] = from + int64(i)
			}

			survey := walk.NewSurvey(prng.Factory(algo), depth, metrics.Measure)
			results, err := survey.Run(cmd.Context(), seeds)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SEED\tWIDTH\tHEIGHT\tDISPLACEMENT\tMAX\tSITES\tRETURNS")
			displacement := make([]float64, len(results))
			for i, r := range results {
				displacement[i] = r.Metrics["displacement"]
				fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%.2f\t%.0f\t%.0f\n",
					r.Seed,
					r.Bounds.Width(),
					r.Bounds.Height(),
					r.Metrics["displacement"],
					r.Metrics["max_excursion"],
					r.Metrics["unique_sites"],
					r.Metrics["origin_returns"],
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if len(displacement) > 1 {
				fmt.Println()
				fmt.Println(asciigraph.Plot(displacement,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(fmt.Sprintf("final displacement by seed (%s, depth %d)", algo, depth)),
				))
			}
			return nil
		},
	}
	c.Flags().StringVar(&algo, "algo", prng.Default, "algorithm: "+strings.Join(prng.Names(), ", "))
	c.Flags().Int64Var(&from, "from", 1, "first seed")
	c.Flags().IntVar(&count, "count", 16, "number of consecutive seeds")
	c.Flags().IntVar(&depth, "depth", 1000, "steps per walk")
	return c
}
