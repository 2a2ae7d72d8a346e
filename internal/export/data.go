package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/randwalk/internal/walk"
)

type Data struct {
	Config  walk.Config        `json:"config"`
	Steps   int                `json:"steps"`
	Points  [][2]int           `json:"points"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func WriteJSON(out io.Writer, cfg walk.Config, w walk.Walk, metrics map[string]float64) error {
	data := Data{
		Config:  cfg,
		Steps:   w.Depth(),
		Points:  make([][2]int, len(w)),
		Metrics: metrics,
	}
	for i, p := range w {
		data.Points[i] = [2]int{p.X, p.Y}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per point with the direction index taken to reach
// it. The first row has direction -1.
func WriteCSV(out io.Writer, w walk.Walk) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"step", "x", "y", "dir"}); err != nil {
		return err
	}
	for i, p := range w {
		dir := -1
		if i > 0 {
			dir = walk.DirectionOf(p.X-w[i-1].X, p.Y-w[i-1].Y)
		}
		row := []string{strconv.Itoa(i), strconv.Itoa(p.X), strconv.Itoa(p.Y), strconv.Itoa(dir)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
