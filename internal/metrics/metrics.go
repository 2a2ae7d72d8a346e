// Package metrics computes scalar summaries of a walk.
package metrics

import (
	"fmt"
	"sort"

	"github.com/san-kum/randwalk/internal/walk"
)

// Metric accumulates a value over the points of a walk, in order.
type Metric interface {
	Name() string
	Observe(p walk.Point, step int)
	Value() float64
	Reset()
}

var constructors = map[string]func() Metric{
	"displacement":   func() Metric { return NewDisplacement() },
	"max_excursion":  func() Metric { return NewMaxExcursion() },
	"msd":            func() Metric { return NewMeanSquared() },
	"unique_sites":   func() Metric { return NewUniqueSites() },
	"origin_returns": func() Metric { return NewOriginReturns() },
}

// New returns a fresh metric by name.
func New(name string) (Metric, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return ctor(), nil
}

// Names lists the known metrics, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Standard returns one instance of every known metric.
func Standard() []Metric {
	names := Names()
	out := make([]Metric, len(names))
	for i, name := range names {
		out[i] = constructors[name]()
	}
	return out
}

// Compute runs the metrics over w and returns their values by name. The
// metrics are reset first.
func Compute(w walk.Walk, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Standard()
	}
	for _, m := range ms {
		m.Reset()
	}
	for i, p := range w {
		for _, m := range ms {
			m.Observe(p, i)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Measure is Compute with the standard set, shaped for walk.NewSurvey.
func Measure(w walk.Walk) map[string]float64 {
	return Compute(w)
}
