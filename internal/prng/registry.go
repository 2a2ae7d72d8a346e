package prng

import (
	"sort"

	"github.com/san-kum/randwalk/internal/walk"
)

const (
	LehmerKey = "pseudoRandom"
	ARC4Key   = "davidBau"
	CanvasKey = "p5"

	// Default is used when neither the entry nor the registry names one.
	Default = CanvasKey
)

type Registry struct {
	algorithms map[string]func() walk.Source
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() walk.Source),
	}

	r.algorithms[LehmerKey] = func() walk.Source { return NewLehmer() }
	r.algorithms[ARC4Key] = func() walk.Source { return NewARC4() }
	r.algorithms[CanvasKey] = func() walk.Source { return NewCanvasLCG() }

	return r
}

func (r *Registry) Get(name string) (walk.Source, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, walk.Errorf("select", walk.ErrConfiguration, "unknown algorithm: %s", name)
	}
	return fn(), nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.algorithms[name]
	return ok
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Select returns a fresh, unseeded source for the algorithm key.
func Select(name string) (walk.Source, error) { return defaultRegistry.Get(name) }

// Known reports whether name is a registered algorithm key.
func Known(name string) bool { return defaultRegistry.Has(name) }

// Names lists the registered algorithm keys in sorted order.
func Names() []string { return defaultRegistry.List() }

// Factory returns a walk.SourceFactory for the algorithm key.
func Factory(name string) walk.SourceFactory {
	return func() (walk.Source, error) { return Select(name) }
}
