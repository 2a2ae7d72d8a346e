package registry

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/san-kum/randwalk/internal/config"
	"github.com/san-kum/randwalk/internal/prng"
	"github.com/san-kum/randwalk/internal/walk"
)

// Resolve turns a requested name into a concrete seed/depth/algorithm
// triple. Depth and algorithm fall back from the entry to the document and
// then to the system defaults.
func Resolve(doc *Document, name string) (walk.Config, error) {
	if name == "" {
		return walk.Config{}, &walk.ResolveError{Stage: "resolve", Detail: "no seed name supplied", Wrapped: walk.ErrNotFound}
	}
	entry, ok := doc.Find(name)
	if !ok {
		return walk.Config{}, &walk.ResolveError{Stage: "resolve", Name: name, Wrapped: walk.ErrNotFound}
	}

	seed, ok := exactInt(entry.seed)
	if !ok {
		detail := entry.seed.Raw
		if detail == "" {
			detail = "missing"
		}
		return walk.Config{}, &walk.ResolveError{Stage: "resolve", Name: name, Detail: detail, Wrapped: walk.ErrInvalidSeed}
	}

	depth := config.DefaultDepth
	if r := pick(entry.depth, doc.depth); present(r) {
		d, ok := exactInt(r)
		if !ok || d < 0 || d > walk.MaxDepth {
			return walk.Config{}, &walk.ResolveError{Stage: "resolve", Name: name, Detail: fmt.Sprintf("depth must be an integer in [0, %d], got %s", walk.MaxDepth, r.Raw), Wrapped: walk.ErrConfiguration}
		}
		depth = int(d)
	}

	algo := prng.Default
	if r := pick(entry.algo, doc.algo); present(r) {
		if r.Type != gjson.String {
			return walk.Config{}, &walk.ResolveError{Stage: "resolve", Name: name, Detail: "algo must be a string, got " + r.Raw, Wrapped: walk.ErrConfiguration}
		}
		algo = r.Str
	}
	if !prng.Known(algo) {
		return walk.Config{}, &walk.ResolveError{Stage: "resolve", Name: name, Detail: "unknown algorithm: " + algo, Wrapped: walk.ErrConfiguration}
	}

	return walk.Config{Name: name, Seed: seed, Depth: depth, Algo: algo}, nil
}

// pick returns the entry-level value when present, else the document-level one.
func pick(entry, doc gjson.Result) gjson.Result {
	if present(entry) {
		return entry
	}
	return doc
}
