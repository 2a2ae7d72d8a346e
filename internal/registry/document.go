package registry

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/san-kum/randwalk/internal/walk"
)

// Entry is one named seed in a registry document. Optional fields keep
// their raw JSON so type errors surface during resolution, not parsing.
type Entry struct {
	Name  string
	named bool
	seed  gjson.Result
	depth gjson.Result
	algo  gjson.Result
}

// RawSeed returns the seed exactly as written in the document.
func (e Entry) RawSeed() string { return e.seed.Raw }

// Document is a parsed registry payload: {seeds: [...], depth?, algo?}.
type Document struct {
	Seeds []Entry
	depth gjson.Result
	algo  gjson.Result
}

// Parse validates and indexes a registry document.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, walk.Errorf("parse", walk.ErrParse, "invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, walk.Errorf("parse", walk.ErrParse, "document is not an object")
	}
	seeds := root.Get("seeds")
	if !seeds.IsArray() {
		return nil, walk.Errorf("parse", walk.ErrParse, "missing seeds array")
	}

	doc := &Document{
		depth: root.Get("depth"),
		algo:  root.Get("algo"),
	}
	seeds.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		name := v.Get("name")
		doc.Seeds = append(doc.Seeds, Entry{
			Name:  name.String(),
			named: name.Type == gjson.String,
			seed:  v.Get("seed"),
			depth: v.Get("depth"),
			algo:  v.Get("algo"),
		})
		return true
	})
	return doc, nil
}

// Find returns the first entry whose name matches exactly.
func (d *Document) Find(name string) (Entry, bool) {
	for _, e := range d.Seeds {
		if e.named && e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names lists the entry names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Seeds))
	for _, e := range d.Seeds {
		if e.named {
			names = append(names, e.Name)
		}
	}
	return names
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// exactInt accepts JSON numbers that denote an integer exactly, including
// forms such as 7.0 or 1e3.
func exactInt(r gjson.Result) (int64, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}
	if v, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
		return v, true
	}
	f := r.Num
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
