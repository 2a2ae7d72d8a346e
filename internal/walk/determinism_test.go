package walk_test

import (
	"testing"

	"github.com/san-kum/randwalk/internal/prng"
	"github.com/san-kum/randwalk/internal/walk"
)

func TestGenerate_Deterministic(t *testing.T) {
	for _, algo := range prng.Names() {
		for _, seed := range []int64{1, 7, 9, 31337} {
			first := generate(t, algo, seed, 3000)
			second := generate(t, algo, seed, 3000)
			if len(first) != 3001 {
				t.Fatalf("%s/%d: expected 3001 points, got %d", algo, seed, len(first))
			}
			for i := range first {
				if first[i] != second[i] {
					t.Fatalf("%s/%d: point %d differs: %v vs %v", algo, seed, i, first[i], second[i])
				}
			}
		}
	}
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	a := generate(t, prng.LehmerKey, 1, 200)
	b := generate(t, prng.LehmerKey, 2, 200)
	for i := range a {
		if a[i] != b[i] {
			return
		}
	}
	t.Error("different seeds produced identical walks")
}

func generate(t *testing.T, algo string, seed int64, depth int) walk.Walk {
	t.Helper()
	src, err := prng.Select(algo)
	if err != nil {
		t.Fatalf("select %s: %v", algo, err)
	}
	src.Seed(seed)
	w, err := walk.Generate(src, depth)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return w
}
