package walk

import (
	"context"
	"sync"
)

// SourceFactory builds a fresh, unseeded source.
type SourceFactory func() (Source, error)

// SurveyResult holds the measurements of one seed's walk.
type SurveyResult struct {
	Seed    int64
	Bounds  BoundingBox
	Metrics map[string]float64
}

// Survey generates one walk per seed in parallel and reduces each with
// measure. Walks are discarded after measurement.
type Survey struct {
	newSource SourceFactory
	depth     int
	measure   func(Walk) map[string]float64
}

func NewSurvey(newSource SourceFactory, depth int, measure func(Walk) map[string]float64) *Survey {
	return &Survey{newSource: newSource, depth: depth, measure: measure}
}

func (s *Survey) Run(ctx context.Context, seeds []int64) ([]SurveyResult, error) {
	results := make([]SurveyResult, len(seeds))
	errs := make([]error, len(seeds))

	ParallelFor(len(seeds), 16, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				return
			}
			results[i], errs[i] = s.runOne(seeds[i])
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *Survey) runOne(seed int64) (SurveyResult, error) {
	src, err := s.newSource()
	if err != nil {
		return SurveyResult{}, err
	}
	src.Seed(seed)
	w, err := Generate(src, s.depth)
	if err != nil {
		return SurveyResult{}, err
	}
	res := SurveyResult{Seed: seed, Bounds: Bounds(w)}
	if s.measure != nil {
		res.Metrics = s.measure(w)
	}
	return res, nil
}

// ParallelFor executes a function in parallel over a range [0, n)
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := 4
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
