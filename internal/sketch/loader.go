package sketch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/prng"
	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/registry"
	"github.com/san-kum/randwalk/internal/walk"
)

// Outcome is the result of a load. Exactly one of Err or Walk is set.
type Outcome struct {
	Config walk.Config
	Walk   walk.Walk
	Err    error
}

// Loader fetches the registry, resolves one entry and generates its walk.
type Loader struct {
	fetcher registry.Fetcher
	logger  *zap.Logger
}

func NewLoader(fetcher registry.Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

func (l *Loader) Load(ctx context.Context, name string) Outcome {
	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return l.fail(name, err)
	}
	doc, err := registry.Parse(data)
	if err != nil {
		return l.fail(name, err)
	}
	cfg, err := registry.Resolve(doc, name)
	if err != nil {
		return l.fail(name, err)
	}
	cfg, w, err := Build(cfg)
	if err != nil {
		return l.fail(name, err)
	}

	l.logger.Info("walk generated",
		zap.String("name", cfg.Name),
		zap.Int64("seed", cfg.Seed),
		zap.Int("depth", cfg.Depth),
		zap.String("algo", cfg.Algo),
		zap.Int("width", cfg.Stats.Width()),
		zap.Int("height", cfg.Stats.Height()))
	return Outcome{Config: cfg, Walk: w}
}

func (l *Loader) fail(name string, err error) Outcome {
	l.logger.Error("load failed", zap.String("name", name), zap.Error(err))
	return Outcome{Err: err}
}

// Build generates the walk for a resolved config and fills in its bounding
// box.
func Build(cfg walk.Config) (walk.Config, walk.Walk, error) {
	src, err := prng.Select(cfg.Algo)
	if err != nil {
		return cfg, nil, err
	}
	src.Seed(cfg.Seed)

	w, err := walk.Generate(src, cfg.Depth)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Stats = walk.Bounds(w)
	return cfg, w, nil
}

// FailureMessage turns a load error into the single line shown to the user.
func FailureMessage(err error) string {
	detail := err.Error()
	var re *walk.ResolveError
	if errors.As(err, &re) && re.Detail != "" {
		detail = re.Detail
	}

	switch {
	case errors.Is(err, walk.ErrNetwork):
		if strings.HasPrefix(detail, "Fetch not Ok") {
			return detail
		}
		return "Fetch not Ok: " + detail
	case errors.Is(err, walk.ErrNotFound):
		return "Missing key name"
	case errors.Is(err, walk.ErrInvalidSeed):
		return "seed is invalid: " + detail
	case errors.Is(err, raster.ErrDegenerate):
		return "Canvas too small: " + strings.TrimPrefix(detail, raster.ErrDegenerate.Error()+": ")
	default:
		return "Error loading seed: " + detail
	}
}
