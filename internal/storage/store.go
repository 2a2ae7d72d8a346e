package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/walk"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv.sz"
)

// Store keeps generated walks on disk, one directory per run.
type Store struct {
	baseDir string
	logger  *zap.Logger
}

func New(baseDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{baseDir: baseDir, logger: logger}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Depth     int                `json:"depth"`
	Algo      string             `json:"algo"`
	Stats     walk.BoundingBox   `json:"stats"`
	Points    int                `json:"points"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Config rebuilds the resolved config the run was generated from.
func (m *RunMetadata) Config() walk.Config {
	return walk.Config{Name: m.Name, Seed: m.Seed, Depth: m.Depth, Algo: m.Algo, Stats: m.Stats}
}

// Save writes the config, metrics and points of a walk and returns the run
// ID.
func (s *Store) Save(cfg walk.Config, w walk.Walk, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s", runSlug(cfg.Name), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      cfg.Name,
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Depth:     cfg.Depth,
		Algo:      cfg.Algo,
		Stats:     cfg.Stats,
		Points:    len(w),
		Metrics:   metrics,
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(out io.Writer) error {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}

	err = writeFile(filepath.Join(runDir, pointsFile), func(out io.Writer) error {
		return writePoints(out, w)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("run saved", zap.String("id", runID), zap.Int("points", len(w)))
	return runID, nil
}

// runSlug reduces an entry name to one safe path segment. Entry names come
// from the registry document and may contain separators or "..".
func runSlug(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
	if slug == "" {
		return "run"
	}
	return slug
}

func checkRunID(runID string) error {
	if runID == "" || runID == "." || runID == ".." || strings.ContainsAny(runID, `/\`) {
		return fmt.Errorf("invalid run id: %q", runID)
	}
	return nil
}

// writeFile creates path, fills it with write and reports the close error of
// a successful write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePoints(out io.Writer, w walk.Walk) error {
	zw := snappy.NewBufferedWriter(out)
	cw := csv.NewWriter(zw)

	if err := cw.Write([]string{"step", "x", "y"}); err != nil {
		return err
	}
	for i, p := range w {
		row := []string{strconv.Itoa(i), strconv.Itoa(p.X), strconv.Itoa(p.Y)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return zw.Close()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := checkRunID(runID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoints reads back the walk of a run.
func (s *Store) LoadPoints(runID string) (walk.Walk, error) {
	if err := checkRunID(runID); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, pointsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(snappy.NewReader(file))
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return walk.Walk{}, nil
	}

	w := make(walk.Walk, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		x, err := strconv.Atoi(records[i][1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		y, err := strconv.Atoi(records[i][2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		w = append(w, walk.Point{X: x, Y: y})
	}
	return w, nil
}
