package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/randwalk/internal/config"
	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/registry"
	"github.com/san-kum/randwalk/internal/sketch"
	"github.com/san-kum/randwalk/internal/walk"
)

func newRecordSession(t *testing.T, entry string) (*sketch.Session, *raster.Canvas) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seeds.json")
	doc := `{"seeds":[{"name":"tiny","seed":3,"depth":5,"algo":"pseudoRandom"}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	canvas, err := raster.NewCanvas(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	loader := sketch.NewLoader(&registry.FileFetcher{Path: path}, nil)
	session := sketch.NewSession(entry, canvas, loader, sketch.DefaultOptions())
	session.OnCanvasReady(64, 48)
	session.Complete(session.OnLoad(context.Background()))
	return session, canvas
}

func TestRecordCapturesFrames(t *testing.T) {
	tests := []struct {
		every  int
		frames int
	}{
		// splash plus six points
		{1, 7},
		{3, 3},
		{7, 1},
		{10, 1},
	}

	for _, tt := range tests {
		session, canvas := newRecordSession(t, "tiny")
		frames, err := record(session, canvas, 30, tt.every)
		if err != nil {
			t.Fatalf("every=%d: %v", tt.every, err)
		}
		if frames != tt.frames {
			t.Errorf("every=%d: got %d frames, want %d", tt.every, frames, tt.frames)
		}
		if session.State() != sketch.StateDone {
			t.Errorf("every=%d: state %v, want DONE", tt.every, session.State())
		}
	}
}

func TestRecordRejectsFailedSession(t *testing.T) {
	session, canvas := newRecordSession(t, "absent")
	if _, err := record(session, canvas, 30, 1); err == nil {
		t.Fatal("expected error for a session that never loaded")
	}
}

func TestRecordRejectsBadFPS(t *testing.T) {
	session, canvas := newRecordSession(t, "tiny")
	if _, err := record(session, canvas, 0, 1); err == nil {
		t.Fatal("expected error for zero fps")
	}
}

func TestDistanceProfile(t *testing.T) {
	w := walk.Walk{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 1}}
	got := distanceProfile(w, 80)
	want := []float64{0, 5, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}

	long := make(walk.Walk, 1000)
	if n := len(distanceProfile(long, 80)); n > 80 {
		t.Errorf("got %d samples, want at most 80", n)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	tests := []struct {
		args   []string
		source string
		check  func(config.RegistryConfig) bool
	}{
		{
			args:   []string{"--registry", "https://example.com/seeds.json"},
			source: config.SourceHTTP,
			check:  func(r config.RegistryConfig) bool { return r.URL == "https://example.com/seeds.json" },
		},
		{
			args:   []string{"--registry", "local.json"},
			source: config.SourceFile,
			check:  func(r config.RegistryConfig) bool { return r.Path == "local.json" },
		},
		{
			args:   []string{"--redis-addr", "127.0.0.1:6380", "--redis-key", "walks"},
			source: config.SourceRedis,
			check:  func(r config.RegistryConfig) bool { return r.RedisAddr == "127.0.0.1:6380" && r.RedisKey == "walks" },
		},
	}

	for _, tt := range tests {
		root := newRootCommand()
		if err := root.ParseFlags(tt.args); err != nil {
			t.Fatal(err)
		}
		c, err := loadConfig(root)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if c.Registry.Source != tt.source || !tt.check(c.Registry) {
			t.Errorf("%v: got registry %+v", tt.args, c.Registry)
		}
	}
}

func TestLoadConfigRejectsUnknownSource(t *testing.T) {
	root := newRootCommand()
	if err := root.ParseFlags([]string{"--source", "carrier-pigeon"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(root); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
