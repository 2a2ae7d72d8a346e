package viz

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/randwalk/internal/registry"
	"github.com/san-kum/randwalk/internal/sketch"
)

func newTestModel(t *testing.T, name string) Model {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "seeds.json")
	doc := `{"seeds":[{"name":"tiny","seed":3,"depth":2},{"name":"big","seed":5,"depth":40}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	opts := Options{Name: name, FPS: 30, DataDir: dir, Sketch: sketch.DefaultOptions()}
	loader := sketch.NewLoader(&registry.FileFetcher{Path: path}, nil)
	return NewModel(context.Background(), loader, opts, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func loadNow(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.load()()
	m, _ = update(t, m, msg)
	return m
}

func TestModelRunsToDone(t *testing.T) {
	m := newTestModel(t, "tiny")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 11})

	if w, h := m.screen.Size(); w != 20 || h != 20 {
		t.Fatalf("screen = %dx%d, want 20x20", w, h)
	}
	m = loadNow(t, m)
	if m.session.State() != sketch.StatePreviewSplash {
		t.Fatalf("state = %s", m.session.State())
	}

	t0 := time.Now()
	var cmd tea.Cmd
	for i := 0; i < 4; i++ {
		m, cmd = update(t, m, TickMsg(t0.Add(time.Duration(i)*33*time.Millisecond)))
	}
	if m.session.State() != sketch.StateDone {
		t.Fatalf("state = %s, want DONE", m.session.State())
	}
	if cmd != nil {
		t.Error("tick loop should stop once the walk is done")
	}
	if !strings.Contains(m.View(), "DONE") {
		t.Error("status line should show DONE")
	}
}

func TestModelTicksBeforeWindowSize(t *testing.T) {
	m := newTestModel(t, "tiny")
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("ticks should keep coming until the window is sized")
	}
	if m.View() != "" {
		t.Error("nothing to show before the window is sized")
	}
}

func TestModelFailure(t *testing.T) {
	m := newTestModel(t, "missing")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	m = loadNow(t, m)
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.session.State() != sketch.StateMessage {
		t.Errorf("state = %s", m.session.State())
	}
	if !strings.Contains(m.View(), "Missing key name") {
		t.Error("failure message should be on screen")
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, "big")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 21})
	m = loadNow(t, m)

	showStats := m.session.ShowStats()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.session.ShowStats() == showStats {
		t.Error("s should toggle stats")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("? should show help")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !m.recording {
		t.Fatal("g should start recording")
	}
	t0 := time.Now()
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg(t0.Add(time.Duration(i)*33*time.Millisecond)))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.recording {
		t.Fatal("second g should stop recording")
	}
	if _, err := os.Stat(filepath.Join(m.dataDir, "big.gif")); err != nil {
		t.Errorf("gif not written: %v", err)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, "big")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 21})
	m = loadNow(t, m)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 31})
	if m.session.State() != sketch.StatePreviewSplash {
		t.Errorf("state = %s, want PREVIEW_SPLASH", m.session.State())
	}
	if m.session.Preview().Width != 50 || m.session.Preview().Height != 60 {
		t.Errorf("preview = %dx%d", m.session.Preview().Width, m.session.Preview().Height)
	}
}

func TestPicker(t *testing.T) {
	var started string
	p := NewPicker([]string{"tiny", "big"}, func(name string) Model {
		started = name
		return newTestModel(t, name)
	})

	next, _ := p.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	p = next.(Picker)
	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	p = next.(Picker)
	if p.Selected() != "big" {
		t.Errorf("selected = %s", p.Selected())
	}
	if !strings.Contains(p.View(), "tiny") {
		t.Error("menu should list entries")
	}

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(Picker)
	if started != "big" || cmd == nil {
		t.Errorf("enter should start the live view, started=%q", started)
	}
	if !p.live.(Model).ready {
		t.Error("live view should receive the known window size")
	}
}
