package viz

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/config"
	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/sketch"
)

type TickMsg time.Time

type loadedMsg sketch.Outcome

// Options configure the live view.
type Options struct {
	Name    string
	FPS     int
	DataDir string
	Sketch  sketch.Options
}

// Model runs one sketch session in the terminal. The bottom line is a
// status bar; the rest of the window is the drawing surface.
type Model struct {
	ctx       context.Context
	name      string
	session   *sketch.Session
	screen    *Screen
	logger    *zap.Logger
	interval  time.Duration
	dataDir   string
	ready     bool
	recorder  *raster.Recorder
	recording bool
	status    string
	showHelp  bool
}

func NewModel(ctx context.Context, loader *sketch.Loader, opts Options, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	screen := NewScreen(0, 0)
	return Model{
		ctx:      ctx,
		name:     opts.Name,
		session:  sketch.NewSession(opts.Name, screen, loader, opts.Sketch),
		screen:   screen,
		logger:   logger,
		interval: time.Second / time.Duration(fps),
		dataDir:  opts.DataDir,
		recorder: &raster.Recorder{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

func (m Model) load() tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg { return loadedMsg(session.OnLoad(ctx)) }
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Session exposes the underlying session.
func (m Model) Session() *sketch.Session { return m.session }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.stopRecording()
			}
			return m, tea.Quit
		case "s":
			m.session.SetShowStats(!m.session.ShowStats())
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recording = true
				m.recorder.Reset()
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		rows := msg.Height - 1
		if rows < 1 {
			rows = 1
		}
		m.screen.Resize(msg.Width, rows)
		w, h := m.screen.Size()
		if !m.ready {
			m.ready = true
			m.session.OnCanvasReady(w, h)
		} else {
			m.session.OnResize(w, h)
		}
	case loadedMsg:
		m.session.Complete(sketch.Outcome(msg))
		if err := m.session.Err(); err != nil {
			m.logger.Warn("session failed", zap.String("name", m.name), zap.Error(err))
		}
	case TickMsg:
		if !m.ready {
			return m, m.tick()
		}
		if m.session.OnTick(time.Time(msg)) && m.recording {
			m.recorder.Capture(m.screen.Image(), int(m.interval/(10*time.Millisecond)))
		}
		if m.session.State() == sketch.StateDone {
			m.logger.Info("walk complete", zap.String("name", m.name), zap.Int("points", m.session.Frame()))
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) stopRecording() {
	m.recording = false
	name := m.name
	if name == "" {
		name = "walk"
	}
	path := filepath.Join(m.dataDir, name+".gif")
	if err := m.recorder.Save(path); err != nil {
		m.logger.Error("gif save failed", zap.String("path", path), zap.Error(err))
		m.status = "gif failed: " + err.Error()
		return
	}
	m.logger.Info("gif saved", zap.String("path", path), zap.Int("frames", m.recorder.Frames()))
	m.status = "saved " + path
	m.recorder.Reset()
}

func (m Model) statusLine() string {
	state := m.session.State()
	stateStyle := StatusRunning
	if state == sketch.StateDone {
		stateStyle = StatusDone
	}
	line := TitleStyle.Render(m.name) + " " + stateStyle.Render(state.String()) +
		Subtle.Render(fmt.Sprintf(" %d/%d", m.session.Frame(), len(m.session.Walk())))
	if m.recording {
		line += " " + StatusRecording.Render("REC")
	} else if m.status != "" {
		line += " " + Subtle.Render(m.status)
	}
	return line + "  " + hints("s", "stats", "g", "gif", "?", "help", "q", "quit")
}

const helpText = `KEYBOARD SHORTCUTS

  S   toggle stats overlay
  G   start/stop GIF recording
  ?   toggle this help
  Q   quit`

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.showHelp {
		help := lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2).
			Render(helpText)
		return help + "\n" + m.statusLine()
	}
	return m.screen.String() + "\n" + m.statusLine()
}

// Run starts the live view and blocks until the user quits.
func Run(ctx context.Context, loader *sketch.Loader, opts Options, logger *zap.Logger) error {
	_, err := tea.NewProgram(NewModel(ctx, loader, opts, logger), tea.WithAltScreen()).Run()
	return err
}
