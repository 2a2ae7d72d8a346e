package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/sketch"
)

// Picker lists registry entries and starts the live view for the chosen
// one.
type Picker struct {
	names         []string
	cursor        int
	live          tea.Model
	newLive       func(name string) Model
	width, height int
}

func NewPicker(names []string, newLive func(name string) Model) Picker {
	return Picker{names: names, newLive: newLive}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.live != nil {
		var cmd tea.Cmd
		p.live, cmd = p.live.Update(msg)
		return p, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.names)-1 {
				p.cursor++
			}
		case "enter", " ":
			if len(p.names) == 0 {
				return p, nil
			}
			return p.start(p.names[p.cursor])
		}
	}
	return p, nil
}

func (p Picker) start(name string) (tea.Model, tea.Cmd) {
	var live tea.Model = p.newLive(name)
	cmd := live.Init()
	if p.width > 0 && p.height > 0 {
		live, _ = live.Update(tea.WindowSizeMsg{Width: p.width, Height: p.height})
	}
	p.live = live
	return p, cmd
}

// Selected returns the name under the cursor.
func (p Picker) Selected() string {
	if len(p.names) == 0 {
		return ""
	}
	return p.names[p.cursor]
}

func (p Picker) View() string {
	if p.live != nil {
		return p.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + TitleStyle.Render("RANDWALK") + "\n    " + Subtle.Render("seeded random walks") + "\n    " + Subtle.Render("───────────────────") + "\n\n")
	if len(p.names) == 0 {
		b.WriteString("    " + Subtle.Render("registry has no named seeds") + "\n")
	}
	for i, name := range p.names {
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s\n", cursorStyle.Render("▸"), selectedStyle.Render(name)))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", idleStyle.Render(name)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "play", "q", "quit") + "\n")
	return b.String()
}

// RunPicker shows the picker and then the live view for the chosen entry.
func RunPicker(ctx context.Context, names []string, loader *sketch.Loader, opts Options, logger *zap.Logger) error {
	newLive := func(name string) Model {
		o := opts
		o.Name = name
		return NewModel(ctx, loader, o, logger)
	}
	_, err := tea.NewProgram(NewPicker(names, newLive), tea.WithAltScreen()).Run()
	return err
}
