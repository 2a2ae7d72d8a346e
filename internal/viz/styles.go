package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusDone = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(16)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00aaaa")).
		Bold(true)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	idleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
)

// BoxWithTitle renders content in a rounded box with title in the top
// border.
func BoxWithTitle(title, content string, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(lipgloss.Color("#444466")).
		Width(width).
		Padding(0, 1)

	fill := width - lipgloss.Width(title) - 3
	if fill < 0 {
		fill = 0
	}
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
	header := border.Render("╭─ ") + TitleStyle.Render(title) + border.Render(" "+strings.Repeat("─", fill)+"╮")
	return header + "\n" + box.Render(content)
}

// Row renders a label/value pair.
func Row(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value)
}

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(KeyHint.Render(pairs[i]) + Subtle.Render(" "+pairs[i+1]))
	}
	return b.String()
}
