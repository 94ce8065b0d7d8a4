package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	HeaderStyle   lipgloss.Style
	Subtle        lipgloss.Style
	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	MetricValue   lipgloss.Style
	MetricLabel   lipgloss.Style
	KeyHint       lipgloss.Style

	graphStyle = lipgloss.NewStyle().Padding(1, 0)

	// seriesColors cycles through for panels with several curves.
	seriesColors []asciigraph.AnsiColor
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Secondary)

	Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	StatusRunning = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	StatusPaused = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Warning)

	MetricValue = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	MetricLabel = lipgloss.NewStyle().
		Foreground(t.Text).
		Width(16)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	seriesColors = t.Series
}

// Separator renders a muted horizontal rule.
func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
