package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Series    []asciigraph.AnsiColor
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#444466"),
		Accent:    lipgloss.Color("#00ccff"),
		Text:      lipgloss.Color("#888899"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff4444"),
		Series: []asciigraph.AnsiColor{
			asciigraph.Blue,
			asciigraph.Red,
			asciigraph.Green,
			asciigraph.Yellow,
			asciigraph.Magenta,
			asciigraph.Cyan,
		},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Series: []asciigraph.AnsiColor{
			asciigraph.Lime,
			asciigraph.Green,
			asciigraph.LightGreen,
			asciigraph.DarkGreen,
		},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Series: []asciigraph.AnsiColor{
			asciigraph.DodgerBlue,
			asciigraph.Gold,
			asciigraph.Aqua,
			asciigraph.Coral,
		},
	}

	CurrentTheme = ThemeDefault

	Themes = []Theme{
		ThemeDefault,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// SetTheme changes the current theme and restyles all output.
func SetTheme(name string) error {
	t, err := GetTheme(name)
	if err != nil {
		return err
	}
	CurrentTheme = t
	applyTheme(t)
	return nil
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
