package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	LapRow    lipgloss.Style
	Fastest   lipgloss.Style
	Slowest   lipgloss.Style
	Selected  lipgloss.Style
	Message   lipgloss.Style
	Input     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 3),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		LapRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Fastest:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Slowest:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(44),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                               // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 3),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		LapRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Fastest:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Slowest:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")), // Orange
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("228")), // Yellow
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(44),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("250"),
		Header:    lipgloss.NewStyle().Bold(true),
		Clock:     lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder()).Padding(0, 3),
		Running:   lipgloss.NewStyle().Bold(true),
		Paused:    lipgloss.NewStyle().Faint(true),
		LapRow:    lipgloss.NewStyle(),
		Fastest:   lipgloss.NewStyle().Underline(true),
		Slowest:   lipgloss.NewStyle().Italic(true),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Message:   lipgloss.NewStyle().Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(44),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Underline(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// currentThemeKey tracks the map key of CurrentTheme for cycling and persistence.
var currentThemeKey = "default"

// SetTheme activates a theme by key. Unknown keys are ignored.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = t
	currentThemeKey = name
	return true
}

// bordered applies the theme's border colour to s.
func (t Theme) bordered(s lipgloss.Style) lipgloss.Style {
	return s.BorderForeground(t.Border)
}

// NextTheme returns the key after current in sorted order, wrapping around.
func NextTheme(current string) string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
