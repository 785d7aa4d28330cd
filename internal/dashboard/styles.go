package dashboard

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default thresholds for metric severity levels.
const (
	WarningThreshold  = 70
	CriticalThreshold = 90
)

// Bar glyphs.
const (
	barFilled = "█"
	barEmpty  = "░"
)

// Theme is a named color palette.
type Theme struct {
	Name string

	Healthy  lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	Accent lipgloss.Color
	Border lipgloss.Color
	Graph  lipgloss.Color
}

// synthwaveTheme is the default neon palette.
var synthwaveTheme = Theme{
	Name:          "synthwave",
	Healthy:       lipgloss.Color("#39FF14"),
	Warning:       lipgloss.Color("#FFAA00"),
	Critical:      lipgloss.Color("#FF0055"),
	TextPrimary:   lipgloss.Color("#FFFFFF"),
	TextSecondary: lipgloss.Color("#B4B4D0"),
	TextMuted:     lipgloss.Color("#6B6B8D"),
	Accent:        lipgloss.Color("#FF2E97"),
	Border:        lipgloss.Color("#2A2A4A"),
	Graph:         lipgloss.Color("#00FFFF"),
}

// plainTheme sticks to the basic ANSI palette for limited terminals.
var plainTheme = Theme{
	Name:          "plain",
	Healthy:       lipgloss.Color("2"),
	Warning:       lipgloss.Color("3"),
	Critical:      lipgloss.Color("1"),
	TextPrimary:   lipgloss.Color("15"),
	TextSecondary: lipgloss.Color("7"),
	TextMuted:     lipgloss.Color("8"),
	Accent:        lipgloss.Color("6"),
	Border:        lipgloss.Color("8"),
	Graph:         lipgloss.Color("6"),
}

// ThemeByName returns the named theme, defaulting to synthwave.
func ThemeByName(name string) Theme {
	if name == "plain" {
		return plainTheme
	}
	return synthwaveTheme
}

// Styles bundles a theme with the configured severity thresholds and the
// derived lipgloss styles used across the dashboard.
type Styles struct {
	Theme    Theme
	warning  int
	critical int

	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Alert       lipgloss.Style
}

// NewStyles builds the style set for a theme. Thresholds outside (0,100]
// fall back to the defaults.
func NewStyles(theme Theme, warning, critical int) Styles {
	if warning <= 0 || critical <= 0 || warning >= critical || critical > 100 {
		warning = WarningThreshold
		critical = CriticalThreshold
	}
	return Styles{
		Theme:    theme,
		warning:  warning,
		critical: critical,

		Title:       lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(theme.TextSecondary),
		Value:       lipgloss.NewStyle().Foreground(theme.TextPrimary),
		Muted:       lipgloss.NewStyle().Foreground(theme.TextMuted),
		Accent:      lipgloss.NewStyle().Foreground(theme.Accent),
		Header:      lipgloss.NewStyle().Foreground(theme.TextPrimary).Bold(true).Padding(0, 1),
		Footer:      lipgloss.NewStyle().Foreground(theme.TextMuted).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		TabInactive: lipgloss.NewStyle().Foreground(theme.TextMuted),
		Alert:       lipgloss.NewStyle().Foreground(theme.Critical).Bold(true),
	}
}

// MetricColor returns the severity color for a percentage.
func (s Styles) MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= float64(s.critical):
		return s.Theme.Critical
	case percent >= float64(s.warning):
		return s.Theme.Warning
	default:
		return s.Theme.Healthy
	}
}

// MetricStyle returns a style with the severity color for a percentage.
func (s Styles) MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.MetricColor(percent))
}

// BarCells computes the filled cell count for a value bar: current is clamped
// to [0, max] and a zero max is treated as one so an empty gauge still
// renders.
func BarCells(current, max float64, length int) int {
	if length < 1 {
		length = 1
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	if max == 0 {
		max = 1
	}

	filled := int(math.Floor(current * float64(length) / max))
	if filled > length {
		filled = length
	}
	return filled
}

// Bar renders a colored value bar of the given length. Filled cells take the
// severity color of current/max, empty cells are dimmed.
func (s Styles) Bar(current, max float64, length int) string {
	filled := BarCells(current, max, length)

	percent := 0.0
	if max > 0 {
		percent = current / max * 100
	}

	filledStyle := lipgloss.NewStyle().Foreground(s.MetricColor(percent))
	emptyStyle := lipgloss.NewStyle().Foreground(s.Theme.TextMuted)

	if length < 1 {
		length = 1
	}
	return filledStyle.Render(strings.Repeat(barFilled, filled)) +
		emptyStyle.Render(strings.Repeat(barEmpty, length-filled))
}

// PercentBar renders a bar for a 0-100 percentage value.
func (s Styles) PercentBar(percent float64, length int) string {
	return s.Bar(percent, 100, length)
}
