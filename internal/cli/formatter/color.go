package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette. The light variants are picked when the light
// theme is active.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#8ec07c", Light: "#427b58"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#fb4934", Light: "#9d0006"}
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"}
	ColorPurple = lipgloss.AdaptiveColor{Dark: "#d3869b", Light: "#8f3f71"}
	ColorDim    = lipgloss.AdaptiveColor{Dark: "#928374", Light: "#7c6f64"}
	ColorFg     = lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"}
	ColorHeader = lipgloss.AdaptiveColor{Dark: "#fe8019", Light: "#af3a03"}
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ApplyTheme switches the palette between its dark and light variants.
func ApplyTheme(theme string) {
	lipgloss.SetHasDarkBackground(theme != domain.ThemeLight)
}

// ProgressStyle returns the style for a completion percentage: green above
// two thirds, yellow above one third, red below.
func ProgressStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 66:
		return StyleGreen
	case pct >= 33:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
