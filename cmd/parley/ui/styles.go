// Package ui provides the visual components for the parley interactive CLI:
// theme and styles, overlay composition, and the command palette.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, same in both modes.
var (
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f4f5f6"),
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#7A9E3B"),
		Secondary:  lipgloss.Color("#e1e4e8"),
		Muted:      lipgloss.Color("#8a919c"),
		Border:     lipgloss.Color("#dce0e5"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#141d2b"),
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#8BC34A"),
		Accent:     lipgloss.Color("#4db6ac"),
		Secondary:  lipgloss.Color("#1e2a3d"),
		Muted:      lipgloss.Color("#6b7689"),
		Border:     lipgloss.Color("#2a3850"),
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name. "auto" and unknown names
// fall back to terminal detection.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses light or dark from common environment hints.
// Dark is the safer default for terminal emulators.
func DetectTheme() Theme {
	if cf := os.Getenv("COLORFGBG"); cf != "" {
		// Format "fg;bg"; background 0-6 or 8 means dark.
		parts := strings.Split(cf, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "7", "15":
				return LightTheme()
			}
		}
		return DarkTheme()
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM_PROGRAM")), "apple") {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles bundles the lipgloss styles used across the chat surface.
type Styles struct {
	Theme Theme

	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	UserInput lipgloss.Style
	StatusBar lipgloss.Style

	PaletteBox      lipgloss.Style
	PaletteTitle    lipgloss.Style
	PaletteItem     lipgloss.Style
	PaletteSelected lipgloss.Style
	PaletteLoading  lipgloss.Style
	PaletteEmpty    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Bold:      lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(theme.Muted),
		Error:     lipgloss.NewStyle().Foreground(Destructive),
		UserInput: lipgloss.NewStyle().Foreground(theme.Foreground).PaddingLeft(2),
		StatusBar: lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1),

		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		PaletteTitle:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		PaletteItem:     lipgloss.NewStyle().Foreground(theme.Foreground).PaddingLeft(1),
		PaletteSelected: lipgloss.NewStyle().Foreground(theme.Primary).Background(theme.Secondary).Bold(true),
		PaletteLoading:  lipgloss.NewStyle().Foreground(theme.Muted).Italic(true).PaddingLeft(1),
		PaletteEmpty:    lipgloss.NewStyle().Foreground(theme.Muted).Italic(true),
	}
}
