package ui

import (
	"fmt"
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
)

// isDarkBg caches the terminal background detection result at package init.
var isDarkBg = lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

// colorHex returns the hex string representation of a color.Color.
func colorHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// AdaptiveColor picks between a light-mode and dark-mode hex color string
// based on the detected terminal background.
func AdaptiveColor(light, dark string) color.Color {
	if isDarkBg {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

// IsDarkBackground returns the cached terminal background detection result.
func IsDarkBackground() bool {
	return isDarkBg
}

// Theme is the color scheme of the widget.
type Theme struct {
	Primary color.Color
	Rain    color.Color
	Success color.Color
	Error   color.Color
	Text    color.Color
	Muted   color.Color
	Border  color.Color
	Accent  color.Color
}

var currentTheme = DefaultTheme()

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is based on the Catppuccin Latte (light) and Mocha (dark)
// palettes, leaning on the blues for the rain.
func DefaultTheme() Theme {
	return Theme{
		Primary: AdaptiveColor("#1e66f5", "#89b4fa"), // Blue
		Rain:    AdaptiveColor("#04a5e5", "#89dceb"), // Sky
		Success: AdaptiveColor("#40a02b", "#a6e3a1"), // Green
		Error:   AdaptiveColor("#d20f39", "#f38ba8"), // Red
		Text:    AdaptiveColor("#4c4f69", "#cdd6f4"), // Text
		Muted:   AdaptiveColor("#6c6f85", "#a6adc8"), // Subtext 0
		Border:  AdaptiveColor("#acb0be", "#585b70"), // Surface 2
		Accent:  AdaptiveColor("#ea76cb", "#f5c2e7"), // Pink
	}
}

// StyleCard is the rounded container each history entry is drawn in.
func StyleCard(width int, theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// StyleHeader is used for the title.
func StyleHeader(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
}

// StyleMuted de-emphasizes supplementary text.
func StyleMuted(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Muted).
		Italic(true)
}

// StyleError renders failure messages.
func StyleError(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true)
}
