package style

import "github.com/charmbracelet/lipgloss"

// Palette accents.
var (
	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor    = Mauve
	SecondaryColor = Lavender
)
