package components

import "github.com/charmbracelet/lipgloss"

// ButtonState describes how a button is drawn.
type ButtonState int

const (
	ButtonStateDefault ButtonState = iota
	ButtonStateFocus
	ButtonStateDisabled
)

// Button renders a labelled action.
func Button(theme Theme, label string, state ButtonState) string {
	base := lipgloss.NewStyle().Padding(0, 2)
	switch state {
	case ButtonStateFocus:
		return Style(theme, base, Background(PalettePrimary), Bold()).Render(label)
	case ButtonStateDisabled:
		return Style(theme, base, Muted(PaletteNeutral)).Faint(true).Render(label)
	default:
		return Style(theme, base, Foreground(PalettePrimary)).Render(label)
	}
}

// Buttons lays out buttons horizontally, separated by one space.
func Buttons(rendered ...string) string {
	spaced := make([]string, 0, len(rendered)*2)
	for i, b := range rendered {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
}
