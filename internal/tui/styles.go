package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
)

const (
	cardWidth     = 30
	cardHeight    = 6
	chromeHeight  = 14
	panelMaxWidth = 90
)

func titleStyle(theme components.Theme) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle(),
		components.Foreground(components.PalettePrimary),
		components.Bold(),
	)
}

func subtleStyle(theme components.Theme) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle(), components.Foreground(components.PaletteNeutral))
}

func headerStyle(theme components.Theme) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle(),
		components.Foreground(components.PalettePrimary),
		components.Bold(),
	).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Palette.Neutral.Muted).
		MarginBottom(1)
}

func panelStyle(theme components.Theme, width int) lipgloss.Style {
	return components.Style(theme, lipgloss.NewStyle(),
		components.Border(components.BorderVariantRounded, components.PaletteNeutral),
		components.Padding(1, 2),
	).Width(width)
}

func helpStyles(theme components.Theme) help.Styles {
	styles := help.New().Styles
	keyStyle := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	descStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)
	sepStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)

	styles.ShortKey = keyStyle
	styles.ShortDesc = descStyle
	styles.ShortSeparator = sepStyle
	styles.FullKey = keyStyle
	styles.FullDesc = descStyle
	styles.FullSeparator = sepStyle
	styles.Ellipsis = sepStyle
	return styles
}

func spinnerStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
}

// themeToggleLabel names the theme a toggle would switch to.
func themeToggleLabel(dark bool) string {
	if dark {
		return "Light Mode"
	}
	return "Dark Mode"
}
