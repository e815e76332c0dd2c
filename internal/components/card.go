package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

// MinCardWidth is the narrowest card the grid will draw.
const MinCardWidth = 24

// CountryCard renders one search result.
type CountryCard struct {
	Country  country.Country
	Selected bool
	// Width is the outer width including the border.
	Width int
}

// View renders the card with theme.
func (c CountryCard) View(theme Theme) string {
	width := c.Width
	if width < MinCardWidth {
		width = MinCardWidth
	}

	slot := PaletteNeutral
	variant := BorderVariantRounded
	if c.Selected {
		slot = PalettePrimary
		variant = BorderVariantThick
	}

	// border 2 + padding 2
	inner := width - 4
	title := Style(theme, lipgloss.NewStyle(), Foreground(PalettePrimary), Bold()).
		MaxWidth(inner).
		Render(strings.TrimSpace(c.Country.Flag + " " + c.Country.DisplayName()))

	lines := []string{
		title,
		Field(theme, "Capital", c.Country.PrimaryCapital()),
		Field(theme, "Region", orNA(c.Country.Region)),
		Field(theme, "Population", c.Country.FormattedPopulation()),
	}

	box := Style(theme, lipgloss.NewStyle(), Border(variant, slot), Padding(0, 1)).
		Width(width - 2)
	return box.Render(strings.Join(lines, "\n"))
}

// Field renders a "Label: value" line.
func Field(theme Theme, label, value string) string {
	labelStyle := Style(theme, lipgloss.NewStyle(), Muted(PaletteNeutral), Bold())
	valueStyle := Style(theme, lipgloss.NewStyle(), Foreground(PaletteSurface))
	if theme.Dark {
		valueStyle = Style(theme, lipgloss.NewStyle(), Foreground(PaletteNeutral))
	}
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// Grid lays cards out in rows of columns.
func Grid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := make([]string, 0, (len(cards)+columns-1)/columns)
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// GridColumns returns how many cards of cardWidth fit in width.
func GridColumns(width, cardWidth int) int {
	if cardWidth <= 0 {
		return 1
	}
	return max(1, width/cardWidth)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return country.NotAvailable
	}
	return value
}
