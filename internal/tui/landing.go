package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
)

const (
	landingHeadline = "Explore the World with Country Explorer 🌍"
	landingTagline  = "Discover countries, their flags, capitals, populations, and more, now with a fun fact for each country."
	landingTeaser   = "Search for a country..."
	landingStart    = "Start Exploring"
)

const (
	landingFocusStart = iota
	landingFocusTheme
	landingButtons
)

type landingModel struct {
	focus int
}

func newLandingModel() landingModel {
	return landingModel{focus: landingFocusStart}
}

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.Right):
		m.landing.focus = (m.landing.focus + 1) % landingButtons
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus), key.Matches(msg, m.keys.Left):
		m.landing.focus = (m.landing.focus + landingButtons - 1) % landingButtons
		return m, nil
	case key.Matches(msg, m.keys.Start):
		if msg.String() == "enter" && m.landing.focus == landingFocusTheme {
			return m.toggleTheme()
		}
		return m.navigate(SearchRoute())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) landingView() string {
	theme := m.theme
	width := min(m.width, panelMaxWidth)

	headline := titleStyle(theme).Render(landingHeadline)
	tagline := subtleStyle(theme).Width(width).Align(lipgloss.Center).Render(landingTagline)

	teaser := components.Style(theme, lipgloss.NewStyle(),
		components.Border(components.BorderVariantRounded, components.PaletteNeutral),
		components.Muted(components.PaletteNeutral),
		components.Padding(0, 1),
	).Width(min(48, width-2)).Faint(true).Render(landingTeaser)

	startState, themeState := components.ButtonStateDefault, components.ButtonStateDefault
	if m.landing.focus == landingFocusStart {
		startState = components.ButtonStateFocus
	} else {
		themeState = components.ButtonStateFocus
	}
	buttons := components.Buttons(
		components.Button(theme, landingStart, startState),
		components.Button(theme, themeToggleLabel(theme.Dark), themeState),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, headline, "", tagline, "", teaser, "", buttons)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
