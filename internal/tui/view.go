package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "🌍 Country Explorer"

// View renders the active screen with the header, toasts and key help.
func (m Model) View() string {
	var body string
	switch m.route.Screen {
	case ScreenSearch:
		body = m.searchView()
	case ScreenDetail:
		body = m.detailView()
	default:
		body = m.landingView()
	}

	sections := []string{m.headerView()}
	if toasts := m.toasts.view(m.theme); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, body, "", m.help.View(m.keys.forScreen(m.route.Screen)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView() string {
	title := appTitle
	if m.route.Screen == ScreenDetail && m.detail.code != "" {
		title += "  " + subtleStyle(m.theme).Render(m.route.Path())
	}
	mode := subtleStyle(m.theme).Render("[" + themeToggleLabel(m.theme.Dark) + "]")

	width := max(lipgloss.Width(title)+lipgloss.Width(mode)+1, min(m.width, panelMaxWidth))
	gap := width - lipgloss.Width(title) - lipgloss.Width(mode)
	return headerStyle(m.theme).Width(width).Render(title + spaces(gap) + mode)
}

func spaces(n int) string {
	return strings.Repeat(" ", max(1, n))
}
