package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.input.Width = max(20, min(60, msg.Width-10))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ThemeMsg:
		if msg.Seq != m.themeSeq {
			return m, nil
		}
		m.applyTheme(msg.Dark)
		return m, nil

	case ToastExpiredMsg:
		m.toasts.expire(msg.ID)
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Route)

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case DetailResultMsg:
		return m.handleDetailResult(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		switch m.route.Screen {
		case ScreenSearch:
			return m.updateSearch(msg)
		case ScreenDetail:
			return m.updateDetail(msg)
		default:
			return m.updateLanding(msg)
		}
	}

	if m.route.Screen == ScreenSearch && m.search.focus == focusInput {
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// navigate switches screens. Leaving a screen invalidates its in-flight
// lookups; the search screen keeps its state when returning from detail.
func (m Model) navigate(route Route) (tea.Model, tea.Cmd) {
	from := m.route
	m.logger.Debug(m.ctx, "navigate", "from", from.Path(), "to", route.Path())

	if from.Screen == ScreenDetail {
		m.detail.leave()
	}
	m.route = route
	m.help.ShowAll = false

	switch route.Screen {
	case ScreenLanding:
		m.search.reset()
		m.landing = newLandingModel()
		return m, nil
	case ScreenSearch:
		if from.Screen == ScreenLanding {
			m.search.reset()
		}
		if m.search.focus == focusInput {
			m.search.input.Focus()
		}
		return m, textinput.Blink
	case ScreenDetail:
		return m.startDetail(route.Code)
	}
	return m, nil
}

// toggleTheme applies the opposite theme immediately and persists it in the
// background. Results of earlier toggles still in flight are ignored.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.themeSeq++
	target := preferences.ThemeDark
	if m.theme.Dark {
		target = preferences.ThemeLight
	}
	m.applyTheme(target.IsDark())
	if m.prefs == nil {
		return m, nil
	}
	return m, toggleThemeCmd(m.ctx, m.prefs, m.themeWrites, m.themeSeq, target)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.search.stop()
	m.detail.stop()
	return m, tea.Quit
}
