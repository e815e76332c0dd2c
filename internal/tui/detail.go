package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

const (
	detailLoadingText = "Loading country details..."
	funFactHeading    = "Fun Fact"
)

type detailStatus int

const (
	detailLoading detailStatus = iota
	detailReady
	detailNotFound
)

type detailModel struct {
	code    string
	status  detailStatus
	detail  explorer.Detail
	message string
	gen     uint64
	cancel  context.CancelFunc
}

func (d *detailModel) stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// leave invalidates any in-flight lookup for the screen.
func (d *detailModel) leave() {
	d.stop()
	d.gen++
}

// startDetail enters the combined loading state for code.
func (m Model) startDetail(code string) (Model, tea.Cmd) {
	m.detail.stop()
	m.detail.gen++
	ctx, cancel := context.WithCancel(m.ctx)
	m.detail.cancel = cancel
	m.detail.code = code
	m.detail.status = detailLoading
	m.detail.detail = explorer.Detail{}
	m.detail.message = ""

	m.logger.Debug(ctx, "country detail requested", "code", code, "gen", m.detail.gen)
	return m, detailCmd(ctx, m.explorer, m.detail.gen, code)
}

func (m Model) handleDetailResult(msg DetailResultMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.detail.gen || m.route.Screen != ScreenDetail {
		m.logger.Debug(m.ctx, "discarding stale detail result", "code", msg.Code, "gen", msg.Gen)
		return m, nil
	}
	m.detail.stop()

	if errors.Is(msg.Err, context.Canceled) {
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Debug(m.ctx, "country detail failed", "code", msg.Code, "error", msg.Err)
		m.detail.status = detailNotFound
		m.detail.message = explorer.DetailFailureMessage(msg.Err)
		return m, nil
	}

	m.detail.status = detailReady
	m.detail.detail = msg.Detail
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.navigate(SearchRoute())
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) detailView() string {
	theme := m.theme
	switch m.detail.status {
	case detailLoading:
		return m.spinner.View() + " " + detailLoadingText
	case detailNotFound:
		return components.Alert(theme, components.AlertVariantError, m.detail.message)
	}

	c := m.detail.detail.Country
	width := min(m.width, panelMaxWidth) - 2
	inner := width - 6

	heading := titleStyle(theme).Render(c.Flag + " " + c.DisplayName())
	official := ""
	if c.Name.Official != "" && c.Name.Official != c.DisplayName() {
		official = subtleStyle(theme).Render(c.Name.Official)
	}

	fields := lipgloss.NewStyle().Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left,
		components.Field(theme, "Capital", c.PrimaryCapital()),
		components.Field(theme, "Region", orNotAvailable(c.Region)),
		components.Field(theme, "Subregion", c.SubregionOrNA()),
		components.Field(theme, "Population", c.FormattedPopulation()),
		components.Field(theme, "Languages", c.LanguageList()),
		components.Field(theme, "Currencies", c.CurrencyList()),
		components.Field(theme, "Timezones", c.TimezoneList()),
		components.Field(theme, "Flag", c.FlagReference()),
	))

	info := panelStyle(theme, width).Render(lipgloss.JoinVertical(lipgloss.Left, heading, official, "", fields))

	fact := panelStyle(theme, width).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle(theme).Render(funFactHeading),
		lipgloss.NewStyle().Width(inner).Render(m.detail.detail.FunFact),
	))

	return lipgloss.JoinVertical(lipgloss.Left, info, fact)
}

func orNotAvailable(value string) string {
	if value == "" {
		return country.NotAvailable
	}
	return value
}
