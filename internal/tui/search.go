package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/validation"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

const (
	searchPlaceholder = "Search for a country..."
	regionPlaceholder = "Select a Region"
	searchLoadingText = "Searching for countries..."
)

type searchStatus int

const (
	searchIdle searchStatus = iota
	searchLoading
	searchResults
	searchEmpty
)

func (s searchStatus) String() string {
	switch s {
	case searchLoading:
		return "loading"
	case searchResults:
		return "results"
	case searchEmpty:
		return "empty"
	default:
		return "idle"
	}
}

type searchFocus int

const (
	focusInput searchFocus = iota
	focusRegions
	focusGrid
	searchFocusCount
)

type searchModel struct {
	input        textinput.Model
	status       searchStatus
	focus        searchFocus
	regionCursor int
	region       country.Region
	results      []country.Country
	message      string
	cursor       int
	gen          uint64
	cancel       context.CancelFunc
}

func newSearchModel() searchModel {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = 80
	ti.Width = 40
	ti.Focus()

	return searchModel{input: ti, status: searchIdle, focus: focusInput}
}

// stop cancels the in-flight lookup, if any.
func (s *searchModel) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// begin supersedes any in-flight lookup and enters the loading state.
func (s *searchModel) begin(parent context.Context) (context.Context, uint64) {
	s.stop()
	s.gen++
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.status = searchLoading
	s.results = nil
	s.message = ""
	s.cursor = 0
	return ctx, s.gen
}

// reset discards all state and invalidates in-flight lookups.
func (s *searchModel) reset() {
	s.stop()
	gen := s.gen + 1
	*s = newSearchModel()
	s.gen = gen
}

func (s *searchModel) setFocus(focus searchFocus) {
	if focus == focusGrid && len(s.results) == 0 {
		focus = focusInput
	}
	s.focus = focus
	if focus == focusInput {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

func (s *searchModel) cycleFocus(step int) {
	next := s.focus
	for range searchFocusCount {
		next = (next + searchFocus(step) + searchFocusCount) % searchFocusCount
		if next != focusGrid || len(s.results) > 0 {
			break
		}
	}
	s.setFocus(next)
}

func (s *searchModel) moveCursor(delta int) {
	if len(s.results) == 0 {
		return
	}
	next := s.cursor + delta
	if next < 0 || next >= len(s.results) {
		return
	}
	s.cursor = next
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleAny):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Exit):
		return m.navigate(LandingRoute())
	case key.Matches(msg, m.keys.Clear):
		m.search.input.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.NextFocus):
		m.search.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.search.cycleFocus(-1)
		return m, nil
	}

	switch m.search.focus {
	case focusRegions:
		return m.updateRegionSelector(msg)
	case focusGrid:
		return m.updateGrid(msg)
	default:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitSearch()
		}
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateRegionSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	regions := country.Regions()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.search.regionCursor = (m.search.regionCursor + len(regions) - 1) % len(regions)
	case key.Matches(msg, m.keys.Right):
		m.search.regionCursor = (m.search.regionCursor + 1) % len(regions)
	case key.Matches(msg, m.keys.Submit):
		return m.selectRegion(regions[m.search.regionCursor])
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.gridColumns()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.search.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.search.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.search.moveCursor(-columns)
	case key.Matches(msg, m.keys.Down):
		m.search.moveCursor(columns)
	case key.Matches(msg, m.keys.Submit):
		return m.openSelected()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

// submitSearch issues a name lookup. Blank input never reaches the network.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	query, err := validation.SearchQuery(m.search.input.Value())
	if err != nil {
		m.search.stop()
		m.search.gen++
		m.search.status = searchEmpty
		m.search.results = nil
		m.search.region = ""
		m.search.message = explorer.SearchFailureMessage(err)
		return m, m.toasts.push(components.AlertVariantError, m.search.message)
	}

	ctx, gen := m.search.begin(m.ctx)
	m.search.region = ""
	m.logger.Debug(ctx, "name search issued", "query", query, "gen", gen)
	return m, searchCmd(ctx, m.explorer, gen, query)
}

// selectRegion clears the query text and issues exactly one region lookup.
func (m Model) selectRegion(region country.Region) (tea.Model, tea.Cmd) {
	m.search.input.SetValue("")
	ctx, gen := m.search.begin(m.ctx)
	m.search.region = region
	for i, r := range country.Regions() {
		if r == region {
			m.search.regionCursor = i
		}
	}
	m.logger.Debug(ctx, "region lookup issued", "region", region.String(), "gen", gen)
	return m, regionCmd(ctx, m.explorer, gen, region)
}

func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.search.gen {
		m.logger.Debug(m.ctx, "discarding stale search result", "gen", msg.Gen, "current", m.search.gen)
		return m, nil
	}
	m.search.stop()

	if errors.Is(msg.Err, context.Canceled) {
		m.search.status = searchIdle
		return m, nil
	}

	if msg.Err != nil || len(msg.Countries) == 0 {
		m.search.status = searchEmpty
		m.search.results = nil
		if msg.ByRegion() {
			m.search.message = explorer.RegionFailureMessage(msg.Err)
		} else {
			m.search.message = explorer.SearchFailureMessage(msg.Err)
		}
		if apperrors.IsNetwork(msg.Err) {
			m.logger.Warn(m.ctx, "lookup failed", "query", msg.Query, "region", msg.Region.String(), "error", msg.Err)
		}
		if m.search.focus == focusGrid {
			m.search.setFocus(focusInput)
		}
		return m, m.toasts.push(components.AlertVariantError, m.search.message)
	}

	m.search.status = searchResults
	m.search.results = msg.Countries
	m.search.cursor = 0
	m.search.message = ""

	notice := explorer.FoundMessage(len(msg.Countries))
	if msg.ByRegion() {
		notice = explorer.RegionLoadedMessage(len(msg.Countries), msg.Region)
	}
	return m, m.toasts.push(components.AlertVariantSuccess, notice)
}

// openSelected announces and opens the detail screen for the highlighted card.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.search.cursor < 0 || m.search.cursor >= len(m.search.results) {
		return m, nil
	}
	selected := m.search.results[m.search.cursor]
	toastCmd := m.toasts.push(components.AlertVariantInfo, explorer.ExploringMessage(selected.DisplayName()))

	next, navCmd := m.navigate(CountryRoute(selected.Code()))
	return next, tea.Batch(toastCmd, navCmd)
}

func (m Model) gridColumns() int {
	return components.GridColumns(m.width, cardWidth)
}

func (m Model) searchView() string {
	theme := m.theme
	sections := []string{m.regionSelectorView(), m.search.input.View(), ""}

	switch m.search.status {
	case searchLoading:
		sections = append(sections, m.spinner.View()+" "+searchLoadingText)
	case searchEmpty:
		sections = append(sections, components.Alert(theme, components.AlertVariantError, m.search.message))
	case searchResults:
		sections = append(sections, m.gridView())
	default:
		sections = append(sections, subtleStyle(theme).Render(explorer.MsgSearchIdle))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) regionSelectorView() string {
	theme := m.theme
	label := subtleStyle(theme).Render("Region:")
	if m.search.region == "" && m.search.focus != focusRegions {
		label += " " + subtleStyle(theme).Faint(true).Render(regionPlaceholder)
	}

	buttons := make([]string, 0, len(country.Regions()))
	for i, region := range country.Regions() {
		state := components.ButtonStateDefault
		switch {
		case m.search.focus == focusRegions && i == m.search.regionCursor:
			state = components.ButtonStateFocus
		case region != m.search.region:
			state = components.ButtonStateDisabled
		}
		buttons = append(buttons, components.Button(theme, region.String(), state))
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, components.Buttons(buttons...))
}

func (m Model) gridView() string {
	columns := m.gridColumns()
	visibleRows := max(1, (m.height-chromeHeight)/cardHeight)
	cursorRow := m.search.cursor / columns
	firstRow := max(0, cursorRow-visibleRows+1)

	start := firstRow * columns
	end := min(len(m.search.results), start+visibleRows*columns)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		card := components.CountryCard{
			Country:  m.search.results[i],
			Selected: m.search.focus == focusGrid && i == m.search.cursor,
			Width:    cardWidth,
		}
		cards = append(cards, card.View(m.theme))
	}

	grid := components.Grid(cards, columns)
	if hidden := len(m.search.results) - (end - start); hidden > 0 {
		grid += "\n" + subtleStyle(m.theme).Render(moreCountries(hidden))
	}
	return grid
}

func moreCountries(n int) string {
	if n == 1 {
		return "1 more country, use the arrow keys to scroll"
	}
	return strconv.Itoa(n) + " more countries, use the arrow keys to scroll"
}
