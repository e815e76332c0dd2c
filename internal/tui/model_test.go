package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

func TestLandingStartsSearch(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())
	view := h.model.View()
	assert.Contains(t, view, "Country Explorer")
	assert.Contains(t, view, "Start Exploring")
	assert.Contains(t, view, "Dark Mode")

	h.press(keyEnter)
	require.Equal(t, ScreenSearch, h.model.Route().Screen)
	assert.Contains(t, h.model.View(), explorer.MsgSearchIdle)
}

func TestBlankSearchMakesNoRequest(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.typeText("   ")
	h.press(keyEnter)

	names, regions := h.lookup.calls()
	require.Empty(t, names)
	require.Empty(t, regions)
	require.Equal(t, searchEmpty, h.model.search.status)
	require.Contains(t, h.model.Toasts(), "Please enter a country name.")
	require.Contains(t, h.model.View(), "Please enter a country name.")
}

func TestSearchFranceShowsOneCard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.typeText("france")
	h.press(keyEnter)

	names, _ := h.lookup.calls()
	require.Equal(t, []string{"france"}, names)
	require.Equal(t, searchResults, h.model.search.status)
	require.Len(t, h.model.search.results, 1)
	require.Equal(t, "France", h.model.search.results[0].DisplayName())
	require.Contains(t, h.model.Toasts(), "1 country found!")

	view := h.model.View()
	assert.Contains(t, view, "France")
	assert.Contains(t, view, "Paris")
	assert.Contains(t, view, "67,391,582")
}

func TestSearchNarniaShowsNotFound(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.typeText("narnia")
	h.press(keyEnter)

	require.Equal(t, searchEmpty, h.model.search.status)
	require.Empty(t, h.model.search.results)
	require.Contains(t, h.model.Toasts(), "No countries found. Try another search.")
	require.Contains(t, h.model.View(), "No countries found. Try another search.")
}

func TestRegionSelectionClearsQuery(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.typeText("fra")
	h.press(keyTab)
	require.Equal(t, focusRegions, h.model.search.focus)

	// Africa is the first region.
	h.press(keyEnter)

	require.Empty(t, h.model.search.input.Value())
	names, regions := h.lookup.calls()
	require.Empty(t, names)
	require.Equal(t, []country.Region{country.RegionAfrica}, regions)
	require.Len(t, h.model.search.results, 3)
	require.Contains(t, h.model.Toasts(), "3 countries in Africa loaded.")

	codes := map[string]bool{}
	for _, c := range h.model.search.results {
		codes[c.Code()] = true
	}
	require.Len(t, codes, 3, "each card is keyed by a distinct code")

	view := h.model.View()
	assert.Equal(t, 3, strings.Count(view, "Population"), "one card per result")
	for _, name := range []string{"Kenya", "Ghana", "Egypt"} {
		assert.Equal(t, 1, strings.Count(view, name), name)
	}
	assert.NotContains(t, view, "more countries")
}

func TestRegionFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.press(keyTab)
	h.press(keyRight)
	h.press(keyEnter)

	_, regions := h.lookup.calls()
	require.Equal(t, []country.Region{country.RegionAmericas}, regions)
	require.Equal(t, searchEmpty, h.model.search.status)
	require.Contains(t, h.model.Toasts(), "Failed to fetch countries by region.")
}

func TestStaleSearchResultIsDiscarded(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.typeText("narnia")
	first := h.send(keyEnter)

	h.press(tea.KeyMsg{Type: tea.KeyCtrlL})
	h.typeText("france")
	second := h.send(keyEnter)

	// The newer request settles first, the superseded one arrives last.
	secondMsgs := runCmd(second, time.Second)
	firstMsgs := runCmd(first, time.Second)
	require.Len(t, secondMsgs, 1)
	require.Len(t, firstMsgs, 1)

	require.ErrorIs(t, h.lookup.contextFor("narnia").Err(), context.Canceled, "superseded request is cancelled")
	require.NoError(t, h.lookup.contextFor("france").Err())

	h.send(secondMsgs[0])
	h.send(firstMsgs[0])

	require.Equal(t, searchResults, h.model.search.status)
	require.Len(t, h.model.search.results, 1)
	require.Equal(t, "France", h.model.search.results[0].DisplayName())
	require.NotContains(t, h.model.Toasts(), "No countries found. Try another search.")
}

func TestOpeningCardNavigatesToDetail(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.lookup.summary = ports.Summary{Type: "standard", Extract: "France is in Western Europe."}
	h.typeText("france")
	h.press(keyEnter)

	h.press(keyTab) // regions
	h.press(keyTab) // grid
	require.Equal(t, focusGrid, h.model.search.focus)
	h.press(keyEnter)

	require.Equal(t, CountryRoute("FRA"), h.model.Route())
	require.Contains(t, h.model.Toasts(), "Exploring France")
	require.Equal(t, detailReady, h.model.detail.status)

	view := h.model.View()
	assert.Contains(t, view, "France is in Western Europe.")
	assert.Contains(t, view, "Western Europe")

	h.press(keyEsc)
	require.Equal(t, ScreenSearch, h.model.Route().Screen)
	require.Len(t, h.model.search.results, 1, "search state survives a detail visit")
}

func TestDetailFallsBackWhenSummaryFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())
	h.lookup.summaryErr = apperrors.NewNetworkError("GET", "https://example.test/France", 0, errors.New("timeout"))
	h.settle(h.send(NavigateMsg{Route: CountryRoute("FRA")}))

	require.Equal(t, detailReady, h.model.detail.status)
	view := h.model.View()
	for _, want := range []string{"France", "Paris", "Europe", "Western Europe", "67,391,582", "French", "Euro", "UTC+01:00", "No fun fact available at the moment."} {
		assert.Contains(t, view, want)
	}
}

func TestDetailStartRoute(t *testing.T) {
	t.Parallel()

	h := newHarness(t, CountryRoute("FRA"))
	require.Equal(t, ScreenDetail, h.model.Route().Screen)
	require.Equal(t, detailReady, h.model.detail.status)
}

func TestDetailNotFoundSkipsSummary(t *testing.T) {
	t.Parallel()

	h := newHarness(t, CountryRoute("ZZZ"))
	require.Equal(t, detailNotFound, h.model.detail.status)
	require.Contains(t, h.model.View(), "Country not found.")
}

func TestStaleDetailResultIsDiscarded(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())
	cmd := h.send(NavigateMsg{Route: CountryRoute("FRA")})
	h.press(keyEsc)
	require.Equal(t, ScreenSearch, h.model.Route().Screen)

	for _, msg := range runCmd(cmd, time.Second) {
		if result, ok := msg.(DetailResultMsg); ok {
			h.send(result)
		}
	}
	require.Equal(t, ScreenSearch, h.model.Route().Screen)
	require.NotEqual(t, detailReady, h.model.detail.status)
}

func TestThemeToggleIsAppliedAndPersisted(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())
	require.False(t, h.model.Theme().Dark)

	h.press(keyToggle)
	require.True(t, h.model.Theme().Dark)
	require.True(t, h.themes.IsDark())
	require.Equal(t, preferences.ThemeDark, h.prefs.Read(context.Background()))
	assert.Contains(t, h.model.View(), "Light Mode")

	h.press(keyEnter)
	h.press(keyCtrlT)
	require.False(t, h.model.Theme().Dark)
	require.Equal(t, preferences.ThemeLight, h.prefs.Read(context.Background()))
}

func TestOutOfOrderThemeWritesKeepLastToggle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())

	first := h.send(keyToggle)
	require.True(t, h.model.Theme().Dark, "toggle applies before the write")
	second := h.send(keyToggle)
	require.False(t, h.model.Theme().Dark)

	// Commands run on separate goroutines; deliver the later one first.
	late := runCmd(second, time.Second)
	early := runCmd(first, time.Second)
	for _, msg := range append(late, early...) {
		h.send(msg)
	}

	require.False(t, h.model.Theme().Dark)
	require.False(t, h.themes.IsDark())
	require.Equal(t, preferences.ThemeLight, h.prefs.Read(context.Background()))
}

func TestThemeWriterSkipsSupersededWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := preferences.NewService(kvstore.NewMemoryStore())
	w := &themeWriter{}

	stored, ok := w.store(ctx, prefs, 2, preferences.ThemeLight)
	require.True(t, ok)
	require.Equal(t, preferences.ThemeLight, stored)

	_, ok = w.store(ctx, prefs, 1, preferences.ThemeDark)
	require.False(t, ok)
	require.Equal(t, preferences.ThemeLight, prefs.Read(ctx))

	_, ok = w.store(ctx, prefs, 3, preferences.ThemeDark)
	require.True(t, ok)
	require.Equal(t, preferences.ThemeDark, prefs.Read(ctx))
}

func TestPersistedThemeIsAppliedOnInit(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())
	h.prefs.Set(context.Background(), preferences.ThemeDark)
	h.settle(h.model.Init())

	require.True(t, h.model.Theme().Dark)
}

func TestToastsExpire(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.model.toasts.durations = ToastDurations{Success: time.Millisecond, Error: time.Millisecond, Info: time.Millisecond}

	h.press(keyEnter)
	require.Empty(t, h.model.Toasts(), "error toast dismissed after its lifetime")
	require.Equal(t, searchEmpty, h.model.search.status, "inline message stays")
}

func TestToastStackIsBounded(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	for range maxToasts + 2 {
		h.send(keyEnter)
	}
	require.Len(t, h.model.Toasts(), maxToasts)
}

func TestExitReturnsToLandingAndResetsSearch(t *testing.T) {
	t.Parallel()

	h := newHarness(t, SearchRoute())
	h.typeText("france")
	h.press(keyEnter)
	h.press(keyEsc)

	require.Equal(t, ScreenLanding, h.model.Route().Screen)
	h.press(keyEnter)
	require.Equal(t, searchIdle, h.model.search.status)
	require.Empty(t, h.model.search.input.Value())
}

func TestQuitFromLanding(t *testing.T) {
	t.Parallel()

	h := newHarness(t, LandingRoute())
	cmd := h.send(keyQuit)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
