package tui

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

type fakeLookup struct {
	mu          sync.Mutex
	byName      map[string][]country.Country
	byRegion    map[country.Region][]country.Country
	byCode      map[string]country.Country
	summary     ports.Summary
	summaryErr  error
	nameCalls   []string
	regionCalls []country.Region
	codeCalls   []string
	contexts    map[string]context.Context
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		byName:   map[string][]country.Country{"france": {france()}},
		byRegion: map[country.Region][]country.Country{country.RegionAfrica: africa()},
		byCode:   map[string]country.Country{"FRA": france()},
		contexts: map[string]context.Context{},
	}
}

func (f *fakeLookup) SearchByName(ctx context.Context, query string) ([]country.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nameCalls = append(f.nameCalls, query)
	f.contexts[query] = ctx
	results, ok := f.byName[strings.ToLower(query)]
	if !ok {
		return nil, apperrors.NewNotFoundError("country", query, http.StatusNotFound)
	}
	return results, nil
}

func (f *fakeLookup) SearchByRegion(ctx context.Context, region country.Region) ([]country.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regionCalls = append(f.regionCalls, region)
	f.contexts[region.String()] = ctx
	results, ok := f.byRegion[region]
	if !ok {
		return nil, apperrors.NewNetworkError("GET", "https://example.test/region", http.StatusBadGateway, nil)
	}
	return results, nil
}

func (f *fakeLookup) GetByCode(_ context.Context, code string) (country.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codeCalls = append(f.codeCalls, code)
	record, ok := f.byCode[code]
	if !ok {
		return country.Country{}, apperrors.NewNotFoundError("country code", code, http.StatusNotFound)
	}
	return record, nil
}

func (f *fakeLookup) Summary(_ context.Context, _ string) (ports.Summary, error) {
	if f.summaryErr != nil {
		return ports.Summary{}, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeLookup) calls() (names []string, regions []country.Region) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.nameCalls...), append([]country.Region(nil), f.regionCalls...)
}

func (f *fakeLookup) contextFor(key string) context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contexts[key]
}

func france() country.Country {
	return country.Country{
		Name:       country.Name{Common: "France", Official: "French Republic"},
		CCA2:       "FR",
		CCA3:       "FRA",
		Capital:    []string{"Paris"},
		Region:     "Europe",
		Subregion:  "Western Europe",
		Population: 67391582,
		Flag:       "🇫🇷",
		Languages:  map[string]string{"fra": "French"},
		Currencies: map[string]country.Currency{"EUR": {Name: "Euro", Symbol: "€"}},
		Timezones:  []string{"UTC+01:00"},
	}
}

func africa() []country.Country {
	names := []string{"Kenya", "Ghana", "Egypt"}
	out := make([]country.Country, 0, len(names))
	for _, name := range names {
		out = append(out, country.Country{
			Name:   country.Name{Common: name},
			CCA3:   strings.ToUpper(name[:3]),
			Region: "Africa",
		})
	}
	return out
}

type harness struct {
	t      *testing.T
	model  Model
	lookup *fakeLookup
	prefs  *preferences.Service
	themes *components.ThemeManager
}

func newHarness(t *testing.T, start Route) *harness {
	t.Helper()

	lookup := newFakeLookup()
	prefs := preferences.NewService(kvstore.NewMemoryStore())
	themes := components.NewThemeManager(components.LightTheme())

	m := NewModel(Options{
		Explorer:    explorer.NewService(lookup, lookup),
		Preferences: prefs,
		Themes:      themes,
		Start:       start,
		Toasts:      ToastDurations{Success: time.Hour, Error: time.Hour, Info: time.Hour},
	})

	h := &harness{t: t, model: m, lookup: lookup, prefs: prefs, themes: themes}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.settle(m.Init())
	return h
}

// send delivers msg and returns the resulting command without running it.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	model, ok := next.(Model)
	require.True(h.t, ok)
	h.model = model
	return cmd
}

// press delivers a key and settles the resulting commands.
func (h *harness) press(msg tea.KeyMsg) {
	h.t.Helper()
	h.settle(h.send(msg))
}

func (h *harness) typeText(text string) {
	h.t.Helper()
	h.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// settle runs cmd and feeds every app message it produces back into the
// model until nothing is left. Timers and animations are dropped.
func (h *harness) settle(cmd tea.Cmd) {
	h.t.Helper()
	pending := runCmd(cmd, 100*time.Millisecond)
	for depth := 0; len(pending) > 0 && depth < 10; depth++ {
		var next []tea.Msg
		for _, msg := range pending {
			if !isAppMsg(msg) {
				continue
			}
			next = append(next, runCmd(h.send(msg), 100*time.Millisecond)...)
		}
		pending = next
	}
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case SearchResultMsg, DetailResultMsg, NavigateMsg, ThemeMsg, ToastExpiredMsg:
		return true
	default:
		return false
	}
}

// runCmd executes cmd, expanding batches. Commands that do not return
// within wait, such as long timers, are abandoned.
func runCmd(cmd tea.Cmd, wait time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c, wait)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(wait):
		return nil
	}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight     = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlT     = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyToggle    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}
	keyQuit      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
)
