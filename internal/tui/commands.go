package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

func navigateCmd(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// loadThemeCmd reads the persisted theme.
func loadThemeCmd(ctx context.Context, prefs Preferences, seq uint64) tea.Cmd {
	return func() tea.Msg {
		return ThemeMsg{Seq: seq, Dark: prefs.IsDark(ctx)}
	}
}

// themeWriter orders theme writes. Commands run on their own goroutines, so
// a write is skipped once a newer toggle has been stored.
type themeWriter struct {
	mu      sync.Mutex
	written uint64
}

func (w *themeWriter) store(ctx context.Context, prefs Preferences, seq uint64, target preferences.Theme) (preferences.Theme, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seq < w.written {
		return target, false
	}
	w.written = seq
	return prefs.ToggleTo(ctx, target), true
}

// toggleThemeCmd persists the theme chosen by a toggle.
func toggleThemeCmd(ctx context.Context, prefs Preferences, writes *themeWriter, seq uint64, target preferences.Theme) tea.Cmd {
	return func() tea.Msg {
		stored, _ := writes.store(ctx, prefs, seq, target)
		return ThemeMsg{Seq: seq, Dark: stored.IsDark()}
	}
}

// searchCmd runs a name lookup asynchronously.
func searchCmd(ctx context.Context, svc Explorer, gen uint64, query string) tea.Cmd {
	return func() tea.Msg {
		countries, err := svc.Search(ctx, query)
		return SearchResultMsg{Gen: gen, Query: query, Countries: countries, Err: err}
	}
}

// regionCmd runs a region lookup asynchronously.
func regionCmd(ctx context.Context, svc Explorer, gen uint64, region country.Region) tea.Cmd {
	return func() tea.Msg {
		countries, err := svc.Region(ctx, region)
		return SearchResultMsg{Gen: gen, Region: region, Countries: countries, Err: err}
	}
}

// detailCmd fetches the country and then its fun fact.
func detailCmd(ctx context.Context, svc Explorer, gen uint64, code string) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.Detail(ctx, code)
		return DetailResultMsg{Gen: gen, Code: code, Detail: detail, Err: err}
	}
}

func expireToastCmd(id uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
