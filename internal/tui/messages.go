package tui

import (
	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

// NavigateMsg requests a route transition.
type NavigateMsg struct {
	Route Route
}

// ThemeMsg carries the theme read from or written to the preference store.
type ThemeMsg struct {
	Seq  uint64
	Dark bool
}

// SearchResultMsg delivers a name or region lookup. Gen identifies the
// request that produced it; only the latest request is applied.
type SearchResultMsg struct {
	Gen       uint64
	Query     string
	Region    country.Region
	Countries []country.Country
	Err       error
}

// ByRegion reports whether the lookup was a region selection.
func (m SearchResultMsg) ByRegion() bool {
	return m.Region != ""
}

// DetailResultMsg delivers the country and fun fact for the detail screen.
type DetailResultMsg struct {
	Gen    uint64
	Code   string
	Detail explorer.Detail
	Err    error
}

// ToastExpiredMsg removes a toast once its lifetime has elapsed.
type ToastExpiredMsg struct {
	ID uint64
}
