package tui

import (
	"fmt"
	"strings"
)

// Screen identifies one of the three screens.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenSearch
	ScreenDetail
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenSearch:
		return "search"
	case ScreenDetail:
		return "detail"
	default:
		return "landing"
	}
}

// Route is a navigable location. Code is set only for ScreenDetail.
type Route struct {
	Screen Screen
	Code   string
}

const countryPrefix = "/country/"

// ParseRoute maps "/", "/home" and "/country/{code}" to routes.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.TrimSpace(path)
	if len(trimmed) > 1 {
		trimmed = strings.TrimRight(trimmed, "/")
	}

	switch {
	case trimmed == "" || trimmed == "/":
		return Route{Screen: ScreenLanding}, nil
	case trimmed == "/home":
		return Route{Screen: ScreenSearch}, nil
	case strings.HasPrefix(trimmed, countryPrefix):
		code := strings.TrimPrefix(trimmed, countryPrefix)
		if code == "" || strings.Contains(code, "/") {
			return Route{}, fmt.Errorf("invalid country route %q", path)
		}
		return Route{Screen: ScreenDetail, Code: strings.ToUpper(code)}, nil
	default:
		return Route{}, fmt.Errorf("unknown route %q: expected /, /home or /country/{code}", path)
	}
}

// Path renders the route back to its path form.
func (r Route) Path() string {
	switch r.Screen {
	case ScreenSearch:
		return "/home"
	case ScreenDetail:
		return countryPrefix + r.Code
	default:
		return "/"
	}
}

// LandingRoute is the root route.
func LandingRoute() Route { return Route{Screen: ScreenLanding} }

// SearchRoute is the search screen route.
func SearchRoute() Route { return Route{Screen: ScreenSearch} }

// CountryRoute opens the detail screen for code.
func CountryRoute(code string) Route {
	return Route{Screen: ScreenDetail, Code: strings.ToUpper(code)}
}
