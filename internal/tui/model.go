// Package tui is the interactive Country Explorer: a Bubble Tea program
// with a landing screen, a search screen and a country detail screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// Explorer is the lookup surface the screens need.
type Explorer interface {
	Search(ctx context.Context, query string) ([]country.Country, error)
	Region(ctx context.Context, region country.Region) ([]country.Country, error)
	Detail(ctx context.Context, code string) (explorer.Detail, error)
}

// Preferences reads the persisted theme and stores toggled values.
type Preferences interface {
	IsDark(ctx context.Context) bool
	ToggleTo(ctx context.Context, target preferences.Theme) preferences.Theme
}

// Options wires a Model.
type Options struct {
	Explorer    Explorer
	Preferences Preferences
	// Themes receives the explicit apply step; nil allocates a private manager.
	Themes *components.ThemeManager
	Logger ports.Logger
	Toasts ToastDurations
	// Start is the initial route; the zero value is the landing screen.
	Start Route
	// Context parents every lookup; nil selects context.Background.
	Context context.Context
}

// Model is the root Bubble Tea model. It owns routing, theming and toasts
// and delegates screen state to the landing, search and detail sub-models.
type Model struct {
	ctx      context.Context
	explorer Explorer
	prefs    Preferences
	themes   *components.ThemeManager
	theme    components.Theme
	logger   ports.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	start   Route
	route   Route
	landing landingModel
	search  searchModel
	detail  detailModel
	toasts  toastStack

	themeSeq    uint64
	themeWrites *themeWriter

	width  int
	height int
}

// NewModel constructs the root model.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themes := opts.Themes
	if themes == nil {
		themes = components.NewThemeManager(components.LightTheme())
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		explorer:    opts.Explorer,
		prefs:       opts.Preferences,
		themes:      themes,
		logger:      logging.OrNoOp(opts.Logger).With("component", "tui"),
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     s,
		start:       opts.Start,
		route:       LandingRoute(),
		landing:     newLandingModel(),
		search:      newSearchModel(),
		toasts:      toastStack{durations: opts.Toasts},
		themeWrites: &themeWriter{},
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.applyTheme(themes.IsDark())
	return m
}

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Init reads the persisted theme and opens the start route.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.prefs != nil {
		cmds = append(cmds, loadThemeCmd(m.ctx, m.prefs, m.themeSeq))
	}
	if m.start.Screen != ScreenLanding {
		cmds = append(cmds, navigateCmd(m.start))
	}
	return tea.Batch(cmds...)
}

// Route returns the active route.
func (m Model) Route() Route {
	return m.route
}

// Theme returns the theme currently applied.
func (m Model) Theme() components.Theme {
	return m.theme
}

// Toasts returns the visible notification texts, oldest first.
func (m Model) Toasts() []string {
	return m.toasts.messages()
}

// applyTheme is the explicit step that makes a preference visible.
func (m *Model) applyTheme(dark bool) {
	m.theme = m.themes.Apply(dark)
	m.help.Styles = helpStyles(m.theme)
	m.spinner.Style = spinnerStyle(m.theme)
}
