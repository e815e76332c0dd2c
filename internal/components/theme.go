package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic colour slot with base, on-base and muted shades.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Theme is one complete colour scheme.
type Theme struct {
	Name    string
	Dark    bool
	Palette Palette
	Borders BorderSet
}

// LightTheme returns the default light scheme.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		Palette: Palette{
			Primary: ColourSet{Base: "#2563eb", OnBase: "#f8fafc", Muted: "#93c5fd"},
			Surface: ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0"},
			Success: ColourSet{Base: "#16a34a", OnBase: "#f0fdf4", Muted: "#bbf7d0"},
			Danger:  ColourSet{Base: "#dc2626", OnBase: "#fef2f2", Muted: "#fecaca"},
			Info:    ColourSet{Base: "#0891b2", OnBase: "#ecfeff", Muted: "#a5f3fc"},
			Neutral: ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#cbd5e1"},
		},
		Borders: defaultBorders(),
	}
}

// DarkTheme returns the dark scheme.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Dark: true,
		Palette: Palette{
			Primary: ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8"},
			Surface: ColourSet{Base: "#0b1120", OnBase: "#e5e7eb", Muted: "#1f2937"},
			Success: ColourSet{Base: "#4ade80", OnBase: "#052e16", Muted: "#15803d"},
			Danger:  ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c"},
			Info:    ColourSet{Base: "#22d3ee", OnBase: "#04121a", Muted: "#0e7490"},
			Neutral: ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#334155"},
		},
		Borders: defaultBorders(),
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
}

// ThemeManager coordinates access to the active Theme. Applying a theme is
// an explicit step; nothing in this package reads the preference store.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Apply activates the dark or light theme and returns it.
func (m *ThemeManager) Apply(dark bool) Theme {
	theme := LightTheme()
	if dark {
		theme = DarkTheme()
	}
	m.SetTheme(theme)
	return theme
}

// Theme returns the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// IsDark reports whether the dark theme is active.
func (m *ThemeManager) IsDark() bool {
	return m.Theme().Dark
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to base using theme.
func Style(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Muted applies the muted shade of a slot as foreground.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Border draws a themed border coloured by slot.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		var border lipgloss.Border
		switch variant {
		case BorderVariantThick:
			border = theme.Borders.Thick
		case BorderVariantRounded:
			border = theme.Borders.Rounded
		default:
			border = theme.Borders.Normal
		}
		return base.Border(border).BorderForeground(slot(theme.Palette).Base)
	}
}

// Padding sets vertical and horizontal padding.
func Padding(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}
