package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant picks the colour of an alert.
type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantInfo
)

// String returns the lowercase variant name.
func (v AlertVariant) String() string {
	switch v {
	case AlertVariantSuccess:
		return "success"
	case AlertVariantError:
		return "error"
	default:
		return "info"
	}
}

func (v AlertVariant) slot() PaletteSlot {
	switch v {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}

func (v AlertVariant) icon() string {
	switch v {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantError:
		return "✗"
	default:
		return "i"
	}
}

// Alert renders an inline message coloured by variant.
func Alert(theme Theme, variant AlertVariant, message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	style := Style(theme, lipgloss.NewStyle(), Foreground(variant.slot()))
	return style.Render(variant.icon() + " " + message)
}

// Toast renders a boxed notification.
func Toast(theme Theme, variant AlertVariant, message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	style := Style(theme, lipgloss.NewStyle(),
		Border(BorderVariantRounded, variant.slot()),
		Foreground(variant.slot()),
		Padding(0, 1),
	)
	return style.Render(variant.icon() + " " + message)
}
