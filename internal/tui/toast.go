package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
)

// maxToasts bounds how many notifications are drawn at once.
const maxToasts = 3

// ToastDurations sets how long each kind of toast stays visible.
type ToastDurations struct {
	Success time.Duration
	Error   time.Duration
	Info    time.Duration
}

// DefaultToastDurations returns 2s for success and info, 3s for errors.
func DefaultToastDurations() ToastDurations {
	return ToastDurations{
		Success: 2 * time.Second,
		Error:   3 * time.Second,
		Info:    2 * time.Second,
	}
}

func (d ToastDurations) forVariant(variant components.AlertVariant) time.Duration {
	defaults := DefaultToastDurations()
	switch variant {
	case components.AlertVariantSuccess:
		return orDefault(d.Success, defaults.Success)
	case components.AlertVariantError:
		return orDefault(d.Error, defaults.Error)
	default:
		return orDefault(d.Info, defaults.Info)
	}
}

func orDefault(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}

type toast struct {
	id      uint64
	variant components.AlertVariant
	message string
}

type toastStack struct {
	durations ToastDurations
	next      uint64
	items     []toast
}

// push adds a toast and returns the command that expires it.
func (s *toastStack) push(variant components.AlertVariant, message string) tea.Cmd {
	s.next++
	items := append(append([]toast(nil), s.items...), toast{id: s.next, variant: variant, message: message})
	if len(items) > maxToasts {
		items = items[len(items)-maxToasts:]
	}
	s.items = items
	return expireToastCmd(s.next, s.durations.forVariant(variant))
}

func (s *toastStack) expire(id uint64) {
	kept := make([]toast, 0, len(s.items))
	for _, t := range s.items {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	s.items = kept
}

func (s toastStack) messages() []string {
	out := make([]string, 0, len(s.items))
	for _, t := range s.items {
		out = append(out, t.message)
	}
	return out
}

func (s toastStack) view(theme components.Theme) string {
	if len(s.items) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(s.items))
	for _, t := range s.items {
		rendered = append(rendered, components.Toast(theme, t.variant, t.message))
	}
	return strings.Join(rendered, "\n")
}
