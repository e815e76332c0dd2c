// Package preferences owns the persisted light/dark theme preference.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// ThemeKey is the storage key of the theme preference.
const ThemeKey = "theme"

// Theme is the persisted presentation preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected light or dark)", value)
	}
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == ThemeDark }

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string { return string(t) }

// Service reads and writes the theme preference. It never fails: when the
// store is unavailable it logs a warning and keeps the value in memory for
// the rest of the session. It has no presentation side effects; callers
// apply the returned theme themselves.
type Service struct {
	store    ports.KeyValueStore
	logger   ports.Logger
	recorder ports.LookupRecorder

	mu       sync.Mutex
	degraded bool
	fallback Theme
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used to report storage failures.
func WithLogger(logger ports.Logger) Option {
	return func(s *Service) {
		s.logger = logging.OrNoOp(logger).With("component", "preferences")
	}
}

// WithRecorder sets the metrics recorder for toggles.
func WithRecorder(recorder ports.LookupRecorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// NewService creates a Service over store. A nil store starts degraded.
func NewService(store ports.KeyValueStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		logger:   logging.NewNoOpLogger(),
		recorder: ports.NopRecorder{},
		degraded: store == nil,
		fallback: ThemeLight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Read returns the stored theme, defaulting to light when the value is
// absent or unrecognized.
func (s *Service) Read(ctx context.Context) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(ctx)
}

// IsDark is shorthand for Read(ctx).IsDark().
func (s *Service) IsDark(ctx context.Context) bool {
	return s.Read(ctx).IsDark()
}

// Toggle flips the stored theme, persists it and returns the new value.
func (s *Service) Toggle(ctx context.Context) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.readLocked(ctx).Opposite()
	s.writeLocked(ctx, next)
	s.recorder.IncThemeToggle(next.String())
	return next
}

// ToggleTo records a toggle whose target the caller already decided and
// persists it. Writing the absolute value keeps concurrent toggles from
// flipping each other's result.
func (s *Service) ToggleTo(ctx context.Context, target Theme) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeLocked(ctx, target)
	s.recorder.IncThemeToggle(target.String())
	return target
}

// Set persists theme explicitly.
func (s *Service) Set(ctx context.Context, theme Theme) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeLocked(ctx, theme)
	return theme
}

// Degraded reports whether the service has fallen back to memory.
func (s *Service) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *Service) readLocked(ctx context.Context) Theme {
	if s.degraded {
		return s.fallback
	}

	raw, err := s.store.Get(ctx, ThemeKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return ThemeLight
	}
	if err != nil {
		s.degrade(ctx, "read", err)
		return s.fallback
	}

	theme, parseErr := ParseTheme(raw)
	if parseErr != nil {
		s.logger.Debug(ctx, "ignoring unrecognized theme value", "value", raw)
		return ThemeLight
	}
	s.fallback = theme
	return theme
}

func (s *Service) writeLocked(ctx context.Context, theme Theme) {
	s.fallback = theme
	if s.degraded {
		return
	}
	if err := s.store.Set(ctx, ThemeKey, theme.String()); err != nil {
		s.degrade(ctx, "write", err)
	}
}

func (s *Service) degrade(ctx context.Context, op string, err error) {
	s.degraded = true
	s.logger.Warn(ctx, "preference store unavailable; keeping theme in memory for this session", "op", op, "key", ThemeKey, "error", err)
}
