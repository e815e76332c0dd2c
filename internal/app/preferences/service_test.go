package preferences

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

type failingStore struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStore) Get(context.Context, string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return "", ports.ErrKeyNotFound
}

func (f *failingStore) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}

func (f *failingStore) Close() error { return nil }

type toggleRecorder struct {
	themes []string
}

func (r *toggleRecorder) ObserveLookup(string, string, ports.LookupOutcome, time.Duration) {}
func (r *toggleRecorder) IncThemeToggle(theme string)                                      { r.themes = append(r.themes, theme) }

func TestReadDefaultsToLight(t *testing.T) {
	svc := NewService(kvstore.NewMemoryStore())
	assert.Equal(t, ThemeLight, svc.Read(context.Background()))
	assert.False(t, svc.IsDark(context.Background()))
}

func TestReadIgnoresUnrecognizedValue(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), ThemeKey, "sepia"))

	svc := NewService(store)
	assert.Equal(t, ThemeLight, svc.Read(context.Background()))
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := NewService(store)

	original := svc.Read(ctx)
	first := svc.Toggle(ctx)
	second := svc.Toggle(ctx)

	assert.Equal(t, original.Opposite(), first)
	assert.Equal(t, original, second)

	stored, err := store.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, original.String(), stored)
}

func TestDarkSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	NewService(store).Set(ctx, ThemeDark)

	reloaded := NewService(store)
	assert.Equal(t, ThemeDark, reloaded.Read(ctx))
}

func TestToggleRecordsMetric(t *testing.T) {
	rec := &toggleRecorder{}
	svc := NewService(kvstore.NewMemoryStore(), WithRecorder(rec))

	svc.Toggle(context.Background())
	svc.Toggle(context.Background())

	assert.Equal(t, []string{"dark", "light"}, rec.themes)
}

func TestToggleToWritesTargetAndRecordsMetric(t *testing.T) {
	ctx := context.Background()
	rec := &toggleRecorder{}
	store := kvstore.NewMemoryStore()
	svc := NewService(store, WithRecorder(rec))

	assert.Equal(t, ThemeDark, svc.ToggleTo(ctx, ThemeDark))
	assert.Equal(t, ThemeDark, svc.ToggleTo(ctx, ThemeDark), "absolute writes do not flip")

	stored, err := store.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)
	assert.Equal(t, []string{"dark", "dark"}, rec.themes)
}

func TestReadFailureDegradesToMemory(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	require.NoError(t, err)

	store := &failingStore{getErr: errors.New("disk on fire")}
	svc := NewService(store, WithLogger(logger))
	ctx := context.Background()

	assert.Equal(t, ThemeLight, svc.Read(ctx))
	assert.True(t, svc.Degraded())
	assert.Contains(t, buf.String(), "disk on fire")

	assert.Equal(t, ThemeDark, svc.Toggle(ctx))
	assert.Equal(t, ThemeDark, svc.Read(ctx))
	assert.Equal(t, 0, store.sets, "degraded service must not touch the store")
}

func TestWriteFailureKeepsValueInMemory(t *testing.T) {
	store := &failingStore{setErr: errors.New("read-only filesystem")}
	svc := NewService(store)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		assert.Equal(t, ThemeDark, svc.Toggle(ctx))
	})
	assert.True(t, svc.Degraded())
	assert.Equal(t, ThemeDark, svc.Read(ctx))
	assert.Equal(t, ThemeLight, svc.Toggle(ctx))
}

func TestNilStoreIsInMemoryOnly(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	assert.True(t, svc.Degraded())
	assert.Equal(t, ThemeLight, svc.Read(ctx))
	assert.Equal(t, ThemeDark, svc.Toggle(ctx))
	assert.Equal(t, ThemeDark, svc.Read(ctx))
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = ParseTheme("LIGHT")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	_, err = ParseTheme("solarized")
	require.Error(t, err)
}
