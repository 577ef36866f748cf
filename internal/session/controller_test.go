package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/config"
	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/events"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is safe to read from the scheduler goroutines.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

var fastLoops = config.SessionConfig{
	NightPollInterval: 10 * time.Millisecond,
	TimerTickInterval: 5 * time.Millisecond,
	NightStartHour:    DefaultNightStartHour,
	NightEndHour:      DefaultNightEndHour,
}

type fixture struct {
	ctrl    *Controller
	store   *prefs.Store
	journal *domain.Journal
	clock   *testClock
}

func newFixture(t *testing.T, at time.Time, opts ...Option) fixture {
	t.Helper()

	clock := &testClock{t: at}
	logger := discardLogger()
	store := prefs.NewStore(prefs.NewMemoryPersister(nil), logger, prefs.WithClock(clock.Now))
	journal := domain.NewJournal(domain.WithClock(clock.Now))

	all := append([]Option{
		WithClock(clock.Now),
		WithLocale("en-US"),
		WithSessionConfig(fastLoops),
	}, opts...)
	ctrl := New(store, journal, logger, all...)
	t.Cleanup(ctrl.Close)

	return fixture{ctrl: ctrl, store: store, journal: journal, clock: clock}
}

var (
	morning = time.Date(2024, time.June, 20, 10, 15, 0, 0, time.Local)
	night   = time.Date(2024, time.June, 20, 23, 5, 0, 0, time.Local)
)

func TestInitResolvesLanguageFromLocale(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning, WithLocale("pt_BR.UTF-8"))
	require.NoError(t, f.ctrl.Init(ctx))

	p := f.ctrl.Preferences()
	assert.Equal(t, i18n.Portuguese, p.Language)
	assert.Equal(t, domain.ThemeLight, p.Theme)
	assert.Equal(t, domain.PalettePastel, p.ColorPalette)
	assert.Equal(t, "Amamentação", f.ctrl.Translator().T("breastfeeding"))

	// the detected language is not written back
	assert.Equal(t, i18n.Language(""), f.store.Preferences(ctx).Language)
	assert.True(t, f.ctrl.Ready())
}

func TestInitKeepsStoredLanguage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning, WithLocale("pt-BR"))
	_, err := f.store.UpdatePreferences(ctx, prefs.Patch{Language: ptr(i18n.Spanish)})
	require.NoError(t, err)

	require.NoError(t, f.ctrl.Init(ctx))
	assert.Equal(t, i18n.Spanish, f.ctrl.Preferences().Language)
}

func TestInitRecordsSessionStartOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	require.NoError(t, f.ctrl.Init(ctx))
	require.NoError(t, f.ctrl.Init(ctx))

	st := f.store.Load(ctx)
	require.Len(t, st.Events, 1)
	assert.Equal(t, events.SessionStart, st.Events[0].Kind)
	assert.Equal(t, 1, f.ctrl.Stats().TotalEvents)
}

func TestSettersRequireInit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)

	assert.ErrorIs(t, f.ctrl.SetLanguage(ctx, i18n.English), ErrNotReady)
	assert.ErrorIs(t, f.ctrl.SetTheme(ctx, domain.ThemeDark), ErrNotReady)
	assert.ErrorIs(t, f.ctrl.SetPalette(ctx, domain.PaletteBold), ErrNotReady)
	assert.ErrorIs(t, f.ctrl.SetAutoNightMode(ctx, true), ErrNotReady)

	_, err := f.ctrl.SaveActivity(ctx, domain.Activity{TypeID: domain.Diaper})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSettersPersistAndRecomputeStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	require.NoError(t, f.ctrl.Init(ctx))

	require.NoError(t, f.ctrl.SetLanguage(ctx, i18n.Spanish))
	require.NoError(t, f.ctrl.SetTheme(ctx, domain.ThemeHighContrast))
	require.NoError(t, f.ctrl.SetPalette(ctx, domain.PaletteBold))

	stored := f.store.Preferences(ctx)
	assert.Equal(t, i18n.Spanish, stored.Language)
	assert.Equal(t, domain.ThemeHighContrast, stored.Theme)
	assert.Equal(t, domain.PaletteBold, stored.ColorPalette)
	assert.Equal(t, stored, f.ctrl.Preferences())

	stats := f.ctrl.Stats()
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, i18n.Spanish, stats.CurrentLanguage)
	assert.Equal(t, domain.ThemeHighContrast, stats.MostUsedTheme)
	assert.Equal(t, "Lactancia", f.ctrl.Translator().T("breastfeeding"))
}

func TestSetterRejectsInvalidValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	require.NoError(t, f.ctrl.Init(ctx))
	before := f.ctrl.Preferences()

	err := f.ctrl.SetTheme(ctx, domain.Theme("sepia"))
	assert.ErrorIs(t, err, prefs.ErrInvalidPreference)
	assert.Equal(t, before, f.ctrl.Preferences())
}

func TestPaletteChangeKeepsResolvedLanguage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning, WithLocale("es-MX"))
	require.NoError(t, f.ctrl.Init(ctx))
	require.NoError(t, f.ctrl.SetPalette(ctx, domain.PaletteBold))

	assert.Equal(t, i18n.Spanish, f.ctrl.Preferences().Language)
}

func TestCloseStopsController(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	require.NoError(t, f.ctrl.Init(ctx))
	f.ctrl.Close()
	f.ctrl.Close()

	assert.ErrorIs(t, f.ctrl.SetTheme(ctx, domain.ThemeDark), ErrClosed)
	assert.False(t, f.ctrl.StartTimer())

	other := newFixture(t, morning)
	other.ctrl.Close()
	assert.ErrorIs(t, other.ctrl.Init(ctx), ErrClosed)
}

func TestEventRecordingFailureDoesNotFailInit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clock := &testClock{t: morning}
	logger := discardLogger()
	store := prefs.NewStore(prefs.NewMemoryPersister(nil), logger, prefs.WithClock(clock.Now))
	ctrl := New(store, domain.NewJournal(), logger, WithClock(clock.Now))
	t.Cleanup(ctrl.Close)

	ctrl.emitter.RegisterHandler(events.HandlerFunc(func(context.Context, *events.Event) error {
		return errors.New("handler down")
	}))

	require.NoError(t, ctrl.Init(ctx))
	assert.Equal(t, 1, ctrl.Stats().TotalEvents)
}
