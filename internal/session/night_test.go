package session

import (
	"context"
	"testing"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNightTime(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		hour       int
		start, end int
		expected   bool
	}{
		{"late evening in wrapped window", 23, 22, 6, true},
		{"start hour is inclusive", 22, 22, 6, true},
		{"early morning in wrapped window", 3, 22, 6, true},
		{"end hour is exclusive", 6, 22, 6, false},
		{"afternoon outside wrapped window", 15, 22, 6, false},
		{"inside plain window", 2, 1, 5, true},
		{"outside plain window", 5, 1, 5, false},
		{"empty window", 4, 4, 4, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNightTime(tc.hour, tc.start, tc.end))
		})
	}
}

func enableAutoNight(t *testing.T, store *prefs.Store) {
	t.Helper()
	_, err := store.UpdatePreferences(context.Background(), prefs.Patch{AutoNightMode: ptr(true)})
	require.NoError(t, err)
}

func TestNightLoopSwitchesToDarkAtNight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	switched := make(chan domain.Theme, 1)
	f := newFixture(t, night, WithThemeHandler(func(theme domain.Theme) {
		select {
		case switched <- theme:
		default:
		}
	}))
	enableAutoNight(t, f.store)

	require.NoError(t, f.ctrl.Init(ctx))

	select {
	case theme := <-switched:
		assert.Equal(t, domain.ThemeDark, theme)
	case <-time.After(2 * time.Second):
		t.Fatal("night loop did not switch the theme")
	}
	assert.Equal(t, domain.ThemeDark, f.ctrl.Preferences().Theme)
	assert.Equal(t, domain.ThemeDark, f.store.Preferences(ctx).Theme)
}

func TestNightLoopLeavesDaytimeThemeAlone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	enableAutoNight(t, f.store)
	require.NoError(t, f.ctrl.Init(ctx))

	assert.True(t, f.ctrl.scheduler.Armed(nightJob))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, domain.ThemeLight, f.ctrl.Preferences().Theme)
}

func TestNightLoopPicksUpClockChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	enableAutoNight(t, f.store)
	require.NoError(t, f.ctrl.Init(ctx))

	f.clock.Advance(12 * time.Hour)

	assert.Eventually(t, func() bool {
		return f.ctrl.Preferences().Theme == domain.ThemeDark
	}, 2*time.Second, 5*time.Millisecond)
}

func TestNightLoopNeverSwitchesBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, night)
	enableAutoNight(t, f.store)
	require.NoError(t, f.ctrl.Init(ctx))

	assert.Eventually(t, func() bool {
		return f.ctrl.Preferences().Theme == domain.ThemeDark
	}, 2*time.Second, 5*time.Millisecond)

	f.clock.Advance(9 * time.Hour)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, domain.ThemeDark, f.ctrl.Preferences().Theme)
}

func TestSetAutoNightModeArmsAndDisarms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	require.NoError(t, f.ctrl.Init(ctx))
	assert.False(t, f.ctrl.scheduler.Armed(nightJob))

	require.NoError(t, f.ctrl.SetAutoNightMode(ctx, true))
	assert.True(t, f.ctrl.scheduler.Armed(nightJob))
	assert.True(t, f.store.Preferences(ctx).AutoNightMode)

	require.NoError(t, f.ctrl.SetAutoNightMode(ctx, false))
	assert.False(t, f.ctrl.scheduler.Armed(nightJob))
	assert.False(t, f.store.Preferences(ctx).AutoNightMode)
}

func TestAutoNightModeOffAtNight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, night)
	require.NoError(t, f.ctrl.Init(ctx))

	time.Sleep(50 * time.Millisecond)
	assert.False(t, f.ctrl.scheduler.Armed(nightJob))
	assert.Equal(t, domain.ThemeLight, f.ctrl.Preferences().Theme)
}
