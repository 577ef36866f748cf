package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/config"
	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/events"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
	"github.com/giseleterencioa-design/app-daybaby/internal/task"
	"github.com/giseleterencioa-design/app-daybaby/internal/timer"
)

// Job names on the scheduler.
const (
	nightJob = "night-mode"
	tickJob  = "timer-tick"
)

// Loop defaults.
const (
	DefaultNightPollInterval = time.Minute
	DefaultTimerTickInterval = time.Second
	DefaultNightStartHour    = 22
	DefaultNightEndHour      = 6
)

// ErrNotReady is returned by operations that need Init to have run.
var ErrNotReady = errors.New("session is not initialized")

// ErrClosed is returned after Close.
var ErrClosed = errors.New("session is closed")

// Controller coordinates preferences, the stopwatch and the background
// loops of one session.
type Controller struct {
	mu sync.Mutex

	store     *prefs.Store
	journal   *domain.Journal
	emitter   *events.InMemoryEmitter
	scheduler *task.Scheduler
	stopwatch *timer.Stopwatch
	logger    *slog.Logger
	now       func() time.Time

	locale            string
	nightPollInterval time.Duration
	timerTickInterval time.Duration
	nightStartHour    int
	nightEndHour      int
	onTick            func(elapsed time.Duration)
	onTheme           func(theme domain.Theme)

	ready   bool
	closed  bool
	prefs   prefs.Preferences
	stats   prefs.Stats
	tr      i18n.Translator
	elapsed time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for the night check, the stopwatch and
// event timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLocale sets the platform locale used when no language is stored.
// It defaults to $LC_ALL, then $LANG.
func WithLocale(locale string) Option {
	return func(c *Controller) {
		c.locale = locale
	}
}

// WithSessionConfig applies the loop settings from configuration.
func WithSessionConfig(cfg config.SessionConfig) Option {
	return func(c *Controller) {
		if cfg.NightPollInterval > 0 {
			c.nightPollInterval = cfg.NightPollInterval
		}
		if cfg.TimerTickInterval > 0 {
			c.timerTickInterval = cfg.TimerTickInterval
		}
		c.nightStartHour = cfg.NightStartHour
		c.nightEndHour = cfg.NightEndHour
	}
}

// WithTickHandler registers fn to receive the elapsed time on every timer
// tick. fn runs on the scheduler goroutine.
func WithTickHandler(fn func(elapsed time.Duration)) Option {
	return func(c *Controller) {
		c.onTick = fn
	}
}

// WithThemeHandler registers fn to be told when the night loop switches the
// theme. fn runs on the scheduler goroutine.
func WithThemeHandler(fn func(theme domain.Theme)) Option {
	return func(c *Controller) {
		c.onTheme = fn
	}
}

// New creates a controller over store and journal. The store is registered
// as the handler of the session's events.
func New(store *prefs.Store, journal *domain.Journal, logger *slog.Logger, opts ...Option) *Controller {
	log := logger.With("component", "session")

	c := &Controller{
		store:             store,
		journal:           journal,
		emitter:           events.NewInMemoryEmitter(logger),
		scheduler:         task.NewScheduler(logger),
		logger:            log,
		now:               time.Now,
		locale:            platformLocale(),
		nightPollInterval: DefaultNightPollInterval,
		timerTickInterval: DefaultTimerTickInterval,
		nightStartHour:    DefaultNightStartHour,
		nightEndHour:      DefaultNightEndHour,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.stopwatch = timer.New(timer.WithClock(c.now))
	c.emitter.RegisterHandler(store)
	return c
}

func platformLocale() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Init runs the start-up sequence once: resolve the language (stored value,
// else the locale), load theme, palette and auto night mode, publish
// session_start, compute the stats and arm the night loop when auto night
// mode is on. Later calls do nothing.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.ready {
		return nil
	}
	c.ready = true

	c.prefs = c.store.Preferences(ctx)
	if c.prefs.Language == "" {
		c.prefs.Language = i18n.Detect(c.locale)
		c.logger.InfoContext(ctx, "language resolved from locale",
			"locale", c.locale,
			"language", c.prefs.Language)
	}
	c.tr = i18n.New(c.prefs.Language)

	if err := c.publish(ctx, events.SessionStart, nil); err != nil {
		c.logger.WarnContext(ctx, "failed to record session start", "error", err)
	}
	c.stats = c.store.ComputeStats(ctx)

	if c.prefs.AutoNightMode {
		if err := c.armNightLoop(); err != nil {
			return err
		}
	}

	c.logger.InfoContext(ctx, "session initialized",
		"language", c.prefs.Language,
		"theme", c.prefs.Theme,
		"palette", c.prefs.ColorPalette,
		"auto_night_mode", c.prefs.AutoNightMode)
	return nil
}

// Ready reports whether Init has run.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Journal returns the session's journal.
func (c *Controller) Journal() *domain.Journal {
	return c.journal
}

// Preferences returns the resolved preferences.
func (c *Controller) Preferences() prefs.Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// Translator returns a translator for the resolved language.
func (c *Controller) Translator() i18n.Translator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr
}

// Stats returns the statistics computed after the last preference change.
func (c *Controller) Stats() prefs.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// SetLanguage changes and persists the language.
func (c *Controller) SetLanguage(ctx context.Context, lang i18n.Language) error {
	return c.update(ctx, prefs.Patch{Language: &lang})
}

// SetTheme changes and persists the theme.
func (c *Controller) SetTheme(ctx context.Context, theme domain.Theme) error {
	return c.update(ctx, prefs.Patch{Theme: &theme})
}

// SetPalette changes and persists the color palette.
func (c *Controller) SetPalette(ctx context.Context, palette domain.Palette) error {
	return c.update(ctx, prefs.Patch{ColorPalette: &palette})
}

// SetAutoNightMode turns auto night mode on or off, arming or cancelling the
// night loop to match.
func (c *Controller) SetAutoNightMode(ctx context.Context, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.applyLocked(ctx, prefs.Patch{AutoNightMode: &enabled}); err != nil {
		return err
	}
	if enabled {
		return c.armNightLoop()
	}
	c.scheduler.Disarm(nightJob)
	return nil
}

func (c *Controller) update(ctx context.Context, patch prefs.Patch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(ctx, patch)
}

// applyLocked persists patch and recomputes the stats. c.mu must be held.
func (c *Controller) applyLocked(ctx context.Context, patch prefs.Patch) error {
	if c.closed {
		return ErrClosed
	}
	if !c.ready {
		return ErrNotReady
	}

	resolved := c.prefs.Language
	p, err := c.store.UpdatePreferences(ctx, patch)
	if err != nil {
		return err
	}
	if p.Language == "" {
		p.Language = resolved
	}

	c.prefs = p
	c.tr = i18n.New(p.Language)
	c.stats = c.store.ComputeStats(ctx)
	return nil
}

// publish emits an event of kind through the session's emitter.
func (c *Controller) publish(ctx context.Context, kind events.Kind, data map[string]string) error {
	event, err := events.NewEvent(kind, data, c.now())
	if err != nil {
		return fmt.Errorf("failed to create %s event: %w", kind, err)
	}
	return c.emitter.EmitEvent(ctx, event)
}

// Close cancels both loops and waits for them to exit. The controller can't
// be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.scheduler.Stop()
	c.logger.Debug("session closed")
}
