package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/events"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
)

// ErrInvalidPreference is returned when a patch names an unknown language,
// theme or palette.
var ErrInvalidPreference = errors.New("invalid preference")

// Store is the preference and analytics store. Every operation reads the
// persisted record, applies its change and writes it back, so several
// Stores over the same Persister observe each other's writes.
type Store struct {
	mu        sync.Mutex
	persister Persister
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for event timestamps and defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store persisting through p.
func NewStore(p Persister, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    logger.With("component", "prefs_store"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted state, or the defaults when nothing is stored
// or the stored record cannot be read or parsed.
func (s *Store) Load(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) State {
	now := s.now()

	data, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read persisted state, using defaults", "error", err)
		return DefaultState(now)
	}
	if len(data) == 0 {
		return DefaultState(now)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.WarnContext(ctx, "failed to parse persisted state, using defaults", "error", err)
		return DefaultState(now)
	}
	st.normalize(now)
	return st
}

// Save persists st. Failures are logged and otherwise ignored.
func (s *Store) Save(ctx context.Context, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx, st)
}

func (s *Store) save(ctx context.Context, st State) {
	data, err := json.Marshal(st)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode state", "error", err)
		return
	}
	if err := s.persister.Save(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist state", "error", err)
	}
}

// Preferences returns the stored preferences.
func (s *Store) Preferences(ctx context.Context) Preferences {
	return s.Load(ctx).UserPreferences
}

// RecordEvent appends an event of kind with the given payload and moves the
// last-activity mark to now.
func (s *Store) RecordEvent(ctx context.Context, kind events.Kind, data map[string]string) error {
	event, err := events.NewEvent(kind, data, s.now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.append(ctx, event)
	return nil
}

// HandleEvent implements events.Handler by appending the event to the log.
func (s *Store) HandleEvent(ctx context.Context, event *events.Event) error {
	if event == nil || !event.Kind.Valid() {
		return fmt.Errorf("cannot record event: %v", event)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.append(ctx, event)
	return nil
}

func (s *Store) append(ctx context.Context, event *events.Event) {
	st := s.load(ctx)
	st.Events = append(st.Events, *event)
	st.LastActivity = stamp(s.now())
	s.save(ctx, st)

	s.logger.DebugContext(ctx, "recorded event",
		"event_id", event.ID,
		"event_type", event.Kind,
		"total_events", len(st.Events))
}

// UpdatePreferences merges patch into the stored preferences and persists
// them. A language_change event is appended whenever the patch names a
// language and a theme_change event whenever it names a theme, even if the
// value is unchanged.
func (s *Store) UpdatePreferences(ctx context.Context, patch Patch) (Preferences, error) {
	if err := validatePatch(patch); err != nil {
		return Preferences{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx)
	patch.apply(&st.UserPreferences)

	now := s.now()
	var appended []events.Event
	if patch.Language != nil {
		e, _ := events.NewEvent(events.LanguageChange, map[string]string{"language": string(*patch.Language)}, now)
		appended = append(appended, *e)
	}
	if patch.Theme != nil {
		e, _ := events.NewEvent(events.ThemeChange, map[string]string{"theme": string(*patch.Theme)}, now)
		appended = append(appended, *e)
	}
	if len(appended) > 0 {
		st.Events = append(st.Events, appended...)
		st.LastActivity = stamp(now)
	}

	s.save(ctx, st)
	s.logger.DebugContext(ctx, "updated preferences",
		"language", st.UserPreferences.Language,
		"theme", st.UserPreferences.Theme,
		"palette", st.UserPreferences.ColorPalette,
		"auto_night_mode", st.UserPreferences.AutoNightMode)

	return st.UserPreferences, nil
}

func validatePatch(p Patch) error {
	if p.Language != nil && !i18n.IsSupported(*p.Language) {
		return fmt.Errorf("%w: language %q", ErrInvalidPreference, *p.Language)
	}
	if p.Theme != nil && !p.Theme.Valid() {
		return fmt.Errorf("%w: theme %q", ErrInvalidPreference, *p.Theme)
	}
	if p.ColorPalette != nil && !p.ColorPalette.Valid() {
		return fmt.Errorf("%w: palette %q", ErrInvalidPreference, *p.ColorPalette)
	}
	return nil
}

// LanguageShare is the share of language_change events naming a language.
type LanguageShare struct {
	Language   i18n.Language `json:"language"`
	Percentage int           `json:"percentage"`
}

// Stats are the aggregates derived from the event log.
type Stats struct {
	LanguagePercentages []LanguageShare `json:"languagePercentages"`
	MostUsedTheme       domain.Theme    `json:"mostUsedTheme"`
	CurrentLanguage     i18n.Language   `json:"currentLanguage"`
	RetentionDays       int             `json:"retentionDays"`
	TotalEvents         int             `json:"totalEvents"`
	SessionStart        time.Time       `json:"sessionStart"`
}

// ComputeStats derives the statistics from the stored state.
func (s *Store) ComputeStats(ctx context.Context) Stats {
	s.mu.Lock()
	st := s.load(ctx)
	now := s.now()
	s.mu.Unlock()

	return computeStats(st, now)
}

func computeStats(st State, now time.Time) Stats {
	var (
		langOrder  []string
		langCount  = map[string]int{}
		themeOrder []string
		themeCount = map[string]int{}
	)
	for _, e := range st.Events {
		switch e.Kind {
		case events.LanguageChange:
			langOrder = countValue(langOrder, langCount, e.Data["language"])
		case events.ThemeChange:
			themeOrder = countValue(themeOrder, themeCount, e.Data["theme"])
		}
	}

	total := 0
	for _, n := range langCount {
		total += n
	}
	if total == 0 {
		total = 1
	}

	shares := make([]LanguageShare, 0, len(langOrder))
	for _, lang := range langOrder {
		shares = append(shares, LanguageShare{
			Language:   i18n.Language(lang),
			Percentage: int(math.Floor(float64(langCount[lang])/float64(total)*100 + 0.5)),
		})
	}

	mostUsed := st.UserPreferences.Theme
	best := 0
	for _, theme := range themeOrder {
		if themeCount[theme] > best {
			best = themeCount[theme]
			mostUsed = domain.Theme(theme)
		}
	}

	return Stats{
		LanguagePercentages: shares,
		MostUsedTheme:       mostUsed,
		CurrentLanguage:     st.UserPreferences.Language,
		RetentionDays:       int(math.Floor(now.Sub(st.LastActivity).Hours() / 24)),
		TotalEvents:         len(st.Events),
		SessionStart:        st.SessionStart,
	}
}

func countValue(order []string, counts map[string]int, value string) []string {
	if _, seen := counts[value]; !seen {
		order = append(order, value)
	}
	counts[value]++
	return order
}
