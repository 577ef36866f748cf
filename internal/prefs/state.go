package prefs

import (
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/events"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
)

// Defaults for a fresh installation. The language starts unresolved so the
// session controller can detect it from the platform locale.
const (
	DefaultTheme   = domain.ThemeLight
	DefaultPalette = domain.PalettePastel
)

// Preferences are the user's display settings.
type Preferences struct {
	Language      i18n.Language  `json:"language"`
	Theme         domain.Theme   `json:"theme"`
	ColorPalette  domain.Palette `json:"colorPalette"`
	AutoNightMode bool           `json:"autoNightMode"`
}

// State is the persisted record.
type State struct {
	Events          []events.Event `json:"events"`
	UserPreferences Preferences    `json:"userPreferences"`
	SessionStart    time.Time      `json:"sessionStart"`
	LastActivity    time.Time      `json:"lastActivity"`
}

// DefaultState returns the state of a fresh installation at now.
func DefaultState(now time.Time) State {
	now = stamp(now)
	return State{
		Events: []events.Event{},
		UserPreferences: Preferences{
			Theme:        DefaultTheme,
			ColorPalette: DefaultPalette,
		},
		SessionStart: now,
		LastActivity: now,
	}
}

// normalize fills fields a stored record may lack with their defaults.
func (s *State) normalize(now time.Time) {
	if s.Events == nil {
		s.Events = []events.Event{}
	}
	if !s.UserPreferences.Theme.Valid() {
		s.UserPreferences.Theme = DefaultTheme
	}
	if !s.UserPreferences.ColorPalette.Valid() {
		s.UserPreferences.ColorPalette = DefaultPalette
	}
	if s.UserPreferences.Language != "" && !i18n.IsSupported(s.UserPreferences.Language) {
		s.UserPreferences.Language = ""
	}
	if s.SessionStart.IsZero() {
		s.SessionStart = stamp(now)
	}
	if s.LastActivity.IsZero() {
		s.LastActivity = s.SessionStart
	}
}

// Patch is a partial preferences update. Nil fields are left unchanged.
type Patch struct {
	Language      *i18n.Language
	Theme         *domain.Theme
	ColorPalette  *domain.Palette
	AutoNightMode *bool
}

func (p Patch) apply(prefs *Preferences) {
	if p.Language != nil {
		prefs.Language = *p.Language
	}
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
	if p.ColorPalette != nil {
		prefs.ColorPalette = *p.ColorPalette
	}
	if p.AutoNightMode != nil {
		prefs.AutoNightMode = *p.AutoNightMode
	}
}

// stamp normalizes a timestamp to the persisted precision.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
