package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App      AppConfig      `mapstructure:"app"      validate:"required"`
	State    StateConfig    `mapstructure:"state"    validate:"required"`
	Session  SessionConfig  `mapstructure:"session"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// AppConfig contains process-wide settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Locale is the platform locale used to pick a language when none has
	// been stored yet, e.g. "pt-BR". Empty means read it from LANG.
	Locale string `mapstructure:"locale"`
}

// Local state backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StateConfig selects where preferences and the analytics log are persisted.
type StateConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `mapstructure:"path"    validate:"required_unless=Backend memory"`
}

// SessionConfig contains the session controller's loop settings.
type SessionConfig struct {
	NightPollInterval time.Duration `mapstructure:"night_poll_interval" validate:"gt=0"`
	TimerTickInterval time.Duration `mapstructure:"timer_tick_interval" validate:"gt=0"`
	NightStartHour    int           `mapstructure:"night_start_hour"    validate:"gte=0,lte=23"`
	NightEndHour      int           `mapstructure:"night_end_hour"      validate:"gte=0,lte=23"`
}

// DatabaseConfig contains the optional account service database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig contains the account service's token settings.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"     validate:"omitempty,min=32"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"gt=0"`
}
