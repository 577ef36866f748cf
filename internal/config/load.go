package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the configuration reads,
// e.g. DAYBABY_STATE_BACKEND.
const EnvPrefix = "DAYBABY"

// setDefaults registers the default value of every key. Registering a
// default also makes viper consult the matching environment variable when
// unmarshalling.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.locale", "")

	v.SetDefault("state.backend", BackendFile)
	v.SetDefault("state.path", defaultStatePath())

	v.SetDefault("session.night_poll_interval", "60s")
	v.SetDefault("session.timer_tick_interval", "1s")
	v.SetDefault("session.night_start_hour", 22)
	v.SetDefault("session.night_end_hour", 6)

	v.SetDefault("database.url", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime", "24h")
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "daybaby-state.json"
	}
	return filepath.Join(dir, "daybaby", "state.json")
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("daybaby")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".daybaby"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
