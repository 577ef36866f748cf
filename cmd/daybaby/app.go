package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/giseleterencioa-design/app-daybaby/internal/config"
	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/platform/filestate"
	"github.com/giseleterencioa-design/app-daybaby/internal/platform/logger"
	"github.com/giseleterencioa-design/app-daybaby/internal/platform/sqlite"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
	"github.com/giseleterencioa-design/app-daybaby/internal/session"
	"github.com/spf13/afero"
)

// application holds the dependencies shared by every command and releases
// them on Close.
type application struct {
	config *config.Config
	logger *slog.Logger
	fs     afero.Fs
	store  *prefs.Store

	// stateDB is set when the sqlite backend is in use.
	stateDB *sql.DB
}

// newApplication loads the configuration, sets up logging on stderr and
// opens the configured state backend.
func newApplication(ctx context.Context, stderr io.Writer) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.SetupWithWriter(cfg.App, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	app := &application{
		config: cfg,
		logger: log,
		fs:     afero.NewOsFs(),
	}

	persister, err := app.openPersister(ctx)
	if err != nil {
		return nil, err
	}
	app.store = prefs.NewStore(persister, log)

	log.Debug("configuration loaded",
		"state_backend", cfg.State.Backend,
		"state_path", cfg.State.Path,
		"database_configured", cfg.Database.URL != "")
	return app, nil
}

func (a *application) openPersister(ctx context.Context) (prefs.Persister, error) {
	switch a.config.State.Backend {
	case config.BackendMemory:
		return prefs.NewMemoryPersister(nil), nil
	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, a.config.State.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open state database: %w", err)
		}
		a.stateDB = db
		return sqlite.NewPersister(db, prefs.StateKey, a.logger), nil
	default:
		return filestate.NewPersister(a.fs, a.config.State.Path, a.logger), nil
	}
}

// newSession creates a session controller over journal using the configured
// locale and loop settings.
func (a *application) newSession(journal *domain.Journal, opts ...session.Option) *session.Controller {
	all := []session.Option{session.WithSessionConfig(a.config.Session)}
	if a.config.App.Locale != "" {
		all = append(all, session.WithLocale(a.config.App.Locale))
	}
	return session.New(a.store, journal, a.logger, append(all, opts...)...)
}

// Close releases the state backend.
func (a *application) Close() {
	if a.stateDB == nil {
		return
	}
	if err := a.stateDB.Close(); err != nil {
		a.logger.Warn("failed to close state database", "error", err)
	}
}
