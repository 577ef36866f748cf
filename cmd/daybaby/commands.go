package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
	"github.com/giseleterencioa-design/app-daybaby/internal/platform/postgres"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
	"github.com/giseleterencioa-design/app-daybaby/internal/report"
	"github.com/giseleterencioa-design/app-daybaby/internal/service/auth"
	"github.com/giseleterencioa-design/app-daybaby/internal/session"
	"github.com/giseleterencioa-design/app-daybaby/internal/store"
	"github.com/giseleterencioa-design/app-daybaby/internal/timer"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runStats starts a session and prints the resulting statistics.
func runStats(ctx context.Context, app *application, args []string, stdout io.Writer) error {
	if err := newFlagSet("stats").Parse(args); err != nil {
		return err
	}

	ctrl := app.newSession(domain.NewJournal())
	defer ctrl.Close()
	if err := ctrl.Init(ctx); err != nil {
		return err
	}
	return writeJSON(stdout, ctrl.Stats())
}

// runPrefs applies the given preference flags and prints the result. With
// no flags it only prints.
func runPrefs(ctx context.Context, app *application, args []string, stdout io.Writer) error {
	fs := newFlagSet("prefs")
	language := fs.String("language", "", "language: pt, en or es")
	theme := fs.String("theme", "", "theme: light, dark or high-contrast")
	palette := fs.String("palette", "", "color palette")
	autoNight := fs.String("auto-night", "", "auto night mode: on or off")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := app.newSession(domain.NewJournal())
	defer ctrl.Close()
	if err := ctrl.Init(ctx); err != nil {
		return err
	}

	if *language != "" {
		if err := ctrl.SetLanguage(ctx, i18n.Language(*language)); err != nil {
			return err
		}
	}
	if *theme != "" {
		if err := ctrl.SetTheme(ctx, domain.Theme(*theme)); err != nil {
			return err
		}
	}
	if *palette != "" {
		if err := ctrl.SetPalette(ctx, domain.Palette(*palette)); err != nil {
			return err
		}
	}
	switch *autoNight {
	case "":
	case "on", "off":
		if err := ctrl.SetAutoNightMode(ctx, *autoNight == "on"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: auto-night %q", prefs.ErrInvalidPreference, *autoNight)
	}

	return writeJSON(stdout, ctrl.Preferences())
}

// runSummary prints the dashboard values of one baby from a snapshot file.
func runSummary(ctx context.Context, app *application, args []string, stdout io.Writer) error {
	fs := newFlagSet("summary")
	snapshotPath := fs.String("snapshot", "", "journal snapshot file (required)")
	babyID := fs.String("baby", "", "baby id; defaults to the snapshot's selected baby")
	date := fs.String("date", "", "day to show, YYYY-MM-DD; defaults to today")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *snapshotPath == "" {
		return errors.New("-snapshot is required")
	}

	journal, err := openJournal(app.fs, *snapshotPath, *babyID)
	if err != nil {
		return err
	}
	if *date != "" {
		day, err := domain.ParseDateKey(*date)
		if err != nil {
			return err
		}
		journal.SetCursor(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local))
	}

	ctrl := app.newSession(journal)
	defer ctrl.Close()
	if err := ctrl.Init(ctx); err != nil {
		return err
	}

	summary, err := ctrl.Summary()
	if err != nil {
		return err
	}
	return writeJSON(stdout, summary)
}

// runReport renders the report of one baby from a snapshot file.
func runReport(ctx context.Context, app *application, args []string, stdout io.Writer) error {
	fs := newFlagSet("report")
	snapshotPath := fs.String("snapshot", "", "journal snapshot file (required)")
	from := fs.String("from", "", "first day of the period, YYYY-MM-DD (required)")
	to := fs.String("to", "", "last day of the period, YYYY-MM-DD (required)")
	babyID := fs.String("baby", "", "baby id; defaults to the snapshot's selected baby")
	out := fs.String("out", "", "output file; defaults to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *snapshotPath == "" || *from == "" || *to == "" {
		return errors.New("-snapshot, -from and -to are required")
	}

	start, err := domain.ParseDateKey(*from)
	if err != nil {
		return err
	}
	end, err := domain.ParseDateKey(*to)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("period ends before it starts: %s to %s", *from, *to)
	}

	journal, err := openJournal(app.fs, *snapshotPath, *babyID)
	if err != nil {
		return err
	}

	ctrl := app.newSession(journal)
	defer ctrl.Close()
	if err := ctrl.Init(ctx); err != nil {
		return err
	}

	bundle, err := ctrl.Report(start, end)
	if err != nil {
		return err
	}
	renderer, err := report.NewHTMLRenderer()
	if err != nil {
		return err
	}

	if *out == "" {
		return renderer.Render(stdout, bundle, ctrl.Preferences().Language)
	}
	f, err := app.fs.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := renderer.Render(f, bundle, ctrl.Preferences().Language); err != nil {
		_ = f.Close()
		return err
	}
	app.logger.Info("report written",
		"path", *out,
		"baby", bundle.Baby.Name,
		"activities", bundle.TotalActivities)
	return f.Close()
}

// openJournal restores a journal from a snapshot file and selects babyID
// when it is set.
func openJournal(fsys afero.Fs, path, babyID string) (*domain.Journal, error) {
	journal, err := readSnapshot(fsys, path)
	if err != nil {
		return nil, err
	}
	if babyID == "" {
		return journal, nil
	}
	id, err := uuid.Parse(babyID)
	if err != nil {
		return nil, fmt.Errorf("invalid baby id %q: %w", babyID, err)
	}
	if err := journal.SelectBaby(id); err != nil {
		return nil, err
	}
	return journal, nil
}

func readSnapshot(fsys afero.Fs, path string) (*domain.Journal, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	journal := domain.NewJournal()
	if err := journal.Restore(snap); err != nil {
		return nil, fmt.Errorf("snapshot is invalid: %w", err)
	}
	return journal, nil
}

// runWatch runs the session loops until ctx is cancelled, printing theme
// switches and, with -timer, the running stopwatch.
func runWatch(ctx context.Context, app *application, args []string, stdout io.Writer) error {
	fs := newFlagSet("watch")
	withTimer := fs.Bool("timer", false, "start the activity timer and print every tick")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lines := make(chan string, 16)
	send := func(line string) {
		select {
		case lines <- line:
		default:
		}
	}

	ctrl := app.newSession(domain.NewJournal(),
		session.WithThemeHandler(func(theme domain.Theme) {
			send("theme " + string(theme))
		}),
		session.WithTickHandler(func(elapsed time.Duration) {
			send("timer " + timer.FormatElapsed(elapsed))
		}),
	)
	defer ctrl.Close()
	if err := ctrl.Init(ctx); err != nil {
		return err
	}
	if *withTimer {
		ctrl.StartTimer()
	}

	p := ctrl.Preferences()
	fmt.Fprintf(stdout, "watching: language=%s theme=%s auto-night=%t\n",
		p.Language, p.Theme, p.AutoNightMode)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(stdout, "stopped")
			return nil
		case line := <-lines:
			fmt.Fprintln(stdout, line)
		}
	}
}

// runPull signs in (or signs up with -name) against the account database and
// writes the account's journal to a snapshot file.
func runPull(ctx context.Context, app *application, args []string, stdout io.Writer) error {
	fs := newFlagSet("pull")
	email := fs.String("email", "", "account email (required)")
	name := fs.String("name", "", "create the account with this display name")
	out := fs.String("out", "", "snapshot file to write (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	password := os.Getenv("DAYBABY_PASSWORD")
	if *email == "" || *out == "" || password == "" {
		return errors.New("-email, -out and $DAYBABY_PASSWORD are required")
	}
	if app.config.Database.URL == "" {
		return errors.New("database.url is not configured")
	}

	db, err := postgres.Open(ctx, app.config.Database.URL, app.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			app.logger.Warn("failed to close database", "error", err)
		}
	}()
	if err := postgres.Migrate(ctx, db, app.logger); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(app.config.Auth)
	if err != nil {
		return err
	}
	accounts := postgres.NewAccountService(db, tokens, auth.NewPasswordHasher(bcrypt.DefaultCost), app.logger)

	var sess *store.Session
	if *name != "" {
		sess, err = accounts.SignUp(ctx, *email, password, *name)
	} else {
		sess, err = accounts.SignIn(ctx, *email, password)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := accounts.SignOut(ctx); err != nil {
			app.logger.Warn("failed to sign out", "error", err)
		}
	}()

	journal := domain.NewJournal()
	ctrl := app.newSession(journal)
	defer ctrl.Close()
	if _, err := ctrl.HydrateCurrentUser(ctx, accounts, postgres.NewPostgresJournalStore(db, app.logger)); err != nil {
		return err
	}

	snap := journal.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := afero.WriteFile(app.fs, *out, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Fprintf(stdout, "saved %d babies and %d activities for %s to %s\n",
		len(snap.Babies), len(snap.Activities), sess.Profile.Email, *out)
	return nil
}
