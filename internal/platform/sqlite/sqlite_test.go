package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.db")
}

func TestPersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := openTestDB(t)

	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p := NewPersister(db, prefs.StateKey, logger)

	data, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data, "missing key loads as nil")

	require.NoError(t, p.Save(ctx, []byte(`{"v":1}`)))
	require.NoError(t, p.Save(ctx, []byte(`{"v":2}`)))

	data, err = p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM app_state`).Scan(&rows))
	assert.Equal(t, 1, rows)

	other := NewPersister(db, "other", logger)
	data, err = other.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestPersisterBacksPreferenceStore(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := openTestDB(t)

	db, err := Open(ctx, path)
	require.NoError(t, err)

	store := prefs.NewStore(NewPersister(db, prefs.StateKey, logger), logger)
	theme := domain.ThemeHighContrast
	_, err = store.UpdatePreferences(ctx, prefs.Patch{Theme: &theme})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopen to make sure the record survived on disk
	db, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reopened := prefs.NewStore(NewPersister(db, prefs.StateKey, logger), logger)
	st := reopened.Load(ctx)
	assert.Equal(t, domain.ThemeHighContrast, st.UserPreferences.Theme)
	require.Len(t, st.Events, 1)
	assert.WithinDuration(t, time.Now(), st.Events[0].Timestamp, time.Minute)
}
