package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/platform/logger"
	"github.com/giseleterencioa-design/app-daybaby/internal/store"
	"github.com/google/uuid"
)

// PostgresJournalStore implements store.JournalStore.
type PostgresJournalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.JournalStore = (*PostgresJournalStore)(nil)

// NewPostgresJournalStore creates a journal store on db, which may be a
// connection pool or a transaction.
func NewPostgresJournalStore(db store.DBTX, logger *slog.Logger) *PostgresJournalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresJournalStore{
		db:     db,
		logger: logger.With(slog.String("component", "journal_store")),
	}
}

func (s *PostgresJournalStore) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// ListBabies implements store.BabyStore.
func (s *PostgresJournalStore) ListBabies(ctx context.Context, userID uuid.UUID) ([]domain.Baby, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, birth_date, photo, created_at
		FROM babies
		WHERE user_id = $1
		ORDER BY seq`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var babies []domain.Baby
	for rows.Next() {
		var b domain.Baby
		if err := rows.Scan(&b.ID, &b.Name, &b.BirthDate, &b.Photo, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan baby: %w", err)
		}
		b.BirthDate = domain.CivilDate(b.BirthDate)
		babies = append(babies, b)
	}
	return babies, MapError(rows.Err())
}

// CreateBaby implements store.BabyStore.
func (s *PostgresJournalStore) CreateBaby(ctx context.Context, userID uuid.UUID, baby *domain.Baby) error {
	if err := baby.Validate(); err != nil {
		s.log(ctx).Warn("baby validation failed during create",
			slog.String("error", err.Error()),
			slog.String("baby_id", baby.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO babies (id, user_id, name, birth_date, photo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		baby.ID, userID, baby.Name, baby.BirthDate, baby.Photo, baby.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	s.log(ctx).Debug("baby created", slog.String("baby_id", baby.ID.String()))
	return nil
}

// UpdateBaby implements store.BabyStore.
func (s *PostgresJournalStore) UpdateBaby(ctx context.Context, userID uuid.UUID, baby *domain.Baby) error {
	if err := baby.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE babies SET name = $3, birth_date = $4, photo = $5
		WHERE id = $1 AND user_id = $2`,
		baby.ID, userID, baby.Name, baby.BirthDate, baby.Photo)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrBabyNotFound)
}

// DeleteBaby implements store.BabyStore. Activities, growth records and
// teeth go with it through ON DELETE CASCADE.
func (s *PostgresJournalStore) DeleteBaby(ctx context.Context, userID, babyID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM babies WHERE id = $1 AND user_id = $2`, babyID, userID)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrBabyNotFound)
}

// ListActivities implements store.ActivityStore.
func (s *PostgresJournalStore) ListActivities(ctx context.Context, babyID uuid.UUID) ([]domain.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, baby_id, type, custom_name, date, time, notes, image, details, created_at
		FROM activities
		WHERE baby_id = $1
		ORDER BY seq`, babyID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var activities []domain.Activity
	for rows.Next() {
		var (
			a       domain.Activity
			details []byte
		)
		if err := rows.Scan(&a.ID, &a.BabyID, &a.TypeID, &a.CustomName, &a.Date, &a.Time,
			&a.Notes, &a.Image, &details, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if err := json.Unmarshal(details, &a.Details); err != nil {
			return nil, fmt.Errorf("failed to decode details of activity %s: %w", a.ID, err)
		}
		activities = append(activities, a)
	}
	return activities, MapError(rows.Err())
}

// CreateActivity implements store.ActivityStore.
func (s *PostgresJournalStore) CreateActivity(ctx context.Context, a *domain.Activity) error {
	if err := a.Validate(); err != nil {
		s.log(ctx).Warn("activity validation failed during create",
			slog.String("error", err.Error()),
			slog.String("activity_id", a.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("failed to encode activity details: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO activities (id, baby_id, type, custom_name, date, time, notes, image, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.BabyID, a.TypeID, a.CustomName, a.Date, a.Time, a.Notes, a.Image, details, a.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrBabyNotFound, err)
		}
		return MapError(err)
	}
	return nil
}

// UpdateActivity implements store.ActivityStore.
func (s *PostgresJournalStore) UpdateActivity(ctx context.Context, a *domain.Activity) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("failed to encode activity details: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE activities
		SET type = $3, custom_name = $4, date = $5, time = $6, notes = $7, image = $8, details = $9
		WHERE id = $1 AND baby_id = $2`,
		a.ID, a.BabyID, a.TypeID, a.CustomName, a.Date, a.Time, a.Notes, a.Image, details)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrActivityNotFound)
}

// DeleteActivity implements store.ActivityStore.
func (s *PostgresJournalStore) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrActivityNotFound)
}

// DeleteActivitiesByType implements store.ActivityStore.
func (s *PostgresJournalStore) DeleteActivitiesByType(
	ctx context.Context,
	userID uuid.UUID,
	typeID string,
) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM activities a
		USING babies b
		WHERE a.baby_id = b.id AND b.user_id = $1 AND a.type = $2`, userID, typeID)
	if err != nil {
		return 0, MapError(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	s.log(ctx).Info("cleared activities by type",
		slog.String("type", typeID),
		slog.Int64("removed", n))
	return n, nil
}

// ListGrowthRecords implements store.GrowthStore.
func (s *PostgresJournalStore) ListGrowthRecords(ctx context.Context, babyID uuid.UUID) ([]domain.GrowthRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, baby_id, date, weight_kg, height_cm, head_circumference_cm, notes, images
		FROM growth_records
		WHERE baby_id = $1
		ORDER BY date DESC, seq`, babyID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.GrowthRecord
	for rows.Next() {
		var (
			g      domain.GrowthRecord
			images []byte
		)
		if err := rows.Scan(&g.ID, &g.BabyID, &g.Date, &g.WeightKg, &g.HeightCm,
			&g.HeadCircumferenceCm, &g.Notes, &images); err != nil {
			return nil, fmt.Errorf("failed to scan growth record: %w", err)
		}
		if err := json.Unmarshal(images, &g.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images of growth record %s: %w", g.ID, err)
		}
		if len(g.Images) == 0 {
			g.Images = nil
		}
		records = append(records, g)
	}
	return records, MapError(rows.Err())
}

// CreateGrowthRecord implements store.GrowthStore.
func (s *PostgresJournalStore) CreateGrowthRecord(ctx context.Context, g *domain.GrowthRecord) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	images := g.Images
	if images == nil {
		images = []string{}
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("failed to encode growth images: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO growth_records (id, baby_id, date, weight_kg, height_cm, head_circumference_cm, notes, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.BabyID, g.Date, g.WeightKg, g.HeightCm, g.HeadCircumferenceCm, g.Notes, encoded)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrBabyNotFound, err)
		}
		return MapError(err)
	}
	return nil
}

// DeleteGrowthRecord implements store.GrowthStore.
func (s *PostgresJournalStore) DeleteGrowthRecord(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM growth_records WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrGrowthNotFound)
}

// ListTeeth implements store.TeethStore.
func (s *PostgresJournalStore) ListTeeth(ctx context.Context, babyID uuid.UUID) ([]domain.ToothRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tooth_id, erupted, eruption_date
		FROM teeth_records
		WHERE baby_id = $1
		ORDER BY tooth_id`, babyID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var teeth []domain.ToothRecord
	for rows.Next() {
		var (
			t    domain.ToothRecord
			date sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Erupted, &date); err != nil {
			return nil, fmt.Errorf("failed to scan tooth: %w", err)
		}
		t.EruptionDate = date.String
		teeth = append(teeth, t)
	}
	return teeth, MapError(rows.Err())
}

// UpsertTooth implements store.TeethStore.
func (s *PostgresJournalStore) UpsertTooth(ctx context.Context, babyID uuid.UUID, tooth domain.ToothRecord) error {
	date := sql.NullString{String: tooth.EruptionDate, Valid: tooth.Erupted}
	if tooth.Erupted {
		if _, err := domain.ParseDateKey(tooth.EruptionDate); err != nil {
			return fmt.Errorf("%w: tooth %d: %v", store.ErrInvalidEntity, tooth.ID, err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO teeth_records (baby_id, tooth_id, erupted, eruption_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (baby_id, tooth_id)
		DO UPDATE SET erupted = EXCLUDED.erupted, eruption_date = EXCLUDED.eruption_date`,
		babyID, tooth.ID, tooth.Erupted, date)
	return MapError(err)
}

// ListCustomTypes implements store.CustomTypeStore.
func (s *PostgresJournalStore) ListCustomTypes(ctx context.Context, userID uuid.UUID) ([]domain.CustomActivityType, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color, created_at
		FROM custom_activity_types
		WHERE user_id = $1
		ORDER BY seq`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var types []domain.CustomActivityType
	for rows.Next() {
		var (
			ct   domain.CustomActivityType
			icon string
		)
		if err := rows.Scan(&ct.ID, &ct.Name, &icon, &ct.Color, &ct.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom activity type: %w", err)
		}
		ct.Icon = domain.ParseIcon(icon)
		types = append(types, ct)
	}
	return types, MapError(rows.Err())
}

// CreateCustomType implements store.CustomTypeStore.
func (s *PostgresJournalStore) CreateCustomType(
	ctx context.Context,
	userID uuid.UUID,
	ct *domain.CustomActivityType,
) error {
	if err := ct.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_activity_types (user_id, id, name, icon, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, ct.ID, ct.Name, ct.Icon.String(), ct.Color, ct.CreatedAt)
	return MapError(err)
}

// DeleteCustomType implements store.CustomTypeStore. Activities of the type
// are left alone.
func (s *PostgresJournalStore) DeleteCustomType(ctx context.Context, userID uuid.UUID, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM custom_activity_types WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCustomTypeNotFound)
}

// GetSettings implements store.SettingsStore.
func (s *PostgresJournalStore) GetSettings(ctx context.Context, userID uuid.UUID) (*store.Settings, error) {
	var settings store.Settings
	err := s.db.QueryRowContext(ctx, `
		SELECT language, theme, color_palette, auto_night_mode
		FROM user_settings
		WHERE user_id = $1`, userID).
		Scan(&settings.Language, &settings.Theme, &settings.ColorPalette, &settings.AutoNightMode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrSettingsNotFound
	}
	if err != nil {
		return nil, MapError(err)
	}
	return &settings, nil
}

// SaveSettings implements store.SettingsStore.
func (s *PostgresJournalStore) SaveSettings(ctx context.Context, userID uuid.UUID, settings store.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, language, theme, color_palette, auto_night_mode, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			theme = EXCLUDED.theme,
			color_palette = EXCLUDED.color_palette,
			auto_night_mode = EXCLUDED.auto_night_mode,
			updated_at = EXCLUDED.updated_at`,
		userID, settings.Language, string(settings.Theme), string(settings.ColorPalette),
		settings.AutoNightMode, time.Now().UTC())
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrProfileNotFound, err)
		}
		return MapError(err)
	}
	return nil
}
