package store

import (
	"context"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/google/uuid"
)

// Settings are the display preferences kept with the account.
type Settings struct {
	Language      string         `json:"language"`
	Theme         domain.Theme   `json:"theme"`
	ColorPalette  domain.Palette `json:"colorPalette"`
	AutoNightMode bool           `json:"autoNightMode"`
}

// BabyStore persists a caregiver's babies.
type BabyStore interface {
	// ListBabies returns the caregiver's babies in creation order.
	ListBabies(ctx context.Context, userID uuid.UUID) ([]domain.Baby, error)
	CreateBaby(ctx context.Context, userID uuid.UUID, baby *domain.Baby) error
	// UpdateBaby returns ErrBabyNotFound if the baby doesn't belong to userID.
	UpdateBaby(ctx context.Context, userID uuid.UUID, baby *domain.Baby) error
	// DeleteBaby removes the baby and everything recorded for it.
	DeleteBaby(ctx context.Context, userID, babyID uuid.UUID) error
}

// ActivityStore persists logged activities.
type ActivityStore interface {
	// ListActivities returns the baby's activities in insertion order.
	ListActivities(ctx context.Context, babyID uuid.UUID) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, activity *domain.Activity) error
	// UpdateActivity replaces the stored activity with the same ID.
	UpdateActivity(ctx context.Context, activity *domain.Activity) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	// DeleteActivitiesByType removes every activity of typeID across the
	// caregiver's babies and returns how many were removed.
	DeleteActivitiesByType(ctx context.Context, userID uuid.UUID, typeID string) (int64, error)
}

// GrowthStore persists growth records.
type GrowthStore interface {
	// ListGrowthRecords returns the baby's records, newest date first.
	ListGrowthRecords(ctx context.Context, babyID uuid.UUID) ([]domain.GrowthRecord, error)
	CreateGrowthRecord(ctx context.Context, record *domain.GrowthRecord) error
	DeleteGrowthRecord(ctx context.Context, id uuid.UUID) error
}

// TeethStore persists the eruption state of a baby's teeth. Only teeth that
// were ever touched need to be stored.
type TeethStore interface {
	ListTeeth(ctx context.Context, babyID uuid.UUID) ([]domain.ToothRecord, error)
	UpsertTooth(ctx context.Context, babyID uuid.UUID, tooth domain.ToothRecord) error
}

// CustomTypeStore persists the caregiver's custom activity types.
type CustomTypeStore interface {
	// ListCustomTypes returns the types in creation order.
	ListCustomTypes(ctx context.Context, userID uuid.UUID) ([]domain.CustomActivityType, error)
	CreateCustomType(ctx context.Context, userID uuid.UUID, ct *domain.CustomActivityType) error
	DeleteCustomType(ctx context.Context, userID uuid.UUID, id string) error
}

// SettingsStore persists the caregiver's display settings.
type SettingsStore interface {
	// GetSettings returns ErrSettingsNotFound when none were saved.
	GetSettings(ctx context.Context, userID uuid.UUID) (*Settings, error)
	SaveSettings(ctx context.Context, userID uuid.UUID, settings Settings) error
}

// JournalStore is everything a journal is loaded from.
type JournalStore interface {
	BabyStore
	ActivityStore
	GrowthStore
	TeethStore
	CustomTypeStore
	SettingsStore
}
