package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Baby is a tracked child and the root of its activities, growth records and
// teeth.
type Baby struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"      validate:"required"`
	BirthDate time.Time `json:"birthDate" validate:"required"`
	Photo     string    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBaby creates a Baby with a fresh ID. The birth date keeps only its
// calendar date.
func NewBaby(name string, birthDate time.Time, photo string) (*Baby, error) {
	b := &Baby{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Photo:     photo,
		CreatedAt: time.Now().UTC(),
	}
	if !birthDate.IsZero() {
		b.BirthDate = CivilDate(birthDate)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the baby's required fields.
func (b *Baby) Validate() error {
	if b.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrValidation)
	}
	if strings.TrimSpace(b.Name) == "" {
		return NewValidationError("name", "is required", ErrValidation)
	}
	if b.BirthDate.IsZero() {
		return NewValidationError("birthDate", "is required", ErrValidation)
	}
	return validateStruct(b)
}
