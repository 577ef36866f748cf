package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied to custom activity types created without an icon or color.
const (
	DefaultCustomIcon  = "🤱🏽"
	DefaultCustomColor = "bg-yellow-200"
)

// CustomActivityType is a user-defined activity category.
type CustomActivityType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"  validate:"required"`
	Icon      Icon      `json:"icon"`
	Color     string    `json:"color" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomActivityType creates a custom type with a fresh ID, resolving the
// icon once.
func NewCustomActivityType(name, icon, color string) (*CustomActivityType, error) {
	if strings.TrimSpace(icon) == "" {
		icon = DefaultCustomIcon
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultCustomColor
	}

	ct := &CustomActivityType{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Icon:      ParseIcon(icon),
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return ct, nil
}

// Validate checks the custom type's required fields.
func (ct *CustomActivityType) Validate() error {
	if ct.ID == "" {
		return NewValidationError("id", "is required", ErrValidation)
	}
	if IsBuiltin(ct.ID) {
		return NewValidationError("id", "collides with a built-in type", ErrValidation)
	}
	return validateStruct(ct)
}

// ActivityType returns the read-time view of the custom type.
func (ct *CustomActivityType) ActivityType() ActivityType {
	return ActivityType{
		ID:     ct.ID,
		Name:   ct.Name,
		Icon:   ct.Icon,
		Color:  ct.Color,
		Custom: true,
	}
}
