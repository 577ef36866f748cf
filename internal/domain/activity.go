package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Built-in activity type IDs. Built-ins are not stored as entities; they are
// materialized at read time by Journal.AllActivityTypes.
const (
	Breastfeeding = "breastfeeding"
	Diaper        = "diaper"
	Sleep         = "sleep"
	Pumping       = "pumping"
	Bottle        = "bottle"
)

type builtinType struct {
	id         string
	glyph      string
	colorIndex int
}

// builtinTypes is in display order.
var builtinTypes = []builtinType{
	{id: Breastfeeding, glyph: "🤱🏽", colorIndex: 0},
	{id: Diaper, glyph: "💩", colorIndex: 2},
	{id: Sleep, glyph: "💤", colorIndex: 1},
	{id: Pumping, glyph: "⛽️", colorIndex: 3},
	{id: Bottle, glyph: "🍼", colorIndex: 4},
}

// BuiltinTypeIDs returns the IDs of the built-in activity types in display
// order.
func BuiltinTypeIDs() []string {
	ids := make([]string, len(builtinTypes))
	for i, bt := range builtinTypes {
		ids[i] = bt.id
	}
	return ids
}

// IsBuiltin reports whether typeID names a built-in activity type.
func IsBuiltin(typeID string) bool {
	for _, bt := range builtinTypes {
		if bt.id == typeID {
			return true
		}
	}
	return false
}

// ActivityType is a read-time view of a built-in or custom activity type.
type ActivityType struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   Icon   `json:"icon"`
	Color  string `json:"color"`
	Custom bool   `json:"custom"`
}

// BreastSide records which side a breastfeeding session used.
type BreastSide string

// Breast sides.
const (
	BreastLeft  BreastSide = "left"
	BreastRight BreastSide = "right"
)

// QuantityUnit is the unit of a pumped or bottle-fed quantity.
type QuantityUnit string

// Quantity units.
const (
	UnitML QuantityUnit = "ml"
	UnitOz QuantityUnit = "oz"
)

// Quantity is an amount of milk.
type Quantity struct {
	Amount float64      `json:"amount" validate:"gt=0"`
	Unit   QuantityUnit `json:"unit"   validate:"required,oneof=ml oz"`
}

// Details holds the optional, capability-specific fields of an Activity.
// Which of them may be set depends on the activity's type; see
// Activity.Validate.
type Details struct {
	BreastSide    BreastSide `json:"breastSide,omitempty"    validate:"omitempty,oneof=left right"`
	Quantity      *Quantity  `json:"quantity,omitempty"`
	DurationLabel string     `json:"duration,omitempty"`
	StartTime     string     `json:"startTime,omitempty"     validate:"omitempty,datetime=15:04"`
	EndTime       string     `json:"endTime,omitempty"       validate:"omitempty,datetime=15:04"`
	TotalDuration *int       `json:"totalDuration,omitempty" validate:"omitempty,gte=0"`
}

// Activity is one logged caregiving event. Activities are replaced whole,
// never edited field by field.
type Activity struct {
	ID         uuid.UUID `json:"id"`
	BabyID     uuid.UUID `json:"babyId"`
	TypeID     string    `json:"type"                 validate:"required"`
	CustomName string    `json:"customName,omitempty"`
	Date       string    `json:"date"                 validate:"required,datetime=2006-01-02"`
	Time       string    `json:"time"                 validate:"required,datetime=15:04"`
	Notes      string    `json:"notes,omitempty"`
	Image      string    `json:"image,omitempty"`
	Details    Details   `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks the required fields and that each optional detail is
// allowed for the activity's type.
func (a *Activity) Validate() error {
	if err := validateStruct(a); err != nil {
		return err
	}

	if a.Details.BreastSide != "" && a.TypeID != Breastfeeding {
		return NewValidationError("breastSide", "is only allowed for breastfeeding", ErrValidation)
	}

	measured := a.TypeID == Pumping || a.TypeID == Bottle
	if a.Details.Quantity != nil && !measured {
		return NewValidationError("quantity", "is only allowed for pumping and bottle", ErrValidation)
	}
	if a.Details.DurationLabel != "" && !measured {
		return NewValidationError("duration", "is only allowed for pumping and bottle", ErrValidation)
	}

	return nil
}

// DisplayName is the custom name when non-empty, otherwise the type ID.
// Whitespace-only names are returned as stored.
func (a *Activity) DisplayName() string {
	if a.CustomName != "" {
		return a.CustomName
	}
	return a.TypeID
}

// TotalMinutes returns the timer-derived duration, or zero when the activity
// was logged without a timer run.
func (a *Activity) TotalMinutes() int {
	if a.Details.TotalDuration == nil {
		return 0
	}
	return *a.Details.TotalDuration
}

// SortKey is the composite date and time key used for display ordering.
func (a *Activity) SortKey() string {
	return a.Date + "T" + a.Time
}

// SortNewestFirst orders activities by descending SortKey, keeping the
// existing order of activities that share a key.
func SortNewestFirst(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].SortKey() > activities[j].SortKey()
	})
}
