package domain

import (
	"sort"

	"github.com/google/uuid"
)

// GrowthRecord is a dated set of measurements. All three measurements are
// required.
type GrowthRecord struct {
	ID                  uuid.UUID `json:"id"`
	BabyID              uuid.UUID `json:"babyId"`
	Date                string    `json:"date"              validate:"required,datetime=2006-01-02"`
	WeightKg            float64   `json:"weight"            validate:"gt=0"`
	HeightCm            float64   `json:"height"            validate:"gt=0"`
	HeadCircumferenceCm float64   `json:"headCircumference" validate:"gt=0"`
	Notes               string    `json:"notes,omitempty"`
	Images              []string  `json:"images,omitempty"`
}

// Validate checks the record's date and measurements.
func (g *GrowthRecord) Validate() error {
	return validateStruct(g)
}

// insertGrowthRecord appends rec and restores the descending date order.
// Records sharing a date keep their insertion order.
func insertGrowthRecord(records []GrowthRecord, rec GrowthRecord) []GrowthRecord {
	records = append(records, rec)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records
}
