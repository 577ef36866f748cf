package domain

import (
	"fmt"
	"time"
)

// Layouts used for the journal's date keys and times of day.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateKey returns the ISO calendar date of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeKey returns the minute-precision time of day of t.
func TimeKey(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDateKey parses an ISO calendar date into midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	d, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, key)
	}
	return d, nil
}

// CivilDate drops the time of day from t, keeping its calendar date, and
// returns it as midnight UTC so that calendar dates can be compared and
// subtracted without daylight-saving effects.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
