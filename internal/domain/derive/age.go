package derive

import (
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
)

// Age is a baby's age as displayed in the header and in reports.
//
// Months counts calendar month boundaries without a day-of-month carry and
// Days is the elapsed day count modulo 30. Both are deliberate
// approximations kept for compatibility with existing reports; Days is not
// "days since the last monthiversary".
type Age struct {
	Months int `json:"months"`
	Days   int `json:"days"`
	Weeks  int `json:"weeks"`
}

// CalculateAge returns the age at ref of a baby born on birth. Only the
// calendar dates of both times are used.
func CalculateAge(birth, ref time.Time) Age {
	b := domain.CivilDate(birth)
	r := domain.CivilDate(ref)

	months := (r.Year()-b.Year())*12 + int(r.Month()) - int(b.Month())
	elapsed := int(r.Sub(b) / (24 * time.Hour))

	return Age{
		Months: months,
		Days:   elapsed % 30,
		Weeks:  floorDiv(elapsed, 7),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
