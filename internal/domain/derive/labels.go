package derive

import (
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
)

// RelativeDateLabel labels a date key relative to today: the localized
// "yesterday" for exactly one day before, the weekday name for anything
// older, and a short day and month for today or later.
func RelativeDateLabel(dateKey string, today time.Time, lang i18n.Language) (string, error) {
	date, err := domain.ParseDateKey(dateKey)
	if err != nil {
		return "", err
	}

	yesterday := domain.CivilDate(today).AddDate(0, 0, -1)
	switch {
	case date.Equal(yesterday):
		return i18n.New(lang).T("yesterday"), nil
	case date.Before(yesterday):
		return i18n.WeekdayName(lang, date.Weekday()), nil
	default:
		return i18n.ShortDate(lang, date), nil
	}
}
