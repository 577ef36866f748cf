package session

import (
	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/domain/derive"
)

// SinceRow says how long ago the last activity of one type happened.
type SinceRow struct {
	Type domain.ActivityType `json:"type"`
	Ago  string              `json:"ago"`
}

// Summary is the dashboard view of the selected baby.
type Summary struct {
	Baby      domain.Baby         `json:"baby"`
	Age       derive.Age          `json:"age"`
	Date      string              `json:"date"`
	DateLabel string              `json:"dateLabel"`
	OnDate    []domain.Activity   `json:"onDate"`
	Since     []SinceRow          `json:"since"`
	Counts    []derive.CountRow   `json:"counts"`
	Durations derive.DurationView `json:"durations"`
}

// Summary derives the dashboard values for the selected baby: age, the
// cursor date's label and activities (newest first), time since the last
// activity of each type, and the count and duration views over all of the
// baby's activities.
func (c *Controller) Summary() (Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return Summary{}, ErrNotReady
	}
	baby, ok := c.journal.SelectedBaby()
	if !ok {
		return Summary{}, domain.ErrNoBabySelected
	}

	now := c.now()
	date := c.journal.CursorKey()
	label, err := derive.RelativeDateLabel(date, now, c.prefs.Language)
	if err != nil {
		return Summary{}, err
	}

	types := c.journal.AllActivityTypes(c.tr, c.prefs.ColorPalette)
	activities := c.journal.ActivitiesOf(baby.ID)

	s := Summary{
		Baby:      baby,
		Age:       derive.CalculateAge(baby.BirthDate, now),
		Date:      date,
		DateLabel: label,
		OnDate:    c.journal.ActivitiesOnDate(date),
		Counts:    derive.CountView(types, activities),
		Durations: derive.DurationStats(types, activities),
	}
	for _, t := range types {
		if ago, ok := derive.TimeSince(activities, t.ID, now); ok {
			s.Since = append(s.Since, SinceRow{Type: t, Ago: ago})
		}
	}
	return s, nil
}
