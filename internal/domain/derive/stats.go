package derive

import (
	"math"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
)

// SideSplit is the breastfeeding left/right breakdown of a statistic.
type SideSplit struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// CountRow is one type in the count view.
type CountRow struct {
	Type  domain.ActivityType `json:"type"`
	Count int                 `json:"count"`
	Sides *SideSplit          `json:"sides,omitempty"`
}

// DurationRow is one type in the duration view. Minutes come from timer runs.
type DurationRow struct {
	Type           domain.ActivityType `json:"type"`
	TotalMinutes   int                 `json:"totalMinutes"`
	AverageMinutes int                 `json:"averageMinutes"`
	Sides          *SideSplit          `json:"sides,omitempty"`
}

// DurationView lists the types with recorded duration. Empty is true when no
// type has any, which is when the "no duration data" message is shown.
type DurationView struct {
	Rows  []DurationRow `json:"rows"`
	Empty bool          `json:"empty"`
}

func byType(activities []domain.Activity) map[string][]domain.Activity {
	grouped := make(map[string][]domain.Activity)
	for _, a := range activities {
		grouped[a.TypeID] = append(grouped[a.TypeID], a)
	}
	return grouped
}

// CountView returns, in the order of types, the number of activities of each
// type. Types without activities are omitted. Breastfeeding also carries the
// per-side counts.
func CountView(types []domain.ActivityType, activities []domain.Activity) []CountRow {
	grouped := byType(activities)

	var rows []CountRow
	for _, t := range types {
		list := grouped[t.ID]
		if len(list) == 0 {
			continue
		}
		row := CountRow{Type: t, Count: len(list)}
		if t.ID == domain.Breastfeeding {
			row.Sides = &SideSplit{}
			for _, a := range list {
				switch a.Details.BreastSide {
				case domain.BreastLeft:
					row.Sides.Left++
				case domain.BreastRight:
					row.Sides.Right++
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DurationStats returns the total and mean timer minutes per type, in the
// order of types. The mean is over every activity of the type, including
// those without a timer run, rounded half up. Types whose total is zero are
// omitted.
func DurationStats(types []domain.ActivityType, activities []domain.Activity) DurationView {
	grouped := byType(activities)

	view := DurationView{}
	for _, t := range types {
		list := grouped[t.ID]
		if len(list) == 0 {
			continue
		}

		row := DurationRow{Type: t}
		for _, a := range list {
			row.TotalMinutes += a.TotalMinutes()
		}
		if row.TotalMinutes == 0 {
			continue
		}
		row.AverageMinutes = roundHalfUp(float64(row.TotalMinutes) / float64(len(list)))

		if t.ID == domain.Breastfeeding {
			row.Sides = &SideSplit{}
			for _, a := range list {
				switch a.Details.BreastSide {
				case domain.BreastLeft:
					row.Sides.Left += a.TotalMinutes()
				case domain.BreastRight:
					row.Sides.Right += a.TotalMinutes()
				}
			}
		}
		view.Rows = append(view.Rows, row)
	}
	view.Empty = len(view.Rows) == 0
	return view
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
