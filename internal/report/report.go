// Package report turns a baby's activity history into a printable report.
// Build assembles the data; a Renderer lays it out.
package report

import (
	"io"
	"math"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/domain/derive"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
)

// Group is the activities sharing one display name.
type Group struct {
	Name       string            `json:"name"`
	Activities []domain.Activity `json:"activities"`
}

// Bundle is everything a renderer needs for one report.
type Bundle struct {
	Baby            domain.Baby `json:"baby"`
	Age             derive.Age  `json:"age"`
	Start           time.Time   `json:"start"`
	End             time.Time   `json:"end"`
	Groups          []Group     `json:"groups"`
	TotalActivities int         `json:"totalActivities"`
	TypeCount       int         `json:"typeCount"`
	PeriodDays      int         `json:"periodDays"`
	GeneratedAt     time.Time   `json:"generatedAt"`
}

// Build groups activities by display name, in order of first appearance,
// keeping each group's activities in their given order. start and end only
// label the report: every activity passed in is included.
func Build(baby domain.Baby, activities []domain.Activity, start, end, now time.Time) Bundle {
	b := Bundle{
		Baby:            baby,
		Age:             derive.CalculateAge(baby.BirthDate, now),
		Start:           start,
		End:             end,
		TotalActivities: len(activities),
		PeriodDays:      int(math.Ceil(end.Sub(start).Hours() / 24)),
		GeneratedAt:     now,
	}

	index := make(map[string]int)
	for _, a := range activities {
		name := a.DisplayName()
		i, ok := index[name]
		if !ok {
			i = len(b.Groups)
			index[name] = i
			b.Groups = append(b.Groups, Group{Name: name})
		}
		b.Groups[i].Activities = append(b.Groups[i].Activities, a)
	}
	b.TypeCount = len(b.Groups)

	return b
}

// Renderer writes a bundle as a self-contained document in lang.
type Renderer interface {
	Render(w io.Writer, b Bundle, lang i18n.Language) error
}
