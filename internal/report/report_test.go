package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/i18n"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() (domain.Baby, []domain.Activity) {
	baby := domain.Baby{
		ID:        uuid.New(),
		Name:      "Ana",
		BirthDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	activity := func(typeID, customName, date, tm string) domain.Activity {
		return domain.Activity{ID: uuid.New(), BabyID: baby.ID, TypeID: typeID, CustomName: customName, Date: date, Time: tm}
	}

	feed := activity(domain.Breastfeeding, "Breastfeeding", "2024-06-20", "08:00")
	feed.Details.BreastSide = domain.BreastRight
	bottle := activity(domain.Bottle, "", "2024-06-19", "22:10")
	bottle.Details.Quantity = &domain.Quantity{Amount: 120, Unit: domain.UnitML}
	bottle.Notes = "<b>spat up</b>"

	return baby, []domain.Activity{
		feed,
		activity(domain.Diaper, "", "2024-06-20", "07:30"),
		bottle,
		activity(domain.Breastfeeding, "Breastfeeding", "2024-05-01", "03:00"),
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	baby, activities := fixture()
	start := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC)

	b := Build(baby, activities, start, end, now)

	assert.Equal(t, 3, b.Age.Months)
	assert.Equal(t, 7, b.Age.Days)
	assert.Equal(t, 4, b.TotalActivities, "activities outside the range are kept")
	assert.Equal(t, 3, b.TypeCount)
	assert.Equal(t, 7, b.PeriodDays)
	assert.Equal(t, now, b.GeneratedAt)

	require.Len(t, b.Groups, 3)
	assert.Equal(t, "Breastfeeding", b.Groups[0].Name)
	assert.Equal(t, "diaper", b.Groups[1].Name, "type id is the name when there is no custom name")
	assert.Equal(t, "bottle", b.Groups[2].Name)

	require.Len(t, b.Groups[0].Activities, 2)
	assert.Equal(t, activities[0].ID, b.Groups[0].Activities[0].ID)
	assert.Equal(t, activities[3].ID, b.Groups[0].Activities[1].ID)
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	baby, _ := fixture()
	day := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	b := Build(baby, nil, day, day, day)
	assert.Empty(t, b.Groups)
	assert.Zero(t, b.TypeCount)
	assert.Zero(t, b.PeriodDays)
}

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	baby, activities := fixture()
	b := Build(baby, activities,
		time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC))

	t.Run("english", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, b, i18n.English))
		html := buf.String()

		assert.Contains(t, html, `<html lang="en">`)
		assert.Contains(t, html, "<title>Export Report - Ana</title>")
		assert.Contains(t, html, "Ana - 3m 7d")
		assert.Contains(t, html, "June 14, 2024 - June 20, 2024")
		assert.Contains(t, html, "2 records")
		assert.Contains(t, html, "1 record<")
		assert.Contains(t, html, "Breast Side: Right")
		assert.Contains(t, html, "Quantity (optional): 120ml")
		assert.Contains(t, html, "22:10 - Jun 19")
		assert.Contains(t, html, "&lt;b&gt;spat up&lt;/b&gt;")
		assert.NotContains(t, html, "<b>spat up</b>")
		assert.Contains(t, html, "6 days")
		assert.Contains(t, html, "Generated by Daybaby - June 20, 2024")
	})

	t.Run("portuguese", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, b, i18n.Portuguese))
		html := buf.String()

		assert.Contains(t, html, `<html lang="pt">`)
		assert.Contains(t, html, "20 de junho de 2024")
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, b, "de"))
		assert.Contains(t, buf.String(), `<html lang="en">`)
	})

	t.Run("no activities", func(t *testing.T) {
		var buf bytes.Buffer
		empty := Build(baby, nil, b.Start, b.End, b.GeneratedAt)
		require.NoError(t, r.Render(&buf, empty, i18n.English))
		assert.Contains(t, buf.String(), "No activities recorded")
	})
}
