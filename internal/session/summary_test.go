package session

import (
	"context"
	"testing"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/domain/derive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	require.NoError(t, f.ctrl.Init(ctx))
	baby := addBaby(t, f.journal, "Ana")

	_, err := f.ctrl.SaveActivity(ctx, domain.Activity{TypeID: domain.Diaper, Time: "08:00"})
	require.NoError(t, err)

	require.True(t, f.ctrl.StartTimer())
	f.clock.Advance(10 * time.Minute)
	require.True(t, f.ctrl.StopTimer())
	_, err = f.ctrl.SaveActivity(ctx, domain.Activity{
		TypeID:  domain.Breastfeeding,
		Details: domain.Details{BreastSide: domain.BreastLeft},
	})
	require.NoError(t, err)

	s, err := f.ctrl.Summary()
	require.NoError(t, err)

	assert.Equal(t, baby.ID, s.Baby.ID)
	assert.Equal(t, derive.Age{Months: 3, Days: 7, Weeks: 13}, s.Age)
	assert.Equal(t, "2024-06-20", s.Date)
	assert.Equal(t, "Jun 20", s.DateLabel)

	require.Len(t, s.OnDate, 2)
	assert.Equal(t, domain.Breastfeeding, s.OnDate[0].TypeID)
	assert.Equal(t, domain.Diaper, s.OnDate[1].TypeID)

	require.Len(t, s.Since, 2)
	assert.Equal(t, domain.Breastfeeding, s.Since[0].Type.ID)
	assert.Equal(t, "just now", s.Since[0].Ago)
	assert.Equal(t, domain.Diaper, s.Since[1].Type.ID)
	assert.Equal(t, "2h 25m ago", s.Since[1].Ago)

	require.Len(t, s.Counts, 2)
	assert.Equal(t, 1, s.Counts[0].Count)
	assert.Equal(t, &derive.SideSplit{Left: 1}, s.Counts[0].Sides)

	assert.False(t, s.Durations.Empty)
	require.Len(t, s.Durations.Rows, 1)
	assert.Equal(t, 10, s.Durations.Rows[0].TotalMinutes)
	assert.Equal(t, 10, s.Durations.Rows[0].AverageMinutes)
}

func TestSummaryYesterdayLabel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning, WithLocale("pt-BR"))
	require.NoError(t, f.ctrl.Init(ctx))
	addBaby(t, f.journal, "Ana")
	f.journal.ShiftCursor(-1)

	s, err := f.ctrl.Summary()
	require.NoError(t, err)
	assert.Equal(t, "Ontem", s.DateLabel)
	assert.Empty(t, s.OnDate)
	assert.Empty(t, s.Since)
	assert.True(t, s.Durations.Empty)
}

func TestSummaryErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, morning)
	_, err := f.ctrl.Summary()
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, f.ctrl.Init(ctx))
	_, err = f.ctrl.Summary()
	assert.ErrorIs(t, err, domain.ErrNoBabySelected)
}
