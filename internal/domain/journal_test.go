package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyTranslator struct{}

func (keyTranslator) T(key string) string { return "t:" + key }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2024, time.June, 20, 14, 30, 0, 0, time.UTC)

func newTestJournal(t *testing.T, babies int) *Journal {
	t.Helper()
	j := NewJournal(WithClock(fixedClock(testNow)))
	for i := 0; i < babies; i++ {
		_, err := j.AddBaby(Baby{
			Name:      "Baby " + string(rune('A'+i)),
			BirthDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	return j
}

func activity(typeID, date, clock string) Activity {
	return Activity{TypeID: typeID, Date: date, Time: clock}
}

func TestAddBabySelectsFirst(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 2)
	babies := j.Babies()
	require.Len(t, babies, 2)

	selected, ok := j.SelectedBaby()
	require.True(t, ok)
	assert.Equal(t, babies[0].ID, selected.ID)
	assert.Len(t, j.Teeth(), ToothCount)
}

func TestAddBabyValidation(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 0)

	_, err := j.AddBaby(Baby{Name: "  ", BirthDate: testNow})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = j.AddBaby(Baby{Name: "Ana"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, j.Babies())
	_, ok := j.SelectedBaby()
	assert.False(t, ok)
}

func TestRemoveBaby(t *testing.T) {
	t.Parallel()

	t.Run("last baby is kept", func(t *testing.T) {
		j := newTestJournal(t, 1)
		only := j.Babies()[0]

		assert.False(t, j.CanRemoveBaby())
		assert.False(t, j.RemoveBaby(only.ID))
		assert.Len(t, j.Babies(), 1)
	})

	t.Run("removing selected reselects a remaining baby", func(t *testing.T) {
		for n := 2; n <= 5; n++ {
			for victim := 0; victim < n; victim++ {
				j := newTestJournal(t, n)
				babies := j.Babies()
				require.NoError(t, j.SelectBaby(babies[victim].ID))

				require.True(t, j.RemoveBaby(babies[victim].ID))

				remaining := j.Babies()
				assert.Len(t, remaining, n-1)
				selected, ok := j.SelectedBaby()
				require.True(t, ok)
				assert.NotEqual(t, babies[victim].ID, selected.ID)
				assert.Contains(t, remaining, selected)
			}
		}
	})

	t.Run("removing another baby keeps the selection", func(t *testing.T) {
		j := newTestJournal(t, 3)
		babies := j.Babies()
		require.NoError(t, j.SelectBaby(babies[2].ID))

		require.True(t, j.RemoveBaby(babies[0].ID))

		selected, _ := j.SelectedBaby()
		assert.Equal(t, babies[2].ID, selected.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		j := newTestJournal(t, 2)
		assert.False(t, j.RemoveBaby(uuid.New()))
	})
}

func TestUpdateBaby(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 1)
	b := j.Babies()[0]

	b.Name = "Renamed"
	b.Photo = "photo.png"
	require.NoError(t, j.UpdateBaby(b))
	assert.Equal(t, "Renamed", j.Babies()[0].Name)
	assert.Equal(t, "photo.png", j.Babies()[0].Photo)

	b.Name = ""
	assert.ErrorIs(t, j.UpdateBaby(b), ErrValidation)
	assert.Equal(t, "Renamed", j.Babies()[0].Name)

	assert.ErrorIs(t, j.UpdateBaby(Baby{ID: uuid.New(), Name: "x", BirthDate: testNow}), ErrNotFound)
}

func TestActivitiesOrderingAndDateFilter(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 1)
	for _, a := range []Activity{
		activity(Diaper, "2024-06-19", "23:10"),
		activity(Sleep, "2024-06-20", "08:00"),
		activity(Breastfeeding, "2024-06-20", "13:45"),
		activity(Bottle, "2024-06-20", "08:00"),
	} {
		_, err := j.AddActivity(a)
		require.NoError(t, err)
	}

	all := j.Activities()
	require.Len(t, all, 4)
	assert.Equal(t, Breastfeeding, all[0].TypeID)
	assert.Equal(t, Sleep, all[1].TypeID, "equal keys keep insertion order")
	assert.Equal(t, Bottle, all[2].TypeID)
	assert.Equal(t, Diaper, all[3].TypeID)

	onDate := j.ActivitiesOnDate("2024-06-20")
	assert.Len(t, onDate, 3)
	assert.Empty(t, j.ActivitiesOnDate("2024-06-2"))
}

func TestAddActivityValidation(t *testing.T) {
	t.Parallel()

	side := Details{BreastSide: BreastLeft}
	qty := Details{Quantity: &Quantity{Amount: 120, Unit: UnitML}}

	testCases := []struct {
		name string
		act  Activity
	}{
		{"missing type", activity("", "2024-06-20", "10:00")},
		{"missing date", activity(Sleep, "", "10:00")},
		{"bad time", activity(Sleep, "2024-06-20", "10h")},
		{"unknown type", activity("nope", "2024-06-20", "10:00")},
		{"breast side on diaper", Activity{TypeID: Diaper, Date: "2024-06-20", Time: "10:00", Details: side}},
		{"quantity on sleep", Activity{TypeID: Sleep, Date: "2024-06-20", Time: "10:00", Details: qty}},
		{"bad unit", Activity{TypeID: Bottle, Date: "2024-06-20", Time: "10:00",
			Details: Details{Quantity: &Quantity{Amount: 1, Unit: "l"}}}},
		{"bad side", Activity{TypeID: Breastfeeding, Date: "2024-06-20", Time: "10:00",
			Details: Details{BreastSide: "both"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			j := newTestJournal(t, 1)
			_, err := j.AddActivity(tc.act)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, j.Activities())
		})
	}

	t.Run("no baby", func(t *testing.T) {
		j := newTestJournal(t, 0)
		_, err := j.AddActivity(activity(Sleep, "2024-06-20", "10:00"))
		assert.ErrorIs(t, err, ErrNoBabySelected)
	})

	t.Run("allowed details", func(t *testing.T) {
		j := newTestJournal(t, 1)
		_, err := j.AddActivity(Activity{TypeID: Breastfeeding, Date: "2024-06-20", Time: "10:00", Details: side})
		assert.NoError(t, err)
		_, err = j.AddActivity(Activity{TypeID: Pumping, Date: "2024-06-20", Time: "10:00", Details: qty})
		assert.NoError(t, err)
	})
}

func TestUpdateAndRemoveActivity(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 1)
	a, err := j.AddActivity(activity(Sleep, "2024-06-20", "10:00"))
	require.NoError(t, err)

	a.Notes = "long nap"
	a.Time = "10:15"
	require.NoError(t, j.UpdateActivity(a))
	got := j.Activities()
	require.Len(t, got, 1)
	assert.Equal(t, "long nap", got[0].Notes)
	assert.Equal(t, "10:15", got[0].Time)

	bad := a
	bad.Date = ""
	assert.ErrorIs(t, j.UpdateActivity(bad), ErrValidation)
	assert.Equal(t, "2024-06-20", j.Activities()[0].Date)

	assert.ErrorIs(t, j.UpdateActivity(Activity{ID: uuid.New()}), ErrNotFound)

	assert.True(t, j.RemoveActivity(a.ID))
	assert.False(t, j.RemoveActivity(a.ID))
	assert.Empty(t, j.Activities())
}

func TestCustomTypeRemovalDoesNotCascade(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 2)
	ct, err := j.AddCustomActivityType(CustomActivityType{Name: "Bath", Icon: ParseIcon("droplet")})
	require.NoError(t, err)
	assert.Equal(t, DefaultCustomColor, ct.Color)

	_, err = j.AddActivity(activity(ct.ID, "2024-06-20", "19:00"))
	require.NoError(t, err)
	require.NoError(t, j.SelectBaby(j.Babies()[1].ID))
	_, err = j.AddActivity(activity(ct.ID, "2024-06-20", "19:30"))
	require.NoError(t, err)

	assert.True(t, j.RemoveCustomActivityType(ct.ID))
	assert.Empty(t, j.CustomActivityTypes())
	assert.Len(t, j.Activities(), 1)

	assert.Equal(t, 2, j.RemoveActivitiesByType(ct.ID))
	assert.Empty(t, j.Activities())
	assert.Empty(t, j.ActivitiesOf(j.Babies()[0].ID))
}

func TestAllActivityTypes(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 1)
	first, err := j.AddCustomActivityType(CustomActivityType{Name: "Bath"})
	require.NoError(t, err)
	second, err := j.AddCustomActivityType(CustomActivityType{Name: "Walk", Icon: ParseIcon("🚶"), Color: "bg-blue-200"})
	require.NoError(t, err)

	types := j.AllActivityTypes(keyTranslator{}, PaletteBold)
	require.Len(t, types, 7)

	assert.Equal(t, []string{Breastfeeding, Diaper, Sleep, Pumping, Bottle}, []string{
		types[0].ID, types[1].ID, types[2].ID, types[3].ID, types[4].ID,
	})
	assert.Equal(t, "t:breastfeeding", types[0].Name)
	assert.Equal(t, "bg-pink-300", types[0].Color)
	assert.Equal(t, "bg-green-300", types[1].Color)
	assert.Equal(t, "bg-blue-300", types[2].Color)
	assert.Equal(t, "🍼", types[4].Icon.String())
	assert.False(t, types[0].Custom)

	assert.Equal(t, first.ID, types[5].ID)
	assert.Equal(t, DefaultCustomIcon, types[5].Icon.String())
	assert.Equal(t, second.ID, types[6].ID)
	assert.True(t, types[6].Custom)

	got, ok := j.ActivityType(second.ID, keyTranslator{}, PaletteBold)
	assert.True(t, ok)
	assert.Equal(t, "Walk", got.Name)
}

func TestGrowthRecordsStaySortedDescending(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 1)
	dates := []string{"2024-05-01", "2024-06-15", "2024-04-10", "2024-06-15", "2024-05-20"}
	for i, d := range dates {
		_, err := j.AddGrowthRecord(GrowthRecord{
			Date:                d,
			WeightKg:            5 + float64(i),
			HeightCm:            55,
			HeadCircumferenceCm: 38,
		})
		require.NoError(t, err)

		records := j.GrowthRecords()
		for k := 1; k < len(records); k++ {
			assert.GreaterOrEqual(t, records[k-1].Date, records[k].Date)
		}
	}

	records := j.GrowthRecords()
	assert.Equal(t, 6.0, records[0].WeightKg, "same date keeps insertion order")
	assert.Equal(t, 8.0, records[1].WeightKg)

	_, err := j.AddGrowthRecord(GrowthRecord{Date: "2024-06-01", WeightKg: 5, HeightCm: 0, HeadCircumferenceCm: 38})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, j.GrowthRecords(), len(dates))

	assert.True(t, j.RemoveGrowthRecord(records[0].ID))
	assert.Len(t, j.GrowthRecords(), len(dates)-1)
}

func TestSetToothErupted(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 1)

	tooth, err := j.SetToothErupted(11, true, "")
	require.NoError(t, err)
	assert.True(t, tooth.Erupted)
	assert.Equal(t, "2024-06-20", tooth.EruptionDate)

	tooth, err = j.SetToothErupted(11, true, "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", tooth.EruptionDate)

	tooth, err = j.SetToothErupted(11, false, "2024-05-02")
	require.NoError(t, err)
	assert.False(t, tooth.Erupted)
	assert.Empty(t, tooth.EruptionDate)

	_, err = j.SetToothErupted(21, true, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = j.SetToothErupted(1, true, "May 2")
	assert.ErrorIs(t, err, ErrValidation)

	for _, tr := range j.Teeth() {
		assert.Equal(t, tr.Erupted, tr.EruptionDate != "", "tooth %d", tr.ID)
	}
}

func TestCursor(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t, 0)
	assert.True(t, j.IsToday())
	assert.Equal(t, "2024-06-20", j.CursorKey())

	j.ShiftCursor(-1)
	assert.False(t, j.IsToday())
	assert.Equal(t, "2024-06-19", j.CursorKey())

	j.SetCursor(time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC))
	j.ShiftCursor(-1)
	assert.Equal(t, "2024-02-29", j.CursorKey())
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	src := newTestJournal(t, 2)
	ct, err := src.AddCustomActivityType(CustomActivityType{Name: "Bath"})
	require.NoError(t, err)
	_, err = src.AddActivity(activity(ct.ID, "2024-06-20", "19:00"))
	require.NoError(t, err)
	_, err = src.AddGrowthRecord(GrowthRecord{Date: "2024-06-01", WeightKg: 6, HeightCm: 60, HeadCircumferenceCm: 40})
	require.NoError(t, err)
	_, err = src.SetToothErupted(1, true, "2024-06-10")
	require.NoError(t, err)
	require.NoError(t, src.SelectBaby(src.Babies()[1].ID))

	dst := newTestJournal(t, 0)
	require.NoError(t, dst.Restore(src.Snapshot()))

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
	selected, _ := dst.SelectedBaby()
	assert.Equal(t, src.Babies()[1].ID, selected.ID)

	t.Run("invalid snapshot leaves journal unchanged", func(t *testing.T) {
		s := src.Snapshot()
		s.Activities = append(s.Activities, Activity{ID: uuid.New(), BabyID: s.Babies[0].ID, TypeID: Diaper, Date: "2024-06-20", Time: "25:00"})

		before := dst.Snapshot()
		assert.ErrorIs(t, dst.Restore(s), ErrValidation)
		assert.Equal(t, before, dst.Snapshot())
	})

	t.Run("orphaned custom type activities survive", func(t *testing.T) {
		j := newTestJournal(t, 1)
		ct, err := j.AddCustomActivityType(CustomActivityType{Name: "Swim"})
		require.NoError(t, err)
		added, err := j.AddActivity(activity(ct.ID, "2024-06-20", "08:00"))
		require.NoError(t, err)
		require.True(t, j.RemoveCustomActivityType(ct.ID))

		restored := newTestJournal(t, 0)
		require.NoError(t, restored.Restore(j.Snapshot()))
		assert.Empty(t, restored.CustomActivityTypes())
		require.Len(t, restored.Activities(), 1)
		assert.Equal(t, added.ID, restored.Activities()[0].ID)
		assert.Equal(t, ct.ID, restored.Activities()[0].TypeID)
	})

	t.Run("missing teeth are seeded", func(t *testing.T) {
		s := src.Snapshot()
		s.Teeth = nil
		s.SelectedBabyID = uuid.New()

		j := newTestJournal(t, 0)
		require.NoError(t, j.Restore(s))
		assert.Len(t, j.Teeth(), ToothCount)
		selected, _ := j.SelectedBaby()
		assert.Equal(t, s.Babies[0].ID, selected.ID)
	})
}
