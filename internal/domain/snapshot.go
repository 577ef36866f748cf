package domain

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// SnapshotVersion is the format version written by Journal.Snapshot.
const SnapshotVersion = 1

// BabyTeeth is the tooth chart of one baby.
type BabyTeeth struct {
	BabyID uuid.UUID     `json:"babyId"`
	Teeth  []ToothRecord `json:"teeth"`
}

// Snapshot is a portable copy of a whole journal.
type Snapshot struct {
	Version        int                  `json:"version"`
	SelectedBabyID uuid.UUID            `json:"selectedBabyId"`
	Babies         []Baby               `json:"babies"`
	CustomTypes    []CustomActivityType `json:"customActivityTypes"`
	Activities     []Activity           `json:"activities"`
	Growth         []GrowthRecord       `json:"growthRecords"`
	Teeth          []BabyTeeth          `json:"teeth"`
}

// Snapshot copies the journal's state. Activities are in insertion order
// per baby, babies in journal order.
func (j *Journal) Snapshot() Snapshot {
	s := Snapshot{
		Version:        SnapshotVersion,
		SelectedBabyID: j.selectedID,
		Babies:         j.Babies(),
		CustomTypes:    j.CustomActivityTypes(),
	}
	for _, b := range j.babies {
		rec := j.records[b.ID]
		s.Activities = append(s.Activities, rec.activities...)
		s.Growth = append(s.Growth, rec.growth...)
		teeth := make([]ToothRecord, len(rec.teeth))
		copy(teeth, rec.teeth)
		s.Teeth = append(s.Teeth, BabyTeeth{BabyID: b.ID, Teeth: teeth})
	}
	return s
}

// Restore replaces the journal's state with s after validating every entity.
// On error the journal is unchanged. Babies without a tooth chart get a
// fresh one; a selection that doesn't reference a baby falls back to the
// first baby.
func (j *Journal) Restore(s Snapshot) error {
	next := &Journal{
		records: make(map[uuid.UUID]*babyRecords, len(s.Babies)),
		now:     j.now,
		cursor:  j.cursor,
	}

	for _, ct := range s.CustomTypes {
		if err := ct.Validate(); err != nil {
			return fmt.Errorf("custom type %s: %w", ct.ID, err)
		}
		if next.customTypeIndex(ct.ID) >= 0 {
			return NewValidationError("customActivityTypes", "contains duplicate id "+ct.ID, ErrValidation)
		}
		next.customTypes = append(next.customTypes, ct)
	}

	for _, b := range s.Babies {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("baby %s: %w", b.ID, err)
		}
		if next.babyIndex(b.ID) >= 0 {
			return NewValidationError("babies", "contains duplicate id "+b.ID.String(), ErrValidation)
		}
		next.babies = append(next.babies, b)
		next.records[b.ID] = &babyRecords{}
	}

	for _, a := range s.Activities {
		rec, ok := next.records[a.BabyID]
		if !ok {
			return fmt.Errorf("activity %s: baby %s: %w", a.ID, a.BabyID, ErrNotFound)
		}
		// Activities may outlive their custom type.
		if err := a.Validate(); err != nil {
			return fmt.Errorf("activity %s: %w", a.ID, err)
		}
		rec.activities = append(rec.activities, a)
	}

	for _, g := range s.Growth {
		rec, ok := next.records[g.BabyID]
		if !ok {
			return fmt.Errorf("growth record %s: baby %s: %w", g.ID, g.BabyID, ErrNotFound)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("growth record %s: %w", g.ID, err)
		}
		rec.growth = append(rec.growth, g)
	}

	for _, bt := range s.Teeth {
		rec, ok := next.records[bt.BabyID]
		if !ok {
			return fmt.Errorf("teeth: baby %s: %w", bt.BabyID, ErrNotFound)
		}
		teeth, err := mergeTeeth(bt.Teeth)
		if err != nil {
			return err
		}
		rec.teeth = teeth
	}

	for _, rec := range next.records {
		sort.SliceStable(rec.growth, func(a, b int) bool {
			return rec.growth[a].Date > rec.growth[b].Date
		})
		if rec.teeth == nil {
			rec.teeth = SeedTeeth()
		}
	}

	next.selectedID = s.SelectedBabyID
	if next.babyIndex(next.selectedID) < 0 {
		next.selectedID = uuid.Nil
		if len(next.babies) > 0 {
			next.selectedID = next.babies[0].ID
		}
	}

	j.babies = next.babies
	j.selectedID = next.selectedID
	j.customTypes = next.customTypes
	j.records = next.records
	return nil
}

// mergeTeeth overlays stored eruption data onto a fresh chart so the 20
// fixed positions always exist and the date invariant holds.
func mergeTeeth(stored []ToothRecord) ([]ToothRecord, error) {
	teeth := SeedTeeth()
	for _, st := range stored {
		if st.ID < 1 || st.ID > ToothCount {
			return nil, fmt.Errorf("tooth %d: %w", st.ID, ErrNotFound)
		}
		t := &teeth[st.ID-1]
		t.Erupted = st.Erupted
		if st.Erupted {
			if _, err := ParseDateKey(st.EruptionDate); err != nil {
				return nil, NewValidationError("eruptionDate", "is required when erupted", ErrValidation)
			}
			t.EruptionDate = st.EruptionDate
		}
	}
	return teeth, nil
}
