package store

import (
	"context"
	"fmt"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/google/uuid"
)

// LoadSnapshot reads everything stored for userID into a journal snapshot.
// The first baby is selected. Any failure is returned as a *StoreError
// naming the entity that could not be read.
func LoadSnapshot(ctx context.Context, src JournalStore, userID uuid.UUID) (domain.Snapshot, error) {
	snap := domain.Snapshot{Version: domain.SnapshotVersion}

	babies, err := src.ListBabies(ctx, userID)
	if err != nil {
		return snap, NewStoreError("baby", "list", "could not load babies", err)
	}
	snap.Babies = babies
	if len(babies) > 0 {
		snap.SelectedBabyID = babies[0].ID
	}

	snap.CustomTypes, err = src.ListCustomTypes(ctx, userID)
	if err != nil {
		return snap, NewStoreError("custom activity type", "list", "could not load custom activity types", err)
	}

	for _, b := range babies {
		activities, err := src.ListActivities(ctx, b.ID)
		if err != nil {
			return snap, NewStoreError("activity", "list",
				fmt.Sprintf("could not load activities for %s", b.Name), err)
		}
		snap.Activities = append(snap.Activities, activities...)

		growth, err := src.ListGrowthRecords(ctx, b.ID)
		if err != nil {
			return snap, NewStoreError("growth record", "list",
				fmt.Sprintf("could not load growth records for %s", b.Name), err)
		}
		snap.Growth = append(snap.Growth, growth...)

		teeth, err := src.ListTeeth(ctx, b.ID)
		if err != nil {
			return snap, NewStoreError("tooth", "list",
				fmt.Sprintf("could not load teeth for %s", b.Name), err)
		}
		if len(teeth) > 0 {
			snap.Teeth = append(snap.Teeth, domain.BabyTeeth{BabyID: b.ID, Teeth: teeth})
		}
	}

	return snap, nil
}
