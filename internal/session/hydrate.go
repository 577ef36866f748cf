package session

import (
	"context"
	"fmt"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/store"
	"github.com/google/uuid"
)

// Hydrate replaces the journal with everything src holds for userID. It is
// a one-shot load: nothing is written back. On error the journal is left as
// it was.
func (c *Controller) Hydrate(ctx context.Context, src store.JournalStore, userID uuid.UUID) error {
	snap, err := store.LoadSnapshot(ctx, src, userID)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load journal", "user_id", userID, "error", err)
		return err
	}

	c.mu.Lock()
	err = c.journal.Restore(snap)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("stored journal is invalid: %w", err)
	}

	c.logger.InfoContext(ctx, "journal loaded",
		"user_id", userID,
		"babies", len(snap.Babies),
		"activities", len(snap.Activities))
	return nil
}

// HydrateCurrentUser hydrates the journal for the signed-in caregiver and
// returns their profile.
func (c *Controller) HydrateCurrentUser(
	ctx context.Context,
	accounts store.AccountService,
	src store.JournalStore,
) (*domain.Profile, error) {
	profile, err := accounts.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("no signed-in caregiver: %w", err)
	}
	if err := c.Hydrate(ctx, src, profile.ID); err != nil {
		return nil, err
	}
	return profile, nil
}
