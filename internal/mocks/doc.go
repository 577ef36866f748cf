// Package mocks provides shared test doubles for the storage boundary.
//
// MockJournalStore is an in-memory journal store with function-field
// overrides and per-method call counts:
//
//	src := mocks.NewMockJournalStore()
//	src.ListActivitiesFn = func(ctx context.Context, babyID uuid.UUID) ([]domain.Activity, error) {
//	    return nil, errors.New("offline")
//	}
//
// TestifyMockAccountService is a testify/mock double for store.AccountService.
package mocks
