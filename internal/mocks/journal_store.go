package mocks

import (
	"context"
	"sync"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/store"
	"github.com/google/uuid"
)

// MockJournalStore implements store.JournalStore on top of in-memory data.
// Setting a *Fn field replaces the default behavior of that method.
type MockJournalStore struct {
	mu sync.Mutex

	Babies      map[uuid.UUID][]domain.Baby
	Activities  map[uuid.UUID][]domain.Activity
	Growth      map[uuid.UUID][]domain.GrowthRecord
	Teeth       map[uuid.UUID][]domain.ToothRecord
	CustomTypes map[uuid.UUID][]domain.CustomActivityType
	Settings    map[uuid.UUID]store.Settings

	ListBabiesFn        func(ctx context.Context, userID uuid.UUID) ([]domain.Baby, error)
	ListActivitiesFn    func(ctx context.Context, babyID uuid.UUID) ([]domain.Activity, error)
	ListGrowthRecordsFn func(ctx context.Context, babyID uuid.UUID) ([]domain.GrowthRecord, error)
	ListTeethFn         func(ctx context.Context, babyID uuid.UUID) ([]domain.ToothRecord, error)
	ListCustomTypesFn   func(ctx context.Context, userID uuid.UUID) ([]domain.CustomActivityType, error)

	// Err, when set, is returned by every method without a *Fn override.
	Err error

	calls map[string]int
}

var _ store.JournalStore = (*MockJournalStore)(nil)

// NewMockJournalStore creates an empty MockJournalStore.
func NewMockJournalStore() *MockJournalStore {
	return &MockJournalStore{
		Babies:      make(map[uuid.UUID][]domain.Baby),
		Activities:  make(map[uuid.UUID][]domain.Activity),
		Growth:      make(map[uuid.UUID][]domain.GrowthRecord),
		Teeth:       make(map[uuid.UUID][]domain.ToothRecord),
		CustomTypes: make(map[uuid.UUID][]domain.CustomActivityType),
		Settings:    make(map[uuid.UUID]store.Settings),
		calls:       make(map[string]int),
	}
}

// Calls returns how many times the named method was called.
func (m *MockJournalStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockJournalStore) track(method string) {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
}

// ListBabies implements store.BabyStore.
func (m *MockJournalStore) ListBabies(ctx context.Context, userID uuid.UUID) ([]domain.Baby, error) {
	m.track("ListBabies")
	if m.ListBabiesFn != nil {
		return m.ListBabiesFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Baby(nil), m.Babies[userID]...), nil
}

// CreateBaby implements store.BabyStore.
func (m *MockJournalStore) CreateBaby(_ context.Context, userID uuid.UUID, baby *domain.Baby) error {
	m.track("CreateBaby")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Babies[userID] = append(m.Babies[userID], *baby)
	return nil
}

// UpdateBaby implements store.BabyStore.
func (m *MockJournalStore) UpdateBaby(_ context.Context, userID uuid.UUID, baby *domain.Baby) error {
	m.track("UpdateBaby")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.Babies[userID] {
		if b.ID == baby.ID {
			m.Babies[userID][i] = *baby
			return nil
		}
	}
	return store.ErrBabyNotFound
}

// DeleteBaby implements store.BabyStore.
func (m *MockJournalStore) DeleteBaby(_ context.Context, userID, babyID uuid.UUID) error {
	m.track("DeleteBaby")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	babies := m.Babies[userID]
	for i, b := range babies {
		if b.ID == babyID {
			m.Babies[userID] = append(babies[:i:i], babies[i+1:]...)
			delete(m.Activities, babyID)
			delete(m.Growth, babyID)
			delete(m.Teeth, babyID)
			return nil
		}
	}
	return store.ErrBabyNotFound
}

// ListActivities implements store.ActivityStore.
func (m *MockJournalStore) ListActivities(ctx context.Context, babyID uuid.UUID) ([]domain.Activity, error) {
	m.track("ListActivities")
	if m.ListActivitiesFn != nil {
		return m.ListActivitiesFn(ctx, babyID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Activity(nil), m.Activities[babyID]...), nil
}

// CreateActivity implements store.ActivityStore.
func (m *MockJournalStore) CreateActivity(_ context.Context, activity *domain.Activity) error {
	m.track("CreateActivity")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Activities[activity.BabyID] = append(m.Activities[activity.BabyID], *activity)
	return nil
}

// UpdateActivity implements store.ActivityStore.
func (m *MockJournalStore) UpdateActivity(_ context.Context, activity *domain.Activity) error {
	m.track("UpdateActivity")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.Activities[activity.BabyID] {
		if a.ID == activity.ID {
			m.Activities[activity.BabyID][i] = *activity
			return nil
		}
	}
	return store.ErrActivityNotFound
}

// DeleteActivity implements store.ActivityStore.
func (m *MockJournalStore) DeleteActivity(_ context.Context, id uuid.UUID) error {
	m.track("DeleteActivity")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for babyID, activities := range m.Activities {
		for i, a := range activities {
			if a.ID == id {
				m.Activities[babyID] = append(activities[:i:i], activities[i+1:]...)
				return nil
			}
		}
	}
	return store.ErrActivityNotFound
}

// DeleteActivitiesByType implements store.ActivityStore.
func (m *MockJournalStore) DeleteActivitiesByType(_ context.Context, userID uuid.UUID, typeID string) (int64, error) {
	m.track("DeleteActivitiesByType")
	if m.Err != nil {
		return 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for _, b := range m.Babies[userID] {
		kept := m.Activities[b.ID][:0]
		for _, a := range m.Activities[b.ID] {
			if a.TypeID == typeID {
				removed++
				continue
			}
			kept = append(kept, a)
		}
		m.Activities[b.ID] = kept
	}
	return removed, nil
}

// ListGrowthRecords implements store.GrowthStore.
func (m *MockJournalStore) ListGrowthRecords(ctx context.Context, babyID uuid.UUID) ([]domain.GrowthRecord, error) {
	m.track("ListGrowthRecords")
	if m.ListGrowthRecordsFn != nil {
		return m.ListGrowthRecordsFn(ctx, babyID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.GrowthRecord(nil), m.Growth[babyID]...), nil
}

// CreateGrowthRecord implements store.GrowthStore.
func (m *MockJournalStore) CreateGrowthRecord(_ context.Context, record *domain.GrowthRecord) error {
	m.track("CreateGrowthRecord")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Growth[record.BabyID] = append(m.Growth[record.BabyID], *record)
	return nil
}

// DeleteGrowthRecord implements store.GrowthStore.
func (m *MockJournalStore) DeleteGrowthRecord(_ context.Context, id uuid.UUID) error {
	m.track("DeleteGrowthRecord")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for babyID, records := range m.Growth {
		for i, g := range records {
			if g.ID == id {
				m.Growth[babyID] = append(records[:i:i], records[i+1:]...)
				return nil
			}
		}
	}
	return store.ErrGrowthNotFound
}

// ListTeeth implements store.TeethStore.
func (m *MockJournalStore) ListTeeth(ctx context.Context, babyID uuid.UUID) ([]domain.ToothRecord, error) {
	m.track("ListTeeth")
	if m.ListTeethFn != nil {
		return m.ListTeethFn(ctx, babyID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ToothRecord(nil), m.Teeth[babyID]...), nil
}

// UpsertTooth implements store.TeethStore.
func (m *MockJournalStore) UpsertTooth(_ context.Context, babyID uuid.UUID, tooth domain.ToothRecord) error {
	m.track("UpsertTooth")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.Teeth[babyID] {
		if t.ID == tooth.ID {
			m.Teeth[babyID][i] = tooth
			return nil
		}
	}
	m.Teeth[babyID] = append(m.Teeth[babyID], tooth)
	return nil
}

// ListCustomTypes implements store.CustomTypeStore.
func (m *MockJournalStore) ListCustomTypes(ctx context.Context, userID uuid.UUID) ([]domain.CustomActivityType, error) {
	m.track("ListCustomTypes")
	if m.ListCustomTypesFn != nil {
		return m.ListCustomTypesFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CustomActivityType(nil), m.CustomTypes[userID]...), nil
}

// CreateCustomType implements store.CustomTypeStore.
func (m *MockJournalStore) CreateCustomType(_ context.Context, userID uuid.UUID, ct *domain.CustomActivityType) error {
	m.track("CreateCustomType")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.CustomTypes[userID] {
		if existing.ID == ct.ID {
			return store.ErrDuplicate
		}
	}
	m.CustomTypes[userID] = append(m.CustomTypes[userID], *ct)
	return nil
}

// DeleteCustomType implements store.CustomTypeStore.
func (m *MockJournalStore) DeleteCustomType(_ context.Context, userID uuid.UUID, id string) error {
	m.track("DeleteCustomType")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	types := m.CustomTypes[userID]
	for i, ct := range types {
		if ct.ID == id {
			m.CustomTypes[userID] = append(types[:i:i], types[i+1:]...)
			return nil
		}
	}
	return store.ErrCustomTypeNotFound
}

// GetSettings implements store.SettingsStore.
func (m *MockJournalStore) GetSettings(_ context.Context, userID uuid.UUID) (*store.Settings, error) {
	m.track("GetSettings")
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Settings[userID]
	if !ok {
		return nil, store.ErrSettingsNotFound
	}
	return &s, nil
}

// SaveSettings implements store.SettingsStore.
func (m *MockJournalStore) SaveSettings(_ context.Context, userID uuid.UUID, settings store.Settings) error {
	m.track("SaveSettings")
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Settings[userID] = settings
	return nil
}
