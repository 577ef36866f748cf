package prefs

import (
	"context"
	"sync"
)

// StateKey names the persisted record in key/value backends.
const StateKey = "daybaby_analytics"

// Persister stores the serialized state record. Load returns nil data and a
// nil error when nothing has been stored yet.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemoryPersister keeps the record in memory. It is the backend for
// ephemeral sessions and tests.
type MemoryPersister struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryPersister returns a persister holding a copy of initial, which
// may be nil.
func NewMemoryPersister(initial []byte) *MemoryPersister {
	return &MemoryPersister{data: clone(initial)}
}

// Load implements Persister.
func (m *MemoryPersister) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.data), nil
}

// Save implements Persister.
func (m *MemoryPersister) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = clone(data)
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
