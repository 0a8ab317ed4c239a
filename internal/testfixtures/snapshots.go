package testfixtures

import (
	"context"
	"sync"

	"github.com/example/school-dashboard/internal/persistence"
)

// MemorySnapshots is an in-memory snapshot store with failure injection for
// tests that exercise persistence behavior without SQLite.
type MemorySnapshots struct {
	mu    sync.Mutex
	blobs map[persistence.Slot][]byte
	saved []persistence.Slot

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

// NewMemorySnapshots constructs an empty in-memory snapshot store.
func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{blobs: make(map[persistence.Slot][]byte)}
}

// Seed stores a blob directly, bypassing Save bookkeeping.
func (m *MemorySnapshots) Seed(slot persistence.Slot, blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[slot] = append([]byte(nil), blob...)
}

// Load returns the stored blob or persistence.ErrNotFound.
func (m *MemorySnapshots) Load(_ context.Context, slot persistence.Slot) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[slot]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

// Save records the write and stores the blob unless SaveErr is set.
func (m *MemorySnapshots) Save(_ context.Context, slot persistence.Slot, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, slot)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.blobs[slot] = append([]byte(nil), blob...)
	return nil
}

// SavedSlots returns the slots written so far, in order.
func (m *MemorySnapshots) SavedSlots() []persistence.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]persistence.Slot(nil), m.saved...)
}

// SavedCount returns how many times the slot was written.
func (m *MemorySnapshots) SavedCount(slot persistence.Slot) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, s := range m.saved {
		if s == slot {
			count++
		}
	}
	return count
}
