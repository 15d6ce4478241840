package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/prolog-resurrected/pkg/story"
)

// MemoryStorage is an in-process implementation of Storage. It backs
// development runs without Redis or SQLite, and doubles as the test
// double. Snapshots are stored as copies so callers cannot mutate them
// after saving.
type MemoryStorage struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]*story.Snapshot
	pingError error
}

// Ensure MemoryStorage implements Storage interface
var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-process store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		snapshots: make(map[uuid.UUID]*story.Snapshot),
	}
}

// SetPingError configures Ping to fail with the given error. Pass nil
// to restore success.
func (m *MemoryStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// Ping reports the configured health state.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close is a no-op for the memory store.
func (m *MemoryStorage) Close() error {
	return nil
}

// SaveSnapshot stores a copy of the snapshot.
func (m *MemoryStorage) SaveSnapshot(ctx context.Context, id uuid.UUID, snap *story.Snapshot) error {
	if snap == nil {
		return errors.New("snapshot cannot be nil")
	}
	snap.UpdatedAt = time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[id] = copySnapshot(snap)
	return nil
}

// LoadSnapshot returns a copy of the stored snapshot, or nil if absent.
func (m *MemoryStorage) LoadSnapshot(ctx context.Context, id uuid.UUID) (*story.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, exists := m.snapshots[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	return copySnapshot(snap), nil
}

// DeleteSnapshot removes a snapshot. Deleting an absent snapshot is
// not an error.
func (m *MemoryStorage) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, id)
	return nil
}

// Count returns the number of stored snapshots (for testing).
func (m *MemoryStorage) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snapshots)
}

func copySnapshot(snap *story.Snapshot) *story.Snapshot {
	out := *snap
	out.Progress = snap.Progress.Clone()
	return &out
}
