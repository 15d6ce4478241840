package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jwebster45206/prolog-resurrected/internal/logger"
	"github.com/jwebster45206/prolog-resurrected/internal/storage"
	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
	"github.com/jwebster45206/prolog-resurrected/pkg/story"
)

// Manager hosts one story engine per active game session. The registry
// itself is safe for concurrent use; the engines it hands out are not,
// so each session must drive its engine from a single goroutine.
type Manager struct {
	mu      sync.RWMutex
	engines map[uuid.UUID]*story.Engine
	storage storage.Storage
	log     *slog.Logger
}

// NewManager creates a session manager backed by the given storage.
func NewManager(store storage.Storage, log *slog.Logger) *Manager {
	return &Manager{
		engines: make(map[uuid.UUID]*story.Engine),
		storage: store,
		log:     log,
	}
}

// Create starts a new session with a fresh engine at the given
// complexity level and returns its ID.
func (m *Manager) Create(tier complexity.Level) (uuid.UUID, *story.Engine) {
	id := uuid.New()
	engine := story.NewEngine(tier)

	m.mu.Lock()
	m.engines[id] = engine
	m.mu.Unlock()

	logger.WithSessionID(m.log, id.String()).Info("Session created",
		"complexity", tier.String())
	return id, engine
}

// Get returns the engine for a session, or nil if the session
// doesn't exist.
func (m *Manager) Get(id uuid.UUID) *story.Engine {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.engines[id]
}

// End removes a session from the registry. Saved snapshots are kept so
// the session can be restored later with Load.
func (m *Manager) End(id uuid.UUID) {
	m.mu.Lock()
	delete(m.engines, id)
	m.mu.Unlock()

	logger.WithSessionID(m.log, id.String()).Info("Session ended")
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.engines)
}

// Save writes a snapshot of the session's engine to storage.
func (m *Manager) Save(ctx context.Context, id uuid.UUID) error {
	engine := m.Get(id)
	if engine == nil {
		return fmt.Errorf("session %s not found", id.String())
	}

	log := logger.WithSessionID(m.log, id.String())

	snap := engine.Snapshot()
	snap.ID = id
	if err := m.storage.SaveSnapshot(ctx, id, snap); err != nil {
		log.Error("Failed to save session snapshot", "error", err)
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}

	log.Debug("Session snapshot saved", "level", snap.Level.String())
	return nil
}

// Load restores a session's engine from a stored snapshot and registers
// it under the same ID. Returns nil if no snapshot exists.
func (m *Manager) Load(ctx context.Context, id uuid.UUID) (*story.Engine, error) {
	log := logger.WithSessionID(m.log, id.String())

	snap, err := m.storage.LoadSnapshot(ctx, id)
	if err != nil {
		log.Error("Failed to load session snapshot", "error", err)
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}

	engine, err := story.RestoreEngine(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	m.mu.Lock()
	m.engines[id] = engine
	m.mu.Unlock()

	log.Info("Session restored",
		"level", snap.Level.String(),
		"complexity", snap.Complexity.String())
	return engine, nil
}

// Discard removes a session's saved snapshot from storage. The live
// engine, if any, is untouched.
func (m *Manager) Discard(ctx context.Context, id uuid.UUID) error {
	if err := m.storage.DeleteSnapshot(ctx, id); err != nil {
		logger.WithSessionID(m.log, id.String()).Error(
			"Failed to delete session snapshot", "error", err)
		return fmt.Errorf("failed to delete session snapshot: %w", err)
	}
	return nil
}
