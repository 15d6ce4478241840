package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/prolog-resurrected/pkg/story"
)

// Storage defines a unified interface for session snapshot persistence.
// Implementations back it with Redis, SQLite, or memory.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveSnapshot saves a session snapshot under the given UUID
	SaveSnapshot(ctx context.Context, id uuid.UUID, snap *story.Snapshot) error

	// LoadSnapshot retrieves a session snapshot by UUID
	// Returns nil if the snapshot doesn't exist
	LoadSnapshot(ctx context.Context, id uuid.UUID) (*story.Snapshot, error)

	// DeleteSnapshot removes a session snapshot by UUID
	DeleteSnapshot(ctx context.Context, id uuid.UUID) error
}
