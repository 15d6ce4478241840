package storage

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/prolog-resurrected/internal/config"
)

// NewFromConfig selects a storage backend from runtime configuration.
// Redis when RedisURL is set, otherwise SQLite at SQLitePath, otherwise
// the in-memory store. The Redis path waits for the server to answer
// before returning, so a bad address fails here rather than on first use.
func NewFromConfig(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	if cfg.RedisURL != "" {
		store, err := NewRedisStorage(cfg.RedisURL, cfg.SnapshotTTL, log)
		if err != nil {
			return nil, err
		}
		if err := store.WaitForConnection(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	}
	if cfg.SQLitePath != "" {
		return NewSQLiteStorage(cfg.SQLitePath, log)
	}
	return NewMemoryStorage(), nil
}
