package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/prolog-resurrected/pkg/story"
)

// DefaultSnapshotTTL is applied when no TTL is configured.
const DefaultSnapshotTTL = 24 * time.Hour

// RedisStorage implements the Storage interface using Redis. Snapshots
// expire after the configured TTL, so abandoned sessions clean
// themselves up.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance from a URL like
// "redis://localhost:6379/0".
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
		ttl:    ttl,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection blocks until Redis answers a ping, retrying on a
// fixed interval. Meant for process startup, before any session traffic.
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	const (
		maxAttempts   = 30
		retryInterval = 2 * time.Second
	)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if lastErr = r.Ping(ctx); lastErr == nil {
			r.logger.Info("Redis connection established", "attempt", attempt)
			return nil
		}
		r.logger.Debug("Redis not ready", "attempt", attempt, "error", lastErr)

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("redis not available after %d attempts: %w", maxAttempts, lastErr)
}

// Snapshot operations

func (r *RedisStorage) SaveSnapshot(ctx context.Context, id uuid.UUID, snap *story.Snapshot) error {
	// Update the UpdatedAt timestamp
	snap.UpdatedAt = time.Now()

	data, err := json.Marshal(snap)
	if err != nil {
		r.logger.Error("Failed to marshal snapshot", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Use progress: prefix for snapshot keys
	key := "progress:" + id.String()
	cmd := r.client.Set(ctx, key, string(data), r.ttl)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save snapshot", "uuid", id, "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadSnapshot(ctx context.Context, id uuid.UUID) (*story.Snapshot, error) {
	key := "progress:" + id.String()
	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Snapshot not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load snapshot", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		r.logger.Warn("Snapshot not found", "uuid", id)
		return nil, nil
	}

	var snap story.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		r.logger.Error("Failed to unmarshal snapshot", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

func (r *RedisStorage) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	key := "progress:" + id.String()
	cmd := r.client.Del(ctx, key)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete snapshot", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
