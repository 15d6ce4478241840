package session

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/prolog-resurrected/internal/storage"
	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
	"github.com/jwebster45206/prolog-resurrected/pkg/story"
)

func setupManager(t *testing.T) (*Manager, *storage.MemoryStorage) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	store := storage.NewMemoryStorage()
	return NewManager(store, logger), store
}

func TestManager_CreateAndGet(t *testing.T) {
	m, _ := setupManager(t)

	id, engine := m.Create(complexity.Beginner)
	require.NotNil(t, engine, "Create should return an engine")
	assert.NotEqual(t, uuid.Nil, id, "Create should mint a session ID")
	assert.Equal(t, story.LevelTutorial, engine.CurrentLevel())
	assert.Equal(t, complexity.Beginner, engine.ComplexityLevel())

	got := m.Get(id)
	assert.Same(t, engine, got, "Get should return the session's engine")
	assert.Equal(t, 1, m.Count())
}

func TestManager_GetUnknownSession(t *testing.T) {
	m, _ := setupManager(t)
	assert.Nil(t, m.Get(uuid.New()), "unknown session should return nil")
}

func TestManager_End(t *testing.T) {
	m, _ := setupManager(t)

	id, _ := m.Create(complexity.Expert)
	require.Equal(t, 1, m.Count())

	m.End(id)
	assert.Equal(t, 0, m.Count())
	assert.Nil(t, m.Get(id), "ended session should not be retrievable")

	// Ending twice is harmless
	m.End(id)
	assert.Equal(t, 0, m.Count())
}

func TestManager_SaveAndLoad(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	id, engine := m.Create(complexity.Intermediate)
	engine.MarkHelloWorldCompleted()
	engine.AdvanceLevel()
	engine.AdvanceLevel()
	engine.AddScore(300)
	engine.SetStoryFlag("met_supervisor")

	require.NoError(t, m.Save(ctx, id))
	assert.Equal(t, 1, store.Count(), "snapshot should be in storage")

	// Simulate a process restart: drop the live session
	m.End(id)
	require.Nil(t, m.Get(id))

	restored, err := m.Load(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, restored, "Load should restore the session")

	assert.Equal(t, story.LevelRules, restored.CurrentLevel())
	assert.Equal(t, complexity.Intermediate, restored.ComplexityLevel())

	progress := restored.Progress()
	assert.Equal(t, 300, progress.Score)
	assert.Equal(t, 2, progress.Level)
	assert.True(t, progress.HelloWorldCompleted)
	assert.True(t, progress.StoryFlags["met_supervisor"])

	assert.Same(t, restored, m.Get(id), "restored engine should be registered under the same ID")
}

func TestManager_SaveUnknownSession(t *testing.T) {
	m, _ := setupManager(t)
	err := m.Save(context.Background(), uuid.New())
	assert.Error(t, err, "saving an unknown session should fail")
}

func TestManager_LoadMissingSnapshot(t *testing.T) {
	m, _ := setupManager(t)

	engine, err := m.Load(context.Background(), uuid.New())
	assert.NoError(t, err, "missing snapshot is not an error")
	assert.Nil(t, engine)
	assert.Equal(t, 0, m.Count(), "nothing should be registered")
}

func TestManager_LoadRejectsCorruptSnapshot(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	id := uuid.New()
	snap := &story.Snapshot{
		ID:         id,
		Level:      story.GameLevel(9),
		Complexity: complexity.Beginner,
	}
	require.NoError(t, store.SaveSnapshot(ctx, id, snap))

	engine, err := m.Load(ctx, id)
	assert.Error(t, err, "corrupt snapshot should be rejected")
	assert.Nil(t, engine)
	assert.Equal(t, 0, m.Count(), "corrupt session should not be registered")
}

func TestManager_Discard(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	id, _ := m.Create(complexity.Advanced)
	require.NoError(t, m.Save(ctx, id))
	require.Equal(t, 1, store.Count())

	require.NoError(t, m.Discard(ctx, id))
	assert.Equal(t, 0, store.Count(), "snapshot should be removed from storage")
	assert.NotNil(t, m.Get(id), "live engine should be untouched")

	engine, err := m.Load(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, engine, "discarded snapshot should not load")
}

func TestManager_ConcurrentSessions(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	const sessions = 50
	var wg sync.WaitGroup
	wg.Add(sessions)

	for i := 0; i < sessions; i++ {
		go func(i int) {
			defer wg.Done()

			id, engine := m.Create(complexity.Beginner)
			engine.AddScore(i)

			if err := m.Save(ctx, id); err != nil {
				t.Errorf("Failed to save session: %v", err)
				return
			}
			if m.Get(id) == nil {
				t.Error("Expected session to be retrievable")
				return
			}
			if i%2 == 0 {
				m.End(id)
			}
		}(i)
	}

	wg.Wait()
	assert.Equal(t, sessions/2, m.Count(), "half the sessions should remain")
}
