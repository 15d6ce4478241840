package story

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// Progress is the player's session-scoped record: name, mirrored level
// value, score, learned concepts, and narrative flags.
type Progress struct {
	Name                string          `json:"name"`
	Level               int             `json:"level"`
	Score               int             `json:"score"`
	ConceptsLearned     []string        `json:"concepts_learned"`
	StoryFlags          map[string]bool `json:"story_flags,omitempty"`
	HelloWorldCompleted bool            `json:"hello_world_completed"`
}

// Clone returns a deep copy. Mutating the copy, including its slice and
// map fields, never reaches the original record.
func (p Progress) Clone() Progress {
	out := p
	out.ConceptsLearned = make([]string, len(p.ConceptsLearned))
	copy(out.ConceptsLearned, p.ConceptsLearned)
	out.StoryFlags = make(map[string]bool, len(p.StoryFlags))
	for flag, set := range p.StoryFlags {
		out.StoryFlags[flag] = set
	}
	return out
}

// Snapshot is the serialized form of an Engine. The storage layer
// persists it as JSON; enum fields are validated on restore so corrupt
// save data surfaces at the boundary instead of inside content lookups.
type Snapshot struct {
	ID         uuid.UUID        `json:"id"` // Unique ID per session
	Level      GameLevel        `json:"level"`
	Complexity complexity.Level `json:"complexity"`
	Progress   Progress         `json:"progress"`
	UpdatedAt  time.Time        `json:"updated_at,omitempty"`
}

// Snapshot captures the engine's current state for persistence. The
// session ID is assigned by the caller.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		Level:      e.level,
		Complexity: e.tier,
		Progress:   e.progress.Clone(),
	}
}

// RestoreEngine rebuilds an engine from a stored snapshot. A nil
// snapshot yields a fresh engine at defaults. Snapshots carrying enum
// values outside the known ranges are rejected.
func RestoreEngine(snap *Snapshot) (*Engine, error) {
	if snap == nil {
		return NewEngine(complexity.Beginner), nil
	}
	if !snap.Level.Valid() {
		return nil, fmt.Errorf("story: snapshot has invalid game level %d", int(snap.Level))
	}
	if !snap.Complexity.Valid() {
		return nil, fmt.Errorf("story: snapshot has invalid complexity level %d", int(snap.Complexity))
	}
	e := &Engine{
		level:    snap.Level,
		tier:     snap.Complexity,
		progress: snap.Progress.Clone(),
	}
	e.progress.Level = int(snap.Level)
	if e.progress.ConceptsLearned == nil {
		e.progress.ConceptsLearned = []string{}
	}
	if e.progress.StoryFlags == nil {
		e.progress.StoryFlags = map[string]bool{}
	}
	return e, nil
}
