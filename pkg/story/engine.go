package story

import (
	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// DefaultPlayerName is the handle every session starts with.
const DefaultPlayerName = "Junior Programmer"

// helloWorldConcepts are granted when the tutorial wraps.
var helloWorldConcepts = []string{"prolog_basics", "facts", "queries", "variables"}

// Engine drives one player's journey through the Cyberdyne incident.
// It owns the current game level, the active complexity tier, and the
// player's progress record, and produces every narrative segment the
// presentation layer renders. An Engine is not safe for concurrent
// use; callers serialize access per session.
type Engine struct {
	level    GameLevel
	tier     complexity.Level
	progress Progress
}

// NewEngine creates a fresh engine at the tutorial stage.
func NewEngine(tier complexity.Level) *Engine {
	return &Engine{
		level: LevelTutorial,
		tier:  tier,
		progress: Progress{
			Name:            DefaultPlayerName,
			ConceptsLearned: []string{},
			StoryFlags:      map[string]bool{},
		},
	}
}

// segment resolves a content definition against the current tier.
func (e *Engine) segment(def contentDef) Segment {
	return NewSegment(def.title, def.level, def.character, def.mood, def.base(), def.variants, e.tier)
}

// IntroStory returns the opening scene at Cyberdyne Systems.
func (e *Engine) IntroStory() Segment {
	return e.segment(introDef)
}

// LevelIntro returns the memory bank intro for a level. Levels without
// authored content get a generic fallback intro.
func (e *Engine) LevelIntro(level GameLevel) Segment {
	if def, ok := levelIntroDefs[level]; ok {
		return e.segment(def)
	}
	return e.segment(defaultIntroDef(level))
}

// SuccessStory returns the completion content for a level. The
// terminal level carries the full restoration ending.
func (e *Engine) SuccessStory(level GameLevel) Segment {
	if level == LevelRecursion {
		return e.segment(finalSuccessDef)
	}
	return e.segment(successDef(level))
}

// HelloWorldTransitionStory bridges the tutorial into the main game.
func (e *Engine) HelloWorldTransitionStory() Segment {
	return e.segment(transitionDef)
}

// ComplexityFlavorText returns the one-line flavor string for a UI
// context at the current tier. Unknown contexts return "".
func (e *Engine) ComplexityFlavorText(context string) string {
	return flavorTexts[context][e.tier]
}

// TutorialContent returns the tutorial lines for a concept at the
// current tier. Unknown concepts return an empty sequence.
func (e *Engine) TutorialContent(concept string) []string {
	return tutorialContent[concept][e.tier]
}

// CurrentLevel returns the active game level.
func (e *Engine) CurrentLevel() GameLevel {
	return e.level
}

// AdvanceLevel moves to the next game level and mirrors the new value
// into the progress record. Past the terminal level it returns false
// without changing state, so repeated calls are harmless.
func (e *Engine) AdvanceLevel() bool {
	if e.level >= MaxGameLevel {
		return false
	}
	e.level++
	e.progress.Level = int(e.level)
	return true
}

// SetComplexityLevel switches the active tier. Unknown values degrade
// gracefully: variant lookups miss and depth shaping falls back to
// moderate.
func (e *Engine) SetComplexityLevel(tier complexity.Level) {
	e.tier = tier
}

// ComplexityLevel returns the active tier.
func (e *Engine) ComplexityLevel() complexity.Level {
	return e.tier
}

// AddConceptLearned records a concept once. Duplicates are ignored and
// first-seen order is preserved.
func (e *Engine) AddConceptLearned(concept string) {
	for _, c := range e.progress.ConceptsLearned {
		if c == concept {
			return
		}
	}
	e.progress.ConceptsLearned = append(e.progress.ConceptsLearned, concept)
}

// SetStoryFlag marks a narrative flag.
func (e *Engine) SetStoryFlag(flag string) {
	e.progress.StoryFlags[flag] = true
}

// HasStoryFlag reports whether a narrative flag is set.
func (e *Engine) HasStoryFlag(flag string) bool {
	return e.progress.StoryFlags[flag]
}

// MarkHelloWorldCompleted flags the tutorial as finished and grants
// its concepts. Calling it again does not duplicate them.
func (e *Engine) MarkHelloWorldCompleted() {
	e.progress.HelloWorldCompleted = true
	for _, c := range helloWorldConcepts {
		e.AddConceptLearned(c)
	}
}

// IsHelloWorldCompleted reports whether the tutorial has been finished.
func (e *Engine) IsHelloWorldCompleted() bool {
	return e.progress.HelloWorldCompleted
}

// AddScore adds points to the player's score and returns the new
// total. Tier multipliers are applied by the caller before this.
func (e *Engine) AddScore(points int) int {
	e.progress.Score += points
	return e.progress.Score
}

// Progress returns a deep copy of the progress record. Mutating the
// copy never changes engine state.
func (e *Engine) Progress() Progress {
	return e.progress.Clone()
}
