package hint

import (
	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// System is the puzzle-facing entry point: it tracks the active
// complexity tier and answers every hint question relative to it. A
// System is not safe for concurrent use; callers serialize access per
// session.
type System struct {
	gen  *Generator
	tier complexity.Level
}

// NewSystem creates a hint system starting at the beginner tier.
func NewSystem() *System {
	return &System{
		gen:  NewGenerator(),
		tier: complexity.Beginner,
	}
}

// SetComplexityLevel switches the active tier.
func (s *System) SetComplexityLevel(tier complexity.Level) {
	s.tier = tier
}

// ComplexityLevel returns the active tier.
func (s *System) ComplexityLevel() complexity.Level {
	return s.tier
}

// CanProvideHint reports whether a hint may be given at the current
// state.
func (s *System) CanProvideHint(attempts, hintsUsed int) bool {
	return s.gen.CanProvide(s.tier, attempts, hintsUsed)
}

// Hint returns the next progressive hint, or a message explaining why
// hints are unavailable when the tier's gates are closed. The context
// supplies the attempt and usage counters.
func (s *System) Hint(level int, ctx *Context) string {
	var attempts, used int
	if ctx != nil {
		attempts, used = ctx.Attempts, ctx.HintsUsed
	}
	if !s.gen.CanProvide(s.tier, attempts, used) {
		return s.gen.AvailabilityMessage(s.tier, attempts, used)
	}
	return s.gen.Progressive(s.tier, level, ctx)
}

// Explanation returns an explanation of a topic adapted to the active
// tier.
func (s *System) Explanation(topic string, ctx *Context) string {
	return s.gen.Explain(s.tier, topic, ctx)
}

// Config returns the hint configuration for the active tier.
func (s *System) Config() Config {
	return s.gen.ConfigFor(s.tier)
}

// ExplanationConfig returns the explanation configuration for the
// active tier.
func (s *System) ExplanationConfig() ExplanationConfig {
	return s.gen.ExplanationConfigFor(s.tier)
}

// Penalty returns the score cost of the hints consumed so far.
func (s *System) Penalty(hintsUsed int) int {
	return s.gen.Penalty(s.tier, hintsUsed)
}
