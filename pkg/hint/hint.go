package hint

import (
	"strings"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// Type classifies the guidance a hint delivers.
type Type string

const (
	TypeSyntax        Type = "syntax"
	TypeConcept       Type = "concept"
	TypeStrategy      Type = "strategy"
	TypeExample       Type = "example"
	TypeTemplate      Type = "template"
	TypeEncouragement Type = "encouragement"
)

// Timing controls when hints unlock during a puzzle.
type Timing string

const (
	TimingImmediate             Timing = "immediate"
	TimingAfterFirstAttempt     Timing = "after_first_attempt"
	TimingAfterMultipleAttempts Timing = "after_multiple_attempts"
	TimingOnRequestOnly         Timing = "on_request_only"
	TimingNever                 Timing = "never"
)

// Config describes hint behavior for one complexity tier.
type Config struct {
	Frequency          complexity.HintFrequency `json:"hint_frequency"`
	MaxHintsPerPuzzle  int                      `json:"max_hints_per_puzzle"`
	ProgressiveHints   bool                     `json:"progressive_hints"` // hints get more specific over time
	Timing             Timing                   `json:"hint_timing"`
	AttemptsBeforeHint int                      `json:"attempts_before_hint"`

	IncludeExamples      bool `json:"include_examples"`
	IncludeTemplates     bool `json:"include_templates"`
	IncludeSyntaxHelp    bool `json:"include_syntax_help"`
	IncludeEncouragement bool `json:"include_encouragement"`

	AllowedTypes  []Type `json:"allowed_hint_types"`
	PenaltyPerUse int    `json:"hint_penalty_per_use"`
}

// CanProvide reports whether a hint may be given after the player has
// made attempts and already consumed hintsUsed hints.
func (c Config) CanProvide(attempts, hintsUsed int) bool {
	if hintsUsed >= c.MaxHintsPerPuzzle {
		return false
	}
	if c.Frequency == complexity.HintsNone {
		return false
	}
	switch c.Timing {
	case TimingNever:
		return false
	case TimingAfterFirstAttempt:
		if attempts < 1 {
			return false
		}
	case TimingAfterMultipleAttempts:
		if attempts < c.AttemptsBeforeHint {
			return false
		}
	}
	return true
}

// Allows reports whether this tier may show the given hint type.
func (c Config) Allows(t Type) bool {
	for _, allowed := range c.AllowedTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// ExplanationConfig describes explanation depth and style for one
// complexity tier.
type ExplanationConfig struct {
	Depth complexity.Depth `json:"explanation_depth"`

	IncludeWhy  bool `json:"include_why_explanations"`
	IncludeHow  bool `json:"include_how_explanations"`
	IncludeWhat bool `json:"include_what_explanations"`

	UseAnalogies  bool `json:"use_analogies"`
	UseExamples   bool `json:"use_examples"`
	UseStepByStep bool `json:"use_step_by_step"`
	UseVisualAids bool `json:"use_visual_aids"` // ASCII diagrams, etc.

	UseTechnicalTerms   bool `json:"use_technical_terms"`
	UseBeginnerLanguage bool `json:"use_beginner_language"`
	IncludeDefinitions  bool `json:"include_definitions"`

	DetailedErrors        bool `json:"provide_detailed_errors"`
	SuggestCorrections    bool `json:"suggest_corrections"`
	ExplainCommonMistakes bool `json:"explain_common_mistakes"`
}

// Style describes the explanation style in words.
func (c ExplanationConfig) Style() string {
	switch c.Depth {
	case complexity.DepthDetailed:
		return "comprehensive with examples and step-by-step guidance"
	case complexity.DepthModerate:
		return "clear with some examples and guidance"
	case complexity.DepthBrief:
		return "concise with minimal examples"
	default:
		return "very brief and direct"
	}
}

// Context carries puzzle state used to gate and customize hints. All
// fields are optional; a nil Context behaves like the zero value.
type Context struct {
	Attempts  int
	HintsUsed int

	ExpectedPredicate string
	ExpectedArgs      []string

	Steps       []string
	Examples    []string
	Definitions map[string]string
}

// customize substitutes puzzle specifics into a hint template.
func (c *Context) customize(hint string) string {
	if c == nil {
		return hint
	}
	if c.ExpectedPredicate != "" {
		hint = strings.ReplaceAll(hint, "predicate", c.ExpectedPredicate)
	}
	if len(c.ExpectedArgs) >= 2 {
		hint = strings.ReplaceAll(hint, "argument1", c.ExpectedArgs[0])
		hint = strings.ReplaceAll(hint, "argument2", c.ExpectedArgs[1])
	}
	return hint
}
