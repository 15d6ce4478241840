package hint

import (
	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// DefaultConfigs returns the built-in hint configuration for each
// complexity tier. Beginners get frequent, progressive hand-holding;
// experts get nothing.
func DefaultConfigs() map[complexity.Level]Config {
	return map[complexity.Level]Config{
		complexity.Beginner: {
			Frequency:            complexity.HintsAlways,
			MaxHintsPerPuzzle:    5,
			ProgressiveHints:     true,
			Timing:               TimingImmediate,
			AttemptsBeforeHint:   0,
			IncludeExamples:      true,
			IncludeTemplates:     true,
			IncludeSyntaxHelp:    true,
			IncludeEncouragement: true,
			AllowedTypes: []Type{
				TypeSyntax, TypeConcept, TypeStrategy,
				TypeExample, TypeTemplate, TypeEncouragement,
			},
			PenaltyPerUse: 5,
		},
		complexity.Intermediate: {
			Frequency:            complexity.HintsOnRequest,
			MaxHintsPerPuzzle:    3,
			ProgressiveHints:     true,
			Timing:               TimingImmediate,
			AttemptsBeforeHint:   0,
			IncludeExamples:      true,
			IncludeTemplates:     false,
			IncludeSyntaxHelp:    true,
			IncludeEncouragement: true,
			AllowedTypes: []Type{
				TypeSyntax, TypeConcept, TypeStrategy,
				TypeExample, TypeEncouragement,
			},
			PenaltyPerUse: 10,
		},
		complexity.Advanced: {
			Frequency:          complexity.HintsAfterAttempts,
			MaxHintsPerPuzzle:  2,
			ProgressiveHints:   false,
			Timing:             TimingAfterMultipleAttempts,
			AttemptsBeforeHint: 2,
			AllowedTypes:       []Type{TypeConcept, TypeStrategy},
			PenaltyPerUse:      20,
		},
		complexity.Expert: {
			Frequency:          complexity.HintsNone,
			MaxHintsPerPuzzle:  0,
			ProgressiveHints:   false,
			Timing:             TimingNever,
			AttemptsBeforeHint: 999,
			AllowedTypes:       []Type{},
			PenaltyPerUse:      0,
		},
	}
}

// DefaultExplanationConfigs returns the built-in explanation style for
// each complexity tier.
func DefaultExplanationConfigs() map[complexity.Level]ExplanationConfig {
	return map[complexity.Level]ExplanationConfig{
		complexity.Beginner: {
			Depth:                 complexity.DepthDetailed,
			IncludeWhy:            true,
			IncludeHow:            true,
			IncludeWhat:           true,
			UseAnalogies:          true,
			UseExamples:           true,
			UseStepByStep:         true,
			UseVisualAids:         true,
			UseTechnicalTerms:     false,
			UseBeginnerLanguage:   true,
			IncludeDefinitions:    true,
			DetailedErrors:        true,
			SuggestCorrections:    true,
			ExplainCommonMistakes: true,
		},
		complexity.Intermediate: {
			Depth:              complexity.DepthModerate,
			IncludeWhy:         true,
			IncludeHow:         true,
			UseExamples:        true,
			UseStepByStep:      true,
			UseTechnicalTerms:  true,
			DetailedErrors:     true,
			SuggestCorrections: true,
		},
		complexity.Advanced: {
			Depth:             complexity.DepthBrief,
			IncludeHow:        true,
			UseTechnicalTerms: true,
		},
		complexity.Expert: {
			Depth:             complexity.DepthMinimal,
			UseTechnicalTerms: true,
		},
	}
}
