package complexity

import "fmt"

// PuzzleParameters bound what the puzzle generator may produce at a tier.
type PuzzleParameters struct {
	MaxVariables        int  `json:"max_variables"`
	MaxPredicates       int  `json:"max_predicates"`
	AllowComplexSyntax  bool `json:"allow_complex_syntax"`
	ProvideTemplates    bool `json:"provide_templates"`
	ShowExamples        bool `json:"show_examples"`
	RequireOptimization bool `json:"require_optimization,omitempty"`
	IncludeEdgeCases    bool `json:"include_edge_cases,omitempty"`
}

// UIIndicators are the presentation hints for a tier. The hosting UI maps
// them to styles; the engine only carries them.
type UIIndicators struct {
	Color string `json:"color"` // e.g. "neon_green", "cyan"
	Icon  string `json:"icon"`
	Badge string `json:"badge"` // e.g. "BEGINNER"
}

// Config holds the behavior settings for one complexity tier.
type Config struct {
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	HintFrequency     HintFrequency    `json:"hint_frequency"`
	ExplanationDepth  Depth            `json:"explanation_depth"`
	PuzzleParameters  PuzzleParameters `json:"puzzle_parameters"`
	UIIndicators      UIIndicators     `json:"ui_indicators"`
	ScoringMultiplier float64          `json:"scoring_multiplier"`
}

// Validate checks that a config is complete and internally consistent.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("complexity: config missing required field name")
	}
	if c.Description == "" {
		return fmt.Errorf("complexity: config missing required field description")
	}
	if !ValidHintFrequencies[c.HintFrequency] {
		return fmt.Errorf("complexity: invalid hint_frequency %q", c.HintFrequency)
	}
	if !ValidDepths[c.ExplanationDepth] {
		return fmt.Errorf("complexity: invalid explanation_depth %q", c.ExplanationDepth)
	}
	if c.PuzzleParameters.MaxVariables <= 0 {
		return fmt.Errorf("complexity: max_variables must be a positive integer")
	}
	if c.PuzzleParameters.MaxPredicates <= 0 {
		return fmt.Errorf("complexity: max_predicates must be a positive integer")
	}
	if c.UIIndicators.Color == "" || c.UIIndicators.Icon == "" || c.UIIndicators.Badge == "" {
		return fmt.Errorf("complexity: ui_indicators requires color, icon and badge")
	}
	if c.ScoringMultiplier <= 0 {
		return fmt.Errorf("complexity: scoring_multiplier must be positive")
	}
	return nil
}

// DefaultConfigs returns the builtin tier configurations. These are the
// fallback whenever override files are absent or invalid.
func DefaultConfigs() map[Level]Config {
	return map[Level]Config{
		Beginner: {
			Name:             "Beginner",
			Description:      "Maximum guidance with step-by-step explanations and simple problems",
			HintFrequency:    HintsAlways,
			ExplanationDepth: DepthDetailed,
			PuzzleParameters: PuzzleParameters{
				MaxVariables:     2,
				MaxPredicates:    3,
				ProvideTemplates: true,
				ShowExamples:     true,
			},
			UIIndicators:      UIIndicators{Color: "neon_green", Icon: "🌱", Badge: "BEGINNER"},
			ScoringMultiplier: 1.0,
		},
		Intermediate: {
			Name:             "Intermediate",
			Description:      "Moderate guidance with standard complexity problems",
			HintFrequency:    HintsOnRequest,
			ExplanationDepth: DepthModerate,
			PuzzleParameters: PuzzleParameters{
				MaxVariables:       4,
				MaxPredicates:      5,
				AllowComplexSyntax: true,
				ShowExamples:       true,
			},
			UIIndicators:      UIIndicators{Color: "cyan", Icon: "⚡", Badge: "INTERMEDIATE"},
			ScoringMultiplier: 1.2,
		},
		Advanced: {
			Name:             "Advanced",
			Description:      "Minimal guidance with complex problems and multiple solution paths",
			HintFrequency:    HintsAfterAttempts,
			ExplanationDepth: DepthBrief,
			PuzzleParameters: PuzzleParameters{
				MaxVariables:        6,
				MaxPredicates:       8,
				AllowComplexSyntax:  true,
				RequireOptimization: true,
			},
			UIIndicators:      UIIndicators{Color: "yellow", Icon: "🔥", Badge: "ADVANCED"},
			ScoringMultiplier: 1.5,
		},
		Expert: {
			Name:             "Expert",
			Description:      "No guidance with optimization challenges and edge cases",
			HintFrequency:    HintsNone,
			ExplanationDepth: DepthMinimal,
			PuzzleParameters: PuzzleParameters{
				MaxVariables:        8,
				MaxPredicates:       12,
				AllowComplexSyntax:  true,
				RequireOptimization: true,
				IncludeEdgeCases:    true,
			},
			UIIndicators:      UIIndicators{Color: "red", Icon: "💀", Badge: "EXPERT"},
			ScoringMultiplier: 2.0,
		},
	}
}
