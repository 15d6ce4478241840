package hint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// Explanation topics recognized by Explain.
const (
	TopicFacts       = "facts"
	TopicSyntaxError = "syntax_error"
)

const noHintsAtExpert = "No hints available at Expert level. You've got this!"

// progressiveStep pairs a hint type with the text used when no template
// exists for it at the current tier.
type progressiveStep struct {
	hintType Type
	fallback string
}

// Generator produces tier-appropriate hints and explanations. The zero
// value is not usable; construct with NewGenerator.
type Generator struct {
	configs            map[complexity.Level]Config
	explanationConfigs map[complexity.Level]ExplanationConfig
	templates          map[Type]map[complexity.Level][]string
	sequences          map[complexity.Level][]progressiveStep
}

// NewGenerator creates a generator with the built-in configurations
// and hint templates.
func NewGenerator() *Generator {
	return &Generator{
		configs:            DefaultConfigs(),
		explanationConfigs: DefaultExplanationConfigs(),
		templates:          hintTemplates(),
		sequences:          progressiveSequences(),
	}
}

// ConfigFor returns the hint configuration for a tier. Unknown tiers
// get the expert configuration, the most restrictive one.
func (g *Generator) ConfigFor(tier complexity.Level) Config {
	if cfg, ok := g.configs[tier]; ok {
		return cfg
	}
	return g.configs[complexity.Expert]
}

// ExplanationConfigFor returns the explanation configuration for a
// tier, falling back to the expert configuration for unknown tiers.
func (g *Generator) ExplanationConfigFor(tier complexity.Level) ExplanationConfig {
	if cfg, ok := g.explanationConfigs[tier]; ok {
		return cfg
	}
	return g.explanationConfigs[complexity.Expert]
}

// CanProvide reports whether a hint may be given at the current state.
func (g *Generator) CanProvide(tier complexity.Level, attempts, hintsUsed int) bool {
	return g.ConfigFor(tier).CanProvide(attempts, hintsUsed)
}

// Generate returns a hint of the given type. The level selects among
// the tier's templates, 1 being the first and broadest; levels past the
// last template repeat it. Returns "" when the tier does not allow the
// hint type.
func (g *Generator) Generate(tier complexity.Level, t Type, level int, ctx *Context) string {
	cfg := g.ConfigFor(tier)
	if !cfg.Allows(t) {
		return ""
	}
	templates := g.templates[t][tier]
	if len(templates) == 0 {
		return fallbackHint(tier)
	}
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(templates) {
		idx = len(templates) - 1
	}
	return ctx.customize(templates[idx])
}

// Progressive returns the next hint in the tier's escalation sequence.
// Tiers without progressive hints get a single concept hint, and
// experts get a polite refusal. Levels past the end of the sequence
// fall back to encouragement.
func (g *Generator) Progressive(tier complexity.Level, level int, ctx *Context) string {
	cfg := g.ConfigFor(tier)
	if !cfg.ProgressiveHints {
		if tier == complexity.Expert || !cfg.Allows(TypeConcept) {
			return noHintsAtExpert
		}
		return g.Generate(tier, TypeConcept, 1, ctx)
	}

	seq := g.sequences[tier]
	if len(seq) == 0 {
		return noHintsAtExpert
	}
	if level < 1 {
		level = 1
	}
	if level <= len(seq) {
		step := seq[level-1]
		if hint := g.Generate(tier, step.hintType, 1, ctx); hint != "" {
			return hint
		}
		return step.fallback
	}
	if enc := g.Generate(tier, TypeEncouragement, 1, ctx); enc != "" {
		return enc
	}
	return "Keep trying!"
}

// Explain returns an explanation of a topic adapted to the tier. Known
// topics have authored text per tier; anything else gets a generic
// pointer. Steps, examples and definitions from the context are
// appended when the tier's style calls for them.
func (g *Generator) Explain(tier complexity.Level, topic string, ctx *Context) string {
	cfg := g.ExplanationConfigFor(tier)

	base, ok := explanations[topic][tier]
	if !ok {
		base = fmt.Sprintf("Information about %s at %s level.", topic, strings.ToUpper(tier.String()))
	}
	return enhanceExplanation(base, cfg, ctx)
}

// AvailabilityMessage describes why a hint is or is not available
// right now, phrased for the player.
func (g *Generator) AvailabilityMessage(tier complexity.Level, attempts, hintsUsed int) string {
	cfg := g.ConfigFor(tier)

	if cfg.Frequency == complexity.HintsNone {
		return "Hints are not available at Expert level. You've got this!"
	}
	if hintsUsed >= cfg.MaxHintsPerPuzzle {
		return fmt.Sprintf("You've used all %d available hints for this puzzle.", cfg.MaxHintsPerPuzzle)
	}
	if cfg.Timing == TimingAfterMultipleAttempts && attempts < cfg.AttemptsBeforeHint {
		remaining := cfg.AttemptsBeforeHint - attempts
		return fmt.Sprintf("Hints will be available after %d more attempt%s.", remaining, plural(remaining))
	}
	remaining := cfg.MaxHintsPerPuzzle - hintsUsed
	return fmt.Sprintf("You have %d hint%s remaining.", remaining, plural(remaining))
}

// Penalty returns the score cost of the hints consumed so far.
func (g *Generator) Penalty(tier complexity.Level, hintsUsed int) int {
	return hintsUsed * g.ConfigFor(tier).PenaltyPerUse
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// fallbackHint covers hint types with no authored template at a tier.
func fallbackHint(tier complexity.Level) string {
	switch tier {
	case complexity.Beginner:
		return "Take your time and think through the problem step by step."
	case complexity.Intermediate:
		return "Consider the structure of what you're trying to express."
	case complexity.Advanced:
		return "Think about the logical relationship."
	default:
		return ""
	}
}

func enhanceExplanation(base string, cfg ExplanationConfig, ctx *Context) string {
	if ctx == nil {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	if cfg.UseStepByStep && len(ctx.Steps) > 0 {
		b.WriteString("\n\nStep by step:\n")
		for i, step := range ctx.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	if cfg.UseExamples && len(ctx.Examples) > 0 {
		b.WriteString("\n\nExamples:\n")
		for _, example := range ctx.Examples {
			fmt.Fprintf(&b, "• %s\n", example)
		}
	}
	if cfg.IncludeDefinitions && len(ctx.Definitions) > 0 {
		b.WriteString("\n\nDefinitions:\n")
		terms := make([]string, 0, len(ctx.Definitions))
		for term := range ctx.Definitions {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			fmt.Fprintf(&b, "• %s: %s\n", term, ctx.Definitions[term])
		}
	}
	return b.String()
}

// hintTemplates returns the authored hint text per type and tier.
// Tiers absent from a type either disallow it or use the fallback.
func hintTemplates() map[Type]map[complexity.Level][]string {
	return map[Type]map[complexity.Level][]string{
		TypeSyntax: {
			complexity.Beginner: {
				"Remember that Prolog facts end with a period (.)",
				"Predicates are followed by parentheses containing arguments",
				"Arguments are separated by commas",
				"Atoms (like names) should be lowercase or in quotes",
			},
			complexity.Intermediate: {
				"Check your syntax - facts need periods",
				"Verify predicate and argument structure",
				"Ensure proper comma separation",
			},
			complexity.Advanced: {
				"Syntax error detected",
				"Check punctuation",
			},
		},
		TypeConcept: {
			complexity.Beginner: {
				"A fact states something that is true in your world",
				"Think about what relationship you're trying to express",
				"Facts are like statements: 'X has property Y' or 'X relates to Y'",
			},
			complexity.Intermediate: {
				"Consider the logical relationship being expressed",
				"Think about the predicate that best represents this concept",
			},
			complexity.Advanced: {
				"Focus on the logical structure",
				"Consider the semantic meaning",
			},
		},
		TypeStrategy: {
			complexity.Beginner: {
				"Start by identifying the main relationship",
				"Then identify what things are involved in that relationship",
				"Finally, put them together in the right order",
			},
			complexity.Intermediate: {
				"Break down the problem into its components",
				"Consider what predicate best expresses the relationship",
			},
			complexity.Advanced: {
				"Analyze the problem structure",
				"Consider alternative approaches",
			},
		},
		TypeExample: {
			complexity.Beginner: {
				"Example: likes(mary, pizza). means 'Mary likes pizza'",
				"Example: owns(john, car). means 'John owns a car'",
				"Example: parent(alice, bob). means 'Alice is parent of Bob'",
			},
			complexity.Intermediate: {
				"Similar structure: predicate(arg1, arg2).",
				"Consider: relationship(subject, object).",
			},
		},
		TypeTemplate: {
			complexity.Beginner: {
				"Template: predicate(argument1, argument2).",
				"Fill in: _____(_____, _____).",
				"Structure: relationship(who, what).",
			},
		},
		TypeEncouragement: {
			complexity.Beginner: {
				"You're doing great! Keep thinking through it step by step.",
				"Don't worry, everyone finds Prolog tricky at first!",
				"You're on the right track - just need a small adjustment.",
				"Take your time - understanding is more important than speed.",
			},
			complexity.Intermediate: {
				"You've got this! Think it through.",
				"Close! Just need to refine your approach.",
				"Good progress - keep going!",
			},
		},
	}
}

// progressiveSequences returns the escalation order for tiers with
// progressive hints enabled.
func progressiveSequences() map[complexity.Level][]progressiveStep {
	return map[complexity.Level][]progressiveStep{
		complexity.Beginner: {
			{TypeEncouragement, "Take your time and think about what you're trying to express."},
			{TypeConcept, "Think about the relationship you want to represent."},
			{TypeStrategy, "Identify the predicate and arguments you need."},
			{TypeExample, "Look at the pattern of similar facts."},
			{TypeTemplate, "Use the template structure to guide you."},
		},
		complexity.Intermediate: {
			{TypeConcept, "Consider the logical relationship being expressed."},
			{TypeStrategy, "Break down the problem into components."},
			{TypeExample, "Think about similar structures you've seen."},
		},
	}
}

// explanations holds the authored explanation text per topic and tier.
var explanations = map[string]map[complexity.Level]string{
	TopicFacts: {
		complexity.Beginner:     "Facts in Prolog are statements that are always true. They're like saying 'This is how things are in our world.' For example, if we write 'likes(mary, pizza).', we're stating that Mary likes pizza. Facts always end with a period and follow the pattern: predicate(arguments).",
		complexity.Intermediate: "Facts are basic statements in Prolog that declare relationships or properties. They follow the syntax predicate(arg1, arg2, ...). and are considered always true in the knowledge base.",
		complexity.Advanced:     "Facts are ground clauses that establish the knowledge base foundation.",
		complexity.Expert:       "Ground clauses in the knowledge base.",
	},
	TopicSyntaxError: {
		complexity.Beginner:     "It looks like there's a syntax error in your Prolog code. This means the computer can't understand what you wrote because it doesn't follow Prolog's rules. Common issues include: missing periods at the end, incorrect parentheses, or wrong comma placement. Take a moment to check these elements.",
		complexity.Intermediate: "Syntax error detected. Check for proper punctuation, parentheses matching, and comma placement in your Prolog statement.",
		complexity.Advanced:     "Syntax error in Prolog statement.",
		complexity.Expert:       "Syntax error.",
	},
}
