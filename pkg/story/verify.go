package story

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// VerifyContentTables checks the authored narrative tables for
// completeness. Every table must carry all four tiers, verbosity must
// shrink as tiers rise, and the markers the UI keys off must survive
// at every tier. Returns the first problem found.
func VerifyContentTables() error {
	named := map[string]contentDef{
		"intro":      introDef,
		"success":    finalSuccessDef,
		"transition": transitionDef,
	}
	for level, def := range levelIntroDefs {
		if def.level != level {
			return fmt.Errorf("story: level intro for %s declares level %s", level, def.level)
		}
		named[fmt.Sprintf("level intro %s", level)] = def
	}
	for _, level := range GameLevels() {
		if level == LevelRecursion {
			continue
		}
		named[fmt.Sprintf("success %s", level)] = successDef(level)
	}

	for name, def := range named {
		if err := verifyTiers(name, def); err != nil {
			return err
		}
	}

	for context, byTier := range flavorTexts {
		for _, tier := range complexity.Levels() {
			if _, ok := byTier[tier]; !ok {
				return fmt.Errorf("story: flavor text %q missing tier %s", context, tier)
			}
		}
	}
	for concept, byTier := range tutorialContent {
		for _, tier := range complexity.Levels() {
			if lines, ok := byTier[tier]; !ok || len(lines) == 0 {
				return fmt.Errorf("story: tutorial %q missing tier %s", concept, tier)
			}
		}
	}

	for _, tier := range complexity.Levels() {
		joined := strings.Join(finalSuccessDef.variants[tier], "\n")
		if !strings.Contains(joined, "MISSION COMPLETE") {
			return fmt.Errorf("story: success content at tier %s lost its completion marker", tier)
		}
		facts := strings.ToLower(strings.Join(levelIntroDefs[LevelFacts].variants[tier], "\n"))
		if !strings.Contains(facts, "fact") && !strings.Contains(facts, "database") {
			return fmt.Errorf("story: facts intro at tier %s does not mention its concept", tier)
		}
	}
	return nil
}

func verifyTiers(name string, def contentDef) error {
	for _, tier := range complexity.Levels() {
		lines, ok := def.variants[tier]
		if !ok || len(lines) == 0 {
			return fmt.Errorf("story: %s missing tier %s", name, tier)
		}
	}
	b := len(def.variants[complexity.Beginner])
	i := len(def.variants[complexity.Intermediate])
	a := len(def.variants[complexity.Advanced])
	e := len(def.variants[complexity.Expert])
	if b <= e {
		return fmt.Errorf("story: %s beginner content (%d lines) not longer than expert (%d lines)", name, b, e)
	}
	if i < a {
		return fmt.Errorf("story: %s intermediate content (%d lines) shorter than advanced (%d lines)", name, i, a)
	}
	return nil
}
