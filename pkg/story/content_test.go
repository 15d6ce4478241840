package story

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

func joinedLower(lines []string) string {
	return strings.ToLower(strings.Join(lines, "\n"))
}

func TestVerifyContentTables(t *testing.T) {
	if err := VerifyContentTables(); err != nil {
		t.Fatalf("content tables invalid: %v", err)
	}
}

func TestIntroStoryByTier(t *testing.T) {
	lengths := map[complexity.Level]int{}
	for _, tier := range complexity.Levels() {
		e := NewEngine(tier)
		seg := e.IntroStory()
		if len(seg.Content) == 0 {
			t.Fatalf("intro at %s is empty", tier)
		}
		if seg.Mood != MoodUrgent {
			t.Errorf("intro mood at %s = %q, want %q", tier, seg.Mood, MoodUrgent)
		}
		if seg.Character != "Supervisor" {
			t.Errorf("intro character at %s = %q, want Supervisor", tier, seg.Character)
		}
		if seg.Level != LevelTutorial {
			t.Errorf("intro level at %s = %s, want TUTORIAL", tier, seg.Level)
		}
		lengths[tier] = len(seg.Content)
	}

	if lengths[complexity.Beginner] <= 15 {
		t.Errorf("beginner intro should exceed 15 lines, got %d", lengths[complexity.Beginner])
	}
	if lengths[complexity.Expert] >= 10 {
		t.Errorf("expert intro should be under 10 lines, got %d", lengths[complexity.Expert])
	}
	if lengths[complexity.Beginner] <= lengths[complexity.Expert] {
		t.Errorf("beginner intro (%d) must be longer than expert (%d)",
			lengths[complexity.Beginner], lengths[complexity.Expert])
	}
	if lengths[complexity.Intermediate] <= lengths[complexity.Advanced] {
		t.Errorf("intermediate intro (%d) must be longer than advanced (%d)",
			lengths[complexity.Intermediate], lengths[complexity.Advanced])
	}
}

func TestIntroStoryCyberpunkSetting(t *testing.T) {
	e := NewEngine(complexity.Beginner)
	text := joinedLower(e.IntroStory().Content)
	for _, keyword := range []string{"1985", "cyberdyne", "logic-1", "system", "terminal"} {
		if !strings.Contains(text, keyword) {
			t.Errorf("intro is missing setting keyword %q", keyword)
		}
	}
}

func TestLevelIntroMoods(t *testing.T) {
	e := NewEngine(complexity.Beginner)
	for _, level := range []GameLevel{LevelFacts, LevelRules, LevelUnification, LevelBacktracking} {
		seg := e.LevelIntro(level)
		if seg.Mood != MoodMysterious {
			t.Errorf("%s intro mood = %q, want %q", level, seg.Mood, MoodMysterious)
		}
		if seg.Character != "LOGIC-1 System" {
			t.Errorf("%s intro character = %q, want LOGIC-1 System", level, seg.Character)
		}
	}
	if seg := e.LevelIntro(LevelRecursion); seg.Mood != MoodUrgent {
		t.Errorf("recursion intro mood = %q, want %q", seg.Mood, MoodUrgent)
	}
}

func TestFactsIntroMentionsConcept(t *testing.T) {
	for _, tier := range complexity.Levels() {
		e := NewEngine(tier)
		text := joinedLower(e.LevelIntro(LevelFacts).Content)
		if !strings.Contains(text, "fact") && !strings.Contains(text, "database") {
			t.Errorf("facts intro at %s does not mention facts or database", tier)
		}
	}

	e := NewEngine(complexity.Beginner)
	seg := e.LevelIntro(LevelFacts)
	if len(seg.Content) <= 10 {
		t.Errorf("beginner facts intro should exceed 10 lines, got %d", len(seg.Content))
	}
	if !strings.Contains(joinedLower(seg.Content), "foundation") {
		t.Error("beginner facts intro should explain facts as the foundation")
	}

	e.SetComplexityLevel(complexity.Expert)
	if got := len(e.LevelIntro(LevelFacts).Content); got >= 8 {
		t.Errorf("expert facts intro should be under 8 lines, got %d", got)
	}
}

func TestLevelIntroKeywords(t *testing.T) {
	keywords := map[GameLevel][]string{
		LevelRules:        {"rule", "inference"},
		LevelUnification:  {"unification"},
		LevelBacktracking: {"backtrack"},
		LevelRecursion:    {"recursi"},
	}

	for level, alternatives := range keywords {
		for _, tier := range complexity.Levels() {
			e := NewEngine(tier)
			text := joinedLower(e.LevelIntro(level).Content)
			found := false
			for _, keyword := range alternatives {
				if strings.Contains(text, keyword) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s intro at %s does not mention any of %v", level, tier, alternatives)
			}
		}
	}
}

func TestLevelIntroFallback(t *testing.T) {
	e := NewEngine(complexity.Beginner)
	seg := e.LevelIntro(LevelTutorial)
	if seg.Title != "LEVEL 0 - TUTORIAL" {
		t.Errorf("fallback intro title = %q", seg.Title)
	}
	if seg.Mood != MoodNeutral {
		t.Errorf("fallback intro mood = %q, want %q", seg.Mood, MoodNeutral)
	}
	if len(seg.Content) != 2 {
		t.Errorf("fallback intro should have 2 lines, got %d", len(seg.Content))
	}
	if !strings.Contains(seg.Content[0], "tutorial sector") {
		t.Errorf("fallback intro line = %q", seg.Content[0])
	}
}

func TestFinalSuccessStory(t *testing.T) {
	for _, tier := range complexity.Levels() {
		e := NewEngine(tier)
		seg := e.SuccessStory(LevelRecursion)
		if seg.Title != "SYSTEM RESTORATION COMPLETE" {
			t.Errorf("final success title at %s = %q", tier, seg.Title)
		}
		if seg.Mood != MoodTriumphant {
			t.Errorf("final success mood at %s = %q, want %q", tier, seg.Mood, MoodTriumphant)
		}
		if seg.Character != "Supervisor" {
			t.Errorf("final success character at %s = %q", tier, seg.Character)
		}
		if !strings.Contains(strings.Join(seg.Content, "\n"), "MISSION COMPLETE") {
			t.Errorf("final success at %s lost the MISSION COMPLETE marker", tier)
		}
	}

	if got := len(NewEngine(complexity.Beginner).SuccessStory(LevelRecursion).Content); got <= 10 {
		t.Errorf("beginner final success should exceed 10 lines, got %d", got)
	}
	if got := len(NewEngine(complexity.Expert).SuccessStory(LevelRecursion).Content); got >= 8 {
		t.Errorf("expert final success should be under 8 lines, got %d", got)
	}
}

func TestStandardSuccessStory(t *testing.T) {
	e := NewEngine(complexity.Beginner)
	seg := e.SuccessStory(LevelFacts)
	if seg.Title != "LEVEL 1 COMPLETE" {
		t.Errorf("success title = %q, want LEVEL 1 COMPLETE", seg.Title)
	}
	if seg.Mood != MoodNeutral {
		t.Errorf("success mood = %q, want %q", seg.Mood, MoodNeutral)
	}
	if len(seg.Content) != 3 {
		t.Errorf("beginner success should have 3 lines, got %d", len(seg.Content))
	}
	if !strings.Contains(joinedLower(seg.Content), "facts") {
		t.Errorf("success content does not name the level: %v", seg.Content)
	}

	e.SetComplexityLevel(complexity.Expert)
	for _, level := range []GameLevel{LevelFacts, LevelRules, LevelUnification, LevelBacktracking} {
		seg := e.SuccessStory(level)
		want := []string{fmt.Sprintf("%s: ONLINE", level)}
		if len(seg.Content) != 1 || seg.Content[0] != want[0] {
			t.Errorf("expert success for %s = %v, want %v", level, seg.Content, want)
		}
	}
}

func TestHelloWorldTransitionStory(t *testing.T) {
	for _, tier := range complexity.Levels() {
		e := NewEngine(tier)
		seg := e.HelloWorldTransitionStory()
		if !strings.Contains(seg.Title, "TUTORIAL COMPLETE") {
			t.Errorf("transition title at %s = %q", tier, seg.Title)
		}
		if seg.Mood != MoodTriumphant {
			t.Errorf("transition mood at %s = %q, want %q", tier, seg.Mood, MoodTriumphant)
		}
	}

	if got := len(NewEngine(complexity.Beginner).HelloWorldTransitionStory().Content); got <= 15 {
		t.Errorf("beginner transition should exceed 15 lines, got %d", got)
	}
	if got := len(NewEngine(complexity.Expert).HelloWorldTransitionStory().Content); got >= 5 {
		t.Errorf("expert transition should be under 5 lines, got %d", got)
	}
}

func TestComplexityFlavorText(t *testing.T) {
	e := NewEngine(complexity.Beginner)
	beginnerHint := e.ComplexityFlavorText(FlavorHintAvailable)
	if !strings.Contains(beginnerHint, "Always available") {
		t.Errorf("beginner hint flavor = %q", beginnerHint)
	}

	e.SetComplexityLevel(complexity.Expert)
	expertHint := e.ComplexityFlavorText(FlavorHintAvailable)
	if !strings.Contains(expertHint, "Disabled") {
		t.Errorf("expert hint flavor = %q, want a disabled notice", expertHint)
	}
	if len(expertHint) >= len(beginnerHint) {
		t.Errorf("expert hint flavor should be shorter than beginner: %q vs %q", expertHint, beginnerHint)
	}

	for _, context := range []string{FlavorPuzzleStart, FlavorErrorFeedback, FlavorSuccessFeedback, FlavorSystemMessage} {
		for _, tier := range complexity.Levels() {
			e := NewEngine(tier)
			if e.ComplexityFlavorText(context) == "" {
				t.Errorf("flavor text %q at %s is empty", context, tier)
			}
		}
	}

	if got := e.ComplexityFlavorText("victory_lap"); got != "" {
		t.Errorf("unknown context should return empty string, got %q", got)
	}
}

func TestTutorialContent(t *testing.T) {
	for _, concept := range []string{ConceptFacts, ConceptQueries, ConceptRules} {
		for _, tier := range complexity.Levels() {
			e := NewEngine(tier)
			if len(e.TutorialContent(concept)) == 0 {
				t.Errorf("tutorial %q at %s is empty", concept, tier)
			}
		}
	}

	e := NewEngine(complexity.Beginner)
	facts := joinedLower(e.TutorialContent(ConceptFacts))
	if !strings.Contains(facts, "building blocks") || !strings.Contains(facts, "database") {
		t.Errorf("beginner facts tutorial should introduce the concept gently: %q", facts)
	}

	if got := e.TutorialContent("monads"); len(got) != 0 {
		t.Errorf("unknown concept should return empty content, got %v", got)
	}

	beginner := len(NewEngine(complexity.Beginner).TutorialContent(ConceptFacts))
	expert := len(NewEngine(complexity.Expert).TutorialContent(ConceptFacts))
	if beginner <= expert {
		t.Errorf("beginner tutorial (%d lines) must be longer than expert (%d)", beginner, expert)
	}
}
