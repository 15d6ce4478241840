package story

import "fmt"

// GameLevel is a narrative progression stage. Values are contiguous from
// zero and advance logic steps through them in order, so the numbering is
// load-bearing: Tutorial is the start and Recursion is terminal.
type GameLevel int

const (
	LevelTutorial GameLevel = iota
	LevelFacts
	LevelRules
	LevelUnification
	LevelBacktracking
	LevelRecursion
)

// MaxGameLevel is the terminal stage.
const MaxGameLevel = LevelRecursion

// GameLevels returns all stages in progression order.
func GameLevels() []GameLevel {
	return []GameLevel{
		LevelTutorial,
		LevelFacts,
		LevelRules,
		LevelUnification,
		LevelBacktracking,
		LevelRecursion,
	}
}

// Valid reports whether l is a defined stage.
func (l GameLevel) Valid() bool {
	return l >= LevelTutorial && l <= MaxGameLevel
}

// String returns the stage name as it appears in terminal output,
// e.g. "FACTS".
func (l GameLevel) String() string {
	switch l {
	case LevelTutorial:
		return "TUTORIAL"
	case LevelFacts:
		return "FACTS"
	case LevelRules:
		return "RULES"
	case LevelUnification:
		return "UNIFICATION"
	case LevelBacktracking:
		return "BACKTRACKING"
	case LevelRecursion:
		return "RECURSION"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}
