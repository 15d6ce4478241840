package complexity

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is a difficulty tier for the game. The order matters: content
// variant lookup and depth mapping are both keyed by it, and save data
// references tiers by name, so values must never be reordered.
type Level int

const (
	Beginner     Level = 1 // maximum guidance, simple problems
	Intermediate Level = 2 // moderate guidance, standard problems
	Advanced     Level = 3 // minimal guidance, complex problems
	Expert       Level = 4 // no guidance, optimization challenges
)

// Levels returns all tiers in ascending order.
func Levels() []Level {
	return []Level{Beginner, Intermediate, Advanced, Expert}
}

// Valid reports whether l is one of the four defined tiers.
func (l Level) Valid() bool {
	return l >= Beginner && l <= Expert
}

func (l Level) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// DisplayName returns the tier name for UI display, e.g. "Beginner".
func (l Level) DisplayName() string {
	return cases.Title(language.English).String(l.String())
}

// ParseLevel converts a tier name (as produced by String) back to a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("complexity: unknown level %q", s)
}

// MarshalJSON encodes the tier by name so save data survives renumbering.
func (l Level) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("complexity: cannot marshal invalid level %d", int(l))
	}
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// HintFrequency describes how often hints are offered at a tier.
type HintFrequency string

const (
	HintsAlways        HintFrequency = "always"
	HintsOnRequest     HintFrequency = "on_request"
	HintsAfterAttempts HintFrequency = "after_attempts"
	HintsMinimal       HintFrequency = "minimal"
	HintsNone          HintFrequency = "none"
)

// ValidHintFrequencies is the canonical set of accepted frequency strings.
var ValidHintFrequencies = map[HintFrequency]bool{
	HintsAlways:        true,
	HintsOnRequest:     true,
	HintsAfterAttempts: true,
	HintsMinimal:       true,
	HintsNone:          true,
}

// Depth describes how verbose explanations and narrative content should be.
type Depth string

const (
	DepthDetailed Depth = "detailed"
	DepthModerate Depth = "moderate"
	DepthBrief    Depth = "brief"
	DepthMinimal  Depth = "minimal"
)

// ValidDepths is the canonical set of accepted depth strings.
var ValidDepths = map[Depth]bool{
	DepthDetailed: true,
	DepthModerate: true,
	DepthBrief:    true,
	DepthMinimal:  true,
}

// DepthFor maps a tier to its explanation depth. The mapping is fixed:
// content shortening everywhere in the engine derives from it, so it is
// centralized here rather than recomputed at call sites. Unknown input
// defaults to DepthModerate.
func DepthFor(l Level) Depth {
	switch l {
	case Beginner:
		return DepthDetailed
	case Intermediate:
		return DepthModerate
	case Advanced:
		return DepthBrief
	case Expert:
		return DepthMinimal
	default:
		return DepthModerate
	}
}
