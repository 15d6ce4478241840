package story

import (
	"strings"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// Moods a segment can carry. The hosting UI maps them to styles; the set
// is open but these are the only values the engine produces.
const (
	MoodNeutral    = "neutral"
	MoodUrgent     = "urgent"
	MoodMysterious = "mysterious"
	MoodTriumphant = "triumphant"
)

// Segment is one unit of narrative output, ready for display. Content
// holds the lines already resolved for the tier the segment was built
// for. Segments are read-only after construction and carry no reference
// back to the engine.
type Segment struct {
	Title     string    `json:"title"`
	Content   []string  `json:"content"`
	Level     GameLevel `json:"level"`
	Character string    `json:"character,omitempty"`
	Mood      string    `json:"mood"`

	// Variants holds the per-tier alternates the segment was resolved
	// from. Kept for introspection, excluded from the wire form.
	Variants map[complexity.Level][]string `json:"-"`
}

// NewSegment builds a fully resolved segment for one tier. All segment
// construction goes through here so callers never observe content that
// has not been resolved yet.
func NewSegment(title string, level GameLevel, character, mood string, base []string, variants map[complexity.Level][]string, tier complexity.Level) Segment {
	return Segment{
		Title:     title,
		Content:   ResolveContent(base, variants, tier),
		Level:     level,
		Character: character,
		Mood:      mood,
		Variants:  variants,
	}
}

// ResolveContent selects the lines to display at a tier. A tier with an
// explicit variant wins verbatim; otherwise the base content is reshaped
// by the tier's explanation depth. The result is deterministic: same
// inputs, same lines, no I/O.
func ResolveContent(base []string, variants map[complexity.Level][]string, tier complexity.Level) []string {
	if lines, ok := variants[tier]; ok {
		return lines
	}
	return applyDepth(base, complexity.DepthFor(tier))
}

// applyDepth reshapes base content for a target explanation depth.
// Detailed and Moderate pass through untouched.
func applyDepth(base []string, depth complexity.Depth) []string {
	switch depth {
	case complexity.DepthMinimal:
		// Drop blank lines and detailed asides. Asides are marked by a
		// leading single quote in authored base content.
		kept := make([]string, 0, len(base))
		for _, line := range base {
			if line != "" && !strings.HasPrefix(line, "'") {
				kept = append(kept, line)
			}
		}
		return kept
	case complexity.DepthBrief:
		if len(base) <= 10 {
			return base
		}
		// Stride-2 downsample from the first line.
		kept := make([]string, 0, (len(base)+1)/2)
		for i := 0; i < len(base); i += 2 {
			kept = append(kept, base[i])
		}
		return kept
	default:
		return base
	}
}
