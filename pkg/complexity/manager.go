package complexity

import (
	"fmt"
	"math"
)

// Manager coordinates tier-dependent behavior for the rest of the game:
// puzzle bounds, hint frequency, explanation depth and scoring. It holds
// the current tier and one Config per tier.
type Manager struct {
	current Level
	configs map[Level]Config
}

// NewManager creates a manager with the builtin default configs and the
// current tier set to Beginner.
func NewManager() *Manager {
	return newManager(DefaultConfigs())
}

// NewManagerFromDir creates a manager whose configs are loaded from dir,
// falling back to builtin defaults when files are missing or invalid.
// The returned warnings describe any files that failed to load.
func NewManagerFromDir(dir string) (*Manager, []string) {
	loader := NewLoader(dir)
	configs := loader.LoadAll()
	return newManager(configs), loader.Errors()
}

func newManager(configs map[Level]Config) *Manager {
	// Every tier must have a config. Backfill from defaults so lookups
	// keyed by Level can never miss.
	defaults := DefaultConfigs()
	for _, l := range Levels() {
		if _, ok := configs[l]; !ok {
			configs[l] = defaults[l]
		}
	}
	return &Manager{
		current: Beginner,
		configs: configs,
	}
}

// Reload replaces the configs with the contents of dir and returns any
// load warnings.
func (m *Manager) Reload(dir string) []string {
	loader := NewLoader(dir)
	configs := loader.LoadAll()
	defaults := DefaultConfigs()
	for _, l := range Levels() {
		if _, ok := configs[l]; !ok {
			configs[l] = defaults[l]
		}
	}
	m.configs = configs
	return loader.Errors()
}

// SetLevel changes the current tier.
func (m *Manager) SetLevel(l Level) error {
	if !l.Valid() {
		return fmt.Errorf("complexity: invalid level %d", int(l))
	}
	m.current = l
	return nil
}

// CurrentLevel returns the current tier.
func (m *Manager) CurrentLevel() Level {
	return m.current
}

// CurrentConfig returns the config for the current tier.
func (m *Manager) CurrentConfig() Config {
	return m.configs[m.current]
}

// ConfigFor returns the config for a specific tier.
func (m *Manager) ConfigFor(l Level) (Config, error) {
	cfg, ok := m.configs[l]
	if !ok {
		return Config{}, fmt.Errorf("complexity: no configuration for level %d", int(l))
	}
	return cfg, nil
}

// PuzzleParameters returns the puzzle bounds for the current tier.
func (m *Manager) PuzzleParameters() PuzzleParameters {
	return m.configs[m.current].PuzzleParameters
}

// HintFrequency returns the hint frequency for the current tier.
func (m *Manager) HintFrequency() HintFrequency {
	return m.configs[m.current].HintFrequency
}

// ExplanationDepth returns the explanation depth for the current tier.
func (m *Manager) ExplanationDepth() Depth {
	return m.configs[m.current].ExplanationDepth
}

// ScoringMultiplier returns the score multiplier for the current tier.
func (m *Manager) ScoringMultiplier() float64 {
	return m.configs[m.current].ScoringMultiplier
}

// ApplyMultiplier scales a base score by the current tier's multiplier,
// rounded to the nearest point.
func (m *Manager) ApplyMultiplier(base int) int {
	return int(math.Round(float64(base) * m.ScoringMultiplier()))
}

// UIIndicators returns the presentation hints for the current tier.
func (m *Manager) UIIndicators() UIIndicators {
	return m.configs[m.current].UIIndicators
}

// ShowAdvancedConcepts reports whether advanced concepts should surface
// at the current tier. Only Advanced and Expert see them.
func (m *Manager) ShowAdvancedConcepts() bool {
	return m.current == Advanced || m.current == Expert
}

// AvailableLevels returns the tiers a player can choose from, in
// ascending order.
func (m *Manager) AvailableLevels() []Level {
	return Levels()
}

// LevelName returns the display name configured for a tier, or "" for an
// unknown tier.
func (m *Manager) LevelName(l Level) string {
	return m.configs[l].Name
}

// LevelDescription returns the description configured for a tier, or ""
// for an unknown tier.
func (m *Manager) LevelDescription(l Level) string {
	return m.configs[l].Description
}
