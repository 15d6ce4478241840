package complexity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads tier configs from per-tier JSON files in a directory
// (beginner.json, intermediate.json, advanced.json, expert.json).
// Missing files fall back to the builtin default for that tier. If any
// file that does exist fails to parse or validate, the whole set falls
// back to defaults so the game never runs on a partially overridden mix.
type Loader struct {
	dir  string
	errs []string
}

// NewLoader creates a loader for the given config directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// LoadAll loads configs for all tiers. It never fails; callers should
// check Errors to log what fell back.
func (ld *Loader) LoadAll() map[Level]Config {
	ld.errs = nil

	if _, err := os.Stat(ld.dir); err != nil {
		return DefaultConfigs()
	}

	configs := make(map[Level]Config, len(Levels()))
	for _, l := range Levels() {
		cfg, err := ld.Load(l)
		if err != nil {
			ld.errs = append(ld.errs, fmt.Sprintf("error loading %s config: %v", l, err))
			continue
		}
		configs[l] = cfg
	}

	if len(ld.errs) > 0 {
		return DefaultConfigs()
	}
	return configs
}

// Load reads the config file for one tier. A missing file returns the
// builtin default for that tier.
func (ld *Loader) Load(l Level) (Config, error) {
	path := filepath.Join(ld.dir, l.String()+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfigs()[l], nil
		}
		return Config{}, fmt.Errorf("complexity: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("complexity: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("complexity: %s: %w", path, err)
	}

	return cfg, nil
}

// Errors returns the load errors from the last LoadAll, if any.
func (ld *Loader) Errors() []string {
	out := make([]string, len(ld.errs))
	copy(out, ld.errs)
	return out
}

// Save writes a tier's config to its file as pretty-printed JSON,
// creating the directory if needed.
func (ld *Loader) Save(l Level, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(ld.dir, 0o755); err != nil {
		return fmt.Errorf("complexity: mkdir %s: %w", ld.dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("complexity: marshal %s config: %w", l, err)
	}

	path := filepath.Join(ld.dir, l.String()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("complexity: write %s: %w", path, err)
	}
	return nil
}

// SaveAll writes every config in the map to its tier file.
func (ld *Loader) SaveAll(configs map[Level]Config) error {
	for l, cfg := range configs {
		if err := ld.Save(l, cfg); err != nil {
			return err
		}
	}
	return nil
}

// WriteDefaultConfigFiles creates override files for all tiers from the
// builtin defaults. Useful for seeding a new data directory.
func WriteDefaultConfigFiles(dir string) error {
	return NewLoader(dir).SaveAll(DefaultConfigs())
}
