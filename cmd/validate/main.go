package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jwebster45206/prolog-resurrected/internal/config"
	"github.com/jwebster45206/prolog-resurrected/internal/logger"
	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
	"github.com/jwebster45206/prolog-resurrected/pkg/story"
)

func main() {
	// Load .env before reading environment variables. A missing file is
	// normal outside development.
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Setup(cfg)
	if envErr != nil {
		log.Debug("No .env file loaded", "error", envErr)
	}

	dataDir := flag.String("data", cfg.DataDir, "directory of complexity override files")
	flag.Parse()

	failed := false

	validator := &ConfigValidator{log: log}
	if err := validator.validateDir(*dataDir); err != nil {
		log.Error("Complexity config validation failed", "error", err)
		failed = true
	}

	if err := story.VerifyContentTables(); err != nil {
		log.Error("Narrative content validation failed", "error", err)
		failed = true
	}

	if failed {
		os.Exit(1)
	}

	// Load the directory through the same path the game uses. The
	// loader's fallback policy is all-or-nothing, so a warning here
	// means players would silently get builtin defaults.
	mgr, warnings := complexity.NewManagerFromDir(*dataDir)
	if len(warnings) > 0 {
		for _, w := range warnings {
			log.Error("Loader rejected complexity config", "warning", w)
		}
		os.Exit(1)
	}

	log.Info("All game content is valid",
		"data_dir", *dataDir,
		"files", validator.checked,
		"tiers", len(mgr.AvailableLevels()))
}

// ConfigValidator checks complexity override files for structural and
// semantic problems before the game ever loads them. The runtime loader
// falls back to builtin defaults on bad files; this catches them early.
type ConfigValidator struct {
	log     *slog.Logger
	errors  []string
	checked int
}

func (v *ConfigValidator) validateDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		// No overrides; builtin defaults apply
		v.log.Info("No complexity config directory, using builtin defaults", "data_dir", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	v.errors = nil

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		v.validateFile(filepath.Join(dir, entry.Name()))
		v.checked++
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", dir, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *ConfigValidator) validateFile(path string) {
	v.log.Info("Validating complexity config", "file", path)

	name := strings.TrimSuffix(filepath.Base(path), ".json")
	if _, err := complexity.ParseLevel(name); err != nil {
		v.addError(fmt.Sprintf("%s: filename must be a complexity level (beginner, intermediate, advanced, expert)", path))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		v.addError(fmt.Sprintf("%s: %v", path, err))
		return
	}
	if !json.Valid(data) {
		v.addError(fmt.Sprintf("%s: contains invalid JSON", path))
		return
	}

	var c complexity.Config
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&c); err != nil {
		v.addError(fmt.Sprintf("%s: failed strict JSON unmarshaling: %v", path, err))
		return
	}

	if err := c.Validate(); err != nil {
		v.addError(fmt.Sprintf("%s: %v", path, err))
	}
}

func (v *ConfigValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}
