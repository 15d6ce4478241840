package complexity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderMissingDir(t *testing.T) {
	ld := NewLoader(filepath.Join(t.TempDir(), "nope"))

	configs := ld.LoadAll()
	if len(configs) != 4 {
		t.Fatalf("expected 4 configs, got %d", len(configs))
	}
	if configs[Beginner].Name != "Beginner" {
		t.Errorf("expected builtin defaults, got %+v", configs[Beginner])
	}
	if len(ld.Errors()) != 0 {
		t.Errorf("missing dir is not an error, got %v", ld.Errors())
	}
}

func TestLoaderOverrideFile(t *testing.T) {
	dir := t.TempDir()
	override := `{
		"name": "Rookie",
		"description": "Gentler than stock beginner",
		"hint_frequency": "always",
		"explanation_depth": "detailed",
		"puzzle_parameters": {"max_variables": 1, "max_predicates": 2},
		"ui_indicators": {"color": "green", "icon": "*", "badge": "ROOKIE"},
		"scoring_multiplier": 0.5
	}`
	if err := os.WriteFile(filepath.Join(dir, "beginner.json"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	ld := NewLoader(dir)
	configs := ld.LoadAll()
	if len(ld.Errors()) != 0 {
		t.Fatalf("unexpected load errors: %v", ld.Errors())
	}

	if configs[Beginner].Name != "Rookie" {
		t.Errorf("override not applied: %+v", configs[Beginner])
	}
	if configs[Beginner].ScoringMultiplier != 0.5 {
		t.Errorf("expected multiplier 0.5, got %v", configs[Beginner].ScoringMultiplier)
	}
	// Tiers without files keep their builtin defaults.
	if configs[Expert].Name != "Expert" {
		t.Errorf("expected builtin expert config, got %+v", configs[Expert])
	}
}

func TestLoaderInvalidFileFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"missing fields", `{"name": "X"}`},
		{"bad hint frequency", `{
			"name": "X", "description": "Y",
			"hint_frequency": "hourly", "explanation_depth": "detailed",
			"puzzle_parameters": {"max_variables": 2, "max_predicates": 3},
			"ui_indicators": {"color": "red", "icon": "!", "badge": "X"},
			"scoring_multiplier": 1.0
		}`},
		{"negative multiplier", `{
			"name": "X", "description": "Y",
			"hint_frequency": "always", "explanation_depth": "detailed",
			"puzzle_parameters": {"max_variables": 2, "max_predicates": 3},
			"ui_indicators": {"color": "red", "icon": "!", "badge": "X"},
			"scoring_multiplier": -1
		}`},
		{"zero max_variables", `{
			"name": "X", "description": "Y",
			"hint_frequency": "always", "explanation_depth": "detailed",
			"puzzle_parameters": {"max_variables": 0, "max_predicates": 3},
			"ui_indicators": {"color": "red", "icon": "!", "badge": "X"},
			"scoring_multiplier": 1.0
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "advanced.json"), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			ld := NewLoader(dir)
			configs := ld.LoadAll()

			if len(ld.Errors()) == 0 {
				t.Fatal("expected load errors")
			}
			// One bad file falls the whole set back to defaults.
			if configs[Advanced].Name != "Advanced" {
				t.Errorf("expected builtin advanced config, got %+v", configs[Advanced])
			}
			if configs[Beginner].Name != "Beginner" {
				t.Errorf("expected builtin beginner config, got %+v", configs[Beginner])
			}
		})
	}
}

func TestLoaderSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ld := NewLoader(dir)

	cfg := DefaultConfigs()[Intermediate]
	cfg.Description = "Tuned for the midterm cohort"
	if err := ld.Save(Intermediate, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := ld.Load(Intermediate)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Description != cfg.Description {
		t.Errorf("round trip lost description: %q", loaded.Description)
	}
	if loaded.ScoringMultiplier != cfg.ScoringMultiplier {
		t.Errorf("round trip changed multiplier: %v", loaded.ScoringMultiplier)
	}
}

func TestLoaderSaveRejectsInvalid(t *testing.T) {
	ld := NewLoader(t.TempDir())
	if err := ld.Save(Beginner, Config{Name: "broken"}); err == nil {
		t.Error("expected error saving invalid config")
	}
}

func TestWriteDefaultConfigFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "complexity")
	if err := WriteDefaultConfigFiles(dir); err != nil {
		t.Fatalf("WriteDefaultConfigFiles error: %v", err)
	}

	for _, l := range Levels() {
		path := filepath.Join(dir, l.String()+".json")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected config file for %s: %v", l, err)
		}
	}

	ld := NewLoader(dir)
	configs := ld.LoadAll()
	if len(ld.Errors()) != 0 {
		t.Fatalf("generated files failed to load: %v", ld.Errors())
	}
	if configs[Expert].ScoringMultiplier != 2.0 {
		t.Errorf("expected expert multiplier 2.0, got %v", configs[Expert].ScoringMultiplier)
	}
}
