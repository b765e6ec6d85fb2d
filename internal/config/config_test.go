package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	var fromYAML AsteroidsConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != cfg {
		t.Errorf("embedded YAML = %+v\nexpected %+v", fromYAML, cfg)
	}
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("ship:\n  max_speed: 20\ngameplay:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids() error: %v", err)
	}
	if cfg.Ship.MaxSpeed != 20 {
		t.Errorf("Ship.MaxSpeed = %v, expected 20", cfg.Ship.MaxSpeed)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Gameplay.Lives = %v, expected 5", cfg.Gameplay.Lives)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Bullets.Speed != 14 {
		t.Errorf("Bullets.Speed = %v, expected default 14", cfg.Bullets.Speed)
	}
}

func TestLoadAsteroidsErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{"missing file", "", false},
		{"malformed yaml", "ship: [1, 2", true},
		{"invalid values", "world:\n  scale: 0\n", true},
		{"max below start", "asteroids:\n  starting_count: 9\n  max_count: 8\n", true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.write {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			cfg, err := LoadAsteroids(path)
			if err == nil {
				t.Errorf("case %d: LoadAsteroids() expected an error", i)
			}
			if cfg.World.Scale != 40 {
				t.Errorf("case %d: failed load should return defaults, got scale %v", i, cfg.World.Scale)
			}
		})
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		enabled   bool
		initLevel float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.0},
		{DifficultyHard, 2, true, 0.5},
		{DifficultyFixed, 3, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyAsteroidsPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) rejected a valid preset", name)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should be rejected")
	}
}

func TestClassicConfig(t *testing.T) {
	cfg := ClassicAsteroidsConfig()
	if !cfg.Timing.PerFrameRates {
		t.Error("classic config should apply per-frame rates literally")
	}
	if cfg.Difficulty.Enabled {
		t.Error("classic config should not scale difficulty")
	}
}
