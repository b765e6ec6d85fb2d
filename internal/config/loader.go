package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const asteroidsFile = "asteroids.yaml"

// LoadAsteroids loads the asteroids tuning.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultAsteroidsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAsteroids(data)
		if err != nil {
			return DefaultAsteroidsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(asteroidsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAsteroids(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", asteroidsFile)); err == nil {
		if cfg, err := parseAsteroids(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseAsteroids(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects tuning the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	switch {
	case c.World.Width <= 0:
		return fmt.Errorf("world.width must be positive, got %v", c.World.Width)
	case c.World.Height < 0:
		return fmt.Errorf("world.height must not be negative, got %v", c.World.Height)
	case c.World.Scale <= 0:
		return fmt.Errorf("world.scale must be positive, got %v", c.World.Scale)
	case c.Timing.ReferenceFPS <= 0:
		return fmt.Errorf("timing.reference_fps must be positive, got %v", c.Timing.ReferenceFPS)
	case c.Asteroids.MaxCount < c.Asteroids.StartingCount:
		return fmt.Errorf("asteroids.max_count (%d) is below starting_count (%d)", c.Asteroids.MaxCount, c.Asteroids.StartingCount)
	case c.Bullets.Speed <= 0:
		return fmt.Errorf("bullets.speed must be positive, got %v", c.Bullets.Speed)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.HyperspaceCharges = 3
		cfg.Saucer.SpawnChance = 0.05
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.HyperspaceCharges = 1
		cfg.Asteroids.StartingCount = 3
		if cfg.Asteroids.MaxCount < 3 {
			cfg.Asteroids.MaxCount = 3
		}
		cfg.Saucer.SpawnChance = 0.2
	}
}
