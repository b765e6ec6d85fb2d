package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultAsteroidsConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{15000, 0.5},
		{30000, 1.0},
		{90000, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultySaucerScaling(t *testing.T) {
	d := NewDifficultyManager(DefaultAsteroidsConfig().Difficulty)

	if got := d.Speed(4, 0, 0); got != 4 {
		t.Errorf("Speed at score 0 = %v, expected 4", got)
	}
	if got := d.Speed(4, 30000, 0); math.Abs(got-7) > 1e-9 {
		t.Errorf("Speed at max = %v, expected 7", got)
	}
	if got := d.ShotInterval(1.5, 30000, 0); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("ShotInterval at max = %v, expected 0.9", got)
	}
	if got := d.SpawnChance(0.95, 30000, 0); got != 1.0 {
		t.Errorf("SpawnChance should clamp to 1, got %v", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.25
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true for disabled config")
	}
	if got := d.Level(1_000_000, 0); got != 0.25 {
		t.Errorf("Level() = %v, expected fixed 0.25", got)
	}

	cfg.InitialLevel = 3
	if got := NewDifficultyManager(cfg).Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(ticks=300) = %v, expected 0.5", got)
	}
}
