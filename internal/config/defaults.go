package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in tuning. It mirrors
// defaults/asteroids.yaml and is used when the embedded file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  1024,
			Height: 0,
			Scale:  40,
		},
		Timing: TimingConfig{
			ReferenceFPS:    60,
			PerFrameRates:   false,
			LevelStartDwell: 3.0,
			LevelDoneDwell:  2.0,
			DyingDwell:      3.0,
			HyperspaceDwell: 0.75,
		},
		Ship: ShipConfig{
			RotationFactor:     2.0,
			AccelerationFactor: 0.1,
			DecelerationFactor: 0.995,
			MaxSpeed:           14,
			SpeedCutoff:        0.05,
			Radius:             0.5,
			HyperspaceRadius:   1.5,
			HyperspaceAttempts: 64,
			ThrustCueInterval:  0.25,
		},
		Bullets: BulletConfig{
			Lifetime: 3.0,
			Speed:    14,
		},
		Asteroids: AsteroidConfig{
			Speeds:             [3]float64{4, 5, 6},
			Radii:              [3]float64{1.2, 0.6, 0.3},
			StartingCount:      2,
			MaxCount:           8,
			LevelSpeedIncrease: 0.1,
			SplitPerturbation:  40,
		},
		Saucer: SaucerConfig{
			SpawnDelay:          5.0,
			SpawnChance:         0.1,
			ActionTime:          3.0,
			ShotInterval:        1.5,
			Radius:              0.7,
			SmallScale:          0.6,
			SmallScoreThreshold: 100000,
			LargeChance:         0.3,
			SmallTargetsShip:    0.9,
			CoursePerturbation:  40,
			BaseSpeed:           4,
			Lifetime:            0,
			AmbienceInterval:    0.5,
		},
		Gameplay: GameplayConfig{
			Lives:                   3,
			HyperspaceCharges:       2,
			ExtraLifeInterval:       5000,
			ExtraHyperspaceInterval: 2500,
		},
		Scores: ScoreConfig{
			AsteroidLarge:  20,
			AsteroidMedium: 50,
			AsteroidSmall:  100,
			SaucerLarge:    200,
			SaucerSmall:    1000,
		},
		Particles: ParticleConfig{
			Lifetime:          2.5,
			AsteroidExplosion: 5,
			SaucerExplosion:   8,
			MinSpeed:          0.25,
			MaxSpeed:          0.75,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:       0.75,
				ShotIntervalReduction: 0.4,
				SpawnChanceBoost:      0.1,
			},
		},
	}
}

// ClassicAsteroidsConfig returns the default tuning with per-frame rates
// applied literally, as on a fixed 60 Hz machine.
func ClassicAsteroidsConfig() AsteroidsConfig {
	cfg := DefaultAsteroidsConfig()
	cfg.Timing.PerFrameRates = true
	cfg.Difficulty.Enabled = false
	return cfg
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
