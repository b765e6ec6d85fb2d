// Package config provides YAML-based tuning for the asteroids simulation and
// difficulty management.
package config

// AsteroidsConfig contains all tuning for the asteroids simulation.
// Velocities are in model units per second; positions integrate as
// velocity * World.Scale * dt. Rates documented as "per frame" are
// normalized against Timing.ReferenceFPS unless Timing.PerFrameRates is set.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Timing     TimingConfig     `yaml:"timing"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Saucer     SaucerConfig     `yaml:"saucer"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Scores     ScoreConfig      `yaml:"scores"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield. A zero Height is derived from the
// terminal aspect ratio so that circles stay round on screen.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"` // world units per model unit
}

// TimingConfig defines state dwell times and rate normalization.
type TimingConfig struct {
	ReferenceFPS    float64 `yaml:"reference_fps"`
	PerFrameRates   bool    `yaml:"per_frame_rates"`
	LevelStartDwell float64 `yaml:"level_start_dwell"`
	LevelDoneDwell  float64 `yaml:"level_done_dwell"`
	DyingDwell      float64 `yaml:"dying_dwell"`
	HyperspaceDwell float64 `yaml:"hyperspace_dwell"`
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	RotationFactor     float64 `yaml:"rotation_factor"`     // degrees per frame
	AccelerationFactor float64 `yaml:"acceleration_factor"` // per frame while thrusting
	DecelerationFactor float64 `yaml:"deceleration_factor"` // velocity multiplier per frame
	MaxSpeed           float64 `yaml:"max_speed"`
	SpeedCutoff        float64 `yaml:"speed_cutoff"`
	Radius             float64 `yaml:"radius"`
	HyperspaceRadius   float64 `yaml:"hyperspace_radius"`   // safety radius around the landing point
	HyperspaceAttempts int     `yaml:"hyperspace_attempts"` // rejection sampling budget
	ThrustCueInterval  float64 `yaml:"thrust_cue_interval"`
}

// BulletConfig defines projectile behaviour for both ranges.
type BulletConfig struct {
	Lifetime float64 `yaml:"lifetime"`
	Speed    float64 `yaml:"speed"`
}

// AsteroidConfig defines asteroid tiers, indexed Large, Medium, Small.
type AsteroidConfig struct {
	Speeds             [3]float64 `yaml:"speeds"`
	Radii              [3]float64 `yaml:"radii"`
	StartingCount      int        `yaml:"starting_count"`
	MaxCount           int        `yaml:"max_count"`
	LevelSpeedIncrease float64    `yaml:"level_speed_increase"`
	SplitPerturbation  float64    `yaml:"split_perturbation"` // total spread in degrees
}

// SaucerConfig defines the enemy saucer.
type SaucerConfig struct {
	SpawnDelay          float64 `yaml:"spawn_delay"`
	SpawnChance         float64 `yaml:"spawn_chance"`
	ActionTime          float64 `yaml:"action_time"`
	ShotInterval        float64 `yaml:"shot_interval"`
	Radius              float64 `yaml:"radius"`
	SmallScale          float64 `yaml:"small_scale"`
	SmallScoreThreshold int     `yaml:"small_score_threshold"`
	LargeChance         float64 `yaml:"large_chance"`       // chance of a large saucer past the threshold
	SmallTargetsShip    float64 `yaml:"small_targets_ship"` // chance a small saucer aims at the ship
	CoursePerturbation  float64 `yaml:"course_perturbation"`
	BaseSpeed           float64 `yaml:"base_speed"`
	Lifetime            float64 `yaml:"lifetime"` // seconds before leaving, 0 = stays until destroyed
	AmbienceInterval    float64 `yaml:"ambience_interval"`
}

// GameplayConfig defines lives and rewards.
type GameplayConfig struct {
	Lives                   int `yaml:"lives"`
	HyperspaceCharges       int `yaml:"hyperspace_charges"`
	ExtraLifeInterval       int `yaml:"extra_life_interval"`
	ExtraHyperspaceInterval int `yaml:"extra_hyperspace_interval"`
}

// ScoreConfig defines points per destroyed entity.
type ScoreConfig struct {
	AsteroidLarge  int `yaml:"asteroid_large"`
	AsteroidMedium int `yaml:"asteroid_medium"`
	AsteroidSmall  int `yaml:"asteroid_small"`
	SaucerLarge    int `yaml:"saucer_large"`
	SaucerSmall    int `yaml:"saucer_small"`
}

// ParticleConfig defines explosion effects.
type ParticleConfig struct {
	Lifetime          float64 `yaml:"lifetime"`
	AsteroidExplosion int     `yaml:"asteroid_explosion"`
	SaucerExplosion   int     `yaml:"saucer_explosion"`
	MinSpeed          float64 `yaml:"min_speed"` // world units per frame
	MaxSpeed          float64 `yaml:"max_speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier       float64 `yaml:"speed_multiplier"`        // added to saucer speed
	ShotIntervalReduction float64 `yaml:"shot_interval_reduction"` // fraction removed from the saucer shot interval
	SpawnChanceBoost      float64 `yaml:"spawn_chance_boost"`      // added to the saucer spawn chance
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means "keep the file's settings".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
