// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// GameConfig contains all tunables for the brick-breaker simulation.
type GameConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BrickConfig     `yaml:"bricks"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Particles ParticleConfig  `yaml:"particles"`
	Stars     StarfieldConfig `yaml:"stars"`
}

// PhysicsConfig defines ball and paddle motion parameters.
// Speeds are in cells per tick.
type PhysicsConfig struct {
	BallSpeed      float64 `yaml:"ball_speed"`
	PaddleSpeed    float64 `yaml:"paddle_speed"`
	BallRadius     float64 `yaml:"ball_radius"`
	LaunchAngleDeg float64 `yaml:"launch_angle_deg"` // Half-spread around straight up
}

// PaddleConfig defines paddle sizing. Width is a fraction of the playfield
// width, clamped to [min_width, max_width] cells.
type PaddleConfig struct {
	WidthFraction float64 `yaml:"width_fraction"`
	MinWidth      int     `yaml:"min_width"`
	MaxWidth      int     `yaml:"max_width"`
}

// BrickConfig defines the brick grid layout and scoring.
type BrickConfig struct {
	Rows      int   `yaml:"rows"`
	Cols      int   `yaml:"cols"`
	RowPoints []int `yaml:"row_points"` // Points per row, top first; last value repeats
}

// GameplayConfig defines rules shared by both modes.
type GameplayConfig struct {
	Lives            int `yaml:"lives"`
	ResponseWindowMs int `yaml:"response_window_ms"`
}

// ParticleConfig defines the explosion burst behavior.
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"`
	Gravity    float64 `yaml:"gravity"` // Per-tick downward acceleration
	Drag       float64 `yaml:"drag"`    // Per-tick velocity multiplier
	MinDecay   float64 `yaml:"min_decay"`
	MaxDecay   float64 `yaml:"max_decay"`
}

// StarfieldConfig defines the decorative background starfield.
type StarfieldConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the config for a difficulty preset. Presets scale the
// typing response window and the ball speed; "fixed" (or unknown) leaves the
// loaded config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.ResponseWindowMs = cfg.Gameplay.ResponseWindowMs * 3 / 2
		cfg.Physics.BallSpeed *= 0.8
	case DifficultyHard:
		cfg.Gameplay.ResponseWindowMs = cfg.Gameplay.ResponseWindowMs * 2 / 3
		cfg.Physics.BallSpeed *= 1.25
	}
}
