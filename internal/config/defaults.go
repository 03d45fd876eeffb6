package config

import (
	_ "embed"
)

//go:embed defaults/typebrick.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded fallback configuration.
// It mirrors defaults/typebrick.yaml and is used only if the embedded
// YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			BallSpeed:      0.35,
			PaddleSpeed:    0.9,
			BallRadius:     0.5,
			LaunchAngleDeg: 45,
		},
		Paddle: PaddleConfig{
			WidthFraction: 0.14,
			MinWidth:      6,
			MaxWidth:      14,
		},
		Bricks: BrickConfig{
			Rows:      5,
			Cols:      14,
			RowPoints: []int{7, 7, 5, 3, 1},
		},
		Gameplay: GameplayConfig{
			Lives:            10,
			ResponseWindowMs: 500,
		},
		Particles: ParticleConfig{
			BurstCount: 12,
			Gravity:    0.012,
			Drag:       0.97,
			MinDecay:   0.015,
			MaxDecay:   0.035,
		},
		Stars: StarfieldConfig{
			Count:    40,
			MinSpeed: 0.02,
			MaxSpeed: 0.09,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
