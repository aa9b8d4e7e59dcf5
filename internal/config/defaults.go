package config

import (
	_ "embed"
)

//go:embed defaults/surimi.yaml
var defaultSurimiYAML []byte

// DefaultSurimiConfig returns the built-in configuration. It mirrors the
// embedded defaults/surimi.yaml and is used when that cannot be parsed.
func DefaultSurimiConfig() SurimiConfig {
	return SurimiConfig{
		Player: PlayerConfig{
			Width:        3,
			Height:       2,
			Speed:        0.5,
			FireCooldown: 6,
		},
		Enemies: EnemyConfig{
			Width:         4,
			Height:        2,
			Speed:         0.3,
			Health:        10,
			Damage:        0.25,
			MaxAlive:      100,
			SpawnInterval: 90,
			MinInterval:   12,
			InitialBatch:  4,
			Wander:        0.6,
		},
		Projectiles: ProjectileConfig{
			Width:        1,
			Height:       1,
			Speed:        1.5,
			Damage:       5,
			Knockback:    1.0,
			MaxAge:       90,
			MaxRange:     120,
			DespawnOnHit: true,
		},
		Combat: CombatConfig{
			Overlap:  "exact",
			CellSize: 8,
		},
		Scoring: ScoringConfig{
			KillPoints:      10,
			PointsPerSecond: 1,
		},
		Classic: ClassicConfig{
			Enemies: []RectSpec{
				{X: 20, Y: 8, Width: 12, Height: 6},
			},
			Walls: []WallSpec{
				{RectSpec: RectSpec{X: 40, Y: 4, Width: 8, Height: 2}, Solid: true},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByTime,
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SpawnReduction:  70,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSurimiYAML
}
