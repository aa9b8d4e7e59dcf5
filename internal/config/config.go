// Package config provides YAML-based game configuration loading and
// difficulty management for Surimi Survivors.
package config

// SurimiConfig contains all configuration for the game.
type SurimiConfig struct {
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Combat      CombatConfig     `yaml:"combat"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Classic     ClassicConfig    `yaml:"classic"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units moved per tick per held direction
	FireCooldown int     `yaml:"fire_cooldown"` // Ticks between shots
}

// EnemyConfig defines enemy bodies and the wave spawner.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Health        float64 `yaml:"health"`
	Damage        float64 `yaml:"damage"`         // Player health lost per tick of contact
	MaxAlive      int     `yaml:"max_alive"`      // Spawner stops at this many live enemies
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns at the easiest level
	MinInterval   int     `yaml:"min_interval"`   // Floor for the spawn interval
	InitialBatch  int     `yaml:"initial_batch"`  // Enemies spawned on reset
	Wander        float64 `yaml:"wander"`         // 0 = beeline to the player, 1 = heavy noise
}

// ProjectileConfig defines projectile bodies and their despawn policy.
type ProjectileConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Damage       float64 `yaml:"damage"`
	Knockback    float64 `yaml:"knockback"`
	MaxAge       int     `yaml:"max_age"`
	MaxRange     float64 `yaml:"max_range"`
	DespawnOnHit bool    `yaml:"despawn_on_hit"`
}

// CombatConfig selects collision behavior.
type CombatConfig struct {
	Overlap  string  `yaml:"overlap"`   // "exact" or "corners"
	CellSize float64 `yaml:"cell_size"` // Broad-phase grid cell; 0 disables the grid
}

// ScoringConfig defines how runs are scored.
type ScoringConfig struct {
	KillPoints      int `yaml:"kill_points"`
	PointsPerSecond int `yaml:"points_per_second"`
}

// RectSpec is a rectangle in world units relative to the player's start.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WallSpec is a wall placement.
type WallSpec struct {
	RectSpec `yaml:",inline"`
	Solid    bool `yaml:"solid"`
}

// ClassicConfig is the fixed layout used by classic mode.
type ClassicConfig struct {
	Enemies []RectSpec `yaml:"enemies"`
	Walls   []WallSpec `yaml:"walls"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction (ticks) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a CLI difficulty name. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
