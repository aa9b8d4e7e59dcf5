package config

import "github.com/vovakirdan/surimi-survivors/internal/core"

// Progression types.
const (
	ProgressByTime  = "time"
	ProgressByScore = "score"
	ProgressNone    = "none"
)

// DifficultyManager maps run progress to a difficulty level in [0, 1] and
// scales enemy speed and spawn rate by it.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64 // Level at the start of a run
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// SetInitialLevel overrides the starting level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.base = core.ClampF(level, 0, 1)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// progress is how far the run is toward max difficulty, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	var done int
	switch d.cfg.Progression.Type {
	case ProgressByScore:
		done = score
	case ProgressByTime:
		done = ticks
	default:
		return 0
	}
	maxAt := core.Max(d.cfg.Progression.MaxAt, 1)
	return core.ClampF(float64(done)/float64(maxAt), 0, 1)
}

// Level interpolates from the initial level up to 1 as the run progresses.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}
	return d.base + d.progress(score, ticks)*(1-d.base)
}

// Speed scales a base enemy speed up to base*(1+SpeedMultiplier) at full difficulty.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens the wave interval by up to SpawnReduction ticks.
// The result never drops below minInterval, or 1 if minInterval is smaller.
func (d *DifficultyManager) SpawnInterval(base, minInterval, score, ticks int) int {
	cut := int(d.Level(score, ticks) * float64(d.cfg.Scaling.SpawnReduction))
	return core.Max(base-cut, core.Max(minInterval, 1))
}
