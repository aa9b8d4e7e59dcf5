package combat

import "github.com/vovakirdan/surimi-survivors/internal/core"

// IsGameOver reports whether health has run out. Zero counts as dead.
func IsGameOver(health float64) bool {
	return health <= 0
}

// HealthFraction returns health/max clamped to [0, 1] for health bars.
func HealthFraction(health, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return core.ClampF(health/max, 0, 1)
}

// ApplyDamage subtracts amount from health, clamping to [0, max].
// Negative amounts heal.
func ApplyDamage(health *float64, amount, max float64) {
	*health = core.ClampF(*health-amount, 0, max)
}
