package combat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/surimi-survivors/internal/combat"
	"github.com/vovakirdan/surimi-survivors/internal/core"
)

func TestSpawnDistance(t *testing.T) {
	assert.InDelta(t, 7.5, combat.SpawnDistance(core.V(3, 4)), 1e-9)
}

func TestSpawnPositionIsFiniteOnCircle(t *testing.T) {
	player := core.V(-120.5, 33)
	screen := core.V(80, 24)
	d := combat.SpawnDistance(screen)

	for i := 0; i < 360; i++ {
		theta := float64(i) / 360 * 2 * math.Pi
		p := combat.SpawnPosition(player, screen, theta)
		assert.True(t, p.IsFinite(), "theta=%v produced %v", theta, p)
		assert.InDelta(t, d, p.Sub(player).Len(), 1e-6)
	}
}

func TestRandomSpawnPositionIsFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := combat.RandomSpawnPosition(core.V(0, 0), core.V(1000, 1000), rng)
		assert.True(t, p.IsFinite())
	}
}

func TestLegacySpawnPositionIsNaNOutsideUnitRange(t *testing.T) {
	screen := core.V(1000, 1000)

	for _, theta := range []float64{1.5, 2, math.Pi, 5, 2*math.Pi - 0.01} {
		p := combat.LegacySpawnPosition(core.V(0, 0), screen, theta)
		assert.False(t, p.IsFinite(), "theta=%v should be NaN, got %v", theta, p)
	}

	// Inside [0, 1] the legacy formula is finite but not on the circle.
	p := combat.LegacySpawnPosition(core.V(0, 0), screen, 0.5)
	assert.True(t, p.IsFinite())
	assert.NotEqual(t, combat.SpawnPosition(core.V(0, 0), screen, 0.5), p)
}
