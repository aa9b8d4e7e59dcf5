package combat

import (
	"math"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// SpawnDistanceFactor scales the screen diagonal to get the spawn radius,
// which keeps new enemies off-screen.
const SpawnDistanceFactor = 1.5

// Rand is the subset of *math/rand.Rand used for spawn placement.
type Rand interface {
	Float64() float64
}

// SpawnDistance returns the radial spawn distance for a viewport size.
func SpawnDistance(screen core.Vec2) float64 {
	return SpawnDistanceFactor * screen.Len()
}

// SpawnPosition places a spawn on the circle of radius SpawnDistance(screen)
// around player at angle theta (radians).
func SpawnPosition(player, screen core.Vec2, theta float64) core.Vec2 {
	d := SpawnDistance(screen)
	return player.Add(core.V(d*math.Cos(theta), d*math.Sin(theta)))
}

// RandomSpawnPosition draws theta uniformly from [0, 2π).
func RandomSpawnPosition(player, screen core.Vec2, rng Rand) core.Vec2 {
	return SpawnPosition(player, screen, rng.Float64()*2*math.Pi)
}

// LegacySpawnPosition applies acos/asin to the angle instead of cos/sin.
// The result is NaN for any theta outside [-1, 1]. It exists only to
// document and regression-test the broken placement it replaced.
func LegacySpawnPosition(player, screen core.Vec2, theta float64) core.Vec2 {
	d := SpawnDistance(screen)
	return player.Add(core.V(d*math.Acos(theta), d*math.Asin(theta)))
}
