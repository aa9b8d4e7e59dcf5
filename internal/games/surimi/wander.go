package surimi

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/surimi-survivors/internal/combat"
	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// Noise parameters for the wander field.
const (
	wanderAlpha = 2.0  // Smoothing
	wanderBeta  = 2.0  // Frequency
	wanderOct   = 3    // Octaves
	wanderScale = 0.05 // World units to noise space
	wanderDrift = 0.01 // Ticks to noise space
)

// Wander bends enemy headings with a Perlin noise field so packs do not
// stack on a single line toward the player.
type Wander struct {
	noise  *perlin.Perlin
	amount float64 // Max deflection as a fraction of a quarter turn
}

// NewWander creates a wander field. amount <= 0 disables deflection.
func NewWander(seed int64, amount float64) *Wander {
	return &Wander{
		noise:  perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOct, seed),
		amount: core.ClampF(amount, 0, 1),
	}
}

// Heading returns the unit direction from pos toward target, deflected by
// the noise at pos and tick.
func (w *Wander) Heading(pos, target core.Vec2, tick int) core.Vec2 {
	dir := target.Sub(pos).Normalize()
	if dir.IsZero() || w.amount == 0 {
		return dir
	}
	n := core.ClampF(w.noise.Noise2D(pos.X*wanderScale, pos.Y*wanderScale+float64(tick)*wanderDrift), -1, 1)
	angle := n * w.amount * math.Pi / 2
	sin, cos := math.Sincos(angle)
	return core.V(dir.X*cos-dir.Y*sin, dir.X*sin+dir.Y*cos)
}

// steerEnemies moves every live enemy toward the player.
func (g *Game) steerEnemies() {
	target := g.player.Center()
	speed := g.enemySpeed()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		e.Vel = g.wander.Heading(e.Rect().Center(), target, g.tickCount).Scale(speed)
		e.Pos = e.Pos.Add(e.Vel)
		e.Pos = combat.BlockWalls(e.Rect(), g.walls)
	}
}
