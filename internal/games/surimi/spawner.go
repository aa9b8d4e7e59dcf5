package surimi

import (
	"github.com/vovakirdan/surimi-survivors/internal/combat"
	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// spawnWave counts down the spawn timer and spawns one enemy when it fires.
// Classic mode never respawns. Returns the number of enemies spawned.
func (g *Game) spawnWave() int {
	if g.mode == ModeClassic {
		return 0
	}
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return 0
	}
	g.spawnTimer = g.spawnInterval()
	if !g.spawnEnemy() {
		return 0
	}
	return 1
}

// spawnEnemy places a shark on the spawn circle around the player.
// Returns false when the alive cap is reached.
func (g *Game) spawnEnemy() bool {
	if g.cfg.Enemies.MaxAlive > 0 && combat.CountAlive(g.enemies) >= g.cfg.Enemies.MaxAlive {
		return false
	}
	size := core.V(g.cfg.Enemies.Width, g.cfg.Enemies.Height)
	center := combat.RandomSpawnPosition(g.player.Center(), g.runtime.ScreenSize(), g.rng)
	g.enemies = append(g.enemies, g.newEnemy(center.Sub(size.Scale(0.5)), size))
	return true
}

// newEnemy creates a live shark with stats from the config.
func (g *Game) newEnemy(pos, size core.Vec2) combat.Enemy {
	return combat.Enemy{
		Kind:   combat.KindShark,
		Pos:    pos,
		Size:   size,
		Health: g.cfg.Enemies.Health,
		Damage: g.cfg.Enemies.Damage,
		Alive:  true,
	}
}

// spawnInterval returns the current ticks between spawns.
func (g *Game) spawnInterval() int {
	return g.difficulty.SpawnInterval(g.cfg.Enemies.SpawnInterval, g.cfg.Enemies.MinInterval, g.score, g.tickCount)
}

// enemySpeed returns the current enemy speed.
func (g *Game) enemySpeed() float64 {
	return g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, g.tickCount)
}
