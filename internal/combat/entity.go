// Package combat holds the entity model and the per-frame combat rules:
// overlap testing, hit handling, projectile motion, spawn placement, and
// health. Everything here is plain data and pure arithmetic; no rendering
// and no I/O.
package combat

import "github.com/vovakirdan/surimi-survivors/internal/core"

// MaxHealth is the player's health ceiling and the default enemy health.
const MaxHealth = 100.0

// Kind identifies an enemy archetype.
type Kind int

const (
	// KindShark chases the player and bites on contact.
	KindShark Kind = iota
)

// String returns the sprite name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShark:
		return "shark"
	default:
		return "unknown"
	}
}

// Player is the single player-controlled entity.
type Player struct {
	Pos    core.Vec2
	Size   core.Vec2
	Vel    core.Vec2 // Movement per tick while a direction key is held
	Facing core.Vec2 // Unit direction projectiles are fired in
	Health float64
}

// NewPlayer creates a player at pos with full health facing right.
func NewPlayer(pos, size core.Vec2, speed float64) Player {
	return Player{
		Pos:    pos,
		Size:   size,
		Vel:    core.V(speed, speed),
		Facing: core.V(1, 0),
		Health: MaxHealth,
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Center returns the center of the player's rectangle.
func (p Player) Center() core.Vec2 {
	return p.Rect().Center()
}

// Move displaces the player by dir scaled per axis by Vel and updates Facing.
// A zero dir leaves the player and its facing untouched.
func (p *Player) Move(dir core.Vec2) {
	if dir.IsZero() {
		return
	}
	p.Pos = p.Pos.Add(core.V(dir.X*p.Vel.X, dir.Y*p.Vel.Y))
	p.Facing = dir.Normalize()
}

// Enemy is a hostile entity. Dead enemies stay flagged until pruned.
type Enemy struct {
	Kind   Kind
	Pos    core.Vec2
	Size   core.Vec2
	Vel    core.Vec2
	Health float64
	Damage float64 // Health removed from the player per tick of contact
	Alive  bool
}

// Rect returns the enemy's collision rectangle.
func (e Enemy) Rect() core.Rect {
	return core.RectAt(e.Pos, e.Size)
}

// Projectile travels by Vel every tick from where it was fired.
type Projectile struct {
	Pos    core.Vec2
	Size   core.Vec2
	Vel    core.Vec2
	Origin core.Vec2 // Position at fire time, used by the range policy
	Age    int       // Ticks since fired
	Spent  bool      // Hit something and is due for removal
}

// Rect returns the projectile's collision rectangle.
func (p Projectile) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Wall is a static obstacle. Only solid walls block movement.
type Wall struct {
	Pos   core.Vec2
	Size  core.Vec2
	Solid bool
}

// Rect returns the wall's rectangle.
func (w Wall) Rect() core.Rect {
	return core.RectAt(w.Pos, w.Size)
}
