package combat

import "github.com/vovakirdan/surimi-survivors/internal/core"

// DespawnPolicy bounds projectile lifetime. Zero fields disable that rule.
type DespawnPolicy struct {
	MaxAge       int     // Ticks before a projectile expires
	MaxRange     float64 // Distance from Origin before a projectile expires
	DespawnOnHit bool    // Expire after the first tick with at least one hit
}

// Fire creates a projectile centered on the player moving along its facing.
func Fire(p Player, size core.Vec2, speed float64) Projectile {
	dir := p.Facing.Normalize()
	if dir.IsZero() {
		dir = core.V(1, 0)
	}
	pos := p.Center().Sub(size.Scale(0.5))
	return Projectile{
		Pos:    pos,
		Size:   size,
		Vel:    dir.Scale(speed),
		Origin: pos,
	}
}

// Advance moves the projectile by its velocity for one tick.
func Advance(p Projectile) Projectile {
	p.Pos = p.Pos.Add(p.Vel)
	p.Age++
	return p
}

// AdvanceAll advances every projectile in place.
func AdvanceAll(ps []Projectile) {
	for i := range ps {
		ps[i] = Advance(ps[i])
	}
}

// Expired reports whether the policy removes the projectile.
func Expired(p Projectile, policy DespawnPolicy) bool {
	if p.Spent && policy.DespawnOnHit {
		return true
	}
	if policy.MaxAge > 0 && p.Age >= policy.MaxAge {
		return true
	}
	if policy.MaxRange > 0 && p.Pos.Sub(p.Origin).Len() > policy.MaxRange {
		return true
	}
	return false
}

// Prune removes expired projectiles in place, preserving order.
func Prune(ps []Projectile, policy DespawnPolicy) []Projectile {
	live := ps[:0]
	for _, p := range ps {
		if !Expired(p, policy) {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(ps); i++ {
		ps[i] = Projectile{}
	}
	return live
}
