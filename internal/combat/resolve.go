package combat

import "github.com/vovakirdan/surimi-survivors/internal/core"

// Resolve tests source against every target in slice order and invokes h
// for each overlap. Hits are non-exclusive: every overlapping target is hit.
// Dead targets are skipped, so a target is never hit again once its Alive
// flag is false. Returns the number of hits.
func Resolve(source core.Rect, targets []Enemy, overlap OverlapFunc, h HitHandler) int {
	hits := 0
	for i := range targets {
		if hitTarget(source, &targets[i], overlap, h) {
			hits++
		}
	}
	return hits
}

// ResolveCandidates is Resolve restricted to the given target indices, as
// produced by a broad-phase query. Candidates must be sorted ascending so
// hits happen in slice order; out-of-range indices are ignored.
func ResolveCandidates(source core.Rect, targets []Enemy, candidates []int, overlap OverlapFunc, h HitHandler) int {
	hits := 0
	for _, i := range candidates {
		if i < 0 || i >= len(targets) {
			continue
		}
		if hitTarget(source, &targets[i], overlap, h) {
			hits++
		}
	}
	return hits
}

func hitTarget(source core.Rect, t *Enemy, overlap OverlapFunc, h HitHandler) bool {
	if !t.Alive {
		return false
	}
	if !overlap(source, t.Rect()) {
		return false
	}
	h.Hit(t)
	return true
}

// ContactDamage sums the Damage of every live enemy overlapping the player.
func ContactDamage(player core.Rect, enemies []Enemy, overlap OverlapFunc) float64 {
	total := 0.0
	Resolve(player, enemies, overlap, HitFunc(func(e *Enemy) {
		total += e.Damage
	}))
	return total
}

// PruneDead removes dead enemies in place, preserving order.
func PruneDead(enemies []Enemy) []Enemy {
	live := enemies[:0]
	for _, e := range enemies {
		if e.Alive {
			live = append(live, e)
		}
	}
	// Zero the tail so the backing array holds no stale entries.
	for i := len(live); i < len(enemies); i++ {
		enemies[i] = Enemy{}
	}
	return live
}

// CountAlive returns the number of live enemies.
func CountAlive(enemies []Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
