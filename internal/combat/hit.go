package combat

import (
	"math"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// HitHandler is invoked once per detected overlap and mutates the target.
type HitHandler interface {
	Hit(e *Enemy)
}

// HitFunc adapts a plain function to HitHandler.
type HitFunc func(e *Enemy)

// Hit calls f(e).
func (f HitFunc) Hit(e *Enemy) {
	f(e)
}

// Kill marks the target dead regardless of its health.
func Kill() HitHandler {
	return HitFunc(func(e *Enemy) {
		e.Alive = false
	})
}

// Damage removes amount health and kills the target when it reaches zero.
// Enemy health has no ceiling, only the floor at zero.
func Damage(amount float64) HitHandler {
	return HitFunc(func(e *Enemy) {
		e.Health = math.Max(e.Health-amount, 0)
		if e.Health <= 0 {
			e.Alive = false
		}
	})
}

// Knockback pushes the target dist units along dir.
func Knockback(dir core.Vec2, dist float64) HitHandler {
	step := dir.Normalize().Scale(dist)
	return HitFunc(func(e *Enemy) {
		e.Pos = e.Pos.Add(step)
	})
}

// Chain runs handlers in order. Nil handlers are skipped.
func Chain(handlers ...HitHandler) HitHandler {
	return HitFunc(func(e *Enemy) {
		for _, h := range handlers {
			if h != nil {
				h.Hit(e)
			}
		}
	})
}

// KillCounter wraps a handler and counts the hits that turned a live
// target dead.
type KillCounter struct {
	Next  HitHandler
	Kills int
}

// Hit forwards to Next and counts the kill if the target died.
func (k *KillCounter) Hit(e *Enemy) {
	wasAlive := e.Alive
	k.Next.Hit(e)
	if wasAlive && !e.Alive {
		k.Kills++
	}
}
