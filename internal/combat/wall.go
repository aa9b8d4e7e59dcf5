package combat

import (
	"math"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// PushOut moves mover out of wall along the axis of least penetration and
// returns the corrected position. Non-overlapping rectangles are returned
// unchanged.
func PushOut(mover, wall core.Rect) core.Vec2 {
	if !mover.Intersects(wall) {
		return mover.Pos()
	}

	pushLeft := mover.Right() - wall.X  // move mover left by this much
	pushRight := wall.Right() - mover.X // move mover right by this much
	pushUp := mover.Bottom() - wall.Y   // move mover up by this much
	pushDown := wall.Bottom() - mover.Y // move mover down by this much

	dx := -pushLeft
	if pushRight < pushLeft {
		dx = pushRight
	}
	dy := -pushUp
	if pushDown < pushUp {
		dy = pushDown
	}

	if math.Abs(dx) < math.Abs(dy) {
		return core.V(mover.X+dx, mover.Y)
	}
	return core.V(mover.X, mover.Y+dy)
}

// BlockWalls resolves mover against every solid wall in order.
func BlockWalls(mover core.Rect, walls []Wall) core.Vec2 {
	for _, w := range walls {
		if !w.Solid {
			continue
		}
		p := PushOut(mover, w.Rect())
		mover.X, mover.Y = p.X, p.Y
	}
	return mover.Pos()
}
