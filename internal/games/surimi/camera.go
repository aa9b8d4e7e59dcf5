package surimi

import (
	"math"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// Camera maps world coordinates to screen cells, centered on a focus point.
type Camera struct {
	Focus core.Vec2
	W, H  int
}

// View returns the visible world rectangle.
func (c Camera) View() core.Rect {
	return core.NewRect(c.Focus.X-float64(c.W)/2, c.Focus.Y-float64(c.H)/2, float64(c.W), float64(c.H))
}

// ToScreen converts a world point to a screen cell.
func (c Camera) ToScreen(p core.Vec2) (x, y int) {
	v := c.View()
	return int(math.Floor(p.X - v.X)), int(math.Floor(p.Y - v.Y))
}

// Project converts a world rectangle to screen cells. Sizes round to at
// least one cell so small bodies stay visible.
func (c Camera) Project(r core.Rect) (x, y, w, h int) {
	x, y = c.ToScreen(r.Pos())
	w = core.Max(1, int(math.Round(r.W)))
	h = core.Max(1, int(math.Round(r.H)))
	return x, y, w, h
}

// Visible reports whether any part of r is on screen.
func (c Camera) Visible(r core.Rect) bool {
	return r.Intersects(c.View())
}
