package spatial

import (
	"math"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// DefaultCellSize is the grid cell edge in world units.
const DefaultCellSize = 8.0

// maxCellsPerAxis caps how many cells one rectangle may cover per axis.
// Larger rectangles are kept in the oversize list and returned by every query.
const maxCellsPerAxis = 64

// Grid is a uniform-cell broad phase. Each body is bucketed into every
// cell its rectangle covers; a query visits the cells its rectangle covers.
type Grid struct {
	cellSize float64
	cells    *intmap.Map[int64, []int]
	oversize []int
	all      []int
}

// NewGrid creates a grid with the given cell size. Non-positive sizes use
// DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    intmap.New[int64, []int](256),
	}
}

// CellSize returns the grid cell edge.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all bodies.
func (g *Grid) Clear() {
	g.cells.Clear()
	g.oversize = g.oversize[:0]
	g.all = g.all[:0]
}

// Insert buckets body id into the cells r covers.
func (g *Grid) Insert(id int, r core.Rect) {
	g.all = append(g.all, id)
	x0, y0, x1, y1, ok := g.span(r)
	if !ok {
		g.oversize = append(g.oversize, id)
		return
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			key := cellKey(cx, cy)
			ids, _ := g.cells.Get(key)
			g.cells.Put(key, append(ids, id))
		}
	}
}

// Query appends the IDs bucketed in the cells r covers, plus oversize bodies.
func (g *Grid) Query(r core.Rect, dst []int) []int {
	start := len(dst)
	dst = append(dst, g.oversize...)

	x0, y0, x1, y1, ok := g.span(r)
	if !ok {
		// Oversize query: every body is a candidate.
		dst = append(dst, g.all...)
		return sortUnique(dst, start)
	}

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if ids, found := g.cells.Get(cellKey(cx, cy)); found {
				dst = append(dst, ids...)
			}
		}
	}
	return sortUnique(dst, start)
}

// span returns the inclusive cell range covered by r. ok is false when r is
// not finite or covers more than maxCellsPerAxis cells on an axis.
func (g *Grid) span(r core.Rect) (x0, y0, x1, y1 int32, ok bool) {
	if !r.Pos().IsFinite() || !core.V(r.W, r.H).IsFinite() {
		return 0, 0, 0, 0, false
	}
	fx0 := math.Floor(r.X / g.cellSize)
	fy0 := math.Floor(r.Y / g.cellSize)
	fx1 := math.Floor(r.Right() / g.cellSize)
	fy1 := math.Floor(r.Bottom() / g.cellSize)
	if fx1-fx0 >= maxCellsPerAxis || fy1-fy0 >= maxCellsPerAxis {
		return 0, 0, 0, 0, false
	}
	if fx0 < math.MinInt32 || fy0 < math.MinInt32 || fx1 > math.MaxInt32 || fy1 > math.MaxInt32 {
		return 0, 0, 0, 0, false
	}
	return int32(fx0), int32(fy0), int32(fx1), int32(fy1), true
}

// cellKey packs signed cell coordinates into one map key.
func cellKey(cx, cy int32) int64 {
	return int64(cx)<<32 | int64(uint32(cy))
}
