package spatial_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/surimi-survivors/internal/core"
	"github.com/vovakirdan/surimi-survivors/internal/spatial"
)

func TestLinearReturnsEverything(t *testing.T) {
	idx := spatial.NewLinear()
	idx.Insert(3, core.NewRect(0, 0, 1, 1))
	idx.Insert(1, core.NewRect(100, 100, 1, 1))
	idx.Insert(3, core.NewRect(0, 0, 1, 1))

	got := idx.Query(core.NewRect(0, 0, 1, 1), nil)
	assert.Equal(t, []int{1, 3}, got)

	idx.Clear()
	assert.Empty(t, idx.Query(core.NewRect(0, 0, 1, 1), nil))
}

func TestGridQueryFindsOverlaps(t *testing.T) {
	g := spatial.NewGrid(4)
	g.Insert(0, core.NewRect(0, 0, 2, 2))
	g.Insert(1, core.NewRect(10, 10, 2, 2))
	g.Insert(2, core.NewRect(-6, -6, 3, 3))
	g.Insert(3, core.NewRect(3, 3, 6, 6)) // spans several cells

	got := g.Query(core.NewRect(1, 1, 1, 1), nil)
	assert.Contains(t, got, 0)
	assert.NotContains(t, got, 1)
	assert.NotContains(t, got, 2)

	got = g.Query(core.NewRect(-5, -5, 1, 1), nil)
	assert.Contains(t, got, 2)

	got = g.Query(core.NewRect(8, 8, 1, 1), nil)
	assert.Contains(t, got, 3)
}

func TestGridQueryIsSortedAndUnique(t *testing.T) {
	g := spatial.NewGrid(2)
	g.Insert(5, core.NewRect(0, 0, 10, 10))
	g.Insert(2, core.NewRect(1, 1, 10, 10))
	g.Insert(9, core.NewRect(2, 2, 1, 1))

	got := g.Query(core.NewRect(0, 0, 10, 10), []int{42})
	require.Equal(t, 42, got[0], "existing dst entries are preserved")
	assert.Equal(t, []int{2, 5, 9}, got[1:])
}

func TestGridOversizeBodies(t *testing.T) {
	g := spatial.NewGrid(1)
	g.Insert(0, core.NewRect(0, 0, 1000, 1000))
	g.Insert(1, core.NewRect(math.NaN(), 0, 1, 1))
	g.Insert(2, core.NewRect(5000, 5000, 1, 1))

	got := g.Query(core.NewRect(-500, -500, 1, 1), nil)
	assert.Equal(t, []int{0, 1}, got)

	// Oversize queries see everything.
	got = g.Query(core.NewRect(0, 0, 10000, 10000), nil)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestGridMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := spatial.NewGrid(spatial.DefaultCellSize)

	rects := make([]core.Rect, 300)
	for i := range rects {
		rects[i] = core.NewRect(rng.Float64()*400-200, rng.Float64()*400-200, 1+rng.Float64()*6, 1+rng.Float64()*3)
		g.Insert(i, rects[i])
	}

	for q := 0; q < 200; q++ {
		query := core.NewRect(rng.Float64()*400-200, rng.Float64()*400-200, 1+rng.Float64()*4, 1+rng.Float64()*4)
		candidates := g.Query(query, nil)

		for i, r := range rects {
			if r.Intersects(query) {
				assert.Contains(t, candidates, i, "query %v missed rect %d %v", query, i, r)
			}
		}
	}
}

func TestGridClear(t *testing.T) {
	g := spatial.NewGrid(0)
	assert.Equal(t, spatial.DefaultCellSize, g.CellSize())

	g.Insert(1, core.NewRect(0, 0, 1, 1))
	g.Clear()
	assert.Empty(t, g.Query(core.NewRect(0, 0, 1, 1), nil))
}
