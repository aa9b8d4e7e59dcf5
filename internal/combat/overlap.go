package combat

import (
	"fmt"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// OverlapFunc decides whether a moving source rectangle touches a target.
type OverlapFunc func(source, target core.Rect) bool

// Exact is the separating-axis rectangle test. It is symmetric.
func Exact(source, target core.Rect) bool {
	return source.Intersects(target)
}

// Corners reports a hit only when a corner of source lies strictly inside
// target. It misses pass-through and containment overlaps.
func Corners(source, target core.Rect) bool {
	return source.CornerInside(target)
}

// Overlap mode names accepted by ParseOverlap.
const (
	OverlapExact   = "exact"
	OverlapCorners = "corners"
)

// ParseOverlap resolves a configured overlap mode. Empty selects Exact.
func ParseOverlap(mode string) (OverlapFunc, error) {
	switch mode {
	case "", OverlapExact:
		return Exact, nil
	case OverlapCorners:
		return Corners, nil
	default:
		return nil, fmt.Errorf("combat: unknown overlap mode %q", mode)
	}
}
