// Package spatial provides broad-phase lookup of axis-aligned bodies.
// An Index narrows the set of bodies that may overlap a query rectangle;
// the exact test is left to the caller.
package spatial

import (
	"sort"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// Index is a broad-phase structure over bodies identified by int IDs.
type Index interface {
	// Clear removes all bodies.
	Clear()

	// Insert registers body id with rectangle r. Re-inserting an ID adds
	// another entry; callers rebuild the index with Clear between frames.
	Insert(id int, r core.Rect)

	// Query appends to dst the IDs of all bodies that may overlap r, sorted
	// ascending without duplicates. Every body that overlaps r is included.
	Query(r core.Rect, dst []int) []int
}

// Linear is the brute-force index: every body is a candidate.
type Linear struct {
	ids []int
}

// NewLinear creates an empty linear index.
func NewLinear() *Linear {
	return &Linear{}
}

// Clear removes all bodies.
func (l *Linear) Clear() {
	l.ids = l.ids[:0]
}

// Insert registers a body.
func (l *Linear) Insert(id int, _ core.Rect) {
	l.ids = append(l.ids, id)
}

// Query returns every registered ID.
func (l *Linear) Query(_ core.Rect, dst []int) []int {
	start := len(dst)
	dst = append(dst, l.ids...)
	return sortUnique(dst, start)
}

// sortUnique sorts dst[start:] and drops duplicates in place.
func sortUnique(dst []int, start int) []int {
	tail := dst[start:]
	if len(tail) < 2 {
		return dst
	}
	sort.Ints(tail)
	n := 1
	for i := 1; i < len(tail); i++ {
		if tail[i] != tail[n-1] {
			tail[n] = tail[i]
			n++
		}
	}
	return dst[:start+n]
}
