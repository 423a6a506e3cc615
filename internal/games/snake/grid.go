package snake

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid is the fixed-size discrete coordinate space of one session.
// It holds no occupancy state of its own.
type Grid struct {
	Cols, Rows int
}

// NewGrid creates a grid of cols x rows cells.
func NewGrid(cols, rows int) Grid {
	return Grid{Cols: cols, Rows: rows}
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// Index packs p into x + y*cols. p must be in bounds.
func (g Grid) Index(p core.Point) int {
	return p.X + p.Y*g.Cols
}

// At unpacks an index produced by Index.
func (g Grid) At(i int) core.Point {
	return core.Pt(i%g.Cols, i/g.Cols)
}

// Center returns the start cell of a fresh snake.
func (g Grid) Center() core.Point {
	return core.Pt(g.Cols/2, g.Rows/2)
}

// Each calls fn for every cell in row-major order.
func (g Grid) Each(fn func(p core.Point)) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			fn(core.Pt(x, y))
		}
	}
}

// CellSet is a set of grid cells with O(1) membership.
type CellSet struct {
	set mapset.Set[core.Point]
}

// NewCellSet returns a set holding pts.
func NewCellSet(pts ...core.Point) CellSet {
	return CellSet{set: mapset.Of(pts...)}
}

// Has reports whether p is in the set.
func (s CellSet) Has(p core.Point) bool {
	return s.set.Has(p)
}

// Put adds p.
func (s CellSet) Put(p core.Point) {
	s.set.Put(p)
}

// Remove deletes p.
func (s CellSet) Remove(p core.Point) {
	s.set.Remove(p)
}

// Len returns the number of cells.
func (s CellSet) Len() int {
	return s.set.Size()
}

// Each calls fn for every cell in unspecified order.
func (s CellSet) Each(fn func(p core.Point)) {
	s.set.Each(fn)
}

// Free reports whether p is inside g and in none of the given sets.
func (g Grid) Free(p core.Point, occupied ...CellSet) bool {
	if !g.InBounds(p) {
		return false
	}
	for _, s := range occupied {
		if s.Has(p) {
			return false
		}
	}
	return true
}
