package snake

import (
	"fmt"
	"slices"
	"sort"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Pattern identifiers.
const (
	PatternFree         = "free"
	PatternHBars2       = "hbars2"
	PatternHBars3       = "hbars3"
	PatternHBar         = "hbar"
	PatternVBar         = "vbar"
	PatternVBars2       = "vbars2"
	PatternVBars3       = "vbars3"
	PatternZigzag       = "zigzag"
	PatternFramedCross  = "framed-cross"
	PatternTriangle     = "triangle"
	PatternOrb          = "orb"
	PatternOrbs         = "orbs"
	PatternBox          = "box"
	PatternCorners      = "corners"
	PatternSpikes       = "spikes"
	PatternMaze         = "maze"
	PatternWedgesIn     = "wedges-in"
	PatternWedgesOut    = "wedges-out"
	PatternRings        = "rings"
	PatternCage         = "cage"
	PatternFrame        = "frame"
	PatternOrbWedges    = "orb-wedges"
	PatternWedgesCenter = "wedges-center"
	PatternCross        = "cross"
	PatternStuds        = "studs"
)

// Width of the opening left in the middle of every bar.
const barGap = 4

// Pattern is a named geometric rule producing a fixed set of blocked cells.
type Pattern struct {
	ID          string
	Description string
	build       func(c *canvas)
}

var patterns = map[string]Pattern{}

func addPattern(id, desc string, build func(c *canvas)) {
	patterns[id] = Pattern{ID: id, Description: desc, build: build}
}

// levelTable assigns one pattern per level, index 0 being level 1.
var levelTable = []string{
	PatternFree,
	PatternHBars2,
	PatternHBars3,
	PatternVBars2,
	PatternVBars3,
	PatternZigzag,
	PatternFramedCross,
	PatternOrb,
	PatternBox,
	PatternCorners,
	PatternSpikes,
	PatternMaze,
	PatternWedgesIn,
	PatternWedgesOut,
	PatternRings,
	PatternCage,
	PatternFrame,
	PatternOrbWedges,
	PatternWedgesCenter,
	PatternCross,
	PatternStuds,
}

// LevelCount returns the number of levels with an authored pattern.
func LevelCount() int {
	return len(levelTable)
}

// PatternForLevel returns the pattern ID of a 1-based level. Levels outside
// the table get the free pattern.
func PatternForLevel(level int) string {
	if level < 1 || level > len(levelTable) {
		return PatternFree
	}
	return levelTable[level-1]
}

// LookupPattern returns the pattern registered under id.
func LookupPattern(id string) (Pattern, bool) {
	p, ok := patterns[id]
	return p, ok
}

// Patterns returns every known pattern sorted by ID.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Generate returns the obstacle field of a level. It is pure: the same grid
// and level always produce the same set.
func Generate(grid Grid, level int) ObstacleSet {
	obs, _ := GeneratePattern(grid, PatternForLevel(level))
	return obs
}

// GeneratePattern builds the named pattern on grid. Every pattern leaves the
// start row free from the grid center to the right border, so a fresh snake
// always has room to move.
func GeneratePattern(grid Grid, id string) (ObstacleSet, error) {
	p, ok := patterns[id]
	if !ok {
		return ObstacleSet{}, fmt.Errorf("snake: unknown pattern %q", id)
	}

	c := newCanvas(grid)
	p.build(c)

	start := grid.Center()
	for x := start.X; x < grid.Cols; x++ {
		c.cells.Remove(core.Pt(x, start.Y))
	}
	return newObstacleSet(c.cells), nil
}

// ObstacleSet is an immutable set of blocked cells.
type ObstacleSet struct {
	cells CellSet
}

func newObstacleSet(cells CellSet) ObstacleSet {
	return ObstacleSet{cells: cells}
}

// Has reports whether p is blocked.
func (o ObstacleSet) Has(p core.Point) bool {
	return o.cells.Has(p)
}

// Len returns the number of blocked cells.
func (o ObstacleSet) Len() int {
	return o.cells.Len()
}

// Points returns the blocked cells in row-major order.
func (o ObstacleSet) Points() []core.Point {
	out := make([]core.Point, 0, o.Len())
	o.cells.Each(func(p core.Point) { out = append(out, p) })
	slices.SortFunc(out, func(a, b core.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Cells returns the set for occupancy checks. Callers must not modify it.
func (o ObstacleSet) Cells() CellSet {
	return o.cells
}

// Without returns a new set with pts removed. The receiver is unchanged.
func (o ObstacleSet) Without(pts ...core.Point) ObstacleSet {
	next := NewCellSet()
	o.cells.Each(next.Put)
	for _, p := range pts {
		next.Remove(p)
	}
	return newObstacleSet(next)
}

// canvas collects blocked cells, clipping anything outside the grid.
type canvas struct {
	grid   Grid
	cells  CellSet
	cx, cy int
}

func newCanvas(g Grid) *canvas {
	c := g.Center()
	return &canvas{grid: g, cells: NewCellSet(), cx: c.X, cy: c.Y}
}

func (c *canvas) set(x, y int) {
	p := core.Pt(x, y)
	if c.grid.InBounds(p) {
		c.cells.Put(p)
	}
}

func (c *canvas) clear(x, y int) {
	c.cells.Remove(core.Pt(x, y))
}

// margin is the distance kept between long bars and the border.
func (c *canvas) margin() int {
	return core.Clamp(min(c.grid.Cols, c.grid.Rows)/8, 2, 5)
}

// hbar draws a horizontal bar on row y between the margins, with a gap
// of barGap cells centered on the grid.
func (c *canvas) hbar(y int) {
	m := c.margin()
	for x := m; x < c.grid.Cols-m; x++ {
		if x >= c.cx-barGap/2 && x < c.cx+barGap/2 {
			continue
		}
		c.set(x, y)
	}
}

// vbar draws a vertical bar on column x between the margins, with a
// centered gap.
func (c *canvas) vbar(x int) {
	m := c.margin()
	for y := m; y < c.grid.Rows-m; y++ {
		if y >= c.cy-barGap/2 && y < c.cy+barGap/2 {
			continue
		}
		c.set(x, y)
	}
}

func (c *canvas) hline(x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		c.set(x, y)
	}
}

func (c *canvas) vline(x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		c.set(x, y)
	}
}

func (c *canvas) rect(x0, y0, x1, y1 int) {
	c.hline(x0, x1, y0)
	c.hline(x0, x1, y1)
	c.vline(x0, y0, y1)
	c.vline(x1, y0, y1)
}

func (c *canvas) disc(cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				c.set(x, y)
			}
		}
	}
}

// triangle draws an upward triangle of the given height whose apex is at
// (ax, ay), filling every other column per row.
func (c *canvas) triangle(ax, ay, height int) {
	for i := 0; i < height; i++ {
		for j := 0; j <= i; j++ {
			c.set(ax-i+j*2, ay+i)
		}
	}
}

// wedge draws a right triangle with legs of size cells anchored at (x, y).
// sx and sy point away from the anchor. An inward wedge is widest along the
// far row, an outward one is widest along the anchor row.
func (c *canvas) wedge(x, y, sx, sy, size int, inward bool) {
	for i := 0; i < size; i++ {
		n := i
		if !inward {
			n = size - 1 - i
		}
		for j := 0; j <= n; j++ {
			c.set(x+j*sx, y+i*sy)
		}
	}
}

const wedgeSize = 3

func (c *canvas) cornerWedges(inward bool) {
	m := c.margin()
	right, bottom := c.grid.Cols-1-m, c.grid.Rows-1-m
	c.wedge(m, m, 1, 1, wedgeSize, inward)
	c.wedge(right, m, -1, 1, wedgeSize, inward)
	c.wedge(m, bottom, 1, -1, wedgeSize, inward)
	c.wedge(right, bottom, -1, -1, wedgeSize, inward)
}

func (c *canvas) orbRadius() int {
	return core.Clamp(min(c.grid.Cols, c.grid.Rows)/6, 2, 4)
}

func init() {
	addPattern(PatternFree, "No obstacles", func(*canvas) {})

	addPattern(PatternHBars2, "Two horizontal bars", func(c *canvas) {
		c.hbar(c.grid.Rows / 3)
		c.hbar(c.grid.Rows * 2 / 3)
	})

	addPattern(PatternHBars3, "Three horizontal bars", func(c *canvas) {
		c.hbar(c.grid.Rows / 4)
		c.hbar(c.grid.Rows / 2)
		c.hbar(c.grid.Rows * 3 / 4)
	})

	addPattern(PatternHBar, "One horizontal bar", func(c *canvas) {
		c.hbar(c.cy)
	})

	addPattern(PatternVBar, "One vertical bar", func(c *canvas) {
		c.vbar(c.cx)
	})

	addPattern(PatternVBars2, "Two vertical bars", func(c *canvas) {
		c.vbar(c.grid.Cols / 3)
		c.vbar(c.grid.Cols * 2 / 3)
	})

	addPattern(PatternVBars3, "Three vertical bars", func(c *canvas) {
		c.vbar(c.grid.Cols / 4)
		c.vbar(c.grid.Cols / 2)
		c.vbar(c.grid.Cols * 3 / 4)
	})

	// 2-cell dashes on rows 4 apart, every other row shifted by 3 columns.
	addPattern(PatternZigzag, "Staggered short dashes", func(c *canvas) {
		m := c.margin()
		for k, y := 0, m; y < c.grid.Rows-m; k, y = k+1, y+4 {
			offset := 0
			if k%2 == 1 {
				offset = 3
			}
			for x := m + offset; x+1 < c.grid.Cols-m; x += 6 {
				c.set(x, y)
				c.set(x+1, y)
			}
		}
	})

	addPattern(PatternFramedCross, "Inset frame around a centered cross", func(c *canvas) {
		m := c.margin()
		x1, y1 := c.grid.Cols-1-m, c.grid.Rows-1-m
		c.rect(m, m, x1, y1)
		// Arms stop short of the frame so the quadrants stay connected.
		c.hline(m+3, x1-3, c.cy)
		c.vline(c.cx, m+3, y1-3)
		for y := c.cy - 1; y <= c.cy+1; y++ {
			for x := c.cx - 1; x <= c.cx+1; x++ {
				c.clear(x, y)
			}
		}
	})

	addPattern(PatternTriangle, "Centered triangle", func(c *canvas) {
		c.triangle(c.cx, c.cy-2, 5)
	})

	addPattern(PatternOrb, "Centered disc", func(c *canvas) {
		c.disc(c.cx, c.cy, c.orbRadius())
	})

	addPattern(PatternOrbs, "Three small discs", func(c *canvas) {
		for _, dx := range []int{-6, 0, 6} {
			c.disc(c.cx+dx, c.cy, 2)
		}
	})

	addPattern(PatternBox, "Hollow centered square", func(c *canvas) {
		s := core.Clamp(min(c.grid.Cols, c.grid.Rows)/4, 3, 5)
		c.rect(c.cx-s, c.cy-s, c.cx+s, c.cy+s)
	})

	addPattern(PatternCorners, "Four small corner blocks", func(c *canvas) {
		const off, size = 3, 2
		for _, x0 := range []int{off, c.grid.Cols - off - size} {
			for _, y0 := range []int{off, c.grid.Rows - off - size} {
				for y := y0; y < y0+size; y++ {
					for x := x0; x < x0+size; x++ {
						c.set(x, y)
					}
				}
			}
		}
	})

	addPattern(PatternSpikes, "Three small triangles", func(c *canvas) {
		for _, dx := range []int{-5, 0, 5} {
			c.triangle(c.cx+dx, c.cy-4, 3)
		}
	})

	// Horizontal dashes every 4 rows fill alternating 6-column bands;
	// vertical dashes every 6 columns sit on the rows in between.
	addPattern(PatternMaze, "Loose lattice of dashes", func(c *canvas) {
		cols, rows := c.grid.Cols, c.grid.Rows
		for k, y := 0, 2; y < rows-2; k, y = k+1, y+4 {
			for x := 1; x < cols-1; x++ {
				if ((x-1)/6)%2 == k%2 {
					c.set(x, y)
				}
			}
		}
		for x := 4; x < cols-1; x += 6 {
			for y := 4; y+1 < rows-2; y += 4 {
				c.set(x, y)
				c.set(x, y+1)
			}
		}
	})

	addPattern(PatternWedgesIn, "Horizontal bar with inward corner wedges", func(c *canvas) {
		c.hbar(c.cy)
		c.cornerWedges(true)
	})

	addPattern(PatternWedgesOut, "Vertical bar with outward corner wedges", func(c *canvas) {
		c.vbar(c.cx)
		c.cornerWedges(false)
	})

	// Rings inset 4 cells apart; the gap moves clockwise from ring to ring.
	addPattern(PatternRings, "Concentric rings with alternating gaps", func(c *canvas) {
		cols, rows := c.grid.Cols, c.grid.Rows
		for k := 0; k < 4; k++ {
			in := 2 + 4*k
			x0, y0, x1, y1 := in, in, cols-1-in, rows-1-in
			if x1-x0 < 3 || y1-y0 < 3 {
				break
			}
			c.rect(x0, y0, x1, y1)
			midX, midY := (x0+x1)/2, (y0+y1)/2
			for d := -barGap / 2; d < barGap/2; d++ {
				switch k % 4 {
				case 0:
					c.clear(midX+d, y0)
				case 1:
					c.clear(x1, midY+d)
				case 2:
					c.clear(midX+d, y1)
				case 3:
					c.clear(x0, midY+d)
				}
			}
		}
	})

	addPattern(PatternCage, "Small square fenced by four bars", func(c *canvas) {
		c.rect(c.cx-1, c.cy-1, c.cx+1, c.cy+1)
		c.hline(c.cx-5, c.cx+5, c.cy-3)
		c.hline(c.cx-5, c.cx+5, c.cy+3)
		c.vline(c.cx-3, c.cy-5, c.cy+5)
		c.vline(c.cx+3, c.cy-5, c.cy+5)
	})

	addPattern(PatternFrame, "Centered frame of crossing bars", func(c *canvas) {
		c.hline(c.cx-7, c.cx+7, c.cy-5)
		c.hline(c.cx-7, c.cx+7, c.cy+5)
		c.vline(c.cx-5, c.cy-5, c.cy+5)
		c.vline(c.cx+5, c.cy-5, c.cy+5)
	})

	addPattern(PatternOrbWedges, "Small disc with inward corner wedges", func(c *canvas) {
		c.disc(c.cx, c.cy, 2)
		c.cornerWedges(true)
	})

	addPattern(PatternWedgesCenter, "Outward wedges around the center", func(c *canvas) {
		const d = 4
		c.wedge(c.cx-d, c.cy-d, 1, 1, wedgeSize, false)
		c.wedge(c.cx+d, c.cy-d, -1, 1, wedgeSize, false)
		c.wedge(c.cx-d, c.cy+d, 1, -1, wedgeSize, false)
		c.wedge(c.cx+d, c.cy+d, -1, -1, wedgeSize, false)
	})

	addPattern(PatternCross, "Centered cross", func(c *canvas) {
		c.hline(c.cx-5, c.cx+5, c.cy)
		c.vline(c.cx, c.cy-5, c.cy+5)
	})

	addPattern(PatternStuds, "Grid of nine short bars", func(c *canvas) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				x, y := c.cx-4+i*4, c.cy-4+j*4
				c.hline(x, x+2, y)
			}
		}
	})
}
