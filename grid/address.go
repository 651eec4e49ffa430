package grid

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/geometry"
)

// CellAt returns the active cell containing p.
//
// Square grids use floor division; a point exactly on the far (max X or
// max Y) edge is pulled back by Precision() so it lands in the last
// column or row. Torus grids wrap, bounded grids reject out-of-range points.
//
// Hex grids start from a closed-form estimate and then test the estimated
// cell and its radius-1 ring for containment, because staggered rows make
// the estimate land one ring off near cell boundaries.
//
// Complexity: O(1) square, O(d) hex.
func (g *Grid) CellAt(p geom.Point) (int, bool) {
	g.mustLive()
	if g.kind.Hexagonal() {
		return g.hexCellAt(p)
	}
	x, y := p.X-g.origin.X, p.Y-g.origin.Y
	if p.X == g.max.X {
		x -= g.precision
	}
	if p.Y == g.max.Y {
		y -= g.precision
	}
	col := int(math.Floor(x / g.cellW))
	row := int(math.Floor(y / g.cellH))
	return g.IndexAt(col, row)
}

func (g *Grid) hexCellAt(p geom.Point) (int, bool) {
	x, y := p.X-g.origin.X, p.Y-g.origin.Y
	if x < -g.precision || y < -g.precision || x > g.width+g.precision || y > g.height+g.precision {
		return -1, false
	}
	var col, row int
	if g.horizontal() {
		col = clamp(int(math.Floor(x/(g.cellW*0.75))), g.cols)
		if col%2 == 0 {
			row = int(math.Floor(y / g.cellH))
		} else {
			row = int(math.Floor((y - g.cellH/2) / g.cellH))
		}
		row = clamp(row, g.rows)
	} else {
		row = clamp(int(math.Floor(y/(g.cellH*0.75))), g.rows)
		if row%2 == 0 {
			col = int(math.Floor(x / g.cellW))
		} else {
			col = int(math.Floor((x - g.cellW/2) / g.cellW))
		}
		col = clamp(col, g.cols)
	}

	approx := row*g.cols + col
	if c := g.cells[approx]; c != nil && c.Geometry.Contains(p) {
		return approx, true
	}
	ring := g.strategy.RawNeighborsIncluding(approx, 1)
	for _, n := range ring {
		if c := g.cells[n]; c != nil && c.Geometry.Contains(p) {
			return g.IndexAt(c.Col, c.Row)
		}
	}
	// Boundary points can miss every exact containment test by a rounding
	// error; accept the nearest candidate within the precision.
	best, bestDist := -1, g.precision
	for _, n := range ring {
		c := g.cells[n]
		if c == nil {
			continue
		}
		if d := geometry.PointDistance(c.Geometry, p); d <= bestDist {
			best, bestDist = n, d
		}
	}
	if best < 0 {
		return -1, false
	}
	c := g.cells[best]
	return g.IndexAt(c.Col, c.Row)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// IndexAt maps (col,row) to an active cell id: row*cols + col.
// Square torus grids wrap both axes; otherwise out-of-range coordinates and
// inactive cells are absent.
// Complexity: O(1).
func (g *Grid) IndexAt(col, row int) (int, bool) {
	g.mustLive()
	if g.torus {
		col = ((col % g.cols) + g.cols) % g.cols
		row = ((row % g.rows) + g.rows) % g.rows
	} else if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return -1, false
	}
	id := row*g.cols + col
	if g.cells[id] == nil {
		return -1, false
	}
	return id, true
}

// Coordinate converts a row-major id back to (col,row).
// Complexity: O(1).
func (g *Grid) Coordinate(id int) (col, row int) {
	g.mustLive()
	return id % g.cols, id / g.cols
}

// Distance returns the Euclidean distance between the centers of a and b,
// taking the shorter way around on a torus.
// Complexity: O(1).
func (g *Grid) Distance(a, b int) float64 {
	g.mustLive()
	pa, pb := g.cells[a].Geometry.Center(), g.cells[b].Geometry.Center()
	dx, dy := math.Abs(pa.X-pb.X), math.Abs(pa.Y-pb.Y)
	if g.torus {
		dx = math.Min(dx, g.width-dx)
		dy = math.Min(dy, g.height-dy)
	}
	return math.Hypot(dx, dy)
}
