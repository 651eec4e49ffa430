package grid

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/geometry"
	"github.com/katalvlaran/gridspace/neighborhood"
)

// ManhattanDistanceBetween returns the grid distance between the cells of
// two shapes: dx+dy under Von Neumann connectivity, max(dx,dy) otherwise,
// with the shorter way around on a torus.
//
// A shape resolves to the cell at its location when that cell covers it;
// otherwise to the cell containing its point nearest to the other shape.
// ok is false when a shape cannot be resolved to any cell.
func (g *Grid) ManhattanDistanceBetween(a, b geom.Geom) (int, bool) {
	g.mustLive()
	ca, okA := g.coveringCell(a)
	cb, okB := g.coveringCell(b)
	if !okA || !okB {
		pa, pb := geometry.NearestPoints(a, b)
		if !okA {
			ca, okA = g.CellAt(pa)
		}
		if !okB {
			cb, okB = g.CellAt(pb)
		}
		if !okA || !okB {
			return 0, false
		}
	}
	return g.stepDistance(ca, cb), true
}

func (g *Grid) coveringCell(s geom.Geom) (int, bool) {
	id, ok := g.CellAt(geometry.Location(s))
	if !ok || !geometry.Covers(g.cells[id].Geometry, s) {
		return -1, false
	}
	return id, true
}

func (g *Grid) stepDistance(a, b int) int {
	ac, ar := g.Coordinate(a)
	bc, br := g.Coordinate(b)
	dx, dy := abs(ac-bc), abs(ar-br)
	if g.torus {
		dx = min(dx, g.cols-dx)
		dy = min(dy, g.rows-dy)
	}
	if g.kind == neighborhood.VonNeumann {
		return dx + dy
	}
	return max(dx, dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CellsInEnvelope returns, in ascending order, the active cells whose shape
// intersects b, or with covered, whose bounding box lies inside b.
// Complexity: O(k) for k cells under the envelope.
func (g *Grid) CellsInEnvelope(b *geom.Bounds, covered bool) []int {
	g.mustLive()
	pitchX, pitchY := g.cellW, g.cellH
	switch g.kind {
	case neighborhood.HexHorizontal:
		pitchX = g.cellW * 0.75
	case neighborhood.HexVertical:
		pitchY = g.cellH * 0.75
	}
	c0 := clamp(int(math.Floor((b.Min.X-g.origin.X)/pitchX))-1, g.cols)
	c1 := clamp(int(math.Floor((b.Max.X-g.origin.X)/pitchX))+1, g.cols)
	r0 := clamp(int(math.Floor((b.Min.Y-g.origin.Y)/pitchY))-1, g.rows)
	r1 := clamp(int(math.Floor((b.Max.Y-g.origin.Y)/pitchY))+1, g.rows)

	var out []int
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c := g.cells[row*g.cols+col]
			if c == nil {
				continue
			}
			if covered {
				cb := c.Geometry.Bounds()
				if cb.Min.X >= b.Min.X && cb.Max.X <= b.Max.X && cb.Min.Y >= b.Min.Y && cb.Max.Y <= b.Max.Y {
					out = append(out, c.ID)
				}
			} else if geometry.Intersects(c.Geometry, b) {
				out = append(out, c.ID)
			}
		}
	}
	return out
}
