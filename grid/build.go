package grid

import (
	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/geometry"
	"github.com/katalvlaran/gridspace/neighborhood"
)

// coverTolerance is the relative area slack under which a footprint is
// considered to cover a cell.
const coverTolerance = 1e-9

func isRectangle(fp Footprint) bool {
	switch f := fp.(type) {
	case *geom.Bounds:
		return true
	case geom.Polygon:
		return geometry.IsRectangle(f)
	}
	polys := fp.Polygons()
	return len(polys) == 1 && geometry.IsRectangle(polys[0])
}

// overlap returns the area of cell ∩ fp and the largest polygon of it.
func overlap(fp Footprint, cell geom.Polygon) (float64, geom.Polygon) {
	isect := cell.Intersection(fp)
	if isect == nil {
		return 0, nil
	}
	area := isect.Area()
	if area == 0 {
		return 0, nil
	}
	var best geom.Polygon
	bestArea := -1.0
	for _, p := range isect.Polygons() {
		if a := p.Area(); a > bestArea {
			best, bestArea = p, a
		}
	}
	return area, best
}

// admit decides whether a cell with the given full shape is active and
// returns the clipped shape when it only partly overlaps the footprint.
func admit(fp Footprint, shape geom.Polygon, rect, partial bool) (active bool, clip geom.Polygon) {
	if rect {
		return true, nil
	}
	area, part := overlap(fp, shape)
	full := shape.Area()
	switch {
	case area >= full*(1-coverTolerance):
		return true, nil
	case partial && area > 0:
		return true, part
	}
	return false, nil
}

// buildSquare lays out cols×rows rectangles on the shared corner lattice.
func (g *Grid) buildSquare(fp Footprint, rect, partial bool) {
	g.cellW = g.width / float64(g.cols)
	g.cellH = g.height / float64(g.rows)
	if g.flyweight {
		g.template = geometry.NewTemplate(geometry.Rectangle(g.cellW, g.cellH, geom.Point{}))
	}
	for row := 0; row < g.rows; row++ {
		y0 := g.origin.Y + float64(row)*g.cellH
		y1 := g.origin.Y + float64(row+1)*g.cellH
		for col := 0; col < g.cols; col++ {
			x0 := g.origin.X + float64(col)*g.cellW
			x1 := g.origin.X + float64(col+1)*g.cellW
			shape := geometry.RectangleFromCorners(geom.Point{X: x0, Y: y0}, geom.Point{X: x1, Y: y1})
			center := geom.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
			g.admitCell(fp, col, row, shape, center, rect, partial)
		}
	}
}

// buildHex lays out two interleaved families of hexagons offset by half a
// cell: odd columns shifted up (horizontal) or odd rows shifted right
// (vertical).
func (g *Grid) buildHex(fp Footprint, rect, partial bool) {
	hexagon := geometry.HexagonPointy
	if g.horizontal() {
		g.cellW = g.width / (float64(g.cols)*0.75 + 0.25)
		g.cellH = g.height / (float64(g.rows) + 0.5)
		hexagon = geometry.Hexagon
	} else {
		g.cellW = g.width / (float64(g.cols) + 0.5)
		g.cellH = g.height / (float64(g.rows)*0.75 + 0.25)
	}
	if g.flyweight {
		g.template = geometry.NewTemplate(hexagon(g.cellW, g.cellH, geom.Point{}))
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			center := g.hexCenter(col, row)
			g.admitCell(fp, col, row, hexagon(g.cellW, g.cellH, center), center, rect, partial)
		}
	}
}

func (g *Grid) admitCell(fp Footprint, col, row int, shape geom.Polygon, center geom.Point, rect, partial bool) {
	active, clip := admit(fp, shape, rect, partial)
	if !active {
		return
	}
	c := &Cell{ID: row*g.cols + col, Col: col, Row: row}
	switch {
	case clip != nil:
		c.Geometry = geometry.NewOwned(clip, center)
	case g.flyweight:
		c.Geometry = geometry.NewTemplated(g.template, center)
	default:
		c.Geometry = geometry.NewOwned(shape, center)
	}
	g.place(c)
}

func (g *Grid) hexCenter(col, row int) geom.Point {
	if g.horizontal() {
		x := g.origin.X + g.cellW/2 + float64(col)*g.cellW*0.75
		y := g.origin.Y + g.cellH/2 + float64(row)*g.cellH
		if col%2 == 1 {
			y += g.cellH / 2
		}
		return geom.Point{X: x, Y: y}
	}
	x := g.origin.X + g.cellW/2 + float64(col)*g.cellW
	if row%2 == 1 {
		x += g.cellW / 2
	}
	y := g.origin.Y + g.cellH/2 + float64(row)*g.cellH*0.75
	return geom.Point{X: x, Y: y}
}

func (g *Grid) horizontal() bool { return g.kind == neighborhood.HexHorizontal }
