package geometry

import (
	"github.com/ctessum/geom"
)

// Rectangle returns the closed counter-clockwise ring of a w×h rectangle
// centered on center.
func Rectangle(w, h float64, center geom.Point) geom.Polygon {
	return RectangleFromCorners(
		geom.Point{X: center.X - w/2, Y: center.Y - h/2},
		geom.Point{X: center.X + w/2, Y: center.Y + h/2},
	)
}

// RectangleFromCorners returns the closed counter-clockwise ring spanning
// min and max.
func RectangleFromCorners(min, max geom.Point) geom.Polygon {
	return geom.Polygon{{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
		{X: min.X, Y: min.Y},
	}}
}

// Hexagon returns a flat-topped hexagon of width w and height h centered on
// center. Adjacent flat-topped hexagons tile when their centers are 0.75*w
// apart horizontally and h/2 apart vertically.
func Hexagon(w, h float64, center geom.Point) geom.Polygon {
	x, y := center.X, center.Y
	return geom.Polygon{{
		{X: x - w/2, Y: y},
		{X: x - w/4, Y: y - h/2},
		{X: x + w/4, Y: y - h/2},
		{X: x + w/2, Y: y},
		{X: x + w/4, Y: y + h/2},
		{X: x - w/4, Y: y + h/2},
		{X: x - w/2, Y: y},
	}}
}

// HexagonPointy returns a pointy-topped hexagon (a flat-topped one rotated by
// 90 degrees) of width w and height h centered on center.
func HexagonPointy(w, h float64, center geom.Point) geom.Polygon {
	x, y := center.X, center.Y
	return geom.Polygon{{
		{X: x, Y: y - h/2},
		{X: x + w/2, Y: y - h/4},
		{X: x + w/2, Y: y + h/4},
		{X: x, Y: y + h/2},
		{X: x - w/2, Y: y + h/4},
		{X: x - w/2, Y: y - h/4},
		{X: x, Y: y - h/2},
	}}
}

// Translate returns a deep copy of p shifted by (dx, dy).
func Translate(p geom.Polygon, dx, dy float64) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		r := make(geom.Path, len(ring))
		for j, pt := range ring {
			r[j] = geom.Point{X: pt.X + dx, Y: pt.Y + dy}
		}
		out[i] = r
	}
	return out
}

// IsRectangle reports whether p is a single axis-aligned rectangle.
func IsRectangle(p geom.Polygon) bool {
	if len(p) != 1 {
		return false
	}
	ring := p[0]
	n := len(ring)
	if n > 0 && ring[0] == ring[n-1] {
		n--
	}
	if n != 4 {
		return false
	}
	b := p.Bounds()
	for _, pt := range ring[:n] {
		if (pt.X != b.Min.X && pt.X != b.Max.X) || (pt.Y != b.Min.Y && pt.Y != b.Max.Y) {
			return false
		}
	}
	w, h := b.Max.X-b.Min.X, b.Max.Y-b.Min.Y
	return w > 0 && h > 0 && closeTo(p.Area(), w*h)
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	if b < 0 {
		b = -b
	}
	return d <= 1e-9*(1+b)
}
