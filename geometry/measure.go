package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

type segment struct{ a, b geom.Point }

// Location returns the reference point of an arbitrary shape: the point
// itself, or the center of its bounding box.
func Location(g geom.Geom) geom.Point {
	if p, ok := g.(geom.Point); ok {
		return p
	}
	b := g.Bounds()
	return geom.Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Covers reports whether every vertex of shape lies inside or on the
// boundary of g.
func Covers(g Geometry, shape geom.Geom) bool {
	pts := vertices(shape)
	if len(pts) == 0 {
		return false
	}
	for _, p := range pts {
		if !g.Contains(p) {
			return false
		}
	}
	return true
}

// Intersects reports whether g and shape share at least one point.
func Intersects(g Geometry, shape geom.Geom) bool {
	if !g.Bounds().Overlaps(shape.Bounds()) {
		return false
	}
	a, b := NearestPoints(g.Polygon(), shape)
	bb := g.Bounds()
	return dist(a, b) <= 1e-9*(1+dist(bb.Min, bb.Max))
}

// PointDistance returns the Euclidean distance from p to the polygon
// (0 when p is inside or on the boundary).
func PointDistance(g Geometry, p geom.Point) float64 {
	if g.Contains(p) {
		return 0
	}
	best := math.Inf(1)
	for _, s := range segments(g.Polygon()) {
		q := closestOnSegment(p, s)
		if d := dist(p, q); d < best {
			best = d
		}
	}
	return best
}

// NearestPoints returns a pair of points, one on each shape, at minimal
// Euclidean distance. When the shapes overlap both points are equal.
// Supported shapes are Point, LineString, *Bounds and any Polygonal.
func NearestPoints(a, b geom.Geom) (geom.Point, geom.Point) {
	// a vertex of one shape inside the other polygon
	if pa, ok := insideVertex(a, b); ok {
		return pa, pa
	}
	if pb, ok := insideVertex(b, a); ok {
		return pb, pb
	}

	sa, sb := segments(a), segments(b)
	best := math.Inf(1)
	var ra, rb geom.Point
	for _, s := range sa {
		for _, t := range sb {
			if x, ok := crossing(s, t); ok {
				return x, x
			}
			for _, c := range [4][2]geom.Point{
				{s.a, closestOnSegment(s.a, t)},
				{s.b, closestOnSegment(s.b, t)},
				{closestOnSegment(t.a, s), t.a},
				{closestOnSegment(t.b, s), t.b},
			} {
				if d := dist(c[0], c[1]); d < best {
					best, ra, rb = d, c[0], c[1]
				}
			}
		}
	}
	return ra, rb
}

func insideVertex(shape, container geom.Geom) (geom.Point, bool) {
	var poly geom.Polygonal
	switch c := container.(type) {
	case *geom.Bounds:
		for _, p := range vertices(shape) {
			if inBounds(c, p) {
				return p, true
			}
		}
		return geom.Point{}, false
	case geom.Polygonal:
		poly = c
	default:
		return geom.Point{}, false
	}
	for _, p := range vertices(shape) {
		if p.Within(poly) != geom.Outside {
			return p, true
		}
	}
	return geom.Point{}, false
}

func vertices(g geom.Geom) []geom.Point {
	switch s := g.(type) {
	case geom.Point:
		return []geom.Point{s}
	case *geom.Bounds:
		return []geom.Point{s.Min, {X: s.Max.X, Y: s.Min.Y}, s.Max, {X: s.Min.X, Y: s.Max.Y}}
	case geom.LineString:
		return []geom.Point(s)
	case geom.MultiPoint:
		return []geom.Point(s)
	case geom.Polygonal:
		var out []geom.Point
		for _, poly := range s.Polygons() {
			for _, ring := range poly {
				out = append(out, ring...)
			}
		}
		return out
	}
	return nil
}

func segments(g geom.Geom) []segment {
	var out []segment
	switch s := g.(type) {
	case geom.Point:
		out = append(out, segment{s, s})
	case geom.MultiPoint:
		for _, p := range s {
			out = append(out, segment{p, p})
		}
	case geom.LineString:
		for i := 1; i < len(s); i++ {
			out = append(out, segment{s[i-1], s[i]})
		}
		if len(s) == 1 {
			out = append(out, segment{s[0], s[0]})
		}
	case *geom.Bounds:
		v := vertices(s)
		for i := range v {
			out = append(out, segment{v[i], v[(i+1)%len(v)]})
		}
	case geom.Polygonal:
		for _, poly := range s.Polygons() {
			for _, ring := range poly {
				for i := 1; i < len(ring); i++ {
					out = append(out, segment{ring[i-1], ring[i]})
				}
				if n := len(ring); n > 1 && ring[0] != ring[n-1] {
					out = append(out, segment{ring[n-1], ring[0]})
				}
			}
		}
	}
	return out
}

func closestOnSegment(p geom.Point, s segment) geom.Point {
	dx, dy := s.b.X-s.a.X, s.b.Y-s.a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return s.a
	}
	t := ((p.X-s.a.X)*dx + (p.Y-s.a.Y)*dy) / l2
	switch {
	case t <= 0:
		return s.a
	case t >= 1:
		return s.b
	}
	return geom.Point{X: s.a.X + t*dx, Y: s.a.Y + t*dy}
}

// crossing returns the intersection point of two proper (non-degenerate,
// non-parallel) segments.
func crossing(s, t segment) (geom.Point, bool) {
	rx, ry := s.b.X-s.a.X, s.b.Y-s.a.Y
	qx, qy := t.b.X-t.a.X, t.b.Y-t.a.Y
	den := rx*qy - ry*qx
	if den == 0 {
		return geom.Point{}, false
	}
	wx, wy := t.a.X-s.a.X, t.a.Y-s.a.Y
	u := (wx*qy - wy*qx) / den
	v := (wx*ry - wy*rx) / den
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return geom.Point{}, false
	}
	return geom.Point{X: s.a.X + u*rx, Y: s.a.Y + u*ry}, true
}

func dist(a, b geom.Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
