package geometry

import (
	"github.com/ctessum/geom"
)

// Kind reports which representation g uses.
func (g Geometry) Kind() Kind { return g.kind }

// Template returns the shared template, or nil for an owned geometry.
func (g Geometry) Template() *Template { return g.template }

// Center returns the cell location.
func (g Geometry) Center() geom.Point { return g.center }

// Polygon returns the cell shape in world coordinates.
// For a templated geometry the template is translated on each call.
func (g Geometry) Polygon() geom.Polygon {
	if g.kind == Templated {
		return Translate(g.template.shape, g.center.X, g.center.Y)
	}
	return g.polygon
}

// Bounds returns the bounding box of the cell shape.
func (g Geometry) Bounds() *geom.Bounds {
	if g.kind == Templated {
		b := g.template.bounds
		return &geom.Bounds{
			Min: geom.Point{X: b.Min.X + g.center.X, Y: b.Min.Y + g.center.Y},
			Max: geom.Point{X: b.Max.X + g.center.X, Y: b.Max.Y + g.center.Y},
		}
	}
	return g.polygon.Bounds()
}

// Area returns the area of the cell shape.
func (g Geometry) Area() float64 {
	if g.kind == Templated {
		return g.template.shape.Area()
	}
	return g.polygon.Area()
}

// Contains reports whether p lies inside the cell shape or on its boundary.
// Templated geometries test the translated point against the template.
func (g Geometry) Contains(p geom.Point) bool {
	if g.kind == Templated {
		local := geom.Point{X: p.X - g.center.X, Y: p.Y - g.center.Y}
		if !inBounds(&g.template.bounds, local) {
			return false
		}
		return local.Within(g.template.shape) != geom.Outside
	}
	if len(g.polygon) == 0 || !inBounds(g.polygon.Bounds(), p) {
		return false
	}
	return p.Within(g.polygon) != geom.Outside
}

// SetPolygon replaces the shape of an owned geometry.
// It returns ErrSharedTemplate for a templated geometry.
func (g *Geometry) SetPolygon(p geom.Polygon) error {
	if g.kind == Templated {
		return ErrSharedTemplate
	}
	g.polygon = p
	return nil
}

func inBounds(b *geom.Bounds, p geom.Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
