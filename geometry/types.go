package geometry

import (
	"errors"

	"github.com/ctessum/geom"
)

// ErrSharedTemplate indicates an attempt to mutate the shape of a geometry
// that references a shared Template.
var ErrSharedTemplate = errors.New("geometry: cannot mutate a templated (shared) geometry")

// Kind tags the two Geometry representations.
type Kind int

const (
	// Owned geometries carry their own polygon.
	Owned Kind = iota
	// Templated geometries reference a shared Template and a center offset.
	Templated
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Templated {
		return "templated"
	}
	return "owned"
}

// Template is the reference shape shared by every cell of a flyweight grid.
// Its polygon is centered on the origin.
type Template struct {
	shape  geom.Polygon
	bounds geom.Bounds
}

// NewTemplate wraps a polygon centered on the origin as a shared template.
// The polygon is deep-copied.
func NewTemplate(p geom.Polygon) *Template {
	c := Translate(p, 0, 0)
	return &Template{shape: c, bounds: *c.Bounds()}
}

// Polygon returns a copy of the template shape.
func (t *Template) Polygon() geom.Polygon { return Translate(t.shape, 0, 0) }

// Geometry is the shape of a single grid cell.
//
// The zero value is an empty owned geometry.
type Geometry struct {
	kind     Kind
	polygon  geom.Polygon // Owned only
	template *Template    // Templated only
	center   geom.Point
}

// NewOwned returns an owned geometry. center is the cell location used for
// addressing and distances; it is not recomputed from p.
func NewOwned(p geom.Polygon, center geom.Point) Geometry {
	return Geometry{kind: Owned, polygon: p, center: center}
}

// NewTemplated returns a flyweight geometry: t translated to center.
func NewTemplated(t *Template, center geom.Point) Geometry {
	return Geometry{kind: Templated, template: t, center: center}
}
