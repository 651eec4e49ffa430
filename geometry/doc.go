// Package geometry holds the cell shapes used by the grid packages of
// github.com/katalvlaran/gridspace.
//
// What:
//
//   - Geometry is a tagged variant: either an individually owned polygon
//     (Owned) or a reference to a shared Template translated to the cell
//     center on demand (Templated, the flyweight form).
//   - Rectangle, Hexagon and HexagonPointy build the closed, counter-clockwise
//     rings used for square and hexagonal cells.
//   - NearestPoints, PointDistance and Covers answer the few geometric
//     questions the grid needs about arbitrary shapes.
//
// Why:
//
//   - A grid of millions of cells does not need millions of polygons: in
//     flyweight mode every cell shares one Template and only stores its center.
//   - Containment tests on a templated geometry translate the query point
//     instead of the shape, so they allocate nothing.
//
// Invariants:
//
//   - Templated(t, c).Polygon() equals t.Polygon() translated by c.
//   - Only Owned geometries may be replaced (SetPolygon); a templated one
//     returns ErrSharedTemplate.
//
// Shapes are github.com/ctessum/geom values (Point, Polygon, Bounds, ...).
package geometry
