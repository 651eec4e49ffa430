package topology

import (
	"math"
	"slices"

	"github.com/ctessum/geom"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridspace/geometry"
	"github.com/katalvlaran/gridspace/grid"
)

// NeighborCellsOfShape returns, in ascending order, the cells within
// distance steps of shape. A point or a cell-shaped polygon contributes
// the neighborhood of its cell. Any other shape contributes the union of
// the neighborhoods of every cell it touches, minus those cells.
func (t *Topology) NeighborCellsOfShape(shape geom.Geom, distance int) []int {
	touched := t.touched(shape)
	if len(touched) == 1 {
		return t.g.NeighborsOf(touched[0], distance)
	}

	inner := mapset.New[int]()
	for _, id := range touched {
		inner.Put(id)
	}
	ring := mapset.New[int]()
	for _, id := range touched {
		for _, n := range t.g.NeighborsOf(id, distance) {
			if !inner.Has(n) {
				ring.Put(n)
			}
		}
	}
	out := make([]int, 0, ring.Size())
	ring.Each(func(id int) { out = append(out, id) })
	slices.Sort(out)
	return out
}

// NeighborsOfShape returns the occupants of NeighborCellsOfShape that
// filter accepts.
func (t *Topology) NeighborsOfShape(shape geom.Geom, distance int, filter Filter) mapset.Set[grid.Occupant] {
	out := mapset.New[grid.Occupant]()
	for _, id := range t.NeighborCellsOfShape(shape, distance) {
		ref := t.g.Occupant(id)
		if ref == nil || (filter != nil && !filter(ref)) {
			continue
		}
		out.Put(ref)
	}
	return out
}

// touched returns the cells shape resolves to: the cell under a point, the
// cell a polygon coincides with, or else every cell the shape intersects.
func (t *Topology) touched(shape geom.Geom) []int {
	if p, ok := shape.(geom.Point); ok {
		if id, ok := t.g.CellAt(p); ok {
			return []int{id}
		}
		return nil
	}
	if id, ok := t.cellShaped(shape); ok {
		return []int{id}
	}
	var out []int
	for _, id := range t.g.CellsInEnvelope(shape.Bounds(), false) {
		c, _ := t.g.Cell(id)
		if geometry.Intersects(c.Geometry, shape) {
			out = append(out, id)
		}
	}
	return out
}

// cellShaped reports the cell whose bounding box matches that of shape.
func (t *Topology) cellShaped(shape geom.Geom) (int, bool) {
	if _, ok := shape.(geom.Polygonal); !ok {
		return -1, false
	}
	id, ok := t.g.CellAt(geometry.Location(shape))
	if !ok {
		return -1, false
	}
	c, _ := t.g.Cell(id)
	a, b := c.Geometry.Bounds(), shape.Bounds()
	eps := t.g.Precision()
	if math.Abs(a.Min.X-b.Min.X) > eps || math.Abs(a.Min.Y-b.Min.Y) > eps ||
		math.Abs(a.Max.X-b.Max.X) > eps || math.Abs(a.Max.Y-b.Max.Y) > eps {
		return -1, false
	}
	return id, true
}
