package topology

import (
	"math"
	"slices"
	"sort"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/geometry"
)

const maxDistance = math.MaxFloat64

// ranked is a cell with its distance to a query point.
type ranked struct {
	id int
	d  float64
}

// search returns the ids of cells whose bounding boxes meet b.
func (t *Topology) search(b *geom.Bounds) []int {
	hits := t.tree.SearchIntersect(b)
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*indexedCell).id)
	}
	return ids
}

// distanceTo is the distance from p to the shape of cell id.
func (t *Topology) distanceTo(id int, p geom.Point) float64 {
	c, _ := t.g.Cell(id)
	return geometry.PointDistance(c.Geometry, p)
}

func around(p geom.Point, r float64) *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: p.X - r, Y: p.Y - r},
		Max: geom.Point{X: p.X + r, Y: p.Y + r},
	}
}

func contains(outer, inner *geom.Bounds) bool {
	return outer.Min.X <= inner.Min.X && outer.Min.Y <= inner.Min.Y &&
		outer.Max.X >= inner.Max.X && outer.Max.Y >= inner.Max.Y
}

// Nearest returns the cell containing p, or failing that the cell whose
// shape is closest to p. ok is false only for a grid with no active cells.
func (t *Topology) Nearest(p geom.Point) (int, bool) {
	if id, ok := t.g.CellAt(p); ok {
		return id, true
	}
	ids := t.KNearest(p, 1)
	if len(ids) == 0 {
		return -1, false
	}
	return ids[0], true
}

// KNearest returns up to k cells ordered by distance from p, ties broken
// by id. The search box doubles from one cell size until it holds k cells
// within its half-width, or covers the whole grid.
func (t *Topology) KNearest(p geom.Point, k int) []int {
	if k <= 0 || t.g.ActiveCount() == 0 {
		return nil
	}
	env := t.g.Envelope()
	for r := t.g.MaxCellDimension(); ; r *= 2 {
		box := around(p, r)
		whole := contains(box, env)
		var found []ranked
		for _, id := range t.search(box) {
			if d := t.distanceTo(id, p); whole || d <= r {
				found = append(found, ranked{id, d})
			}
		}
		if len(found) >= k || whole {
			sort.Slice(found, func(i, j int) bool {
				if found[i].d != found[j].d {
					return found[i].d < found[j].d
				}
				return found[i].id < found[j].id
			})
			out := make([]int, 0, min(k, len(found)))
			for _, f := range found[:min(k, len(found))] {
				out = append(out, f.id)
			}
			return out
		}
	}
}

// WithinDistance returns, in ascending order, the cells whose shape lies
// at most d from p.
func (t *Topology) WithinDistance(p geom.Point, d float64) []int {
	if d < 0 {
		return nil
	}
	var out []int
	for _, id := range t.search(around(p, d)) {
		if t.distanceTo(id, p) <= d {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// InEnvelope returns, in ascending order, the cells whose shape intersects
// b, or with covered, whose bounding box lies inside b.
func (t *Topology) InEnvelope(b *geom.Bounds, covered bool) []int {
	var out []int
	for _, id := range t.search(b) {
		c, _ := t.g.Cell(id)
		if covered {
			if contains(b, c.Geometry.Bounds()) {
				out = append(out, id)
			}
		} else if geometry.Intersects(c.Geometry, b) {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// ClosestAccepted searches outward from the cell nearest p, one ring at a
// time, and returns the accepted cell closest to p from the first ring that
// holds any. Ties go to the lower id.
func (t *Topology) ClosestAccepted(p geom.Point, accept func(id int) bool) (int, bool) {
	start, ok := t.Nearest(p)
	if !ok {
		return -1, false
	}
	if accept(start) {
		return start, true
	}
	seen := 1
	for r := 1; ; r++ {
		ring := t.g.NeighborsOf(start, r)
		best := ranked{id: -1, d: math.Inf(1)}
		for _, id := range ring {
			if !accept(id) {
				continue
			}
			if d := t.distanceTo(id, p); d < best.d {
				best = ranked{id, d}
			}
		}
		if best.id >= 0 {
			return best.id, true
		}
		// the ring stopped growing: every reachable cell was tried
		if len(ring)+1 == seen {
			return -1, false
		}
		seen = len(ring) + 1
	}
}
