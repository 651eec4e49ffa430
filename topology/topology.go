package topology

import (
	"errors"
	"log/slog"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"

	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/pathfind"
)

// Topology wraps a grid with an R-tree of its cells.
type Topology struct {
	g      *grid.Grid
	tree   *rtree.Rtree
	logger *slog.Logger
	popts  []pathfind.Option
}

// indexedCell is the R-tree entry of one active cell.
type indexedCell struct {
	geom.Polygonal
	id int
}

// New indexes every active cell of g.
// Complexity: O(N log N).
func New(g *grid.Grid, opts ...Option) (*Topology, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Topology{
		g:      g,
		tree:   rtree.NewTree(25, 50),
		logger: o.Logger,
		popts:  []pathfind.Option{pathfind.WithLogger(o.Logger)},
	}
	if o.StrictTopology {
		t.popts = append(t.popts, pathfind.WithStrictTopology())
	}
	for _, id := range g.ActiveCells() {
		c, _ := g.Cell(id)
		t.tree.Insert(&indexedCell{Polygonal: c.Geometry.Bounds(), id: id})
	}
	t.logger.Debug("topology: indexed cells", "cells", g.ActiveCount())
	return t, nil
}

// Grid returns the wrapped grid.
func (t *Topology) Grid() *grid.Grid { return t.g }

// CellAt returns the cell containing p.
func (t *Topology) CellAt(p geom.Point) (int, bool) { return t.g.CellAt(p) }

// IndexAt returns the cell at (col,row).
func (t *Topology) IndexAt(col, row int) (int, bool) { return t.g.IndexAt(col, row) }

// NeighborsOf returns the cells within radius steps of id, excluding id.
func (t *Topology) NeighborsOf(id, radius int) []int { return t.g.NeighborsOf(id, radius) }

// FieldValue returns the scalar field of id (0 when out of range).
func (t *Topology) FieldValue(id int) float64 { return t.g.FieldValue(id) }

// SetFieldValue sets the scalar field of id; out-of-range ids are ignored.
func (t *Topology) SetFieldValue(id int, v float64) { t.g.SetFieldValue(id, v) }

// BandValue returns band b of id.
func (t *Topology) BandValue(id, b int) (float64, error) { return t.g.BandValue(id, b) }

// ShortestPath finds a path between the cells under src and dst.
// ok is false when either point is off the grid or no path exists; err
// reports misuse only (a negative weight, or strict jump point search on
// an unsupported grid).
func (t *Topology) ShortestPath(src, dst geom.Point, pass pathfind.Passability, alg pathfind.Algorithm) (*Route, bool, error) {
	s, ok := t.g.CellAt(src)
	if !ok {
		return nil, false, nil
	}
	d, ok := t.g.CellAt(dst)
	if !ok {
		return nil, false, nil
	}
	p, err := pathfind.Find(t.g, pathfind.Query{Source: s, Target: d, Pass: pass, Algorithm: alg}, t.popts...)
	if errors.Is(err, pathfind.ErrNoPath) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	wps := make([]geom.Point, 0, len(p.Cells))
	wps = append(wps, src)
	for _, id := range p.Cells[1 : len(p.Cells)-1] {
		wps = append(wps, t.g.Center(id))
	}
	wps = append(wps, dst)
	return &Route{Waypoints: wps, Cells: p.Cells, Weight: p.Weight, Algorithm: p.Algorithm}, true, nil
}

// Distance returns the grid metric between two shapes, or math.MaxFloat64
// when either lies off the grid.
func (t *Topology) Distance(a, b geom.Geom) float64 {
	d, ok := t.g.ManhattanDistanceBetween(a, b)
	if !ok {
		return maxDistance
	}
	return float64(d)
}

// Dispose releases the index and disposes the grid.
func (t *Topology) Dispose() {
	t.tree = nil
	t.g.Dispose()
}
