package grid

import (
	"fmt"
	"log/slog"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/geometry"
	"github.com/katalvlaran/gridspace/neighborhood"
)

// Grid is a regular square or hexagonal discretization of a footprint.
// Its shape is immutable once built; field values, bands and occupants are
// mutable and not synchronized.
type Grid struct {
	cols, rows    int
	origin, max   geom.Point
	width, height float64
	cellW, cellH  float64
	precision     float64
	kind          neighborhood.Kind
	torus         bool
	flyweight     bool
	template      *geometry.Template

	cells       []*Cell
	activeCount int
	firstActive int
	lastActive  int

	values []float64
	bands  [][]float64 // bands[0] aliases values

	occupants []Occupant
	where     map[Occupant]int

	strategy neighborhood.Strategy
	log      *slog.Logger
	disposed bool
}

// New builds a cols×rows grid over the bounding box of fp.
// Returns ErrBadDimensions or ErrEmptyFootprint on invalid input.
// Complexity: O(cols×rows).
func New(fp Footprint, cols, rows int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if cols <= 0 || rows <= 0 {
		return nil, ErrBadDimensions
	}
	if fp == nil {
		return nil, ErrEmptyFootprint
	}
	env := fp.Bounds()
	w, h := env.Max.X-env.Min.X, env.Max.Y-env.Min.Y
	if !(w > 0) || !(h > 0) {
		return nil, ErrEmptyFootprint
	}

	hex := o.Connectivity.Hexagonal()
	g := &Grid{
		cols:        cols,
		rows:        rows,
		origin:      env.Min,
		max:         env.Max,
		width:       w,
		height:      h,
		precision:   w / 1000,
		kind:        o.Connectivity,
		torus:       o.Torus && !hex,
		flyweight:   o.Flyweight,
		cells:       make([]*Cell, cols*rows),
		firstActive: -1,
		lastActive:  -1,
		log:         o.Logger,
	}
	if o.Torus && hex {
		g.log.Warn("grid: torus ignored on hexagonal grid", "connectivity", o.Connectivity.String())
	}

	rect := isRectangle(fp)
	if hex {
		g.buildHex(fp, rect, o.PartialCells)
	} else {
		g.buildSquare(fp, rect, o.PartialCells)
	}

	strategy, err := neighborhood.New(g, o.Connectivity, neighborhood.WithCache(o.NeighborCache))
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	g.strategy = strategy

	g.values = make([]float64, len(g.cells))
	g.bands = [][]float64{g.values}
	g.occupants = make([]Occupant, len(g.cells))
	g.where = make(map[Occupant]int)

	g.log.Debug("grid built",
		"cols", cols, "rows", rows,
		"active", g.activeCount,
		"connectivity", g.kind.String(),
		"torus", g.torus, "flyweight", g.flyweight)
	return g, nil
}

func (g *Grid) mustLive() {
	if g.disposed {
		panic(ErrDisposed)
	}
}

func (g *Grid) place(c *Cell) {
	g.cells[c.ID] = c
	g.activeCount++
	if g.firstActive < 0 {
		g.firstActive = c.ID
	}
	g.lastActive = c.ID
}

// Dimensions returns the number of columns and rows.
func (g *Grid) Dimensions() (cols, rows int) {
	g.mustLive()
	return g.cols, g.rows
}

// Torus reports whether the grid wraps around its edges.
func (g *Grid) Torus() bool {
	g.mustLive()
	return g.torus
}

// Hexagonal reports whether cells are hexagons.
func (g *Grid) Hexagonal() bool {
	g.mustLive()
	return g.kind.Hexagonal()
}

// Connectivity returns the neighborhood kind of the grid.
func (g *Grid) Connectivity() neighborhood.Kind {
	g.mustLive()
	return g.kind
}

// Flyweight reports whether unclipped cells share one template shape.
func (g *Grid) Flyweight() bool {
	g.mustLive()
	return g.flyweight
}

// Template returns the shared cell template, or nil when shapes are owned.
func (g *Grid) Template() *geometry.Template {
	g.mustLive()
	return g.template
}

// Len returns cols×rows, the size of the id space (active or not).
func (g *Grid) Len() int {
	g.mustLive()
	return len(g.cells)
}

// Active reports whether id is an in-range, active cell.
// Complexity: O(1).
func (g *Grid) Active(id int) bool {
	g.mustLive()
	return id >= 0 && id < len(g.cells) && g.cells[id] != nil
}

// ActiveCount returns the number of active cells.
func (g *Grid) ActiveCount() int {
	g.mustLive()
	return g.activeCount
}

// FirstActive returns the lowest active id.
func (g *Grid) FirstActive() (int, bool) {
	g.mustLive()
	return g.firstActive, g.firstActive >= 0
}

// LastActive returns the highest active id.
func (g *Grid) LastActive() (int, bool) {
	g.mustLive()
	return g.lastActive, g.lastActive >= 0
}

// ActiveCells returns the ids of all active cells in ascending order.
// Complexity: O(N).
func (g *Grid) ActiveCells() []int {
	g.mustLive()
	out := make([]int, 0, g.activeCount)
	for id, c := range g.cells {
		if c != nil {
			out = append(out, id)
		}
	}
	return out
}

// Cell returns the active cell with the given id.
func (g *Grid) Cell(id int) (*Cell, bool) {
	if !g.Active(id) {
		return nil, false
	}
	return g.cells[id], true
}

// Center returns the location of cell id. It panics on an inactive id.
func (g *Grid) Center(id int) geom.Point {
	g.mustLive()
	return g.cells[id].Geometry.Center()
}

// CellSize returns the width and height of one cell.
func (g *Grid) CellSize() (w, h float64) {
	g.mustLive()
	return g.cellW, g.cellH
}

// MaxCellDimension returns max(cellWidth, cellHeight).
func (g *Grid) MaxCellDimension() float64 {
	g.mustLive()
	return max(g.cellW, g.cellH)
}

// Precision returns the far-edge tolerance, width/1000.
func (g *Grid) Precision() float64 {
	g.mustLive()
	return g.precision
}

// Envelope returns the bounding box the grid covers.
func (g *Grid) Envelope() *geom.Bounds {
	g.mustLive()
	return &geom.Bounds{Min: g.origin, Max: g.max}
}

// Strategy returns the neighborhood strategy of the grid.
func (g *Grid) Strategy() neighborhood.Strategy {
	g.mustLive()
	return g.strategy
}

// Neighbors returns the radius-1 neighbors of id, sorted ascending.
func (g *Grid) Neighbors(id int) []int {
	g.mustLive()
	return g.strategy.NeighborsOf(id, 1)
}

// NeighborsOf returns the active cells within radius steps of id,
// excluding id, sorted ascending.
func (g *Grid) NeighborsOf(id, radius int) []int {
	g.mustLive()
	return g.strategy.NeighborsOf(id, radius)
}

// Dispose releases cells, fields and the neighborhood cache.
// Every later call on g panics with ErrDisposed.
func (g *Grid) Dispose() {
	if g.disposed {
		return
	}
	if g.strategy != nil {
		g.strategy.Clear()
	}
	g.strategy = nil
	g.cells = nil
	g.values = nil
	g.bands = nil
	g.occupants = nil
	g.where = nil
	g.template = nil
	g.disposed = true
}
