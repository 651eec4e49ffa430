package neighborhood

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

var (
	offsetsVonNeumann = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsetsMoore      = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

	// flat-topped hexagons, odd columns shifted down half a cell
	offsetsHexHEven = [][2]int{{0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {1, -1}, {1, 0}}
	offsetsHexHOdd  = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {-1, 1}, {1, 0}, {1, 1}}

	// pointy-topped hexagons, odd rows shifted right half a cell
	offsetsHexVEven = [][2]int{{-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {-1, 1}, {0, 1}}
	offsetsHexVOdd  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {1, -1}, {0, 1}, {1, 1}}
)

// computer is the uncached Strategy.
type computer struct {
	topo       Topology
	kind       Kind
	cols, rows int
	torus      bool
}

// New builds the Strategy of the given kind over topo.
// Returns ErrUnknownKind or ErrBadTopology on invalid input.
// Complexity: O(1).
func New(topo Topology, kind Kind, opts ...Option) (Strategy, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if kind.Degree() == 0 {
		return nil, ErrUnknownKind
	}
	cols, rows := topo.Dimensions()
	if cols <= 0 || rows <= 0 {
		return nil, ErrBadTopology
	}
	c := &computer{
		topo:  topo,
		kind:  kind,
		cols:  cols,
		rows:  rows,
		torus: topo.Torus() && !kind.Hexagonal(),
	}
	if !o.Cache {
		return c, nil
	}
	return newCached(c), nil
}

func (c *computer) Kind() Kind  { return c.kind }
func (c *computer) Degree() int { return c.kind.Degree() }
func (c *computer) Clear()      {}

func (c *computer) offsets(col, row int) [][2]int {
	switch c.kind {
	case VonNeumann:
		return offsetsVonNeumann
	case Moore:
		return offsetsMoore
	case HexHorizontal:
		if col%2 == 0 {
			return offsetsHexHEven
		}
		return offsetsHexHOdd
	default:
		if row%2 == 0 {
			return offsetsHexVEven
		}
		return offsetsHexVOdd
	}
}

// resolve maps (col,row) to a cell id, wrapping on a torus.
// It does not consult Active.
func (c *computer) resolve(col, row int) (int, bool) {
	if c.torus {
		col = ((col % c.cols) + c.cols) % c.cols
		row = ((row % c.rows) + c.rows) % c.rows
	} else if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return -1, false
	}
	return row*c.cols + col, true
}

func (c *computer) inRange(id int) bool { return id >= 0 && id < c.cols*c.rows }

// raw appends the in-range radius-1 neighbors of id, active or not.
func (c *computer) raw(dst []int, id int) []int {
	col, row := id%c.cols, id/c.cols
	for _, d := range c.offsets(col, row) {
		if n, ok := c.resolve(col+d[0], row+d[1]); ok && n != id {
			dst = append(dst, n)
		}
	}
	return dst
}

// NeighborsIndexOf returns the radius-1 stencil of id in a fixed order,
// with -1 for positions that are off-grid or inactive.
// Complexity: O(d).
func (c *computer) NeighborsIndexOf(id int) []int {
	if !c.inRange(id) {
		return nil
	}
	col, row := id%c.cols, id/c.cols
	offs := c.offsets(col, row)
	out := make([]int, len(offs))
	for i, d := range offs {
		n, ok := c.resolve(col+d[0], row+d[1])
		if !ok || !c.topo.Active(n) {
			n = -1
		}
		out[i] = n
	}
	return out
}

// RawNeighborsIncluding returns id together with every active cell within
// radius stencil steps, sorted ascending. Inactive cells are traversed but
// not reported.
// Complexity: O(r²·d).
func (c *computer) RawNeighborsIncluding(id, radius int) []int {
	if !c.inRange(id) {
		return nil
	}
	seen := mapset.New[int]()
	seen.Put(id)
	frontier := []int{id}
	var buf []int
	for step := 0; step < radius && len(frontier) > 0; step++ {
		var next []int
		for _, u := range frontier {
			buf = c.raw(buf[:0], u)
			for _, v := range buf {
				if !seen.Has(v) {
					seen.Put(v)
					next = append(next, v)
				}
			}
		}
		frontier = next
	}
	out := make([]int, 0, seen.Size())
	seen.Each(func(v int) {
		if v == id || c.topo.Active(v) {
			out = append(out, v)
		}
	})
	sort.Ints(out)
	return out
}

// NeighborsOf returns the active cells within radius stencil steps of id,
// excluding id, sorted ascending. radius < 1 yields an empty result.
// Complexity: O(r²·d).
func (c *computer) NeighborsOf(id, radius int) []int {
	if radius < 1 {
		return []int{}
	}
	all := c.RawNeighborsIncluding(id, radius)
	out := all[:0]
	for _, v := range all {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
