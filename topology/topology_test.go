package topology_test

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridspace/geometry"
	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/neighborhood"
	"github.com/katalvlaran/gridspace/pathfind"
	"github.com/katalvlaran/gridspace/topology"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

// newTopology builds a facade over a cols×rows grid of unit cells.
func newTopology(t testing.TB, cols, rows int, gopts []grid.Option, opts ...topology.Option) *topology.Topology {
	t.Helper()
	g, err := grid.New(&geom.Bounds{Max: pt(float64(cols), float64(rows))}, cols, rows, gopts...)
	require.NoError(t, err)
	top, err := topology.New(g, opts...)
	require.NoError(t, err)
	return top
}

func TestNew_NilGrid(t *testing.T) {
	_, err := topology.New(nil)
	assert.ErrorIs(t, err, topology.ErrNilGrid)
}

func TestNearest(t *testing.T) {
	top := newTopology(t, 10, 10, nil)
	cases := []struct {
		name string
		p    geom.Point
		want int
	}{
		{"inside", pt(2.5, 3.5), 32},
		{"left of the grid", pt(-3, 0.5), 0},
		{"beyond the far corner", pt(12, 9.5), 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := top.Nearest(tc.p)
			require.True(t, ok)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestKNearest(t *testing.T) {
	top := newTopology(t, 10, 10, nil)
	assert.Equal(t, []int{0, 1, 10}, top.KNearest(pt(0.5, 0.5), 3))
	assert.Equal(t, []int{0, 1, 10, 11}, top.KNearest(pt(0.5, 0.5), 4))
	assert.Nil(t, top.KNearest(pt(0.5, 0.5), 0))

	small := newTopology(t, 2, 2, nil)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, small.KNearest(pt(50, 50), 10))
	assert.Equal(t, 3, small.KNearest(pt(50, 50), 1)[0])
}

func TestWithinDistanceAndEnvelope(t *testing.T) {
	top := newTopology(t, 10, 10, nil)
	assert.Equal(t, []int{45, 54, 55, 56, 65}, top.WithinDistance(pt(5.5, 5.5), 0.6))
	assert.Nil(t, top.WithinDistance(pt(5.5, 5.5), -1))

	want := []int{22, 23, 24, 32, 33, 34}
	assert.Equal(t, want, top.InEnvelope(&geom.Bounds{Min: pt(2.2, 2.2), Max: pt(4.8, 3.8)}, false))
	assert.Equal(t, want, top.InEnvelope(&geom.Bounds{Min: pt(1.5, 1.5), Max: pt(5, 4)}, true))
}

func TestNeighborCellsOfShape(t *testing.T) {
	top := newTopology(t, 10, 10, nil)
	cross := []int{45, 54, 56, 65}

	t.Run("point", func(t *testing.T) {
		assert.Equal(t, cross, top.NeighborCellsOfShape(pt(5.5, 5.5), 1))
	})
	t.Run("cell shaped polygon", func(t *testing.T) {
		assert.Equal(t, cross, top.NeighborCellsOfShape(geometry.Rectangle(1, 1, pt(5.5, 5.5)), 1))
	})
	t.Run("block", func(t *testing.T) {
		block := &geom.Bounds{Min: pt(2.2, 2.2), Max: pt(3.8, 3.8)}
		assert.Equal(t, []int{12, 13, 21, 24, 31, 34, 42, 43}, top.NeighborCellsOfShape(block, 1))
	})
	t.Run("off grid", func(t *testing.T) {
		assert.Empty(t, top.NeighborCellsOfShape(pt(-5, -5), 1))
	})
}

func TestNeighborsOfShape(t *testing.T) {
	top := newTopology(t, 10, 10, nil)
	g := top.Grid()
	require.NoError(t, g.SetOccupant(45, "a"))
	require.NoError(t, g.SetOccupant(54, "b"))
	require.NoError(t, g.SetOccupant(56, 7))
	require.NoError(t, g.SetOccupant(0, "far"))

	all := top.NeighborsOfShape(pt(5.5, 5.5), 1, nil)
	assert.Equal(t, 3, all.Size())

	strings := top.NeighborsOfShape(pt(5.5, 5.5), 1, func(ref grid.Occupant) bool {
		_, ok := ref.(string)
		return ok
	})
	assert.Equal(t, 2, strings.Size())
	assert.True(t, strings.Has("a"))
	assert.True(t, strings.Has("b"))
	assert.False(t, strings.Has("far"))
}

func TestShortestPath(t *testing.T) {
	top := newTopology(t, 10, 10, nil)
	src, dst := pt(0.5, 0.5), pt(9.2, 9.7)

	r, ok, err := top.ShortestPath(src, dst, pathfind.Unrestricted(), pathfind.AStar)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, r.Cells, 19)
	require.Len(t, r.Waypoints, 19)
	assert.Equal(t, src, r.Waypoints[0])
	assert.Equal(t, dst, r.Waypoints[18])
	assert.Equal(t, top.Grid().Center(r.Cells[1]), r.Waypoints[1])
	assert.InDelta(t, 18.0, r.Weight, 1e-9)

	t.Run("same cell", func(t *testing.T) {
		r, ok, err := top.ShortestPath(pt(3.2, 3.2), pt(3.8, 3.8), pathfind.Unrestricted(), pathfind.Dijkstra)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []geom.Point{pt(3.2, 3.2), pt(3.8, 3.8)}, r.Waypoints)
		assert.Equal(t, 0.0, r.Weight)
	})
	t.Run("off grid", func(t *testing.T) {
		r, ok, err := top.ShortestPath(pt(-1, 0), dst, pathfind.Unrestricted(), pathfind.AStar)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, r)
	})
	t.Run("unreachable", func(t *testing.T) {
		_, ok, err := top.ShortestPath(src, dst, pathfind.Open(1, 2, 3), pathfind.BreadthFirst)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("strict jump point", func(t *testing.T) {
		strict := newTopology(t, 4, 4, nil, topology.WithStrictTopology())
		_, ok, err := strict.ShortestPath(pt(0.5, 0.5), pt(3.5, 3.5), pathfind.Unrestricted(), pathfind.JumpPoint)
		assert.ErrorIs(t, err, pathfind.ErrJumpPointTopology)
		assert.False(t, ok)
	})
}

func TestDistance(t *testing.T) {
	vn := newTopology(t, 10, 10, nil)
	moore := newTopology(t, 10, 10, []grid.Option{grid.WithConnectivity(neighborhood.Moore)})
	a, b := pt(0.5, 0.5), pt(3.5, 4.5)

	assert.Equal(t, 7.0, vn.Distance(a, b))
	assert.Equal(t, 4.0, moore.Distance(a, b))
	assert.Equal(t, math.MaxFloat64, vn.Distance(a, pt(-20, -20)))
}

func TestClosestAccepted(t *testing.T) {
	top := newTopology(t, 5, 5, nil)
	id, ok := top.ClosestAccepted(pt(0.5, 0.5), func(id int) bool { return id == 18 })
	require.True(t, ok)
	assert.Equal(t, 18, id)

	id, ok = top.ClosestAccepted(pt(2.5, 2.5), func(id int) bool { return id%2 == 1 })
	require.True(t, ok)
	assert.Equal(t, 7, id)

	_, ok = top.ClosestAccepted(pt(0.5, 0.5), func(int) bool { return false })
	assert.False(t, ok)
}

func TestFieldsAndDispose(t *testing.T) {
	top := newTopology(t, 3, 3, nil)
	top.SetFieldValue(4, 2.5)
	assert.Equal(t, 2.5, top.FieldValue(4))
	v, err := top.BandValue(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	top.Dispose()
	assert.PanicsWithValue(t, grid.ErrDisposed, func() { top.CellAt(pt(1, 1)) })
}
