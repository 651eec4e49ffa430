package pathfind_test

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/neighborhood"
	"github.com/katalvlaran/gridspace/pathfind"
)

var all = []pathfind.Algorithm{pathfind.BreadthFirst, pathfind.Dijkstra, pathfind.AStar, pathfind.JumpPoint}

// unitGrid builds a cols×rows grid of 1×1 cells.
func unitGrid(t testing.TB, cols, rows int, opts ...grid.Option) *grid.Grid {
	t.Helper()
	fp := &geom.Bounds{Max: geom.Point{X: float64(cols), Y: float64(rows)}}
	g, err := grid.New(fp, cols, rows, opts...)
	require.NoError(t, err)
	return g
}

// openExcept passes every cell of g except the listed ones.
func openExcept(g *grid.Grid, closed ...int) pathfind.Passability {
	s := mapset.New[int]()
	for _, id := range g.ActiveCells() {
		s.Put(id)
	}
	for _, id := range closed {
		s.Remove(id)
	}
	return pathfind.OpenSet(s)
}

func TestCornerToCorner_VonNeumann(t *testing.T) {
	g := unitGrid(t, 10, 10)
	weights := map[pathfind.Algorithm]float64{}
	for _, alg := range []pathfind.Algorithm{pathfind.BreadthFirst, pathfind.Dijkstra, pathfind.AStar} {
		t.Run(alg.String(), func(t *testing.T) {
			p, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 99, Algorithm: alg})
			require.NoError(t, err)
			assert.Equal(t, 18, p.Edges())
			assert.Equal(t, 0, p.Cells[0])
			assert.Equal(t, 99, p.Cells[len(p.Cells)-1])
			assert.Equal(t, alg, p.Algorithm)
			assertContiguous(t, g, p.Cells)
			weights[alg] = p.Weight
		})
	}
	assert.Equal(t, 18.0, weights[pathfind.BreadthFirst])
	assert.InDelta(t, weights[pathfind.Dijkstra], weights[pathfind.AStar], 1e-9)
	assert.InDelta(t, 18.0, weights[pathfind.Dijkstra], 1e-9)
}

func assertContiguous(t *testing.T, g *grid.Grid, cells []int) {
	t.Helper()
	for i := 1; i < len(cells); i++ {
		assert.Contains(t, g.Neighbors(cells[i-1]), cells[i], "step %d", i)
	}
}

func TestNoPath(t *testing.T) {
	g := unitGrid(t, 6, 6, grid.WithConnectivity(neighborhood.Moore))
	for _, alg := range all {
		t.Run(alg.String()+"/target closed", func(t *testing.T) {
			_, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 35, Pass: openExcept(g, 35), Algorithm: alg})
			assert.ErrorIs(t, err, pathfind.ErrNoPath)
		})
		t.Run(alg.String()+"/walled off", func(t *testing.T) {
			// column 3 closed top to bottom
			pass := openExcept(g, 3, 9, 15, 21, 27, 33)
			_, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 5, Pass: pass, Algorithm: alg})
			assert.ErrorIs(t, err, pathfind.ErrNoPath)
		})
	}
}

func TestJumpPointMatchesAStar(t *testing.T) {
	g := unitGrid(t, 10, 10, grid.WithConnectivity(neighborhood.Moore))
	wall := openExcept(g, 5, 15, 25, 35, 45, 55, 65, 75) // column 5, rows 0..7
	cases := []struct {
		name           string
		source, target int
		pass           pathfind.Passability
	}{
		{"diagonal", 0, 99, pathfind.Unrestricted()},
		{"knight-ish", 0, 59, pathfind.Unrestricted()},
		{"straight", 30, 39, pathfind.Unrestricted()},
		{"reverse", 97, 2, pathfind.Unrestricted()},
		{"around a wall", 0, 9, wall},
		{"around a wall reverse", 19, 10, wall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			astar, err := pathfind.Find(g, pathfind.Query{Source: tc.source, Target: tc.target, Pass: tc.pass, Algorithm: pathfind.AStar})
			require.NoError(t, err)
			jps, err := pathfind.Find(g, pathfind.Query{Source: tc.source, Target: tc.target, Pass: tc.pass, Algorithm: pathfind.JumpPoint})
			require.NoError(t, err)
			assert.Equal(t, pathfind.JumpPoint, jps.Algorithm)
			assert.InDelta(t, astar.Weight, jps.Weight, 1e-9)
			assert.Equal(t, tc.source, jps.Cells[0])
			assert.Equal(t, tc.target, jps.Cells[len(jps.Cells)-1])
		})
	}
}

func TestTrivialPath(t *testing.T) {
	g := unitGrid(t, 4, 4, grid.WithConnectivity(neighborhood.Moore))
	for _, alg := range all {
		for _, id := range g.ActiveCells() {
			p, err := pathfind.Find(g, pathfind.Query{Source: id, Target: id, Algorithm: alg})
			require.NoError(t, err)
			assert.Equal(t, []int{id, id}, p.Cells)
			assert.Equal(t, 0.0, p.Weight)
		}
	}
}

func TestWeighted(t *testing.T) {
	// 0 1 2
	// 3 4 5
	// 6 7 8
	g := unitGrid(t, 3, 3)
	w := map[int]float64{0: 1, 1: 1, 2: 1, 3: 1, 4: 10, 5: 1, 6: 1, 7: 1, 8: 1}
	for _, alg := range []pathfind.Algorithm{pathfind.Dijkstra, pathfind.AStar} {
		p, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 8, Pass: pathfind.Weighted(w), Algorithm: alg})
		require.NoError(t, err)
		assert.Equal(t, 4.0, p.Weight, alg.String())
		assert.NotContains(t, p.Cells, 4, alg.String())
	}

	// cells without a weight are impassable
	delete(w, 1)
	delete(w, 3)
	_, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 8, Pass: pathfind.Weighted(w), Algorithm: pathfind.Dijkstra})
	assert.ErrorIs(t, err, pathfind.ErrNoPath)

	w[3] = -1
	_, err = pathfind.Find(g, pathfind.Query{Source: 0, Target: 8, Pass: pathfind.Weighted(w)})
	assert.ErrorIs(t, err, pathfind.ErrNegativeWeight)
}

func TestWeightedDiagonalTermIsInert(t *testing.T) {
	g := unitGrid(t, 3, 3, grid.WithConnectivity(neighborhood.Moore))
	w := map[int]float64{0: 1, 4: 1}
	p, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 4, Pass: pathfind.Weighted(w), Algorithm: pathfind.Dijkstra})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, p.Cells)
	assert.Equal(t, 1.0, p.Weight)
}

func TestJumpPointFallback(t *testing.T) {
	vn := unitGrid(t, 5, 5)
	p, err := pathfind.Find(vn, pathfind.Query{Source: 0, Target: 24, Algorithm: pathfind.JumpPoint})
	require.NoError(t, err)
	assert.Equal(t, pathfind.AStar, p.Algorithm)
	assert.InDelta(t, 8.0, p.Weight, 1e-9)

	_, err = pathfind.Find(vn, pathfind.Query{Source: 0, Target: 24, Algorithm: pathfind.JumpPoint}, pathfind.WithStrictTopology())
	assert.ErrorIs(t, err, pathfind.ErrJumpPointTopology)

	moore := unitGrid(t, 5, 5, grid.WithConnectivity(neighborhood.Moore))
	w := map[int]float64{0: 1, 6: 1, 12: 1}
	p, err = pathfind.Find(moore, pathfind.Query{Source: 0, Target: 12, Pass: pathfind.Weighted(w), Algorithm: pathfind.JumpPoint})
	require.NoError(t, err)
	assert.Equal(t, pathfind.AStar, p.Algorithm)
	assert.Equal(t, []int{0, 6, 12}, p.Cells)
}

func TestTorusShortcut(t *testing.T) {
	g := unitGrid(t, 10, 10, grid.WithTorus())
	for _, alg := range []pathfind.Algorithm{pathfind.BreadthFirst, pathfind.Dijkstra, pathfind.AStar} {
		p, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 9, Algorithm: alg})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 9}, p.Cells, alg.String())
	}
	moore := unitGrid(t, 10, 10, grid.WithTorus(), grid.WithConnectivity(neighborhood.Moore))
	p, err := pathfind.Find(moore, pathfind.Query{Source: 0, Target: 99, Algorithm: pathfind.JumpPoint})
	require.NoError(t, err)
	assert.InDelta(t, 1.4142135623730951, p.Weight, 1e-9)
}

func TestInvalidCells(t *testing.T) {
	g := unitGrid(t, 3, 3)
	_, err := pathfind.Find(g, pathfind.Query{Source: -1, Target: 4})
	assert.ErrorIs(t, err, pathfind.ErrCellNotFound)
	_, err = pathfind.Find(g, pathfind.Query{Source: 0, Target: 9})
	assert.ErrorIs(t, err, pathfind.ErrCellNotFound)
	_, err = pathfind.Find(nil, pathfind.Query{})
	assert.ErrorIs(t, err, pathfind.ErrNilGraph)
}

func TestSourceNeedNotBePassable(t *testing.T) {
	g := unitGrid(t, 3, 1)
	p, err := pathfind.Find(g, pathfind.Query{Source: 0, Target: 2, Pass: pathfind.Open(1, 2), Algorithm: pathfind.BreadthFirst})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, p.Cells)
}

func TestDeterministic(t *testing.T) {
	g := unitGrid(t, 12, 12, grid.WithConnectivity(neighborhood.Moore))
	for _, alg := range all {
		q := pathfind.Query{Source: 3, Target: 140, Algorithm: alg}
		first, err := pathfind.Find(g, q)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := pathfind.Find(g, q)
			require.NoError(t, err)
			assert.Equal(t, first.Cells, again.Cells, alg.String())
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want pathfind.Algorithm
	}{
		{"BF", pathfind.BreadthFirst},
		{"Dijkstra", pathfind.Dijkstra},
		{"A*", pathfind.AStar},
		{"JPS", pathfind.JumpPoint},
		{"", pathfind.AStar},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := pathfind.ParseAlgorithm(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			if tc.in != "" {
				assert.Equal(t, tc.in, got.String())
			}
		})
	}
	_, err := pathfind.ParseAlgorithm("bogus")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}
