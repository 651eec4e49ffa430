package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridspace/neighborhood"
)

// Find searches a path from q.Source to q.Target.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source and target must be active cells (ErrCellNotFound).
//  3. Weighted passability must not hold negative or NaN weights (ErrNegativeWeight).
//
// A source equal to the target yields [source, source] with weight 0.
// The source is always enterable; the target must be passable.
// Returns ErrNoPath when the frontier empties first.
func Find(g Graph, q Query, opts ...Option) (*Path, error) {
	// 1) Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Active(q.Source) {
		return nil, fmt.Errorf("%w: source %d", ErrCellNotFound, q.Source)
	}
	if !g.Active(q.Target) {
		return nil, fmt.Errorf("%w: target %d", ErrCellNotFound, q.Target)
	}
	if q.Pass.mode == PassWeighted {
		for id, w := range q.Pass.weights {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: cell %d weight=%g", ErrNegativeWeight, id, w)
			}
		}
	}

	// 3) Trivial path
	if q.Source == q.Target {
		return &Path{Cells: []int{q.Source, q.Source}, Algorithm: q.Algorithm}, nil
	}

	// 4) Resolve the algorithm that can actually run
	alg := q.Algorithm
	if alg == JumpPoint && (g.Connectivity() != neighborhood.Moore || q.Pass.mode == PassWeighted) {
		if o.StrictTopology {
			return nil, fmt.Errorf("%w: connectivity %s, weighted %t",
				ErrJumpPointTopology, g.Connectivity(), q.Pass.mode == PassWeighted)
		}
		o.Logger.Warn("pathfind: jump point search unavailable, falling back to A*",
			"connectivity", g.Connectivity().String(),
			"weighted", q.Pass.mode == PassWeighted)
		alg = AStar
	}

	// 5) Passable cells; the source is where we stand
	open := q.Pass.mask(g)
	if !open[q.Target] {
		return nil, ErrNoPath
	}
	open[q.Source] = true

	// 6) Run
	var (
		path *Path
		ok   bool
	)
	switch alg {
	case BreadthFirst:
		w := newWalker(g, open, q.Target)
		if ok = w.walk(q.Source); ok {
			cells := reconstruct(w.prev, q.Source, q.Target)
			path = &Path{Cells: cells, Weight: float64(len(cells) - 1), Expanded: w.expanded}
		}
	default:
		r := newRunner(g, open, q)
		switch alg {
		case JumpPoint:
			ok = r.jumpPointSearch(q.Source)
		case AStar:
			r.heuristic = true
			ok = r.search(q.Source)
		default:
			ok = r.search(q.Source)
		}
		if ok {
			path = &Path{
				Cells:    reconstruct(r.prev, q.Source, q.Target),
				Weight:   r.cost[q.Target],
				Expanded: r.expanded,
			}
		}
	}
	if !ok {
		o.Logger.Debug("pathfind: no path", "algorithm", alg.String(), "source", q.Source, "target", q.Target)
		return nil, ErrNoPath
	}
	path.Algorithm = alg
	o.Logger.Debug("pathfind: path found",
		"algorithm", alg.String(),
		"cells", len(path.Cells),
		"weight", path.Weight,
		"expanded", path.Expanded)
	return path, nil
}

// reconstruct follows prev from target back to source and reverses the walk.
// Complexity: O(path length).
func reconstruct(prev []int, source, target int) []int {
	var cells []int
	for at := target; at >= 0; at = prev[at] {
		cells = append(cells, at)
		if at == source || len(cells) > len(prev) {
			break
		}
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

func newPrev(n int) []int {
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	return prev
}
