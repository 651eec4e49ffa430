package pathfind

import (
	"container/heap"
	"math"
)

// runner holds the mutable state of one Dijkstra, A* or jump point search.
type runner struct {
	g         Graph
	open      []bool
	target    int
	weights   map[int]float64 // nil when unweighted
	maxDim    float64
	heuristic bool

	cost     []float64
	prev     []int
	pq       nodePQ
	seq      int
	expanded int

	dirs []direction // jump point search only
}

func newRunner(g Graph, open []bool, q Query) *runner {
	n := g.Len()
	r := &runner{
		g:      g,
		open:   open,
		target: q.Target,
		maxDim: g.MaxCellDimension(),
		cost:   make([]float64, n),
		prev:   newPrev(n),
		pq:     make(nodePQ, 0, n),
	}
	if q.Pass.mode == PassWeighted {
		r.weights = q.Pass.weights
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
	}
	heap.Init(&r.pq)
	return r
}

// push records cost c for id and queues it.
func (r *runner) push(id int, c float64) {
	pri := c
	if r.heuristic {
		pri += r.g.Distance(id, r.target)
	}
	heap.Push(&r.pq, &nodeItem{id: id, cost: c, priority: pri, seq: r.seq})
	r.seq++
}

// loop pops cells until the target is reached or the frontier empties,
// calling expand on every fresh cell.
func (r *runner) loop(source int, expand func(u int)) bool {
	r.cost[source] = 0
	r.push(source, 0)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// skip entries made stale by a cheaper push
		if item.cost > r.cost[item.id] {
			continue
		}
		if item.id == r.target {
			return true
		}
		r.expanded++
		expand(item.id)
	}
	return false
}

// search is Dijkstra, or A* when r.heuristic is set.
func (r *runner) search(source int) bool {
	return r.loop(source, r.relax)
}

// relax tries to improve every passable neighbor of u.
func (r *runner) relax(u int) {
	for _, v := range r.g.Neighbors(u) {
		if !r.open[v] {
			continue
		}
		nc := r.cost[u] + r.step(u, v)
		if nc < r.cost[v] {
			r.cost[v] = nc
			r.prev[v] = u
			r.push(v, nc)
		}
	}
}

// step is the cost of moving from u to its neighbor v.
func (r *runner) step(u, v int) float64 {
	if r.weights == nil {
		return r.g.Distance(u, v)
	}
	w := r.weights[v]
	if r.g.Distance(u, v) > r.maxDim {
		w += math.SmallestNonzeroFloat64
	}
	return w
}
