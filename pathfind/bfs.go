package pathfind

// walker holds the mutable state of one breadth-first search.
type walker struct {
	g        Graph
	open     []bool
	visited  []bool
	prev     []int
	queue    []int
	target   int
	expanded int
}

func newWalker(g Graph, open []bool, target int) *walker {
	n := g.Len()
	return &walker{
		g:       g,
		open:    open,
		visited: make([]bool, n),
		prev:    newPrev(n),
		queue:   make([]int, 0, n),
		target:  target,
	}
}

// walk runs a FIFO search from source, marking cells when they are queued.
// Reports whether the target was dequeued.
func (w *walker) walk(source int) bool {
	w.visited[source] = true
	w.queue = append(w.queue, source)
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		if u == w.target {
			return true
		}
		w.expanded++
		for _, v := range w.g.Neighbors(u) {
			if !w.open[v] || w.visited[v] {
				continue
			}
			w.visited[v] = true
			w.prev[v] = u
			w.queue = append(w.queue, v)
		}
	}
	return false
}
