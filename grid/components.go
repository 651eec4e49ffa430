package grid

// Components finds the connected regions of accepted active cells under
// radius-1 adjacency. A nil accept accepts every active cell.
// Regions are discovered in ascending order of their lowest id; each region
// lists its cells in breadth-first order from that id.
//
// Time:   O(N·d).
// Memory: O(N) for visited flags and output.
func (g *Grid) Components(accept func(id int) bool) [][]int {
	g.mustLive()
	seen := make([]bool, len(g.cells))
	ok := func(id int) bool {
		return g.cells[id] != nil && (accept == nil || accept(id))
	}
	var comps [][]int

	for i0 := range g.cells {
		if seen[i0] || !ok(i0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.strategy.NeighborsOf(queue[qi], 1) {
				if !seen[v] && ok(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
