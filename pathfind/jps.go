package pathfind

// direction is a unit move on a square grid.
type direction struct{ dx, dy int }

var mooreDirections = []direction{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// jumpPointSearch is A* whose successors are jump points.
func (r *runner) jumpPointSearch(source int) bool {
	r.heuristic = true
	r.dirs = make([]direction, len(r.cost))
	return r.loop(source, r.expandJumps)
}

// expandJumps relaxes the jump points reachable from u along its pruned
// directions. A direction that runs into a wall without finding a jump
// point still contributes its adjacent cell.
func (r *runner) expandJumps(u int) {
	x, y := r.g.Coordinate(u)
	for _, d := range r.prune(u, x, y) {
		next, ok := r.free(x+d.dx, y+d.dy)
		if !ok {
			continue
		}
		jp, steps := r.jump(next, d)
		if jp < 0 {
			jp, steps = next, 1
		}
		nc := r.cost[u] + float64(steps)*r.g.Distance(u, next)
		if nc < r.cost[jp] {
			r.cost[jp] = nc
			r.prev[jp] = u
			r.dirs[jp] = d
			r.push(jp, nc)
		}
	}
}

// free returns the passable cell at (x,y).
func (r *runner) free(x, y int) (int, bool) {
	id, ok := r.g.IndexAt(x, y)
	if !ok || !r.open[id] {
		return -1, false
	}
	return id, true
}

func (r *runner) walkable(x, y int) bool {
	_, ok := r.free(x, y)
	return ok
}

// prune returns the natural and forced directions out of u given the
// direction it was reached by. The source keeps all eight.
func (r *runner) prune(u, x, y int) []direction {
	if r.prev[u] < 0 {
		return mooreDirections
	}
	d := r.dirs[u]
	dx, dy := d.dx, d.dy
	out := make([]direction, 0, 5)
	add := func(dx, dy int) {
		if r.walkable(x+dx, y+dy) {
			out = append(out, direction{dx, dy})
		}
	}
	switch {
	case dx != 0 && dy != 0:
		add(0, dy)
		add(dx, 0)
		add(dx, dy)
		if !r.walkable(x-dx, y) {
			add(-dx, dy)
		}
		if !r.walkable(x, y-dy) {
			add(dx, -dy)
		}
	case dy == 0:
		add(dx, 0)
		if !r.walkable(x, y+1) {
			add(dx, 1)
		}
		if !r.walkable(x, y-1) {
			add(dx, -1)
		}
	default:
		add(0, dy)
		if !r.walkable(x+1, y) {
			add(1, dy)
		}
		if !r.walkable(x-1, y) {
			add(-1, dy)
		}
	}
	return out
}

// jump walks from start (already known passable) in direction d until it
// reaches the target, a cell with a forced neighbor, or (for diagonal moves)
// a cell from which a straight jump succeeds. It returns that cell and the
// number of steps taken from the parent, or -1 when the walk leaves the
// passable area. Straight walks are bounded by the grid side and diagonal
// walks by the cell count, so torus grids terminate.
func (r *runner) jump(start int, d direction) (int, int) {
	cols, rows := r.g.Dimensions()
	limit := cols
	switch {
	case d.dx != 0 && d.dy != 0:
		limit = cols * rows
	case d.dx == 0:
		limit = rows
	}

	id := start
	for steps := 1; steps <= limit; steps++ {
		if steps > 1 {
			var ok bool
			if id, ok = r.free(r.ahead(id, d)); !ok {
				return -1, 0
			}
		}
		if id == r.target {
			return id, steps
		}
		x, y := r.g.Coordinate(id)
		if r.forced(x, y, d) {
			return id, steps
		}
		if d.dx != 0 && d.dy != 0 {
			if j, _ := r.straight(x, y, direction{d.dx, 0}); j >= 0 {
				return id, steps
			}
			if j, _ := r.straight(x, y, direction{0, d.dy}); j >= 0 {
				return id, steps
			}
		}
	}
	return -1, 0
}

// straight runs a horizontal or vertical jump starting next to (x,y).
func (r *runner) straight(x, y int, d direction) (int, int) {
	next, ok := r.free(x+d.dx, y+d.dy)
	if !ok {
		return -1, 0
	}
	return r.jump(next, d)
}

// ahead returns the coordinates one step from id in direction d.
func (r *runner) ahead(id int, d direction) (int, int) {
	x, y := r.g.Coordinate(id)
	return x + d.dx, y + d.dy
}

// forced reports whether (x,y), reached in direction d, has a neighbor that
// is only reachable optimally through it because of an adjacent wall.
func (r *runner) forced(x, y int, d direction) bool {
	dx, dy := d.dx, d.dy
	switch {
	case dx != 0 && dy != 0:
		return (r.walkable(x-dx, y+dy) && !r.walkable(x-dx, y)) ||
			(r.walkable(x+dx, y-dy) && !r.walkable(x, y-dy))
	case dx != 0:
		return (r.walkable(x+dx, y+1) && !r.walkable(x, y+1)) ||
			(r.walkable(x+dx, y-1) && !r.walkable(x, y-1))
	default:
		return (r.walkable(x+1, y+dy) && !r.walkable(x+1, y)) ||
			(r.walkable(x-1, y+dy) && !r.walkable(x-1, y))
	}
}
