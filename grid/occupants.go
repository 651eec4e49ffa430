package grid

import (
	"fmt"
)

// SetOccupant attaches ref to cell id, replacing any previous occupant of
// the cell and moving ref off any cell it occupied before. A nil ref clears
// the cell. ref must be comparable.
// Returns ErrCellIndex for an inactive or out-of-range id.
// Complexity: O(1).
func (g *Grid) SetOccupant(id int, ref Occupant) error {
	if !g.Active(id) {
		return fmt.Errorf("%w: %d", ErrCellIndex, id)
	}
	if prev := g.occupants[id]; prev != nil {
		delete(g.where, prev)
	}
	g.occupants[id] = ref
	if ref == nil {
		return nil
	}
	if old, ok := g.where[ref]; ok && old != id {
		g.occupants[old] = nil
	}
	g.where[ref] = id
	return nil
}

// Occupant returns the reference attached to id, or nil.
func (g *Grid) Occupant(id int) Occupant {
	g.mustLive()
	if id < 0 || id >= len(g.occupants) {
		return nil
	}
	return g.occupants[id]
}

// CellOf returns the cell ref is attached to.
func (g *Grid) CellOf(ref Occupant) (int, bool) {
	g.mustLive()
	id, ok := g.where[ref]
	return id, ok
}
