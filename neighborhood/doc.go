// Package neighborhood computes the adjacency of grid cells for
// github.com/katalvlaran/gridspace.
//
// What:
//
//   - Four stencils: VonNeumann (4 orthogonal), Moore (8 incl. diagonals),
//     HexHorizontal and HexVertical (6, offset rows or columns).
//   - NeighborsOf(id, radius): every active cell reachable within radius
//     stencil steps, excluding the cell itself, sorted ascending.
//   - RawNeighborsIncluding(id, radius): the same set including the cell.
//   - NeighborsIndexOf(id): the fixed-order radius-1 stencil, -1 for holes.
//   - An optional cache (WithCache) memoizing radius queries; concurrent
//     misses on one key are collapsed with singleflight.
//
// Why:
//
//   - Queries, shape lookups and every path search ask the same question
//     ("who is next to cell i?") millions of times.
//   - The grid owns the cells; the strategy only needs dimensions, torus
//     wrapping and an activity predicate (the Topology interface).
//
// Complexity:
//
//   - NeighborsIndexOf: O(d), d = Degree().
//   - NeighborsOf:      O(r²·d) uncached, O(k) on a cache hit.
//
// Wrapping:
//
//   - Square stencils wrap on a torus. Hexagonal stencils ignore the torus
//     flag: offset-coordinate wrap-around is only well defined for even
//     dimensions and is not supported.
//
// Errors:
//
//   - ErrUnknownKind: the requested Kind is not one of the four stencils.
//   - ErrBadTopology: the topology reports a non-positive dimension.
package neighborhood
