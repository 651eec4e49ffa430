// Package pathfind finds shortest paths between cells of a regular grid.
//
// Overview:
//
//   - Find runs one of four searches over any Graph (a *grid.Grid satisfies
//     it): BreadthFirst, Dijkstra, AStar or JumpPoint.
//   - A Query names the source and target cells, the Passability of the
//     other cells and the algorithm. Queries are built per call and own no
//     long-lived state.
//   - Every search shares one protocol: a predecessor array initialized to
//     -1, expansion until the target is dequeued or the frontier empties,
//     then a reverse walk from target to source.
//
// Costs:
//
//   - BreadthFirst: every edge costs 1; Path.Weight is the edge count.
//   - Dijkstra / AStar, unweighted: the Euclidean distance between cell
//     centers (the short way around on a torus).
//   - Dijkstra / AStar, weighted: the weight of the arriving cell, plus
//     math.SmallestNonzeroFloat64 when the move is longer than the largest
//     cell side (a diagonal). The extra term is numerically inert and kept
//     only for compatibility.
//   - AStar orders its frontier by cost plus the Euclidean distance to the
//     target. With arbitrary weights this heuristic is not admissible.
//   - JumpPoint: Moore square grids with unweighted passability only. It
//     prunes neighbors by the direction of arrival and jumps along straight
//     lines to the next interesting cell. Path.Cells then lists jump points.
//     On any other topology it falls back to AStar with a warning, or fails
//     with ErrJumpPointTopology under WithStrictTopology.
//
// Ties between equal priorities are broken by insertion order, so results
// are deterministic.
//
// Complexity:
//
//   - BreadthFirst: O(N·d) time, O(N) memory.
//   - Dijkstra / AStar / JumpPoint: O(N·d·log N) time, O(N·d) memory
//     (lazy decrease-key).
//
// Errors:
//
//   - ErrNoPath: the target is unreachable. This is an expected outcome.
//   - ErrCellNotFound: source or target is not an active cell.
//   - ErrNegativeWeight: a weighted passability holds a negative or NaN weight.
//   - ErrJumpPointTopology: JumpPoint requested on an unsupported grid in strict mode.
//   - ErrUnknownAlgorithm: ParseAlgorithm got an unknown name.
package pathfind
