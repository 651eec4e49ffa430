// Package topology is the facade the rest of a simulation talks to: it
// answers world-coordinate questions about a grid.Grid and delegates
// paths to package pathfind.
//
// What:
//
//   - Addressing: CellAt, IndexAt and NeighborsOf pass through to the grid.
//   - Spatial queries: Nearest, KNearest, WithinDistance and InEnvelope run
//     against an R-tree of cell bounding boxes built once by New.
//   - Shape neighborhoods: NeighborCellsOfShape and NeighborsOfShape. A
//     point or a cell-shaped polygon uses the neighborhood of its cell; any
//     other shape uses the union of the neighborhoods of every cell it
//     touches, minus those cells.
//   - ClosestAccepted searches outward ring by ring for the nearest cell a
//     predicate accepts.
//   - ShortestPath resolves two points to cells, runs pathfind.Find and
//     returns waypoints in world coordinates.
//   - Distance is the grid metric between two shapes.
//
// Absence is never an error: off-grid points and unreachable targets come
// back as ok == false.
//
// Complexity:
//
//   - New: O(N log N). Nearest/KNearest: O(log N + k) expected.
//   - NeighborCellsOfShape: O(c·r²) for c touched cells and radius r.
package topology
