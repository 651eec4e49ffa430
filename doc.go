// Package gridspace is a regular-grid spatial index with neighborhood
// queries and shortest-path search, for agent simulations that live on a
// planar environment.
//
// 🚀 What is gridspace?
//
//	A small, deterministic library that brings together:
//		• Grids: square or hexagonal cells over any footprint polygon
//		• Addressing: point → cell in O(1), (col,row) → cell, torus wraparound
//		• Neighborhoods: Von Neumann, Moore, hex-horizontal, hex-vertical, cached or not
//		• Paths: breadth-first, Dijkstra, A* and jump point search
//		• Raster fields: per-cell scalar values and bands, sampled from rasters
//		• Spatial queries: nearest, k-nearest, radius and envelope searches
//
// ✨ Why gridspace?
//
//   - Cells are plain ints, so a path or a neighborhood is a []int.
//   - Results are sorted and ties are broken by insertion order: the same
//     query always returns the same answer.
//   - Absence is a value: off-grid points and unreachable targets come back
//     as ok == false or pathfind.ErrNoPath, never as a panic.
//
// Packages:
//
//	geometry/     owned or flyweight cell shapes, rectangle/hexagon builders, nearest points
//	neighborhood/ the four adjacency stencils and their cache
//	grid/         cells, addressing, raster fields, occupants, grid distance, components
//	pathfind/     BFS, Dijkstra, A*, JPS over any pathfind.Graph
//	topology/     the facade: R-tree spatial queries, shape neighborhoods, world-space paths
//	cmd/gridserve a JSON HTTP server over a topology
//
// Quick ASCII example (3×3 Moore grid, ids row-major):
//
//	0───1───2
//	│ ╲ │ ╱ │
//	3───4───5
//	│ ╱ │ ╲ │
//	6───7───8
//
// every cell of which is a radius-1 neighbor of 4.
package gridspace
