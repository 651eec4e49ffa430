// Package grid discretizes a planar footprint into a regular square or
// hexagonal grid of addressable cells.
//
// What:
//
//   - New builds cols×rows cells over the footprint's bounding box. A cell is
//     active when the footprint is a rectangle, when the footprint covers it,
//     or (WithPartialCells) when the two intersect, in which case its shape
//     is clipped to the intersection.
//   - CellAt maps a world point to a cell; IndexAt maps (col,row) to a cell,
//     wrapping on a torus. Points on the far edge of the grid are pulled back
//     by a precision of width/1000.
//   - FromRaster / FromRasters attach scalar fields and bands, optionally
//     sampling extra rasters at each reprojected cell center.
//   - Occupants attach opaque, comparable references to cells.
//   - ManhattanDistanceBetween, CellsInEnvelope and Components answer
//     grid-metric, envelope and connectivity questions.
//
// Why:
//
//   - Agent simulations need O(1) point-to-cell lookup and a uniform graph
//     for neighborhood and path queries. *Grid satisfies both
//     neighborhood.Topology and pathfind.Graph.
//
// Layout:
//
//   - Cells are row-major: id = row*cols + col, for square and hex grids.
//   - Hex horizontal grids use flat-topped cells with odd columns shifted by
//     half a cell height; hex vertical grids use pointy-topped cells with odd
//     rows shifted by half a cell width. Hex grids never wrap.
//   - WithFlyweight shares one geometry.Template between all unclipped cells.
//
// Complexity:
//
//   - New:      O(cols×rows) (plus one polygon clip per cell for irregular footprints).
//   - CellAt:   O(1) square, O(d) hex.
//   - Components: O(N×d), Memory: O(N).
//
// Errors:
//
//   - ErrBadDimensions: cols or rows not positive.
//   - ErrEmptyFootprint: nil footprint or zero-area envelope.
//   - ErrRasterShape: raster values do not match cols×rows.
//   - ErrBandIndex: band out of range.
//   - ErrCellIndex: occupant placed on a missing cell.
//   - ErrDisposed: any call after Dispose panics with this error.
package grid
