package server

import "github.com/ctessum/geom"

// Point is a world coordinate on the wire.
type Point struct {
	X float64 `json:"x" jsonschema:"description=World x coordinate"`
	Y float64 `json:"y" jsonschema:"description=World y coordinate"`
}

func (p Point) geom() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

func fromGeom(p geom.Point) Point { return Point{X: p.X, Y: p.Y} }

// GridInfo describes the served grid.
type GridInfo struct {
	Cols         int     `json:"cols"`
	Rows         int     `json:"rows"`
	CellWidth    float64 `json:"cellWidth"`
	CellHeight   float64 `json:"cellHeight"`
	Connectivity string  `json:"connectivity"`
	Torus        bool    `json:"torus"`
	Hexagonal    bool    `json:"hexagonal"`
	ActiveCells  int     `json:"activeCells"`
	Min          Point   `json:"min"`
	Max          Point   `json:"max"`
}

// CellInfo describes one cell.
type CellInfo struct {
	ID     int     `json:"id"`
	Col    int     `json:"col"`
	Row    int     `json:"row"`
	Center Point   `json:"center"`
	Field  float64 `json:"field"`
}

// NeighborsResponse lists the neighbors of a cell.
type NeighborsResponse struct {
	ID        int   `json:"id"`
	Radius    int   `json:"radius"`
	Neighbors []int `json:"neighbors"`
}

// PathRequest asks for a shortest path between two world points.
type PathRequest struct {
	From      Point           `json:"from" jsonschema:"title=Source point,required"`
	To        Point           `json:"to" jsonschema:"title=Target point,required"`
	Algorithm string          `json:"algorithm,omitempty" jsonschema:"description=Search to run; A* when empty,enum=BF,enum=Dijkstra,enum=A*,enum=JPS"`
	Blocked   []int           `json:"blocked,omitempty" jsonschema:"description=Cell ids the path may not enter"`
	Weights   map[int]float64 `json:"weights,omitempty" jsonschema:"description=Cost of entering each passable cell; cells without a weight are impassable"`
}

// PathResponse is a found path.
type PathResponse struct {
	Cells     []int   `json:"cells"`
	Waypoints []Point `json:"waypoints"`
	Weight    float64 `json:"weight"`
	Algorithm string  `json:"algorithm"`
}

// DistanceResponse is the grid distance between two points.
type DistanceResponse struct {
	Distance float64 `json:"distance"`
}

// NearestResponse lists cells by distance from a point.
type NearestResponse struct {
	Cells []int `json:"cells"`
}
