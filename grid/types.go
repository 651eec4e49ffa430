package grid

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/geometry"
	"github.com/katalvlaran/gridspace/neighborhood"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive column or row count.
	ErrBadDimensions = errors.New("grid: columns and rows must be positive")
	// ErrEmptyFootprint indicates a nil footprint or one with a zero-area envelope.
	ErrEmptyFootprint = errors.New("grid: footprint must have a non-empty envelope")
	// ErrRasterShape indicates raster values that do not match the grid dimensions.
	ErrRasterShape = errors.New("grid: raster values do not match columns×rows")
	// ErrBandIndex indicates a band index outside [0, BandCount()).
	ErrBandIndex = errors.New("grid: band index out of range")
	// ErrCellIndex indicates a cell id that is out of range or inactive.
	ErrCellIndex = errors.New("grid: no such cell")
	// ErrDisposed is the panic value of any call on a disposed grid.
	ErrDisposed = errors.New("grid: use of disposed grid")
)

// Footprint is the environment shape the grid is laid over. Its bounding
// box defines the grid extent.
type Footprint = geom.Polygonal

// Occupant is an opaque reference attached to a cell. It must be comparable;
// the grid never inspects it.
type Occupant = any

// Cell is an active grid cell.
type Cell struct {
	ID       int
	Col, Row int
	Geometry geometry.Geometry
}

// Options configures New.
type Options struct {
	// Connectivity selects the neighborhood; hexagonal kinds build a hex grid.
	Connectivity neighborhood.Kind
	// Torus wraps square grids around both axes.
	Torus bool
	// Flyweight shares one template geometry between unclipped cells.
	Flyweight bool
	// PartialCells activates cells that merely intersect the footprint.
	PartialCells bool
	// NeighborCache memoizes neighborhood queries.
	NeighborCache bool
	// Logger receives construction diagnostics.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithConnectivity selects the square neighborhood (VonNeumann or Moore) or,
// with a hexagonal kind, a hexagonal grid.
func WithConnectivity(k neighborhood.Kind) Option {
	return func(o *Options) { o.Connectivity = k }
}

// WithHexagon builds a hexagonal grid: flat-topped cells in offset columns
// when horizontal, pointy-topped cells in offset rows otherwise.
func WithHexagon(horizontal bool) Option {
	return func(o *Options) {
		if horizontal {
			o.Connectivity = neighborhood.HexHorizontal
		} else {
			o.Connectivity = neighborhood.HexVertical
		}
	}
}

// WithTorus makes a square grid wrap around its edges.
func WithTorus() Option {
	return func(o *Options) { o.Torus = true }
}

// WithFlyweight shares a single template shape between cells.
func WithFlyweight() Option {
	return func(o *Options) { o.Flyweight = true }
}

// WithPartialCells keeps cells that only partly overlap the footprint,
// clipped to the overlap.
func WithPartialCells() Option {
	return func(o *Options) { o.PartialCells = true }
}

// WithNeighborCache enables or disables the neighborhood cache.
func WithNeighborCache(on bool) Option {
	return func(o *Options) { o.NeighborCache = on }
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with defaults:
// Von Neumann connectivity, bounded, individually owned shapes, whole cells
// only, neighbor cache on, logs discarded.
func DefaultOptions() Options {
	return Options{
		Connectivity:  neighborhood.VonNeumann,
		NeighborCache: true,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Stats summarizes the finite values of a band over active cells.
type Stats struct {
	Count    int
	Min, Max float64
	Mean     float64
}
