package topology

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridspace/grid"
	"github.com/katalvlaran/gridspace/pathfind"
)

// ErrNilGrid indicates New was given a nil grid.
var ErrNilGrid = errors.New("topology: grid is nil")

// Filter selects occupants in NeighborsOfShape. A nil Filter accepts all.
type Filter func(ref grid.Occupant) bool

// Route is a path in world coordinates.
type Route struct {
	// Waypoints are the source point, the centers of the intermediate
	// cells and the target point.
	Waypoints []geom.Point
	// Cells are the cell ids visited, source cell first.
	Cells []int
	// Weight is the path weight reported by the search.
	Weight float64
	// Algorithm is the search that ran.
	Algorithm pathfind.Algorithm
}

// Options configures New.
type Options struct {
	// StrictTopology makes ShortestPath fail instead of falling back when
	// jump point search cannot run on the grid.
	StrictTopology bool
	// Logger receives query diagnostics; it is also handed to pathfind.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithStrictTopology forwards pathfind.WithStrictTopology to every search.
func WithStrictTopology() Option {
	return func(o *Options) { o.StrictTopology = true }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with logs discarded.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
