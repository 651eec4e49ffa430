package pathfind

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridspace/neighborhood"
)

// Sentinel errors for pathfinding.
var (
	// ErrNoPath indicates that the target is unreachable through passable cells.
	ErrNoPath = errors.New("pathfind: no path between source and target")
	// ErrNilGraph indicates a nil Graph.
	ErrNilGraph = errors.New("pathfind: graph is nil")
	// ErrCellNotFound indicates a source or target that is not an active cell.
	ErrCellNotFound = errors.New("pathfind: cell not found")
	// ErrNegativeWeight indicates a negative or NaN cell weight.
	ErrNegativeWeight = errors.New("pathfind: negative cell weight")
	// ErrJumpPointTopology indicates jump point search on a grid other than an
	// unweighted Moore square grid, in strict mode.
	ErrJumpPointTopology = errors.New("pathfind: jump point search needs an unweighted Moore square grid")
	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Graph is the grid view the searches need.
type Graph interface {
	// Len returns the size of the id space.
	Len() int
	// Dimensions returns the number of columns and rows.
	Dimensions() (cols, rows int)
	// Active reports whether id is an existing cell.
	Active(id int) bool
	// Neighbors returns the radius-1 neighbors of id.
	Neighbors(id int) []int
	// Coordinate returns the (col,row) of id.
	Coordinate(id int) (col, row int)
	// IndexAt returns the active cell at (col,row), wrapping on a torus.
	IndexAt(col, row int) (int, bool)
	// Distance returns the Euclidean distance between two cell centers.
	Distance(a, b int) float64
	// MaxCellDimension returns max(cellWidth, cellHeight).
	MaxCellDimension() float64
	// Connectivity returns the neighborhood kind.
	Connectivity() neighborhood.Kind
}

// Algorithm selects a search strategy. The zero value is AStar.
type Algorithm int

const (
	// AStar is Dijkstra ordered by cost plus Euclidean distance to the target.
	AStar Algorithm = iota
	// Dijkstra expands cells by accumulated cost.
	Dijkstra
	// BreadthFirst expands cells by edge count.
	BreadthFirst
	// JumpPoint is jump point search on Moore square grids.
	JumpPoint
)

// String returns the conventional short name.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "A*"
	case Dijkstra:
		return "Dijkstra"
	case BreadthFirst:
		return "BF"
	case JumpPoint:
		return "JPS"
	}
	return "unknown"
}

// ParseAlgorithm maps "BF", "Dijkstra", "A*" or "JPS" to an Algorithm.
// The empty string selects AStar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", "A*":
		return AStar, nil
	case "Dijkstra":
		return Dijkstra, nil
	case "BF":
		return BreadthFirst, nil
	case "JPS":
		return JumpPoint, nil
	}
	return AStar, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// PassMode tags the three Passability forms.
type PassMode int

const (
	// PassAll lets every active cell through.
	PassAll PassMode = iota
	// PassOpen lets only listed cells through.
	PassOpen
	// PassWeighted lets only weighted cells through, at their weight.
	PassWeighted
)

// Passability restricts which cells a path may enter. The zero value is
// Unrestricted.
type Passability struct {
	mode    PassMode
	open    mapset.Set[int]
	weights map[int]float64
}

// Unrestricted lets every active cell through.
func Unrestricted() Passability { return Passability{mode: PassAll} }

// Open lets only the given cells through.
func Open(ids ...int) Passability {
	s := mapset.New[int]()
	for _, id := range ids {
		s.Put(id)
	}
	return Passability{mode: PassOpen, open: s}
}

// OpenSet lets only the members of s through.
func OpenSet(s mapset.Set[int]) Passability { return Passability{mode: PassOpen, open: s} }

// Weighted lets only the keys of w through; entering a cell costs its weight.
func Weighted(w map[int]float64) Passability { return Passability{mode: PassWeighted, weights: w} }

// Mode returns the passability form.
func (p Passability) Mode() PassMode { return p.mode }

// mask expands p into a per-id flag slice, dropping inactive ids.
func (p Passability) mask(g Graph) []bool {
	n := g.Len()
	open := make([]bool, n)
	mark := func(id int) {
		if id >= 0 && id < n && g.Active(id) {
			open[id] = true
		}
	}
	switch p.mode {
	case PassOpen:
		p.open.Each(mark)
	case PassWeighted:
		for id := range p.weights {
			mark(id)
		}
	default:
		for id := 0; id < n; id++ {
			mark(id)
		}
	}
	return open
}

// Query is one path request.
type Query struct {
	Source, Target int
	Pass           Passability
	Algorithm      Algorithm
}

// Path is a search result.
type Path struct {
	// Cells runs from source to target. A source equal to the target yields
	// the two-element path [source, source].
	Cells []int
	// Weight is the edge count (BreadthFirst) or the accumulated cost.
	Weight float64
	// Algorithm is the search that actually ran, after any fallback.
	Algorithm Algorithm
	// Expanded counts the cells taken off the frontier and expanded.
	Expanded int
}

// Edges returns the number of moves along the path.
func (p *Path) Edges() int { return len(p.Cells) - 1 }

// Options configures Find.
type Options struct {
	// StrictTopology turns the JumpPoint fallback into ErrJumpPointTopology.
	StrictTopology bool
	// Logger receives fallback warnings and search diagnostics.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithStrictTopology rejects JumpPoint requests the grid cannot serve.
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

// DefaultOptions returns Options with fallback enabled and logs discarded.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
