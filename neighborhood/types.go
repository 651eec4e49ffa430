package neighborhood

import (
	"errors"
	"fmt"
)

// Sentinel errors for neighborhood construction.
var (
	// ErrUnknownKind indicates an unsupported stencil kind.
	ErrUnknownKind = errors.New("neighborhood: unknown neighborhood kind")
	// ErrBadTopology indicates a topology with a non-positive dimension.
	ErrBadTopology = errors.New("neighborhood: topology must have positive dimensions")
)

// Kind selects the adjacency stencil.
type Kind int

const (
	// VonNeumann uses 4-directional connectivity: N, E, S, W.
	VonNeumann Kind = iota
	// Moore uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Moore
	// HexHorizontal connects flat-topped hexagons laid out in offset columns.
	HexHorizontal
	// HexVertical connects pointy-topped hexagons laid out in offset rows.
	HexVertical
)

// String returns the stencil name.
func (k Kind) String() string {
	switch k {
	case VonNeumann:
		return "von-neumann"
	case Moore:
		return "moore"
	case HexHorizontal:
		return "hex-horizontal"
	case HexVertical:
		return "hex-vertical"
	}
	return "unknown"
}

// ParseKind maps a String name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := VonNeumann; k <= HexVertical; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return VonNeumann, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Hexagonal reports whether k is one of the hexagonal stencils.
func (k Kind) Hexagonal() bool { return k == HexHorizontal || k == HexVertical }

// Degree returns the number of radius-1 neighbors of an interior cell.
func (k Kind) Degree() int {
	switch k {
	case VonNeumann:
		return 4
	case Moore:
		return 8
	case HexHorizontal, HexVertical:
		return 6
	}
	return 0
}

// Topology is what a Strategy needs to know about the grid.
// Cells are numbered row-major: id = row*cols + col.
type Topology interface {
	// Dimensions returns the number of columns and rows.
	Dimensions() (cols, rows int)
	// Torus reports whether square stencils wrap around the edges.
	Torus() bool
	// Active reports whether the cell exists (lies in the footprint).
	Active(id int) bool
}

// Strategy answers adjacency queries for one grid.
// Implementations are safe for concurrent use.
type Strategy interface {
	Kind() Kind
	Degree() int
	NeighborsOf(id, radius int) []int
	RawNeighborsIncluding(id, radius int) []int
	NeighborsIndexOf(id int) []int
	Clear()
}

// Options configures New.
type Options struct {
	// Cache memoizes NeighborsOf / RawNeighborsIncluding results per (id, radius).
	Cache bool
}

// Option mutates Options.
type Option func(*Options)

// WithCache enables or disables the neighbor cache.
func WithCache(on bool) Option {
	return func(o *Options) { o.Cache = on }
}

// DefaultOptions returns Options with caching enabled.
func DefaultOptions() Options {
	return Options{Cache: true}
}
