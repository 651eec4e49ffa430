package grid

import (
	"fmt"
	"math"
	"slices"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
	"gonum.org/v1/gonum/floats"
)

// RasterSource supplies per-cell values for a raster-backed grid.
// Values are row-major with row 0 at the minimum Y of the footprint.
type RasterSource interface {
	Rows() int
	Cols() int
	// FieldValues returns band 0.
	FieldValues() []float64
	BandCount() int
	// Band returns band b, 0 <= b < BandCount().
	Band(b int) []float64
	// ValueAt samples band 0 at a point in the raster's own coordinates.
	ValueAt(p geom.Point) (float64, bool)
}

// Layer is an extra raster sampled at each cell's center.
type Layer struct {
	Source RasterSource
	// Reproject maps grid coordinates into the layer's coordinates; nil
	// means both share one coordinate system.
	Reproject proj.Transformer
}

// MemRaster is an in-memory RasterSource.
type MemRaster struct {
	NumCols, NumRows      int
	Origin                geom.Point
	CellWidth, CellHeight float64
	// Values is band 0; Extra holds bands 1..n-1.
	Values []float64
	Extra  [][]float64
}

func (r *MemRaster) Rows() int              { return r.NumRows }
func (r *MemRaster) Cols() int              { return r.NumCols }
func (r *MemRaster) FieldValues() []float64 { return r.Values }
func (r *MemRaster) BandCount() int         { return 1 + len(r.Extra) }

// Band returns band b, or nil when b is out of range.
func (r *MemRaster) Band(b int) []float64 {
	switch {
	case b == 0:
		return r.Values
	case b > 0 && b <= len(r.Extra):
		return r.Extra[b-1]
	}
	return nil
}

// ValueAt samples band 0 at p.
func (r *MemRaster) ValueAt(p geom.Point) (float64, bool) {
	if r.CellWidth <= 0 || r.CellHeight <= 0 {
		return 0, false
	}
	col := int(math.Floor((p.X - r.Origin.X) / r.CellWidth))
	row := int(math.Floor((p.Y - r.Origin.Y) / r.CellHeight))
	if col < 0 || col >= r.NumCols || row < 0 || row >= r.NumRows {
		return 0, false
	}
	i := row*r.NumCols + col
	if i >= len(r.Values) {
		return 0, false
	}
	return r.Values[i], true
}

// Bounds returns the extent of the raster, usable as a grid footprint.
func (r *MemRaster) Bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: r.Origin,
		Max: geom.Point{
			X: r.Origin.X + float64(r.NumCols)*r.CellWidth,
			Y: r.Origin.Y + float64(r.NumRows)*r.CellHeight,
		},
	}
}

// FromRaster builds a grid with the raster's dimensions over fp and loads
// its field values and bands.
// Returns ErrRasterShape if any band does not hold cols×rows values.
// Complexity: O(N×bands).
func FromRaster(fp Footprint, src RasterSource, opts ...Option) (*Grid, error) {
	g, err := New(fp, src.Cols(), src.Rows(), opts...)
	if err != nil {
		return nil, err
	}
	if err := g.loadField(src); err != nil {
		return nil, err
	}
	for b := 1; b < src.BandCount(); b++ {
		band := src.Band(b)
		if len(band) != len(g.cells) {
			return nil, fmt.Errorf("%w: band %d has %d values, want %d", ErrRasterShape, b, len(band), len(g.cells))
		}
		g.bands = append(g.bands, slices.Clone(band))
	}
	return g, nil
}

// FromRasters builds a grid from primary (band 0) and samples every layer
// at each active cell's center, reprojected through the layer's
// transformer. Layer j becomes band j+1; cells without a sample hold NaN.
// Complexity: O(N×layers).
func FromRasters(fp Footprint, primary RasterSource, layers []Layer, opts ...Option) (*Grid, error) {
	g, err := New(fp, primary.Cols(), primary.Rows(), opts...)
	if err != nil {
		return nil, err
	}
	if err := g.loadField(primary); err != nil {
		return nil, err
	}
	for j, l := range layers {
		band := make([]float64, len(g.cells))
		for id, c := range g.cells {
			band[id] = math.NaN()
			if c == nil {
				continue
			}
			p := c.Geometry.Center()
			if l.Reproject != nil {
				x, y, err := l.Reproject(p.X, p.Y)
				if err != nil {
					return nil, fmt.Errorf("grid: reproject cell %d for layer %d: %w", id, j, err)
				}
				p = geom.Point{X: x, Y: y}
			}
			if v, ok := l.Source.ValueAt(p); ok {
				band[id] = v
			}
		}
		g.bands = append(g.bands, band)
	}
	g.log.Debug("raster layers sampled", "layers", len(layers), "bands", len(g.bands))
	return g, nil
}

func (g *Grid) loadField(src RasterSource) error {
	vals := src.FieldValues()
	if len(vals) != len(g.cells) {
		return fmt.Errorf("%w: %d values for %d×%d", ErrRasterShape, len(vals), g.cols, g.rows)
	}
	copy(g.values, vals)
	return nil
}

// FieldValue returns the scalar field of cell id; out-of-range ids read 0.
func (g *Grid) FieldValue(id int) float64 {
	g.mustLive()
	if id < 0 || id >= len(g.values) {
		return 0
	}
	return g.values[id]
}

// SetFieldValue sets the scalar field of cell id; out-of-range ids are ignored.
func (g *Grid) SetFieldValue(id int, v float64) {
	g.mustLive()
	if id < 0 || id >= len(g.values) {
		return
	}
	g.values[id] = v
}

// FieldValueAt returns the field of the active cell at (col,row).
func (g *Grid) FieldValueAt(col, row int) (float64, bool) {
	id, ok := g.IndexAt(col, row)
	if !ok {
		return 0, false
	}
	return g.values[id], true
}

// FieldData returns a copy of the field, indexed by cell id.
func (g *Grid) FieldData() []float64 {
	g.mustLive()
	return slices.Clone(g.values)
}

// BandCount returns the number of bands; band 0 is the scalar field.
func (g *Grid) BandCount() int {
	g.mustLive()
	return len(g.bands)
}

// BandValue returns band b of cell id.
func (g *Grid) BandValue(id, b int) (float64, error) {
	g.mustLive()
	if b < 0 || b >= len(g.bands) {
		return 0, fmt.Errorf("%w: %d", ErrBandIndex, b)
	}
	if id < 0 || id >= len(g.cells) {
		return 0, fmt.Errorf("%w: %d", ErrCellIndex, id)
	}
	return g.bands[b][id], nil
}

// Band returns a copy of band b.
func (g *Grid) Band(b int) ([]float64, error) {
	g.mustLive()
	if b < 0 || b >= len(g.bands) {
		return nil, fmt.Errorf("%w: %d", ErrBandIndex, b)
	}
	return slices.Clone(g.bands[b]), nil
}

// BandStats summarizes the non-NaN values of band b over active cells.
// Complexity: O(N).
func (g *Grid) BandStats(b int) (Stats, error) {
	g.mustLive()
	if b < 0 || b >= len(g.bands) {
		return Stats{}, fmt.Errorf("%w: %d", ErrBandIndex, b)
	}
	vals := make([]float64, 0, g.activeCount)
	for id, c := range g.cells {
		if c != nil && !math.IsNaN(g.bands[b][id]) {
			vals = append(vals, g.bands[b][id])
		}
	}
	if len(vals) == 0 {
		return Stats{}, nil
	}
	return Stats{
		Count: len(vals),
		Min:   floats.Min(vals),
		Max:   floats.Max(vals),
		Mean:  floats.Sum(vals) / float64(len(vals)),
	}, nil
}
