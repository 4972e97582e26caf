// Package dem reads ESRI float grids (a hdr/flt file pair) from a zip
// archive or a directory.
package dem

import (
	"github.com/paulmach/orb"
)

// Grid represents a parsed ESRI float grid. Points are stored row-major,
// starting with the top row.
type Grid struct {
	Rows, Cols uint64
	CellSize   float64
	XLowerLeft float64
	YLowerLeft float64
	Points     []float32
	MinHeight  float32
	MaxHeight  float32
}

// Dims returns the dimensions of the grid.
func (grid Grid) Dims() (c, r uint64) {
	return grid.Cols, grid.Rows
}

// Z returns the height of the cell at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (grid Grid) Z(c, r uint64) float32 {
	if c >= grid.Cols || r >= grid.Rows {
		panic("dem: cell out of bounds")
	}
	return grid.Points[r*grid.Cols+c]
}

// X returns the coordinate of the center of column c.
func (grid Grid) X(c uint64) float64 {
	return grid.XLowerLeft + (float64(c)+0.5)*grid.CellSize
}

// Y returns the coordinate of the center of row r. Row 0 is the top row.
func (grid Grid) Y(r uint64) float64 {
	return grid.YLowerLeft + (float64(grid.Rows-r)-0.5)*grid.CellSize
}

// Point returns the center of the cell at (c, r).
func (grid Grid) Point(c, r uint64) orb.Point {
	return orb.Point{grid.X(c), grid.Y(r)}
}

// Bound returns the georeferenced extent covered by all cells.
func (grid Grid) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{grid.XLowerLeft, grid.YLowerLeft},
		Max: orb.Point{
			grid.XLowerLeft + float64(grid.Cols)*grid.CellSize,
			grid.YLowerLeft + float64(grid.Rows)*grid.CellSize,
		},
	}
}
