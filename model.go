package spritetool

import (
	"image"
	"math"
	"path/filepath"
	"strings"
)

// Icon is a single input file.
// Width and Height are known once the icon has been decoded.
type Icon struct {
	Path   string
	Width  int
	Height int
}

// Name is the lookup key for the icon, the file name without extension.
func (i Icon) Name() string {
	return Stem(i.Path)
}

// Placement describes where one icon lives within the sheet.
type Placement struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Rect returns the area covered by the icon in sheet coordinates.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Grid is the cell arrangement of a sheet.
// All cells have the same size.
type Grid struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
}

// GridFor returns the smallest near-square grid with room for n cells.
//
//	columns = ceil(sqrt(n))
//	rows    = ceil(n / columns)
//
// If n is not a perfect square, there are at least as many columns as rows.
// The cell size is left at zero.
func GridFor(n int) Grid {
	if n <= 0 {
		return Grid{}
	}

	// integer correction of the float estimate
	cols := int(math.Sqrt(float64(n)))
	for cols*cols < n {
		cols++
	}
	for cols > 1 && (cols-1)*(cols-1) >= n {
		cols--
	}
	rows := (n + cols - 1) / cols

	return Grid{Columns: cols, Rows: rows}
}

// WithCell returns a copy of the grid with the given cell size.
func (g Grid) WithCell(width, height int) Grid {
	g.CellWidth = width
	g.CellHeight = height
	return g
}

// Capacity is the number of cells in the grid.
func (g Grid) Capacity() int {
	return g.Columns * g.Rows
}

// Cell returns the top-left pixel of the cell at index i.
// Cells are numbered row by row, left to right.
func (g Grid) Cell(i int) image.Point {
	col := i % g.Columns
	row := i / g.Columns
	return image.Pt(col*g.CellWidth, row*g.CellHeight)
}

// Size returns the pixel dimensions of a sheet for this grid.
func (g Grid) Size() image.Point {
	return image.Pt(g.CellWidth*g.Columns, g.CellHeight*g.Rows)
}

// Bounds returns the sheet rectangle, anchored at the origin.
func (g Grid) Bounds() image.Rectangle {
	return image.Rectangle{Max: g.Size()}
}

// Stem returns the file name from path without its extension.
// Only the last extension is removed ("a.b.png" => "a.b").
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
