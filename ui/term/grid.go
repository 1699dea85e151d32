package term

import (
	"math"

	"github.com/soocke/gripframe/domain/geometry"
)

// RowUnits is how many parent units one terminal row spans. Cells are about
// twice as tall as they are wide, so rows count double to keep the region's
// geometry roughly square on screen.
const RowUnits = 2

// Grid maps a terminal of Cols x Rows cells onto parent space.
type Grid struct {
	Cols, Rows int
}

// Bounds is the parent rectangle covered by the terminal.
func (g Grid) Bounds() geometry.Rect {
	return geometry.R(0, 0, float64(g.Cols), float64(g.Rows*RowUnits))
}

// CellCenter returns the parent-space point at the middle of a cell.
func (g Grid) CellCenter(col, row int) geometry.Point {
	return geometry.Pt(float64(col)+0.5, float64(row*RowUnits)+RowUnits/2.0)
}

// CellSpan is an inclusive range of cells.
type CellSpan struct {
	Col0, Row0, Col1, Row1 int
}

// Span returns the cells whose centres fall inside r. A rectangle thinner
// than a cell still covers the cell under its centre line.
func (g Grid) Span(r geometry.Rect) CellSpan {
	s := CellSpan{
		Col0: int(math.Round(r.X)),
		Row0: int(math.Round(r.Y / RowUnits)),
		Col1: int(math.Round(r.MaxX())) - 1,
		Row1: int(math.Round(r.MaxY()/RowUnits)) - 1,
	}
	if s.Col1 < s.Col0 {
		s.Col1 = s.Col0
	}
	if s.Row1 < s.Row0 {
		s.Row1 = s.Row0
	}
	return s
}

// Visible reports whether the cell lies on the terminal.
func (g Grid) Visible(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}
