package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/soocke/gripframe/ui/images"
)

// Canvas is the drawing subset of tcell.Screen.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Styles are the cell styles used to draw a region.
type Styles struct {
	Region tcell.Style
	Stroke tcell.Style
	Grip   tcell.Style
	Cursor tcell.Style
	Status tcell.Style
}

// NewStyles builds styles from #rrggbb colors. Unparseable colors fall back
// to the terminal default.
func NewStyles(stroke, gripStroke, gripFill string) Styles {
	base := tcell.StyleDefault
	return Styles{
		Region: base.Foreground(tcell.ColorGray),
		Stroke: base.Foreground(tcell.GetColor(stroke)),
		Grip:   base.Foreground(tcell.GetColor(gripFill)).Background(tcell.GetColor(gripStroke)),
		Cursor: base.Reverse(true),
		Status: base.Reverse(true),
	}
}

const (
	runeFill   = '░'
	runeHoriz  = '─'
	runeVert   = '│'
	runeGrip   = '●'
	runeCursor = '+'
)

// DrawScene paints the region onto c. Grips and the outline are only drawn
// while the scene's grips are visible.
func DrawScene(c Canvas, g Grid, s images.Scene, st Styles) {
	sp := g.Span(s.Frame)
	set := func(col, row int, r rune, style tcell.Style) {
		if g.Visible(col, row) {
			c.SetContent(col, row, r, nil, style)
		}
	}
	for row := sp.Row0; row <= sp.Row1; row++ {
		for col := sp.Col0; col <= sp.Col1; col++ {
			set(col, row, runeFill, st.Region)
		}
	}
	if s.GripsVisible {
		for col := sp.Col0; col <= sp.Col1; col++ {
			set(col, sp.Row0, runeHoriz, st.Stroke)
			set(col, sp.Row1, runeHoriz, st.Stroke)
		}
		for row := sp.Row0; row <= sp.Row1; row++ {
			set(sp.Col0, row, runeVert, st.Stroke)
			set(sp.Col1, row, runeVert, st.Stroke)
		}
		set(sp.Col0, sp.Row0, runeGrip, st.Grip)
		set(sp.Col1, sp.Row0, runeGrip, st.Grip)
		set(sp.Col0, sp.Row1, runeGrip, st.Grip)
		set(sp.Col1, sp.Row1, runeGrip, st.Grip)
	}
	if s.ShowCursor {
		col, row := int(s.Cursor.X), int(s.Cursor.Y/RowUnits)
		set(col, row, runeCursor, st.Cursor)
	}
}

// DrawStatus writes text on row, clipped to width cells.
func DrawStatus(c Canvas, row, width int, text string, st Styles) {
	if row < 0 {
		return
	}
	col := 0
	for _, r := range text {
		if col >= width {
			break
		}
		c.SetContent(col, row, r, nil, st.Status)
		col++
	}
}
