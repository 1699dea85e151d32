package view

import (
	"fmt"
	"math"

	"github.com/soocke/gripframe/domain/geometry"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// ScreenOverlay mirrors the region onto the desktop as a topmost outlined
// window, so the frame can be lined up with what it is meant to capture.
type ScreenOverlay interface {
	Toggle()
	Visible() bool
	Follow(frame geometry.Rect)
}

const overlayKey = "#008080"

type screenOverlay struct {
	win    *ToplevelWidget
	stroke string
	last   string
}

// NewScreenOverlay returns a hidden overlay drawing its border in stroke.
func NewScreenOverlay(stroke string) ScreenOverlay {
	return &screenOverlay{stroke: stroke}
}

func (v *screenOverlay) Visible() bool { return v.win != nil }

func (v *screenOverlay) Toggle() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.last = ""
		return
	}
	win := App.Toplevel(Borderwidth(2), Background(overlayKey))
	win.WmTitle("Region")
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", overlayKey)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background(v.stroke))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background(overlayKey))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background(v.stroke))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	Bind(win, "<Escape>", Command(v.Toggle))
	v.win = win
}

// Follow moves the overlay onto frame. Repeated frames are skipped.
func (v *screenOverlay) Follow(frame geometry.Rect) {
	if v.win == nil {
		return
	}
	g := formatGeometry(frame)
	if g == v.last {
		return
	}
	v.last = g
	WmGeometry(v.win.Window, g)
}

// formatGeometry renders r as a Tk "WxH+X+Y" string, snapping outward to
// whole pixels.
func formatGeometry(r geometry.Rect) string {
	x0, y0 := math.Floor(r.X), math.Floor(r.Y)
	x1, y1 := math.Ceil(r.MaxX()), math.Ceil(r.MaxY())
	w, h := int(x1-x0), int(y1-y0)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return fmt.Sprintf("%dx%d+%d+%d", w, h, int(x0), int(y0))
}
