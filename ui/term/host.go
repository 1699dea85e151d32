package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"

	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/gesture"
	"github.com/soocke/gripframe/domain/resize"
	"github.com/soocke/gripframe/ui/images"
	"github.com/soocke/gripframe/ui/model"
	"github.com/soocke/gripframe/ui/presenter"
)

const frameInterval = 16 * time.Millisecond

// Options configure the terminal host. Sizes are in parent units: one unit
// per column and RowUnits per row.
type Options struct {
	Engine  resize.Options
	Gesture gesture.Options
	Region  geometry.Rect

	StrokeColor     string
	GripStrokeColor string
	GripFillColor   string
}

// DefaultOptions fit an 80x24 terminal.
func DefaultOptions() Options {
	eo := resize.DefaultOptions()
	eo.MinWidth, eo.MinHeight, eo.HitMargin = 12, 8, 4
	eo.InteractionEnabled = true
	return Options{
		Engine:          eo,
		Gesture:         gesture.Options{Slop: 1, MaxTap: 300 * time.Millisecond},
		Region:          geometry.R(4, 4, 30, 20),
		StrokeColor:     "#ff0000",
		GripStrokeColor: "#ffffff",
		GripFillColor:   "#0000ff",
	}
}

// Host runs the region engine inside a terminal. The mouse drives the
// recognizer directly; arrow keys drive a keyboard pointer as a fallback.
type Host struct {
	screen tcell.Screen
	logger *slog.Logger

	Engine *resize.Engine
	Region *presenter.RegionPresenter
	rec    *gesture.Recognizer
	keys   *presenter.KeyPointer

	grid      Grid
	styles    Styles
	scene     images.Scene
	status    string
	dirty     bool
	mouseDown bool
	keyMode   bool
}

// NewHost wires an engine to screen. The screen must already be initialised.
// A nil cue is silent and a nil clock uses wall time.
func NewHost(screen tcell.Screen, opts Options, cue Cue, clock clockwork.Clock, logger *slog.Logger) *Host {
	if cue == nil {
		cue = NopCue{}
	}
	h := &Host{
		screen: screen,
		logger: logger,
		styles: NewStyles(opts.StrokeColor, opts.GripStrokeColor, opts.GripFillColor),
	}
	h.Engine = resize.NewEngine(opts.Region, opts.Engine, logger)
	h.rec = gesture.NewRecognizer(h.Engine, clock, opts.Gesture)
	h.Region = presenter.NewRegionPresenter(h.Engine, model.NewRegionModel(h.Engine.Frame()), h, 0, logger)
	h.Region.OnGripGrab = func(resize.Zone) { cue.Play() }
	h.Engine.SetObserver(h.Region)
	h.resize()
	return h
}

// ShowScene records the scene for the next draw.
func (h *Host) ShowScene(s images.Scene) {
	h.scene = s
	h.dirty = true
}

// SetStatus records the status line for the next draw.
func (h *Host) SetStatus(s string) {
	h.status = s
	h.dirty = true
}

// Grid returns the current cell mapping.
func (h *Host) Grid() Grid { return h.grid }

// resize reattaches the engine to the terminal area above the status row.
func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.grid = Grid{Cols: cols, Rows: rows - 1}
	if h.grid.Rows < 1 {
		h.grid.Rows = 1
	}
	h.Engine.SetParent(h.grid.Bounds())
	if h.keys == nil {
		h.keys = presenter.NewKeyPointer(h.grid.Bounds(), h.rec)
	} else {
		h.keys.SetBounds(h.grid.Bounds())
	}
	h.Region.NeedsRepaint()
}

// HandleEvent applies one terminal event. It returns false when the host
// should exit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventMouse:
		h.keyMode = false
		x, y := ev.Position()
		p := h.grid.CellCenter(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !h.mouseDown:
			h.rec.Press(p)
		case down:
			h.rec.Move(p)
		case h.mouseDown:
			h.rec.Release(p)
		}
		h.mouseDown = down
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	step := func(dx, dy float64) {
		h.keyMode = true
		h.keys.Step(dx, dy)
		h.Region.NeedsRepaint()
	}
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if !h.rec.Pressed() {
			return false
		}
		h.keys.Lift()
		h.rec.Cancel()
	case tcell.KeyLeft:
		step(-1, 0)
	case tcell.KeyRight:
		step(1, 0)
	case tcell.KeyUp:
		step(0, -RowUnits)
	case tcell.KeyDown:
		step(0, RowUnits)
	case tcell.KeyEnter:
		h.keyMode = true
		h.keys.Click()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			h.keyMode = true
			h.keys.Toggle()
		case 'a':
			h.Engine.SetAspectLock(!h.Engine.AspectLocked())
			h.Region.NeedsRepaint()
		case 't':
			h.Engine.Tap()
		case 'q':
			return false
		}
	}
	return true
}

// Draw repaints the screen if the presenter produced anything new.
func (h *Host) Draw() {
	h.Region.Tick()
	if !h.dirty {
		return
	}
	h.dirty = false
	h.screen.Clear()
	s := h.scene
	s.Cursor, s.ShowCursor = h.keys.Position(), h.keyMode
	DrawScene(h.screen, h.grid, s, h.styles)
	cols, rows := h.screen.Size()
	DrawStatus(h.screen, rows-1, cols, h.status, h.styles)
	h.screen.Show()
}

// Run polls events and redraws until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Draw()
		}
	}
}

var _ presenter.RegionView = (*Host)(nil)
