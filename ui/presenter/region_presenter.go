package presenter

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/resize"
	"github.com/soocke/gripframe/ui/images"
	"github.com/soocke/gripframe/ui/model"
)

// RegionEngine narrows the engine contract needed by the presenter.
type RegionEngine interface {
	Frame() geometry.Rect
	Parent() (geometry.Rect, bool)
	GripsVisible() bool
	InteractionEnabled() bool
	SetInteractionEnabled(bool)
	AspectLocked() bool
	Zone() resize.Zone
}

// RegionView paints scenes and shows a one-line status.
type RegionView interface {
	ShowScene(images.Scene)
	SetStatus(string)
}

// RegionPresenter observes the engine, keeps the model current and pushes
// coalesced repaints to the view on Tick.
//
// Taps toggle interaction, which is the delegate behaviour hosts expect.
type RegionPresenter struct {
	eng      RegionEngine
	model    *model.RegionModel
	view     RegionView
	logger   *slog.Logger
	gripSize float64
	printer  *message.Printer
	now      func() time.Time

	// OnGripGrab fires on the first resize step of a gesture.
	OnGripGrab func(resize.Zone)

	grabbed bool
}

// NewRegionPresenter returns a presenter; call Attach to register it with the engine.
func NewRegionPresenter(eng RegionEngine, m *model.RegionModel, view RegionView, gripSize float64, logger *slog.Logger) *RegionPresenter {
	return &RegionPresenter{
		eng:      eng,
		model:    m,
		view:     view,
		logger:   logger,
		gripSize: gripSize,
		printer:  message.NewPrinter(language.English),
		now:      time.Now,
	}
}

func (p *RegionPresenter) ResizeChanged(f geometry.Rect) {
	if p == nil {
		return
	}
	if !p.grabbed {
		p.grabbed = true
		if p.OnGripGrab != nil && p.eng != nil {
			p.OnGripGrab(p.eng.Zone())
		}
	}
	p.model.OnStep(model.GestureResize, f, p.now())
}

func (p *RegionPresenter) MoveChanged(f geometry.Rect) {
	if p == nil {
		return
	}
	p.model.OnStep(model.GestureMove, f, p.now())
}

func (p *RegionPresenter) GestureEnded(f geometry.Rect) {
	if p == nil {
		return
	}
	p.grabbed = false
	p.model.OnEnded(f, p.now())
	p.model.Invalidate()
	if p.logger != nil {
		p.logger.Info("region", "x", f.X, "y", f.Y, "w", f.W, "h", f.H)
	}
}

func (p *RegionPresenter) Tapped(geometry.Rect) {
	if p == nil {
		return
	}
	p.model.OnTap()
	if p.eng != nil {
		p.eng.SetInteractionEnabled(!p.eng.InteractionEnabled())
	}
}

func (p *RegionPresenter) NeedsRepaint() {
	if p == nil {
		return
	}
	p.model.Invalidate()
}

// SetGripSize changes the drawn grip diameter. Non-positive sizes are ignored.
func (p *RegionPresenter) SetGripSize(size float64) {
	if p == nil || size <= 0 {
		return
	}
	p.gripSize = size
	p.model.Invalidate()
}

// Tick paints the latest scene if anything changed since the previous tick.
func (p *RegionPresenter) Tick() {
	if p == nil || p.eng == nil || p.view == nil {
		return
	}
	if !p.model.TakeDirty() {
		return
	}
	parent, ok := p.eng.Parent()
	if !ok {
		p.view.SetStatus("detached")
		return
	}
	p.view.ShowScene(images.Scene{
		Parent:       parent,
		Frame:        p.eng.Frame(),
		GripsVisible: p.eng.GripsVisible(),
		GripSize:     p.gripSize,
	})
	p.view.SetStatus(p.Status())
}

// Status formats the current region for a status line.
func (p *RegionPresenter) Status() string {
	if p == nil || p.eng == nil {
		return ""
	}
	f := p.eng.Frame()
	mode := "locked"
	if p.eng.InteractionEnabled() {
		mode = p.model.Kind().String()
	}
	aspect := ""
	if p.eng.AspectLocked() {
		aspect = " [aspect]"
	}
	_, gestures, _ := p.model.Counts()
	_, total := p.model.Durations()
	return p.printer.Sprintf("%s%s  %.0f x %.0f at (%.0f, %.0f)  gestures %d  drag %.1fs",
		mode, aspect, f.W, f.H, f.X, f.Y, gestures, total.Seconds())
}

var _ resize.Observer = (*RegionPresenter)(nil)
