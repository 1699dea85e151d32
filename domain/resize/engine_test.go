package resize

import (
	"log/slog"
	"testing"

	"github.com/soocke/gripframe/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// recorder counts observer notifications.
type recorder struct {
	resized, moved, ended, tapped, repaints int
	last                                    geometry.Rect
}

func (r *recorder) ResizeChanged(f geometry.Rect) { r.resized++; r.last = f }
func (r *recorder) MoveChanged(f geometry.Rect)   { r.moved++; r.last = f }
func (r *recorder) GestureEnded(f geometry.Rect)  { r.ended++; r.last = f }
func (r *recorder) Tapped(f geometry.Rect)        { r.tapped++; r.last = f }
func (r *recorder) NeedsRepaint()                 { r.repaints++ }

var _ Observer = (*recorder)(nil)

// newTestEngine returns an enabled engine over the standard scenario.
func newTestEngine() (*Engine, *recorder) {
	opts := DefaultOptions()
	opts.InteractionEnabled = true
	e := NewEngine(testStart, opts, discardLogger)
	e.SetParent(testParent)
	rec := &recorder{}
	e.SetObserver(rec)
	return e, rec
}

func began(x, y float64) Event   { return Event{Phase: PhaseBegan, Parent: geometry.Pt(x, y)} }
func changed(x, y float64) Event { return Event{Phase: PhaseChanged, Parent: geometry.Pt(x, y)} }
func ended() Event               { return Event{Phase: PhaseEnded} }

func TestEngine_FreeResizeScenario(t *testing.T) {
	e, rec := newTestEngine()
	// local (190,110) == parent (230,150)
	e.Handle(began(230, 150))
	if e.Zone() != ZoneBottomRight {
		t.Fatalf("expected bottom-right, got %v", e.Zone())
	}
	e.Handle(changed(280, 180))
	if got := e.Frame(); got != geometry.R(40, 40, 250, 150) {
		t.Fatalf("after +50,+30: got %+v", got)
	}
	e.Handle(changed(230-500, 150-500))
	if got := e.Frame(); got != geometry.R(40, 40, 100, 100) {
		t.Fatalf("after -500,-500: got %+v", got)
	}
	if rec.resized != 2 || rec.moved != 0 {
		t.Fatalf("notifications: resized=%d moved=%d", rec.resized, rec.moved)
	}
	e.Handle(ended())
	if e.Zone() != ZoneNone || e.Session() != nil || rec.ended != 1 {
		t.Fatalf("gesture not reset: zone=%v ended=%d", e.Zone(), rec.ended)
	}
}

func TestEngine_LocalPointSuppliedByHost(t *testing.T) {
	e, _ := newTestEngine()
	e.Handle(Event{Phase: PhaseBegan, Parent: geometry.Pt(230, 150), Local: geometry.LocalPt(5, 5)})
	if e.Zone() != ZoneTopLeft {
		t.Fatalf("host local point should drive detection, got %v", e.Zone())
	}
}

func TestEngine_AspectScenario(t *testing.T) {
	e, _ := newTestEngine()
	if !e.SetAspectLock(true) {
		t.Fatalf("aspect lock refused")
	}
	e.Handle(began(230, 150))
	e.Handle(changed(300, 210))
	want := geometry.R(40, 40, 200*170.0/120.0, 170)
	if got := e.Frame(); !geometry.ApproxEqualRect(got, want, 1e-6) {
		t.Fatalf("got %+v want %+v", got, want)
	}
	// hit the right edge twice: the memoized frame is reused verbatim
	e.Handle(changed(500, 150))
	first := e.Session().AspectClamp
	if first == nil {
		t.Fatalf("expected boundary memo")
	}
	frame := e.Frame()
	e.Handle(changed(650, 300))
	if e.Session().AspectClamp != first || e.Frame() != frame {
		t.Fatalf("memo not reused")
	}
	e.Handle(Event{Phase: PhaseCancelled})
	if e.Session() != nil {
		t.Fatalf("cancel must drop the session and its memo")
	}
}

func TestEngine_AspectLockRejectsMinimumChanges(t *testing.T) {
	e, _ := newTestEngine()
	e.SetAspectLock(true)
	before := e.Constraints()
	if e.SetMinWidth(10) || e.SetMinHeight(10) {
		t.Fatalf("minimum change accepted while locked")
	}
	if e.Constraints().MinWidth != before.MinWidth || e.Constraints().MinHeight != before.MinHeight {
		t.Fatalf("minimums changed: %+v -> %+v", before, e.Constraints())
	}
	e.SetAspectLock(false)
	if !e.SetMinWidth(10) {
		t.Fatalf("minimum change rejected after unlock")
	}
}

func TestEngine_MoveClampsAtParentEdge(t *testing.T) {
	e, rec := newTestEngine()
	e.Handle(began(140, 100))
	if e.Zone() != ZoneCenter {
		t.Fatalf("expected center, got %v", e.Zone())
	}
	e.Handle(changed(1140, 100))
	f := e.Frame()
	if f.MidX() != testParent.W-f.W/2 || f.Size() != testStart.Size() {
		t.Fatalf("expected centre pinned at %v, got frame %+v", testParent.W-f.W/2, f)
	}
	if rec.moved != 1 || rec.resized != 0 {
		t.Fatalf("notifications: moved=%d resized=%d", rec.moved, rec.resized)
	}
}

func TestEngine_MoveFollowsPointer(t *testing.T) {
	e, _ := newTestEngine()
	e.Handle(began(140, 100))
	e.Handle(changed(150, 120))
	if got := e.Frame(); got != geometry.R(50, 60, 200, 120) {
		t.Fatalf("first step: got %+v", got)
	}
	e.Handle(changed(160, 120))
	if got := e.Frame(); got != geometry.R(60, 60, 200, 120) {
		t.Fatalf("second step: got %+v", got)
	}
}

func TestEngine_DisabledIsInert(t *testing.T) {
	e, rec := newTestEngine()
	e.SetInteractionEnabled(false)
	if rec.repaints != 1 || e.GripsVisible() {
		t.Fatalf("disabling should hide grips and repaint once")
	}
	e.Handle(began(230, 150))
	e.Handle(changed(280, 180))
	if e.Session() != nil || e.Frame() != testStart || rec.resized != 0 {
		t.Fatalf("disabled engine changed state")
	}
	e.Handle(ended())
	if rec.ended != 1 {
		t.Fatalf("end is always reported")
	}
}

func TestEngine_DisableMidGestureFreezes(t *testing.T) {
	e, rec := newTestEngine()
	e.Handle(began(230, 150))
	e.SetInteractionEnabled(false)
	e.Handle(changed(280, 180))
	if e.Frame() != testStart || rec.resized != 0 {
		t.Fatalf("changed applied while disabled")
	}
}

func TestEngine_NoParentIsInert(t *testing.T) {
	opts := DefaultOptions()
	opts.InteractionEnabled = true
	e := NewEngine(testStart, opts, discardLogger)
	rec := &recorder{}
	e.SetObserver(rec)
	e.Handle(began(230, 150))
	e.Handle(changed(280, 180))
	if e.Session() != nil || e.Frame() != testStart || rec.resized != 0 {
		t.Fatalf("engine without parent must not resize")
	}
	e.SetParent(testParent)
	e.Handle(began(230, 150))
	e.DetachParent()
	e.Handle(changed(280, 180))
	if e.Frame() != testStart {
		t.Fatalf("detached engine resized")
	}
}

func TestEngine_BeganOutsideRegion(t *testing.T) {
	e, rec := newTestEngine()
	// inside the parent, outside the region: move semantics
	e.Handle(began(10, 10))
	if e.Zone() != ZoneCenter {
		t.Fatalf("expected center fallback, got %v", e.Zone())
	}
	e.Handle(ended())
	// outside the parent: inert gesture
	e.Handle(began(-50, 500))
	if e.Zone() != ZoneNone {
		t.Fatalf("expected none, got %v", e.Zone())
	}
	e.Handle(changed(100, 100))
	if e.Frame() != testStart || rec.moved != 0 || rec.resized != 0 {
		t.Fatalf("inert gesture changed the region")
	}
}

func TestEngine_TapForwarded(t *testing.T) {
	e, rec := newTestEngine()
	e.Tap()
	if rec.tapped != 1 || rec.last != testStart {
		t.Fatalf("tap not forwarded")
	}
	if e.Session() != nil {
		t.Fatalf("tap must not start a session")
	}
}

func TestEngine_NoStateLeaksBetweenGestures(t *testing.T) {
	e, _ := newTestEngine()
	e.Handle(began(230, 150))
	first := e.Session()
	e.Handle(changed(280, 180))
	e.Handle(ended())
	e.Handle(began(45, 45))
	if e.Session() == first || e.Session().ID == first.ID {
		t.Fatalf("session reused across gestures")
	}
	if e.Zone() != ZoneTopLeft || e.Session().StartRect != geometry.R(40, 40, 250, 150) {
		t.Fatalf("new session should snapshot the current frame: %+v", e.Session())
	}
}

func TestEngine_SetHitMargin(t *testing.T) {
	e, _ := newTestEngine()
	if e.SetHitMargin(-1) || e.HitMargin() != 40 {
		t.Fatalf("negative margin accepted")
	}
	if !e.SetHitMargin(0) {
		t.Fatalf("zero margin rejected")
	}
	e.Handle(began(41, 41))
	if e.Zone() != ZoneCenter {
		t.Fatalf("zero margin should disable grips, got %v", e.Zone())
	}
}

func TestNewEngine_DegenerateFrame(t *testing.T) {
	e := NewEngine(geometry.R(0, 0, 0, -3), DefaultOptions(), nil)
	if f := e.Frame(); f.W != 100 || f.H != 100 {
		t.Fatalf("degenerate frame not widened: %+v", f)
	}
}
