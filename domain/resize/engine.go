package resize

import (
	"log/slog"
	"math"

	"github.com/soocke/gripframe/domain/geometry"
)

// Engine owns a region and turns a pan gesture stream into frame updates.
//
// Engine is not safe for concurrent use; hosts deliver events from their
// single UI loop.
type Engine struct {
	logger      *slog.Logger
	frame       geometry.Rect
	parent      geometry.Rect
	hasParent   bool
	constraints Constraints
	hitMargin   float64
	enabled     bool
	session     *Session
	observer    Observer
}

// NewEngine places a region at frame. A degenerate frame is widened to the
// minimum size. The region stays inert until SetParent is called.
func NewEngine(frame geometry.Rect, opts Options, logger *slog.Logger) *Engine {
	e := &Engine{
		logger:      logger,
		constraints: NewConstraints(opts.MinWidth, opts.MinHeight),
		hitMargin:   opts.HitMargin,
		enabled:     opts.InteractionEnabled,
	}
	if e.hitMargin < 0 {
		e.hitMargin = 0
	}
	if frame.W <= 0 {
		frame.W = e.constraints.MinWidth
	}
	if frame.H <= 0 {
		frame.H = e.constraints.MinHeight
	}
	e.frame = frame
	if opts.AspectLock {
		e.constraints.Lock(frame)
	}
	return e
}

// SetObserver replaces the single observer. Nil detaches it.
func (e *Engine) SetObserver(o Observer) { e.observer = o }

// SetParent attaches the region to a container with the given bounds.
func (e *Engine) SetParent(bounds geometry.Rect) {
	e.parent = bounds
	e.hasParent = true
}

// DetachParent removes the container; gestures become no-ops.
func (e *Engine) DetachParent() {
	e.hasParent = false
	e.session = nil
}

// Parent returns the container bounds and whether one is attached.
func (e *Engine) Parent() (geometry.Rect, bool) { return e.parent, e.hasParent }

// Frame returns the region's current frame in parent space.
func (e *Engine) Frame() geometry.Rect { return e.frame }

// Constraints returns a copy of the current constraint policy.
func (e *Engine) Constraints() Constraints { return e.constraints }

// HitMargin returns the grip hit-test margin.
func (e *Engine) HitMargin() float64 { return e.hitMargin }

// Zone returns the active zone, ZoneNone when idle.
func (e *Engine) Zone() Zone {
	if e.session == nil {
		return ZoneNone
	}
	return e.session.Zone
}

// Session exposes the active gesture session, nil when idle. Callers must not mutate it.
func (e *Engine) Session() *Session { return e.session }

// GripsVisible reports whether grip handles should be drawn.
func (e *Engine) GripsVisible() bool { return e.enabled }

func (e *Engine) InteractionEnabled() bool { return e.enabled }

// SetInteractionEnabled toggles gesture handling and grip visibility.
func (e *Engine) SetInteractionEnabled(on bool) {
	if e.enabled == on {
		return
	}
	e.enabled = on
	if e.logger != nil {
		e.logger.Debug("interaction toggled", "enabled", on)
	}
	e.repaint()
}

func (e *Engine) AspectLocked() bool { return e.constraints.AspectLock }

// SetAspectLock enables or disables the aspect lock. Enabling re-derives the
// minimum size from the current frame. A running gesture keeps the policy it
// started with.
func (e *Engine) SetAspectLock(on bool) bool {
	if !on {
		e.constraints.Unlock()
		return true
	}
	ok := e.constraints.Lock(e.frame)
	if e.logger != nil {
		e.logger.Debug("aspect lock", "ok", ok, "ratio", e.constraints.AspectRatio,
			"min_w", e.constraints.MinWidth, "min_h", e.constraints.MinHeight)
	}
	return ok
}

// SetMinWidth changes the minimum width; rejected while aspect-locked.
func (e *Engine) SetMinWidth(v float64) bool { return e.constraints.SetMinWidth(v) }

// SetMinHeight changes the minimum height; rejected while aspect-locked.
func (e *Engine) SetMinHeight(v float64) bool { return e.constraints.SetMinHeight(v) }

// SetHitMargin changes the grip hit-test margin. Negative or NaN values are rejected.
func (e *Engine) SetHitMargin(v float64) bool {
	if !(v >= 0) || math.IsInf(v, 0) {
		return false
	}
	e.hitMargin = v
	return true
}

// Handle dispatches ev on its phase.
func (e *Engine) Handle(ev Event) {
	switch ev.Phase {
	case PhaseBegan:
		e.Began(ev)
	case PhaseChanged:
		e.Changed(ev)
	case PhaseEnded:
		e.Ended(ev)
	case PhaseCancelled:
		e.Cancelled(ev)
	}
}

// Tap forwards a tap to the observer. Taps never touch gesture state.
func (e *Engine) Tap() {
	if e.observer != nil {
		e.observer.Tapped(e.frame)
	}
}

// Began starts a gesture session. It is a no-op while interaction is disabled
// or no parent is attached.
func (e *Engine) Began(ev Event) {
	if !e.enabled || !e.hasParent {
		return
	}
	p := ev.Parent
	local := e.localOf(ev)
	zone := ZoneNone
	switch {
	case !e.parent.Contains(p):
		// outside anything we can interact with
	case !e.frame.Bounds().Contains(local):
		zone = ZoneCenter
	default:
		zone = Detect(local, e.frame.Size(), e.hitMargin)
	}
	e.session = newSession(e.frame, p, local, zone, e.constraints)
	if e.logger != nil {
		e.logger.Debug("gesture began", "session", e.session.ID, "zone", zone.String(),
			"x", p.X, "y", p.Y)
	}
}

// Changed advances the active gesture. Corner zones resize, the centre zone
// moves, anything else is ignored.
func (e *Engine) Changed(ev Event) {
	s := e.session
	if s == nil || !e.enabled || !e.hasParent {
		return
	}
	switch {
	case s.Zone.IsCorner():
		e.apply(s.resize(ev.Parent, e.parent))
		if e.observer != nil {
			e.observer.ResizeChanged(e.frame)
		}
	case s.Zone == ZoneCenter:
		local := e.localOf(ev)
		c := MovedCenter(e.frame.Center(), local.X-s.StartTouchLocal.X, local.Y-s.StartTouchLocal.Y, e.parent, e.frame.Size())
		e.apply(e.frame.WithCenter(c))
		if e.observer != nil {
			e.observer.MoveChanged(e.frame)
		}
	}
}

// Ended finishes the gesture and notifies the observer.
func (e *Engine) Ended(Event) { e.finish("ended") }

// Cancelled is observably identical to Ended.
func (e *Engine) Cancelled(Event) { e.finish("cancelled") }

func (e *Engine) finish(how string) {
	if e.session != nil && e.logger != nil {
		e.logger.Debug("gesture "+how, "session", e.session.ID, "zone", e.session.Zone.String(),
			"x", e.frame.X, "y", e.frame.Y, "w", e.frame.W, "h", e.frame.H)
	}
	e.session = nil
	if e.observer != nil {
		e.observer.GestureEnded(e.frame)
	}
}

// localOf returns ev's local point, deriving it from the parent point when
// the host did not supply one.
func (e *Engine) localOf(ev Event) geometry.Point {
	if ev.Local.Space == geometry.SpaceLocal {
		return ev.Local
	}
	return e.frame.ToLocal(ev.Parent)
}

// apply is the only writer of e.frame during gestures.
func (e *Engine) apply(r geometry.Rect) {
	if !(r.W > 0) || !(r.H > 0) {
		if e.logger != nil {
			e.logger.Warn("rejected degenerate frame", "w", r.W, "h", r.H)
		}
		return
	}
	if r == e.frame {
		return
	}
	e.frame = r
	e.repaint()
}

func (e *Engine) repaint() {
	if e.observer != nil {
		e.observer.NeedsRepaint()
	}
}

var _ EngineContract = (*Engine)(nil)
