package resize

import (
	"github.com/soocke/gripframe/domain/geometry"
)

// Zone enumerates the hotzones a gesture can start in.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneTopLeft
	ZoneTopRight
	ZoneBottomLeft
	ZoneBottomRight
	ZoneCenter
)

func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneTopLeft:
		return "top-left"
	case ZoneTopRight:
		return "top-right"
	case ZoneBottomLeft:
		return "bottom-left"
	case ZoneBottomRight:
		return "bottom-right"
	case ZoneCenter:
		return "center"
	default:
		return "unknown"
	}
}

// IsCorner reports whether z is one of the four resize grips.
func (z Zone) IsCorner() bool {
	return z == ZoneTopLeft || z == ZoneTopRight || z == ZoneBottomLeft || z == ZoneBottomRight
}

// Phase is the discrete state of a pointer gesture as delivered by the host recognizer.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event is one step of a pan gesture.
//
// Parent must be a parent-space point. Local is optional: when it is not tagged
// geometry.SpaceLocal the engine derives it from Parent and the region's current frame.
type Event struct {
	Phase  Phase
	Parent geometry.Point
	Local  geometry.Point
}

// Observer receives notifications from the Engine. Every frame passed is the
// region's frame after the step was applied.
type Observer interface {
	ResizeChanged(frame geometry.Rect)
	MoveChanged(frame geometry.Rect)
	GestureEnded(frame geometry.Rect)
	Tapped(frame geometry.Rect)
	NeedsRepaint()
}

// ObserverFuncs adapts optional callbacks to Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	OnResizeChanged func(geometry.Rect)
	OnMoveChanged   func(geometry.Rect)
	OnGestureEnded  func(geometry.Rect)
	OnTapped        func(geometry.Rect)
	OnNeedsRepaint  func()
}

func (o ObserverFuncs) ResizeChanged(r geometry.Rect) {
	if o.OnResizeChanged != nil {
		o.OnResizeChanged(r)
	}
}

func (o ObserverFuncs) MoveChanged(r geometry.Rect) {
	if o.OnMoveChanged != nil {
		o.OnMoveChanged(r)
	}
}

func (o ObserverFuncs) GestureEnded(r geometry.Rect) {
	if o.OnGestureEnded != nil {
		o.OnGestureEnded(r)
	}
}

func (o ObserverFuncs) Tapped(r geometry.Rect) {
	if o.OnTapped != nil {
		o.OnTapped(r)
	}
}

func (o ObserverFuncs) NeedsRepaint() {
	if o.OnNeedsRepaint != nil {
		o.OnNeedsRepaint()
	}
}

// Options configures a new Engine.
type Options struct {
	MinWidth           float64
	MinHeight          float64
	HitMargin          float64
	AspectLock         bool
	InteractionEnabled bool
}

// DefaultOptions mirrors the stock behaviour: 100x100 minimum, 40pt grips,
// interaction off until the user taps the region.
func DefaultOptions() Options {
	return Options{MinWidth: 100, MinHeight: 100, HitMargin: 40}
}

// Interface slices for consumers (presenters, hosts).
type GestureSink interface {
	Handle(Event)
	Tap()
}
type RegionSource interface {
	Frame() geometry.Rect
	GripsVisible() bool
}
type RegionSettings interface {
	SetInteractionEnabled(bool)
	InteractionEnabled() bool
	SetAspectLock(bool) bool
	AspectLocked() bool
	SetMinWidth(float64) bool
	SetMinHeight(float64) bool
	SetHitMargin(float64) bool
}

// EngineContract aggregate for DI.
type EngineContract interface {
	GestureSink
	RegionSource
	RegionSettings
	SetObserver(Observer)
	SetParent(geometry.Rect)
	DetachParent()
	Zone() Zone
}
