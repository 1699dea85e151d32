package presenter

import (
	"log/slog"

	"github.com/soocke/gripframe/domain/action"
	"github.com/soocke/gripframe/domain/geometry"
)

// PointerSink receives raw pointer samples, typically a gesture.Recognizer.
type PointerSink interface {
	Press(geometry.Point)
	Move(geometry.Point)
	Release(geometry.Point)
}

// PointerFollower polls a global cursor source and converts button edges and
// motion into raw samples for the recognizer. Screen pixels are parent space.
type PointerFollower struct {
	Source action.CursorSource
	Sink   PointerSink
	Logger *slog.Logger

	enabled bool
	wasDown bool
	last    action.CursorState
	warned  bool
}

// NewPointerFollower constructs a disabled follower.
func NewPointerFollower(src action.CursorSource, sink PointerSink, logger *slog.Logger) *PointerFollower {
	if src == nil {
		src = action.Cursor
	}
	return &PointerFollower{Source: src, Sink: sink, Logger: logger}
}

// Enabled reports whether polling is active.
func (f *PointerFollower) Enabled() bool { return f != nil && f.enabled }

// SetEnabled starts or stops following. Stopping mid-drag releases at the
// last known position so the gesture is closed.
func (f *PointerFollower) SetEnabled(on bool) {
	if f == nil || f.enabled == on {
		return
	}
	if !on && f.wasDown && f.Sink != nil {
		f.Sink.Release(geometry.Pt(float64(f.last.X), float64(f.last.Y)))
	}
	f.enabled = on
	f.wasDown = false
}

// Poll takes one cursor sample.
func (f *PointerFollower) Poll() {
	if f == nil || !f.enabled || f.Source == nil || f.Sink == nil {
		return
	}
	s, ok := f.Source()
	if !ok {
		if !f.warned && f.Logger != nil {
			f.Logger.Warn("global pointer unavailable on this platform")
			f.warned = true
		}
		return
	}
	p := geometry.Pt(float64(s.X), float64(s.Y))
	switch {
	case s.Down && !f.wasDown:
		f.Sink.Press(p)
	case s.Down && (s.X != f.last.X || s.Y != f.last.Y):
		f.Sink.Move(p)
	case !s.Down && f.wasDown:
		f.Sink.Release(p)
	}
	f.wasDown = s.Down
	f.last = s
}
