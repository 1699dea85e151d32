package gesture

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/resize"
)

// Options tune tap-versus-pan disambiguation.
type Options struct {
	// Slop is how far (in parent units) the pointer may travel before a press
	// becomes a pan.
	Slop float64
	// MaxTap is the longest press that still counts as a tap.
	MaxTap time.Duration
}

// DefaultOptions returns conservative desktop values.
func DefaultOptions() Options {
	return Options{Slop: 4, MaxTap: 300 * time.Millisecond}
}

// Recognizer turns raw single-pointer samples (press, move, release) into the
// discrete pan stream and tap events consumed by resize.Engine.
//
// A pan begins once the pointer leaves the slop radius; its began event
// carries the press location so that grip hit-testing sees where the user
// actually pressed. A release inside the slop radius within MaxTap is a tap.
type Recognizer struct {
	sink  resize.GestureSink
	clock clockwork.Clock
	opts  Options

	pressed bool
	panning bool
	down    geometry.Point
	downAt  time.Time
}

// NewRecognizer returns a recognizer feeding sink. A nil clock uses wall time.
func NewRecognizer(sink resize.GestureSink, clock clockwork.Clock, opts Options) *Recognizer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Slop < 0 {
		opts.Slop = 0
	}
	if opts.MaxTap <= 0 {
		opts.MaxTap = DefaultOptions().MaxTap
	}
	return &Recognizer{sink: sink, clock: clock, opts: opts}
}

// Pressed reports whether the pointer is currently down.
func (r *Recognizer) Pressed() bool { return r.pressed }

// Panning reports whether a pan gesture is in progress.
func (r *Recognizer) Panning() bool { return r.panning }

// Press records a pointer-down at p (parent space). A press while already
// pressed cancels the stale gesture first.
func (r *Recognizer) Press(p geometry.Point) {
	if r.pressed {
		r.Cancel()
	}
	r.pressed = true
	r.panning = false
	r.down = p
	r.downAt = r.clock.Now()
}

// Move reports pointer motion. Motion without a press is ignored.
func (r *Recognizer) Move(p geometry.Point) {
	if !r.pressed {
		return
	}
	if !r.panning {
		if dist(r.down, p) <= r.opts.Slop {
			return
		}
		r.panning = true
		r.sink.Handle(resize.Event{Phase: resize.PhaseBegan, Parent: r.down})
	}
	r.sink.Handle(resize.Event{Phase: resize.PhaseChanged, Parent: p})
}

// Release ends the press at p, emitting either ended or a tap.
func (r *Recognizer) Release(p geometry.Point) {
	if !r.pressed {
		return
	}
	if !r.panning && dist(r.down, p) > r.opts.Slop {
		// moved without intermediate samples
		r.Move(p)
	}
	wasPanning := r.panning
	held := r.clock.Now().Sub(r.downAt)
	r.pressed, r.panning = false, false
	if wasPanning {
		r.sink.Handle(resize.Event{Phase: resize.PhaseEnded, Parent: p})
		return
	}
	if held <= r.opts.MaxTap {
		r.sink.Tap()
	}
}

// Cancel aborts the current press without a tap.
func (r *Recognizer) Cancel() {
	if !r.pressed {
		return
	}
	wasPanning := r.panning
	r.pressed, r.panning = false, false
	if wasPanning {
		r.sink.Handle(resize.Event{Phase: resize.PhaseCancelled, Parent: r.down})
	}
}

func dist(a, b geometry.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
