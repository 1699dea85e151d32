package gesture

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/resize"
)

type sinkRecorder struct {
	events []resize.Event
	taps   int
}

func (s *sinkRecorder) Handle(ev resize.Event) { s.events = append(s.events, ev) }
func (s *sinkRecorder) Tap()                   { s.taps++ }

func (s *sinkRecorder) phases() []resize.Phase {
	out := make([]resize.Phase, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Phase
	}
	return out
}

func samePhases(a, b []resize.Phase) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecognizer_QuickPressIsTap(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sink := &sinkRecorder{}
	r := NewRecognizer(sink, clock, DefaultOptions())
	r.Press(geometry.Pt(10, 10))
	r.Move(geometry.Pt(12, 11)) // inside slop
	clock.Advance(100 * time.Millisecond)
	r.Release(geometry.Pt(12, 11))
	if sink.taps != 1 || len(sink.events) != 0 {
		t.Fatalf("expected a single tap, got taps=%d events=%v", sink.taps, sink.phases())
	}
}

func TestRecognizer_LongPressIsNotTap(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sink := &sinkRecorder{}
	r := NewRecognizer(sink, clock, DefaultOptions())
	r.Press(geometry.Pt(10, 10))
	clock.Advance(time.Second)
	r.Release(geometry.Pt(10, 10))
	if sink.taps != 0 || len(sink.events) != 0 {
		t.Fatalf("long press should produce nothing, got taps=%d events=%v", sink.taps, sink.phases())
	}
}

func TestRecognizer_PanStream(t *testing.T) {
	sink := &sinkRecorder{}
	r := NewRecognizer(sink, clockwork.NewFakeClock(), DefaultOptions())
	r.Press(geometry.Pt(10, 10))
	r.Move(geometry.Pt(30, 10))
	r.Move(geometry.Pt(40, 20))
	r.Release(geometry.Pt(40, 20))
	want := []resize.Phase{resize.PhaseBegan, resize.PhaseChanged, resize.PhaseChanged, resize.PhaseEnded}
	if !samePhases(sink.phases(), want) {
		t.Fatalf("got %v want %v", sink.phases(), want)
	}
	if sink.events[0].Parent != geometry.Pt(10, 10) {
		t.Fatalf("began should carry the press location, got %+v", sink.events[0].Parent)
	}
	if sink.taps != 0 {
		t.Fatalf("pan reported a tap")
	}
}

func TestRecognizer_ReleaseFarAwayWithoutMoves(t *testing.T) {
	sink := &sinkRecorder{}
	r := NewRecognizer(sink, clockwork.NewFakeClock(), DefaultOptions())
	r.Press(geometry.Pt(0, 0))
	r.Release(geometry.Pt(100, 0))
	want := []resize.Phase{resize.PhaseBegan, resize.PhaseChanged, resize.PhaseEnded}
	if !samePhases(sink.phases(), want) {
		t.Fatalf("got %v want %v", sink.phases(), want)
	}
}

func TestRecognizer_CancelAndRepress(t *testing.T) {
	sink := &sinkRecorder{}
	r := NewRecognizer(sink, clockwork.NewFakeClock(), DefaultOptions())
	r.Press(geometry.Pt(0, 0))
	r.Move(geometry.Pt(50, 0))
	r.Press(geometry.Pt(5, 5)) // stale gesture is cancelled
	want := []resize.Phase{resize.PhaseBegan, resize.PhaseChanged, resize.PhaseCancelled}
	if !samePhases(sink.phases(), want) {
		t.Fatalf("got %v want %v", sink.phases(), want)
	}
	if !r.Pressed() || r.Panning() {
		t.Fatalf("new press should be pending")
	}
	r.Cancel()
	r.Move(geometry.Pt(100, 100))
	if len(sink.events) != 3 {
		t.Fatalf("events after cancel: %v", sink.phases())
	}
}

func TestRecognizer_DrivesEngine(t *testing.T) {
	opts := resize.DefaultOptions()
	e := resize.NewEngine(geometry.R(40, 40, 200, 120), opts, nil)
	e.SetParent(geometry.R(0, 0, 400, 400))
	e.SetObserver(resize.ObserverFuncs{OnTapped: func(geometry.Rect) {
		e.SetInteractionEnabled(!e.InteractionEnabled())
	}})
	r := NewRecognizer(e, clockwork.NewFakeClock(), DefaultOptions())
	// first tap enables interaction, mirroring the demo hosts
	r.Press(geometry.Pt(100, 100))
	r.Release(geometry.Pt(100, 100))
	if !e.InteractionEnabled() {
		t.Fatalf("tap should have enabled interaction")
	}
	r.Press(geometry.Pt(230, 150))
	r.Move(geometry.Pt(280, 180))
	r.Release(geometry.Pt(280, 180))
	if got := e.Frame(); got != geometry.R(40, 40, 250, 150) {
		t.Fatalf("got %+v", got)
	}
}
