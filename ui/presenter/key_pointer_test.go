package presenter

import (
	"testing"

	"github.com/soocke/gripframe/domain/geometry"
)

func TestKeyPointer_StepClampsToBounds(t *testing.T) {
	k := NewKeyPointer(geometry.R(0, 0, 100, 50), &sampleSink{})
	if k.Position() != geometry.Pt(50, 25) {
		t.Fatalf("start: %+v", k.Position())
	}
	k.Step(500, -500)
	if k.Position() != geometry.Pt(100, 0) {
		t.Fatalf("clamped: %+v", k.Position())
	}
	k.SetBounds(geometry.R(0, 0, 40, 40))
	if k.Position() != geometry.Pt(40, 0) {
		t.Fatalf("rebounded: %+v", k.Position())
	}
}

func TestKeyPointer_DragSequence(t *testing.T) {
	sink := &sampleSink{}
	k := NewKeyPointer(geometry.R(0, 0, 100, 100), sink)
	k.Step(1, 0) // up: no sample
	k.Toggle()
	k.Step(10, 0)
	k.Toggle()
	k.Click()
	want := []string{"press", "move", "release", "press", "release"}
	if len(sink.log) != len(want) {
		t.Fatalf("got %v want %v", sink.log, want)
	}
	for i := range want {
		if sink.log[i] != want[i] {
			t.Fatalf("got %v want %v", sink.log, want)
		}
	}
}

func TestKeyPointer_ClickIgnoredWhileDown(t *testing.T) {
	sink := &sampleSink{}
	k := NewKeyPointer(geometry.R(0, 0, 100, 100), sink)
	k.Toggle()
	k.Click()
	if len(sink.log) != 1 || !k.Down() {
		t.Fatalf("click during drag: %v", sink.log)
	}
	k.Lift()
	if k.Down() || len(sink.log) != 1 {
		t.Fatalf("lift must not emit: %v", sink.log)
	}
}
