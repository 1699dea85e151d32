package presenter

import "github.com/soocke/gripframe/domain/geometry"

// KeyPointer is a keyboard-driven pointer living in parent space. Arrow keys
// move it and a toggle key presses or releases it, so the region can be
// dragged without a mouse.
type KeyPointer struct {
	Sink PointerSink

	pos    geometry.Point
	bounds geometry.Rect
	down   bool
}

// NewKeyPointer places the pointer at the centre of bounds.
func NewKeyPointer(bounds geometry.Rect, sink PointerSink) *KeyPointer {
	return &KeyPointer{Sink: sink, bounds: bounds, pos: bounds.Center()}
}

// Position returns the pointer in parent space.
func (k *KeyPointer) Position() geometry.Point {
	if k == nil {
		return geometry.Point{}
	}
	return k.pos
}

// Down reports whether the pointer is pressed.
func (k *KeyPointer) Down() bool { return k != nil && k.down }

// SetBounds changes the area the pointer is confined to.
func (k *KeyPointer) SetBounds(b geometry.Rect) {
	if k == nil {
		return
	}
	k.bounds = b
	k.moveTo(k.pos)
}

// Step moves the pointer by (dx, dy), emitting a move sample while pressed.
func (k *KeyPointer) Step(dx, dy float64) {
	if k == nil {
		return
	}
	k.moveTo(k.pos.Add(dx, dy))
	if k.down && k.Sink != nil {
		k.Sink.Move(k.pos)
	}
}

// Toggle presses the pointer if it is up and releases it otherwise.
func (k *KeyPointer) Toggle() {
	if k == nil || k.Sink == nil {
		return
	}
	if k.down {
		k.Sink.Release(k.pos)
	} else {
		k.Sink.Press(k.pos)
	}
	k.down = !k.down
}

// Click presses and releases in place.
func (k *KeyPointer) Click() {
	if k == nil || k.Sink == nil || k.down {
		return
	}
	k.Sink.Press(k.pos)
	k.Sink.Release(k.pos)
}

// Lift forgets a held press without emitting a release.
func (k *KeyPointer) Lift() {
	if k != nil {
		k.down = false
	}
}

func (k *KeyPointer) moveTo(p geometry.Point) {
	k.pos = geometry.Pt(
		geometry.Clamp(p.X, k.bounds.X, k.bounds.MaxX()),
		geometry.Clamp(p.Y, k.bounds.Y, k.bounds.MaxY()),
	)
}
