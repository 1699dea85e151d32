package model

import (
	"time"

	"github.com/soocke/gripframe/domain/geometry"
)

// GestureKind classifies what the last gesture step did.
type GestureKind int

const (
	GestureIdle GestureKind = iota
	GestureResize
	GestureMove
)

func (k GestureKind) String() string {
	switch k {
	case GestureResize:
		return "resizing"
	case GestureMove:
		return "moving"
	default:
		return "idle"
	}
}

// RegionModel mirrors the engine's observable state for the view: the last
// reported frame, a pending-repaint flag and gesture statistics.
// It is decoupled from the UI; presenters read it on their tick.
// The zero value is ready to use.
type RegionModel struct {
	frame   geometry.Rect
	kind    GestureKind
	dirty   bool
	steps   int
	gesture int
	taps    int

	active      bool
	gestureFrom time.Time
	lastDrag    time.Duration
	totalDrag   time.Duration
}

// NewRegionModel returns a model seeded with frame and marked dirty so the
// first tick paints it.
func NewRegionModel(frame geometry.Rect) *RegionModel {
	return &RegionModel{frame: frame, dirty: true}
}

// OnStep records a resize or move step.
func (m *RegionModel) OnStep(kind GestureKind, frame geometry.Rect, now time.Time) {
	if m == nil {
		return
	}
	if !m.active { // idle -> dragging
		m.active = true
		m.gestureFrom = now
		m.lastDrag = 0
	}
	m.lastDrag = now.Sub(m.gestureFrom)
	m.kind = kind
	m.frame = frame
	m.steps++
}

// OnEnded closes the current gesture. Gestures that never stepped are still counted.
func (m *RegionModel) OnEnded(frame geometry.Rect, now time.Time) {
	if m == nil {
		return
	}
	if m.active {
		m.lastDrag = now.Sub(m.gestureFrom)
		m.totalDrag += m.lastDrag
		m.active = false
	}
	m.kind = GestureIdle
	m.frame = frame
	m.gesture++
}

// OnTap counts a tap.
func (m *RegionModel) OnTap() {
	if m == nil {
		return
	}
	m.taps++
}

// Invalidate marks the scene as needing a repaint.
func (m *RegionModel) Invalidate() {
	if m == nil {
		return
	}
	m.dirty = true
}

// TakeDirty reports and clears the repaint flag.
func (m *RegionModel) TakeDirty() bool {
	if m == nil {
		return false
	}
	d := m.dirty
	m.dirty = false
	return d
}

func (m *RegionModel) Frame() geometry.Rect {
	if m == nil {
		return geometry.Rect{}
	}
	return m.frame
}

func (m *RegionModel) Kind() GestureKind {
	if m == nil {
		return GestureIdle
	}
	return m.kind
}

// Counts returns the number of steps, finished gestures and taps seen.
func (m *RegionModel) Counts() (steps, gestures, taps int) {
	if m == nil {
		return 0, 0, 0
	}
	return m.steps, m.gesture, m.taps
}

// Durations returns the last gesture's drag time and the accumulated total,
// which includes the ongoing gesture.
func (m *RegionModel) Durations() (last, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	last = m.lastDrag
	total = m.totalDrag
	if m.active {
		total += last
	}
	return
}
