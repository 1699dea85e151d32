package resize

import (
	"github.com/google/uuid"

	"github.com/soocke/gripframe/domain/geometry"
)

// Session is the scratch state of one began..ended/cancelled gesture.
// It is created on began and dropped on end so nothing leaks into the next gesture.
type Session struct {
	ID               string
	StartRect        geometry.Rect
	StartTouchParent geometry.Point
	StartTouchLocal  geometry.Point
	Zone             Zone
	MinimumAnchor    geometry.Point
	AspectClamp      *geometry.Rect
	Constraints      Constraints
}

func newSession(start geometry.Rect, parentPt, localPt geometry.Point, zone Zone, c Constraints) *Session {
	s := &Session{
		ID:               uuid.NewString(),
		StartRect:        start,
		StartTouchParent: parentPt,
		StartTouchLocal:  localPt,
		Zone:             zone,
		Constraints:      c,
	}
	if zone.IsCorner() {
		s.MinimumAnchor = MinimumAnchor(start, zone, c)
	}
	return s
}

// resize computes the frame for a corner drag whose pointer is now at p.
func (s *Session) resize(p geometry.Point, parent geometry.Rect) geometry.Rect {
	if s.Constraints.AspectLock {
		var r geometry.Rect
		r, s.AspectClamp = AspectResize(s.StartRect, s.Zone, p, parent, s.Constraints, s.MinimumAnchor, s.AspectClamp)
		return r
	}
	d, _ := p.Sub(s.StartTouchParent)
	candidate := FreeCandidate(s.StartRect, s.Zone, d.X, d.Y)
	return ClampToParentAndMinimum(candidate, parent, s.StartRect, s.Constraints, s.MinimumAnchor)
}
