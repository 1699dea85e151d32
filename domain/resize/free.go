package resize

import "github.com/soocke/gripframe/domain/geometry"

// FreeCandidate applies a drag delta to the edges owned by zone. The two edges
// opposite the dragged corner stay where they were in start. The result may be
// inverted or out of bounds; callers clamp it.
func FreeCandidate(start geometry.Rect, zone Zone, dx, dy float64) geometry.Rect {
	switch zone {
	case ZoneTopLeft:
		return geometry.R(start.X+dx, start.Y+dy, start.W-dx, start.H-dy)
	case ZoneTopRight:
		return geometry.R(start.X, start.Y+dy, start.W+dx, start.H-dy)
	case ZoneBottomLeft:
		return geometry.R(start.X+dx, start.Y, start.W-dx, start.H+dy)
	case ZoneBottomRight:
		return geometry.R(start.X, start.Y, start.W+dx, start.H+dy)
	default:
		return start
	}
}

// MinimumAnchor returns the origin the region takes when it is shrunk to the
// minimum size while dragging zone: the corner opposite zone stays put.
// Non-corner zones anchor at start's origin.
func MinimumAnchor(start geometry.Rect, zone Zone, c Constraints) geometry.Point {
	switch zone {
	case ZoneTopLeft:
		return geometry.Pt(start.MaxX()-c.MinWidth, start.MaxY()-c.MinHeight)
	case ZoneTopRight:
		return geometry.Pt(start.X, start.MaxY()-c.MinHeight)
	case ZoneBottomLeft:
		return geometry.Pt(start.MaxX()-c.MinWidth, start.Y)
	default:
		return geometry.Pt(start.X, start.Y)
	}
}

// ClampToParentAndMinimum keeps candidate inside parent and at or above the
// minimum size. Boundary clamps run first, then the minimum clamps, so a
// rectangle that violates both ends up at the minimum size on anchor.
//
// Crossing the parent's left (top) edge pins the edge there and sets the width
// (height) to what start reaches when stretched exactly to that edge.
func ClampToParentAndMinimum(candidate, parent, start geometry.Rect, c Constraints, anchor geometry.Point) geometry.Rect {
	r := candidate
	if r.X < parent.X {
		r.W = start.W + (start.X - parent.X)
		r.X = parent.X
	}
	if r.X+r.W > parent.MaxX() {
		r.W = parent.MaxX() - r.X
	}
	if r.Y < parent.Y {
		r.H = start.H + (start.Y - parent.Y)
		r.Y = parent.Y
	}
	if r.Y+r.H > parent.MaxY() {
		r.H = parent.MaxY() - r.Y
	}
	if r.W <= c.MinWidth {
		r.W = c.MinWidth
		r.X = anchor.X
	}
	if r.H <= c.MinHeight {
		r.H = c.MinHeight
		r.Y = anchor.Y
	}
	return r
}
