package resize

import (
	"math"

	"github.com/soocke/gripframe/domain/geometry"
)

// ComputeScale returns the width- and height-implied scale factors for a touch
// at p (parent space), measured from the corner opposite zone.
func ComputeScale(start geometry.Rect, zone Zone, p geometry.Point) (ws, hs float64) {
	if start.IsEmpty() {
		return 1, 1
	}
	switch zone {
	case ZoneTopLeft:
		ws = (start.MaxX() - p.X) / start.W
		hs = (start.MaxY() - p.Y) / start.H
	case ZoneTopRight:
		ws = (p.X - start.X) / start.W
		hs = (start.MaxY() - p.Y) / start.H
	case ZoneBottomLeft:
		ws = (start.MaxX() - p.X) / start.W
		hs = (p.Y - start.Y) / start.H
	case ZoneBottomRight:
		ws = (p.X - start.X) / start.W
		hs = (p.Y - start.Y) / start.H
	default:
		return 1, 1
	}
	return ws, hs
}

// AspectCandidate scales start uniformly by s, keeping the corner opposite
// zone fixed.
func AspectCandidate(start geometry.Rect, zone Zone, s float64) geometry.Rect {
	w, h := start.W*s, start.H*s
	switch zone {
	case ZoneTopLeft:
		return geometry.R(start.MaxX()-w, start.MaxY()-h, w, h)
	case ZoneTopRight:
		return geometry.R(start.X, start.MaxY()-h, w, h)
	case ZoneBottomLeft:
		return geometry.R(start.MaxX()-w, start.Y, w, h)
	case ZoneBottomRight:
		return geometry.R(start.X, start.Y, w, h)
	default:
		return start
	}
}

// fitScale is the largest uniform scale at which the rectangle, growing away
// from the corner opposite zone, still fits inside parent.
func fitScale(start, parent geometry.Rect, zone Zone) float64 {
	var ax, ay float64
	switch zone {
	case ZoneTopLeft:
		ax, ay = start.MaxX()-parent.X, start.MaxY()-parent.Y
	case ZoneTopRight:
		ax, ay = parent.MaxX()-start.X, start.MaxY()-parent.Y
	case ZoneBottomLeft:
		ax, ay = start.MaxX()-parent.X, parent.MaxY()-start.Y
	default:
		ax, ay = parent.MaxX()-start.X, parent.MaxY()-start.Y
	}
	return math.Min(ax/start.W, ay/start.H)
}

// AspectResize computes the aspect-locked frame for a touch at p.
//
// The larger of the two axis scales is applied to both axes. Once the
// candidate would leave parent, the first in-bounds boundary frame is stored in
// the returned memo and handed back unchanged for as long as the boundary stays
// exceeded; a candidate back inside parent drops the memo. The minimum clamp
// runs last.
func AspectResize(start geometry.Rect, zone Zone, p geometry.Point, parent geometry.Rect, c Constraints, anchor geometry.Point, memo *geometry.Rect) (geometry.Rect, *geometry.Rect) {
	if !zone.IsCorner() || start.IsEmpty() {
		return start, nil
	}
	ws, hs := ComputeScale(start, zone, p)
	s := math.Max(ws, hs)
	var r geometry.Rect
	if limit := fitScale(start, parent, zone); s > limit {
		if memo == nil {
			m := AspectCandidate(start, zone, limit)
			memo = &m
		}
		r = *memo
	} else {
		memo = nil
		r = AspectCandidate(start, zone, s)
	}
	return clampAspectMinimum(r, c, anchor), memo
}

// clampAspectMinimum snaps both axes to the minimum together so the ratio
// survives the clamp.
func clampAspectMinimum(r geometry.Rect, c Constraints, anchor geometry.Point) geometry.Rect {
	if r.W <= c.MinWidth || r.H <= c.MinHeight {
		return geometry.R(anchor.X, anchor.Y, c.MinWidth, c.MinHeight)
	}
	return r
}
