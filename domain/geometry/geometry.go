package geometry

import "math"

// Space tags the coordinate space a Point is expressed in.
type Space int

const (
	// SpaceParent is the coordinate space of the container the region lives in.
	SpaceParent Space = iota
	// SpaceLocal is relative to the region's own top-left corner.
	SpaceLocal
)

func (s Space) String() string {
	switch s {
	case SpaceParent:
		return "parent"
	case SpaceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Point is a real-valued coordinate tagged with its space.
type Point struct {
	X, Y  float64
	Space Space
}

// Pt returns a parent-space point.
func Pt(x, y float64) Point { return Point{X: x, Y: y, Space: SpaceParent} }

// LocalPt returns a region-local point.
func LocalPt(x, y float64) Point { return Point{X: x, Y: y, Space: SpaceLocal} }

// Sub returns p-q. ok is false when the points live in different spaces.
func (p Point) Sub(q Point) (d Point, ok bool) {
	if p.Space != q.Space {
		return Point{}, false
	}
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Space: p.Space}, true
}

// Add returns p translated by (dx, dy) in p's own space.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy, Space: p.Space}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in parent space.
// X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Origin returns the top-left corner as a parent-space point.
func (r Rect) Origin() Point { return Pt(r.X, r.Y) }

// Center returns the centre as a parent-space point.
func (r Rect) Center() Point { return Pt(r.MidX(), r.MidY()) }

// Bounds returns the rectangle in its own local space: origin zero, same size.
func (r Rect) Bounds() Rect { return Rect{W: r.W, H: r.H} }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r, edges included.
// p is interpreted in whatever space r is expressed in.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsRect reports whether o lies fully inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Inset shrinks the rectangle by dx on both horizontal sides and dy on both
// vertical sides. Negative values grow it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Translate moves the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// WithCenter returns r moved so that its centre is c.
func (r Rect) WithCenter(c Point) Rect {
	return Rect{X: c.X - r.W/2, Y: c.Y - r.H/2, W: r.W, H: r.H}
}

// Intersect returns the overlap of r and o, or the zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x := math.Max(r.X, o.X)
	y := math.Max(r.Y, o.Y)
	w := math.Min(r.MaxX(), o.MaxX()) - x
	h := math.Min(r.MaxY(), o.MaxY()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// ToLocal converts a parent-space point into r's local space.
// Points already local are returned unchanged.
func (r Rect) ToLocal(p Point) Point {
	if p.Space == SpaceLocal {
		return p
	}
	return LocalPt(p.X-r.X, p.Y-r.Y)
}

// ToParent converts a local point of r into parent space.
func (r Rect) ToParent(p Point) Point {
	if p.Space == SpaceParent {
		return p
	}
	return Pt(p.X+r.X, p.Y+r.Y)
}

// Clamp limits v to [lo, hi]. When the range is inverted the midpoint wins.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

// ApproxEqualRect compares every component with ApproxEqual.
func ApproxEqualRect(a, b Rect, eps float64) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps) &&
		ApproxEqual(a.W, b.W, eps) && ApproxEqual(a.H, b.H, eps)
}
