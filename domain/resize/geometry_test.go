package resize

import (
	"math"
	"testing"

	"github.com/soocke/gripframe/domain/geometry"
)

const eps = 1e-9

var (
	testParent = geometry.R(0, 0, 400, 400)
	testStart  = geometry.R(40, 40, 200, 120)
)

func TestDetect_Corners(t *testing.T) {
	size := geometry.Size{W: 200, H: 120}
	cases := []struct {
		p    geometry.Point
		want Zone
	}{
		{geometry.LocalPt(5, 5), ZoneTopLeft},
		{geometry.LocalPt(195, 5), ZoneTopRight},
		{geometry.LocalPt(5, 115), ZoneBottomLeft},
		{geometry.LocalPt(190, 110), ZoneBottomRight},
		{geometry.LocalPt(100, 60), ZoneCenter},
		{geometry.LocalPt(5, 60), ZoneCenter},  // left edge, not a corner
		{geometry.LocalPt(40, 5), ZoneCenter},  // exactly on the margin is outside
		{geometry.LocalPt(160, 80), ZoneCenter}, // 200-160 == margin
	}
	for _, c := range cases {
		if got := Detect(c.p, size, 40); got != c.want {
			t.Fatalf("Detect(%v)=%v want %v", c.p, got, c.want)
		}
	}
}

func TestDetect_OverlappingCornersTieBreak(t *testing.T) {
	size := geometry.Size{W: 50, H: 50}
	// every corner condition holds: top-left wins
	if got := Detect(geometry.LocalPt(30, 30), size, 40); got != ZoneTopLeft {
		t.Fatalf("expected top-left tie-break, got %v", got)
	}
	// left condition fails, right and both vertical hold: top-right beats bottom-right
	if got := Detect(geometry.LocalPt(45, 20), size, 40); got != ZoneTopRight {
		t.Fatalf("expected top-right, got %v", got)
	}
	// deterministic for identical input
	for i := 0; i < 10; i++ {
		if Detect(geometry.LocalPt(30, 30), size, 40) != ZoneTopLeft {
			t.Fatalf("Detect not deterministic")
		}
	}
}

func TestFreeCandidate_Formulas(t *testing.T) {
	cases := []struct {
		zone Zone
		want geometry.Rect
	}{
		{ZoneTopLeft, geometry.R(50, 45, 190, 115)},
		{ZoneTopRight, geometry.R(40, 45, 210, 115)},
		{ZoneBottomLeft, geometry.R(50, 40, 190, 125)},
		{ZoneBottomRight, geometry.R(40, 40, 210, 125)},
		{ZoneCenter, testStart},
	}
	for _, c := range cases {
		if got := FreeCandidate(testStart, c.zone, 10, 5); got != c.want {
			t.Fatalf("%v: got %+v want %+v", c.zone, got, c.want)
		}
	}
}

func TestMinimumAnchor_OppositeCorner(t *testing.T) {
	c := NewConstraints(100, 100)
	cases := map[Zone]geometry.Point{
		ZoneTopLeft:     geometry.Pt(140, 60),
		ZoneTopRight:    geometry.Pt(40, 60),
		ZoneBottomLeft:  geometry.Pt(140, 40),
		ZoneBottomRight: geometry.Pt(40, 40),
	}
	for zone, want := range cases {
		if got := MinimumAnchor(testStart, zone, c); got != want {
			t.Fatalf("%v: got %+v want %+v", zone, got, want)
		}
	}
}

func clampFree(zone Zone, dx, dy float64) geometry.Rect {
	c := NewConstraints(100, 100)
	cand := FreeCandidate(testStart, zone, dx, dy)
	return ClampToParentAndMinimum(cand, testParent, testStart, c, MinimumAnchor(testStart, zone, c))
}

func TestClamp_ParentEdges(t *testing.T) {
	// past the top-left corner of the parent: width is what reaches the edge exactly
	if got := clampFree(ZoneTopLeft, -100, -100); got != geometry.R(0, 0, 240, 160) {
		t.Fatalf("top-left overshoot: got %+v", got)
	}
	if got := clampFree(ZoneTopRight, 300, 0); got != geometry.R(40, 40, 360, 120) {
		t.Fatalf("right overshoot: got %+v", got)
	}
	if got := clampFree(ZoneBottomLeft, -10, 500); got != geometry.R(30, 40, 210, 360) {
		t.Fatalf("bottom overshoot: got %+v", got)
	}
}

func TestClamp_MinimumWinsOverBoundary(t *testing.T) {
	if got := clampFree(ZoneTopLeft, 150, 100); got != geometry.R(140, 60, 100, 100) {
		t.Fatalf("top-left shrink: got %+v", got)
	}
	// inverted candidate resolves to the minimum at the anchor
	if got := clampFree(ZoneBottomRight, -500, -500); got != geometry.R(40, 40, 100, 100) {
		t.Fatalf("bottom-right collapse: got %+v", got)
	}
}

func TestClamp_IdempotentAndContained(t *testing.T) {
	c := NewConstraints(100, 100)
	for _, zone := range []Zone{ZoneTopLeft, ZoneTopRight, ZoneBottomLeft, ZoneBottomRight} {
		anchor := MinimumAnchor(testStart, zone, c)
		for dx := -600.0; dx <= 600; dx += 37 {
			for dy := -600.0; dy <= 600; dy += 41 {
				cand := FreeCandidate(testStart, zone, dx, dy)
				once := ClampToParentAndMinimum(cand, testParent, testStart, c, anchor)
				twice := ClampToParentAndMinimum(once, testParent, testStart, c, anchor)
				if !geometry.ApproxEqualRect(once, twice, eps) {
					t.Fatalf("%v d=(%v,%v): clamp not idempotent %+v -> %+v", zone, dx, dy, once, twice)
				}
				if once.W <= 0 || once.H <= 0 {
					t.Fatalf("%v d=(%v,%v): non-positive size %+v", zone, dx, dy, once)
				}
				inside := testParent.ContainsRect(once)
				atMin := once.W == c.MinWidth && once.X == anchor.X || once.H == c.MinHeight && once.Y == anchor.Y
				if !inside && !atMin {
					t.Fatalf("%v d=(%v,%v): %+v neither inside nor anchored at minimum", zone, dx, dy, once)
				}
			}
		}
	}
}

func TestComputeScale_BottomRight(t *testing.T) {
	ws, hs := ComputeScale(testStart, ZoneBottomRight, geometry.Pt(300, 210))
	if !geometry.ApproxEqual(ws, 1.3, eps) || !geometry.ApproxEqual(hs, 170.0/120.0, eps) {
		t.Fatalf("got ws=%v hs=%v", ws, hs)
	}
}

func lockedConstraints() Constraints {
	c := NewConstraints(100, 100)
	c.Lock(testStart)
	return c
}

func TestAspectResize_PicksLargerScale(t *testing.T) {
	c := lockedConstraints()
	anchor := MinimumAnchor(testStart, ZoneBottomRight, c)
	r, memo := AspectResize(testStart, ZoneBottomRight, geometry.Pt(300, 210), testParent, c, anchor, nil)
	if memo != nil {
		t.Fatalf("no boundary was hit, memo should be nil")
	}
	want := geometry.R(40, 40, 200*170.0/120.0, 170)
	if !geometry.ApproxEqualRect(r, want, 1e-6) {
		t.Fatalf("got %+v want %+v", r, want)
	}
}

func TestAspectResize_OppositeCornerFixed(t *testing.T) {
	c := lockedConstraints()
	for _, zone := range []Zone{ZoneTopLeft, ZoneTopRight, ZoneBottomLeft} {
		anchor := MinimumAnchor(testStart, zone, c)
		var p geometry.Point
		switch zone {
		case ZoneTopLeft:
			p = geometry.Pt(20, 30)
		case ZoneTopRight:
			p = geometry.Pt(260, 30)
		case ZoneBottomLeft:
			p = geometry.Pt(20, 170)
		}
		r, _ := AspectResize(testStart, zone, p, testParent, c, anchor, nil)
		switch zone {
		case ZoneTopLeft:
			if !geometry.ApproxEqual(r.MaxX(), testStart.MaxX(), eps) || !geometry.ApproxEqual(r.MaxY(), testStart.MaxY(), eps) {
				t.Fatalf("top-left moved the bottom-right corner: %+v", r)
			}
		case ZoneTopRight:
			if !geometry.ApproxEqual(r.X, testStart.X, eps) || !geometry.ApproxEqual(r.MaxY(), testStart.MaxY(), eps) {
				t.Fatalf("top-right moved the bottom-left corner: %+v", r)
			}
		case ZoneBottomLeft:
			if !geometry.ApproxEqual(r.MaxX(), testStart.MaxX(), eps) || !geometry.ApproxEqual(r.Y, testStart.Y, eps) {
				t.Fatalf("bottom-left moved the top-right corner: %+v", r)
			}
		}
	}
}

func TestAspectResize_BoundaryMemo(t *testing.T) {
	c := lockedConstraints()
	anchor := MinimumAnchor(testStart, ZoneBottomRight, c)
	r1, memo := AspectResize(testStart, ZoneBottomRight, geometry.Pt(500, 150), testParent, c, anchor, nil)
	if memo == nil {
		t.Fatalf("expected memo after boundary hit")
	}
	if !geometry.ApproxEqualRect(r1, geometry.R(40, 40, 360, 216), 1e-6) {
		t.Fatalf("boundary frame: got %+v", r1)
	}
	first := memo
	r2, memo := AspectResize(testStart, ZoneBottomRight, geometry.Pt(700, 390), testParent, c, anchor, memo)
	if memo != first || r2 != r1 {
		t.Fatalf("memo not reused: %+v vs %+v", r2, r1)
	}
	_, memo = AspectResize(testStart, ZoneBottomRight, geometry.Pt(300, 210), testParent, c, anchor, memo)
	if memo != nil {
		t.Fatalf("memo should be dropped once back inside")
	}
}

func TestAspectResize_RatioPreserved(t *testing.T) {
	c := lockedConstraints()
	ratio := testStart.W / testStart.H
	for _, zone := range []Zone{ZoneTopLeft, ZoneTopRight, ZoneBottomLeft, ZoneBottomRight} {
		anchor := MinimumAnchor(testStart, zone, c)
		var memo *geometry.Rect
		for x := -100.0; x <= 500; x += 23 {
			for y := -100.0; y <= 500; y += 29 {
				var r geometry.Rect
				r, memo = AspectResize(testStart, zone, geometry.Pt(x, y), testParent, c, anchor, memo)
				if math.Abs(r.W/r.H-ratio) > 1e-6 {
					t.Fatalf("%v (%v,%v): ratio drifted to %v (%+v)", zone, x, y, r.W/r.H, r)
				}
				if r.W < c.MinWidth-eps || r.H < c.MinHeight-eps {
					t.Fatalf("%v (%v,%v): below minimum %+v", zone, x, y, r)
				}
			}
		}
	}
}

func TestMovedCenter_Containment(t *testing.T) {
	size := testStart.Size()
	for dx := -1000.0; dx <= 1000; dx += 77 {
		for dy := -1000.0; dy <= 1000; dy += 83 {
			c := MovedCenter(testStart.Center(), dx, dy, testParent, size)
			r := testStart.WithCenter(c)
			if !testParent.ContainsRect(r) {
				t.Fatalf("d=(%v,%v): %+v escapes parent", dx, dy, r)
			}
		}
	}
	c := MovedCenter(testStart.Center(), 1000, 0, testParent, size)
	if c.X != testParent.W-size.W/2 {
		t.Fatalf("expected center pinned at %v, got %v", testParent.W-size.W/2, c.X)
	}
}

func TestMovedCenter_NarrowParentCentres(t *testing.T) {
	parent := geometry.R(10, 0, 100, 400)
	c := MovedCenter(geometry.Pt(0, 100), 500, 0, parent, geometry.Size{W: 200, H: 50})
	if c.X != parent.MidX() || c.Y != 100 {
		t.Fatalf("expected x pinned to parent centre %v, got %+v", parent.MidX(), c)
	}
}

func TestConstraints_LockFreezesMinimums(t *testing.T) {
	c := NewConstraints(100, 100)
	if !c.Lock(testStart) {
		t.Fatalf("lock failed")
	}
	if !geometry.ApproxEqual(c.MinWidth, 100*200.0/120.0, eps) || c.MinHeight != 100 {
		t.Fatalf("minimums not re-derived: %v x %v", c.MinWidth, c.MinHeight)
	}
	if !geometry.ApproxEqual(c.AspectRatio, 200.0/120.0, eps) {
		t.Fatalf("ratio: %v", c.AspectRatio)
	}
	before := c.MinWidth
	if c.SetMinWidth(50) || c.MinWidth != before {
		t.Fatalf("min width change accepted while locked")
	}
	if c.SetMinHeight(50) || c.MinHeight != 100 {
		t.Fatalf("min height change accepted while locked")
	}
	c.Unlock()
	if c.MinWidth != 100 || c.MinHeight != 100 {
		t.Fatalf("unlock should restore previous minimums, got %v x %v", c.MinWidth, c.MinHeight)
	}
	if !c.SetMinWidth(50) || c.MinWidth != 50 {
		t.Fatalf("min width change rejected while unlocked")
	}
}

func TestConstraints_RejectsNonPositive(t *testing.T) {
	c := NewConstraints(0, -5)
	if c.MinWidth != 1 || c.MinHeight != 1 {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.SetMinWidth(0) || c.SetMinHeight(math.NaN()) || c.SetMinWidth(math.Inf(1)) {
		t.Fatalf("invalid minimum accepted")
	}
	if c.Lock(geometry.R(0, 0, 0, 10)) {
		t.Fatalf("lock on degenerate frame should fail")
	}
}
