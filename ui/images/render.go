package images

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/grip"
)

// bezier control distance for a quarter circle
const kappa = 0.5522847498

// Scene is everything needed to paint one frame of a region.
type Scene struct {
	Parent       geometry.Rect
	Frame        geometry.Rect
	GripsVisible bool
	GripSize     float64

	// Cursor is drawn as a small crosshair when ShowCursor is set.
	Cursor     geometry.Point
	ShowCursor bool
}

// Viewport maps parent space onto a w x h image, preserving aspect ratio and
// anchoring the parent at the top-left corner.
type Viewport struct {
	Parent geometry.Rect
	Scale  float64
}

// NewViewport fits parent into w x h.
func NewViewport(parent geometry.Rect, w, h int) Viewport {
	s := 1.0
	if parent.W > 0 && parent.H > 0 {
		s = math.Min(float64(w)/parent.W, float64(h)/parent.H)
	}
	return Viewport{Parent: parent, Scale: s}
}

// ToImage maps a parent-space point to image coordinates.
func (v Viewport) ToImage(p geometry.Point) (float64, float64) {
	return (p.X - v.Parent.X) * v.Scale, (p.Y - v.Parent.Y) * v.Scale
}

// ToParent maps image coordinates back to a parent-space point.
func (v Viewport) ToParent(x, y float64) geometry.Point {
	if v.Scale == 0 {
		return geometry.Pt(v.Parent.X, v.Parent.Y)
	}
	return geometry.Pt(x/v.Scale+v.Parent.X, y/v.Scale+v.Parent.Y)
}

func (v Viewport) rect(r geometry.Rect) geometry.Rect {
	x, y := v.ToImage(r.Origin())
	return geometry.R(x, y, r.W*v.Scale, r.H*v.Scale)
}

// Render paints s into a new w x h image. The outline and grips are only
// drawn while GripsVisible is set.
func Render(s Scene, p Palette, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)
	vp := NewViewport(s.Parent, w, h)
	fillRect(dst, vp.rect(s.Parent), p.Surface)

	l := grip.Compute(s.Frame.Size(), s.GripSize).Offset(s.Frame.X, s.Frame.Y)
	fillRect(dst, vp.rect(l.Content), p.Region)
	if s.GripsVisible {
		drawGrips(dst, vp, l, p)
	}
	if s.ShowCursor {
		cx, cy := vp.ToImage(s.Cursor)
		fillRect(dst, geometry.R(cx-cursorArm, cy-1, 2*cursorArm, 2), p.Stroke)
		fillRect(dst, geometry.R(cx-1, cy-cursorArm, 2, 2*cursorArm), p.Stroke)
	}
	return dst
}

const cursorArm = 6

func drawGrips(dst *image.RGBA, vp Viewport, l grip.Layout, p Palette) {
	strokeRect(dst, vp.rect(l.Border), l.BorderWidth*vp.Scale, p.Stroke)
	for _, hr := range l.Handles {
		r := vp.rect(hr)
		cx, cy := r.MidX(), r.MidY()
		sw := l.StrokeWidth * vp.Scale
		fillCircle(dst, cx, cy, r.W/2+sw/2, p.GripStroke)
		fillCircle(dst, cx, cy, r.W/2-sw/2, p.GripFill)
	}
}

func rasterizer(dst *image.RGBA) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func fillRect(dst *image.RGBA, r geometry.Rect, c color.Color) {
	if r.IsEmpty() {
		return
	}
	z := rasterizer(dst)
	z.MoveTo(float32(r.X), float32(r.Y))
	z.LineTo(float32(r.MaxX()), float32(r.Y))
	z.LineTo(float32(r.MaxX()), float32(r.MaxY()))
	z.LineTo(float32(r.X), float32(r.MaxY()))
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// strokeRect draws an outline of width lw centred on r's edges.
func strokeRect(dst *image.RGBA, r geometry.Rect, lw float64, c color.Color) {
	half := lw / 2
	fillRect(dst, geometry.R(r.X-half, r.Y-half, r.W+lw, lw), c)
	fillRect(dst, geometry.R(r.X-half, r.MaxY()-half, r.W+lw, lw), c)
	fillRect(dst, geometry.R(r.X-half, r.Y+half, lw, r.H-lw), c)
	fillRect(dst, geometry.R(r.MaxX()-half, r.Y+half, lw, r.H-lw), c)
}

func fillCircle(dst *image.RGBA, cx, cy, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	x, y, rr, k := float32(cx), float32(cy), float32(radius), float32(radius*kappa)
	z := rasterizer(dst)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
