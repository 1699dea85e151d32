package grip

import "github.com/soocke/gripframe/domain/geometry"

// Default handle metrics.
const (
	DefaultSize        = 10.0
	DefaultBorderWidth = 2.0
	DefaultStrokeWidth = 2.0
)

// Layout describes where the border and the grip handles of a region are
// drawn, in region-local coordinates.
type Layout struct {
	Border  geometry.Rect    // stroke rectangle of the region outline
	Content geometry.Rect    // area left for hosted content
	Handles [4]geometry.Rect // circle bounds: top-left, top-right, bottom-left, bottom-right

	BorderWidth float64
	StrokeWidth float64
}

// Compute lays out a region of the given size with handles of diameter size.
// The outline sits size in from every edge and each handle is centred on an
// outline corner, so the handles never leave the region.
func Compute(region geometry.Size, size float64) Layout {
	if size <= 0 {
		size = DefaultSize
	}
	bounds := geometry.R(0, 0, region.W, region.H)
	inner := bounds.Inset(size, size)
	half := size / 2
	left, upper := half, half
	right := region.W - size - half
	lower := region.H - size - half
	return Layout{
		Border:  inner,
		Content: inner,
		Handles: [4]geometry.Rect{
			geometry.R(left, upper, size, size),
			geometry.R(right, upper, size, size),
			geometry.R(left, lower, size, size),
			geometry.R(right, lower, size, size),
		},
		BorderWidth: DefaultBorderWidth,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Offset translates every rectangle of l by (dx, dy), typically a region
// origin to move the layout into parent space.
func (l Layout) Offset(dx, dy float64) Layout {
	out := l
	out.Border = l.Border.Translate(dx, dy)
	out.Content = l.Content.Translate(dx, dy)
	for i, h := range l.Handles {
		out.Handles[i] = h.Translate(dx, dy)
	}
	return out
}
