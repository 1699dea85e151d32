package resize

import "github.com/soocke/gripframe/domain/geometry"

// MovedCenter translates center by (dx, dy) and clamps each axis so a region
// of the given size stays inside parent. On an axis where the parent is
// smaller than the region the centre is pinned to the parent's centre.
func MovedCenter(center geometry.Point, dx, dy float64, parent geometry.Rect, size geometry.Size) geometry.Point {
	halfW, halfH := size.W/2, size.H/2
	x := geometry.Clamp(center.X+dx, parent.X+halfW, parent.MaxX()-halfW)
	y := geometry.Clamp(center.Y+dy, parent.Y+halfH, parent.MaxY()-halfH)
	return geometry.Pt(x, y)
}
