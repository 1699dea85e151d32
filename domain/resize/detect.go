package resize

import "github.com/soocke/gripframe/domain/geometry"

// Detect maps a region-local touch point to a hotzone.
//
// Corners are tested in a fixed order (top-left, top-right, bottom-left,
// bottom-right) and the first match wins. When the margin exceeds half the
// region size a point can satisfy two corners; the order above is the tie-break.
// Anything that is not a corner is ZoneCenter.
func Detect(local geometry.Point, size geometry.Size, margin float64) Zone {
	nearLeft := local.X < margin
	nearRight := size.W-local.X < margin
	nearTop := local.Y < margin
	nearBottom := size.H-local.Y < margin
	switch {
	case nearLeft && nearTop:
		return ZoneTopLeft
	case nearRight && nearTop:
		return ZoneTopRight
	case nearLeft && nearBottom:
		return ZoneBottomLeft
	case nearRight && nearBottom:
		return ZoneBottomRight
	default:
		return ZoneCenter
	}
}
