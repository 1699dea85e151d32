package images

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors used to paint a region scene.
type Palette struct {
	Background color.Color // outside the parent
	Surface    color.Color // parent area
	Region     color.Color // region content
	Stroke     color.Color // region outline
	GripStroke color.Color
	GripFill   color.Color
}

// DefaultPalette matches the stock outline: red border, white-ringed blue grips.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0x0f, 0x17, 0x2a, 0xff},
		Surface:    color.RGBA{0xf7, 0xf9, 0xfb, 0xff},
		Region:     color.RGBA{0xd0, 0xd7, 0xde, 0xff},
		Stroke:     color.RGBA{0xff, 0x00, 0x00, 0xff},
		GripStroke: color.RGBA{0xff, 0xff, 0xff, 0xff},
		GripFill:   color.RGBA{0x00, 0x00, 0xff, 0xff},
	}
}

// ParseHex converts "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// WithStrokes returns p with the outline and grip colors replaced by the
// given hex strings. Empty strings keep the current color.
func (p Palette) WithStrokes(stroke, gripStroke, gripFill string) (Palette, error) {
	out := p
	for _, f := range []struct {
		hex string
		dst *color.Color
	}{
		{stroke, &out.Stroke},
		{gripStroke, &out.GripStroke},
		{gripFill, &out.GripFill},
	} {
		if f.hex == "" {
			continue
		}
		c, err := ParseHex(f.hex)
		if err != nil {
			return p, err
		}
		*f.dst = c
	}
	return out, nil
}
