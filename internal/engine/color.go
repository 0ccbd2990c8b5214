package engine

import (
	"fmt"
	"math"
)

// hslToHex converts HSL to an uppercase #RRGGBB string. Hue is wrapped into
// [0,360), saturation and lightness are silently clamped into [0,100].
func hslToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round((r+m)*255)),
		uint8(math.Round((g+m)*255)),
		uint8(math.Round((b+m)*255)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// derivePalette generates the three colors from one seed. The secondary hue
// stays at least 38 degrees from the primary (rotation grows with the tier),
// the accent at least 150, so the palette reads as three colors in the
// rendered image. Saturation and lightness take different bit slices of the
// seed to decorrelate them from the hues.
func derivePalette(seed uint32, tier int) Palette {
	baseHue := float64(seed % 360)

	secondaryRot := float64(30 + tier*8 + int((seed>>11)%15))
	accentRot := float64(150 + int((seed>>17)%60))

	return Palette{
		Primary:   hslToHex(baseHue, 62+float64((seed>>3)%28), 48+float64((seed>>7)%18)),
		Secondary: hslToHex(baseHue+secondaryRot, 55+float64((seed>>13)%30), 42+float64((seed>>19)%24)),
		Accent:    hslToHex(baseHue+accentRot, 68+float64((seed>>21)%26), 52+float64((seed>>25)%20)),
	}
}
