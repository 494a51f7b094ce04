package styles

import (
	"fmt"
	"math"
)

// DefaultBackground is the canvas color styles assume when painting the
// undercrossing gap.
const DefaultBackground = "#ffffff"

// StrandColor returns the rainbow palette color for strand i of n as a
// hex string. Hues are spread evenly around the wheel so adjacent strands
// stay distinguishable for any strand count.
func StrandColor(i, n int) string {
	if n < 1 {
		n = 1
	}
	hue := 360.0 * float64(i%n) / float64(n)
	r, g, b := hsvToRGB(hue, 0.65, 0.85)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hsvToRGB converts hue [0,360), saturation and value [0,1] to 8-bit RGB.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

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
	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}
