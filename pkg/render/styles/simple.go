package styles

import (
	"bytes"
	"fmt"
)

// Simple draws strands as rounded-cap lines and crossings as smooth
// S-curves. The back strand is painted first, then the front strand with
// a background-colored halo that opens the undercrossing gap.
type Simple struct{}

// RenderDefs writes the opaque background rectangle the gap trick relies on.
func (Simple) RenderDefs(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		width, height, DefaultBackground)
}

// RenderSegment writes a straight strand line.
func (Simple) RenderSegment(buf *bytes.Buffer, s Segment) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		s.X1, s.Y1, s.X2, s.Y2, s.Color, s.LineWidth)
}

// RenderCrossing writes the two arcs in occlusion order.
func (Simple) RenderCrossing(buf *bytes.Buffer, c Crossing) {
	// Back strand, full arc.
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		arcPath(c.Under), c.UnderColor, c.LineWidth)
	// Halo under the front strand opens the gap.
	bg := c.Background
	if bg == "" {
		bg = DefaultBackground
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		arcPath(c.Over), bg, c.LineWidth+2*c.Gap)
	// Front strand on top.
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		arcPath(c.Over), c.OverColor, c.LineWidth)
}

// arcPath returns the SVG path for one strand's S-curve through a
// crossing cell: a cubic Bézier with vertical tangents at both ends, so
// the curve meets the straight segments above and below smoothly.
func arcPath(a Arc) string {
	midY := (a.Y1 + a.Y2) / 2
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
		a.X1, a.Y1, a.X1, midY, a.X2, midY, a.X2, a.Y2)
}

// Ensure Simple implements Style.
var _ Style = Simple{}
