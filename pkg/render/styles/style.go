// Package styles defines the visual appearance of braid diagrams.
//
// A [Style] turns positioned strand data into SVG fragments. The sink
// package resolves layout primitives into the style-level [Segment] and
// [Crossing] structs (coordinates plus resolved colors) so that styles
// stay purely about appearance.
package styles

import "bytes"

// Style defines the visual appearance for braid rendering.
// Implementations control how strand segments and crossings are drawn.
type Style interface {
	// RenderDefs writes leading SVG content (background, defs).
	RenderDefs(buf *bytes.Buffer, width, height float64)
	// RenderSegment writes the SVG for a straight strand segment.
	RenderSegment(buf *bytes.Buffer, s Segment)
	// RenderCrossing writes the SVG for one crossing, back strand first,
	// front strand last so it occludes at the overlap.
	RenderCrossing(buf *bytes.Buffer, c Crossing)
}

// Segment contains all data needed to draw one straight strand run.
type Segment struct {
	Strand         int     // Strand identity
	Color          string  // Resolved stroke color
	X1, Y1, X2, Y2 float64 // Endpoints, top to bottom
	LineWidth      float64 // Stroke width
}

// Arc is one strand's path through a crossing cell, drawn as a smooth
// S-curve between the two endpoints.
type Arc struct {
	X1, Y1, X2, Y2 float64
}

// Crossing contains positioning and color data for one crossing.
type Crossing struct {
	Over, Under           Arc     // Front and back strand paths
	OverColor, UnderColor string  // Resolved stroke colors
	LineWidth             float64 // Stroke width
	Gap                   float64 // Clearance painted around the front strand
	Background            string  // Color the gap is painted in
}
