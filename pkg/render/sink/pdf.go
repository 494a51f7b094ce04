package sink

import (
	"github.com/strandlab/braidviz/pkg/layout"
	"github.com/strandlab/braidviz/pkg/render"
)

// RenderPDF renders the diagram as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(d layout.Diagram, opts ...SVGOption) ([]byte, error) {
	svg := RenderSVG(d, opts...)
	return render.ToPDF(svg)
}
