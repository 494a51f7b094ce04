package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/strandlab/braidviz/pkg/layout"
	"github.com/strandlab/braidviz/pkg/render/styles"
)

// PNGOption configures PNG rasterization.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svg   svgRenderer
	scale float64
}

// WithPNGSVGOptions passes shared rendering options (style, color, line
// width, gap) through to the rasterizer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svg = newSVGRenderer(opts...) }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the diagram directly from its primitives.
// No external tools are required.
func RenderPNG(d layout.Diagram, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{svg: newSVGRenderer(), scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(ceil(d.Width*r.scale), ceil(d.Height*r.scale))
	dc.Scale(r.scale, r.scale)
	dc.SetHexColor(styles.DefaultBackground)
	dc.Clear()
	dc.SetLineCapRound()

	for _, p := range d.Primitives {
		switch v := p.(type) {
		case layout.Segment:
			dc.SetHexColor(r.svg.strandColor(v.Strand, d.Strands))
			dc.SetLineWidth(r.svg.lineWidth)
			dc.DrawLine(v.From.X, v.From.Y, v.To.X, v.To.Y)
			dc.Stroke()
		case layout.Crossing:
			r.drawCrossing(dc, v, d.Strands)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawCrossing paints back strand, background halo, then front strand,
// matching the SVG styles' occlusion order.
func (r *pngRenderer) drawCrossing(dc *gg.Context, c layout.Crossing, strands int) {
	overFrom, overTo := c.OverPath()
	underFrom, underTo := c.UnderPath()

	dc.SetHexColor(r.svg.strandColor(c.Under, strands))
	dc.SetLineWidth(r.svg.lineWidth)
	strokeArc(dc, underFrom, underTo)

	dc.SetHexColor(styles.DefaultBackground)
	dc.SetLineWidth(r.svg.lineWidth + 2*r.svg.gap)
	strokeArc(dc, overFrom, overTo)

	dc.SetHexColor(r.svg.strandColor(c.Over, strands))
	dc.SetLineWidth(r.svg.lineWidth)
	strokeArc(dc, overFrom, overTo)
}

// strokeArc draws the same vertical-tangent cubic the SVG styles use.
func strokeArc(dc *gg.Context, from, to layout.Point) {
	midY := (from.Y + to.Y) / 2
	dc.MoveTo(from.X, from.Y)
	dc.CubicTo(from.X, midY, to.X, midY, to.X, to.Y)
	dc.Stroke()
}

func ceil(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
