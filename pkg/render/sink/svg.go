package sink

import (
	"bytes"
	"fmt"

	"github.com/strandlab/braidviz/pkg/layout"
	"github.com/strandlab/braidviz/pkg/render/styles"
)

// Default stroke geometry, in user units.
const (
	DefaultLineWidth = 3.0
	DefaultGap       = 4.0
)

// SVGOption configures SVG rendering (and, through it, PNG and PDF).
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style     styles.Style
	color     string // fixed strand color; empty selects the rainbow palette
	lineWidth float64
	gap       float64
}

// WithStyle selects the visual style. Defaults to [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithColor draws every strand in the given color instead of the rainbow
// palette.
func WithColor(c string) SVGOption { return func(r *svgRenderer) { r.color = c } }

// WithLineWidth sets the strand stroke width.
func WithLineWidth(w float64) SVGOption { return func(r *svgRenderer) { r.lineWidth = w } }

// WithGap sets the clearance painted around the front strand at each
// crossing.
func WithGap(g float64) SVGOption { return func(r *svgRenderer) { r.gap = g } }

// RenderSVG renders the diagram as a standalone SVG document.
//
// Primitives are painted in the order the layout emitted them; within a
// crossing the style paints back strand, gap, then front strand, so the
// over/under relation of every crossing is depicted correctly.
func RenderSVG(d layout.Diagram, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		d.Width, d.Height, d.Width, d.Height)

	r.style.RenderDefs(&buf, d.Width, d.Height)

	for _, p := range d.Primitives {
		switch v := p.(type) {
		case layout.Segment:
			r.style.RenderSegment(&buf, styles.Segment{
				Strand:    v.Strand,
				Color:     r.strandColor(v.Strand, d.Strands),
				X1:        v.From.X,
				Y1:        v.From.Y,
				X2:        v.To.X,
				Y2:        v.To.Y,
				LineWidth: r.lineWidth,
			})
		case layout.Crossing:
			overFrom, overTo := v.OverPath()
			underFrom, underTo := v.UnderPath()
			r.style.RenderCrossing(&buf, styles.Crossing{
				Over:       styles.Arc{X1: overFrom.X, Y1: overFrom.Y, X2: overTo.X, Y2: overTo.Y},
				Under:      styles.Arc{X1: underFrom.X, Y1: underFrom.Y, X2: underTo.X, Y2: underTo.Y},
				OverColor:  r.strandColor(v.Over, d.Strands),
				UnderColor: r.strandColor(v.Under, d.Strands),
				LineWidth:  r.lineWidth,
				Gap:        r.gap,
				Background: styles.DefaultBackground,
			})
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:     styles.Simple{},
		lineWidth: DefaultLineWidth,
		gap:       DefaultGap,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) strandColor(strand, strands int) string {
	if r.color != "" {
		return r.color
	}
	return styles.StrandColor(strand, strands)
}
