// Package sink renders laid-out braid diagrams into output formats.
//
// All sinks consume the same [layout.Diagram] primitive sequence:
//
//	d, _ := layout.Build(word, layout.DefaultConfig())
//	svg := sink.RenderSVG(d)
//	png, err := sink.RenderPNG(d, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(d)
//	data, err := sink.MarshalDiagram(d)
//
// SVG is the primary format. PNG rasterizes the same primitives natively
// (no external tools); PDF goes through rsvg-convert. The JSON sink
// serializes the primitive sequence itself for external renderers.
//
// Rendering options are shared across the visual sinks via [SVGOption]:
// style, strand color, line width, and undercrossing gap.
//
// [layout.Diagram]: github.com/strandlab/braidviz/pkg/layout
package sink
