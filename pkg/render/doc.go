// Package render provides output rendering for braid diagrams.
//
// # Overview
//
// This package and its subpackages consume the primitive sequence produced
// by pkg/layout and paint it:
//
//   - [styles]: the Style interface and the built-in visual styles
//   - [sink]: output formats (SVG, PNG, PDF, JSON)
//   - [nodelink]: Graphviz view of the strand permutation
//
// The layout owns correctness (coordinates, over/under order); everything
// here is presentation. A sink walks the primitives in sequence and, for
// each crossing, paints the back strand before the front strand, which is
// all that is needed for correct occlusion.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg). PNG output does not need it: pkg/render/sink rasterizes
// natively.
//
//	svg := sink.RenderSVG(diagram)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/strandlab/braidviz/pkg/render/sink
// [styles]: github.com/strandlab/braidviz/pkg/render/styles
// [nodelink]: github.com/strandlab/braidviz/pkg/render/nodelink
package render
