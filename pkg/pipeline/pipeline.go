// Package pipeline provides the core word → layout → render pipeline.
//
// The CLI and the preview server both drive rendering through this
// package so option validation, defaulting, and artifact caching behave
// identically everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Strands: 3,
//	    Word:    []int{1, -2, 1},
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"sort"
	"strings"

	"github.com/strandlab/braidviz/pkg/errors"
	"github.com/strandlab/braidviz/pkg/layout"
	"github.com/strandlab/braidviz/pkg/render/sink"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Visualization types.
const (
	// VizTypeDiagram is the full geometric braid diagram.
	VizTypeDiagram = "diagram"
	// VizTypeNodelink is the Graphviz permutation summary.
	VizTypeNodelink = "nodelink"
)

// Visual styles.
const (
	StyleSimple = "simple"
)

// DefaultScale is the PNG rasterization scale factor.
const DefaultScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeDiagram:  true,
	VizTypeNodelink: true,
}

// Options contains all configuration for one pipeline run.
// The struct is JSON-serializable so the preview server can accept it
// directly.
type Options struct {
	// Word definition
	Strands int   `json:"strands"`
	Word    []int `json:"word"`

	// Output selection
	VizType string   `json:"viz_type,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`

	// Layout parameters
	StrandSpacing float64 `json:"strand_spacing,omitempty"`
	RowSpacing    float64 `json:"row_spacing,omitempty"`
	Compact       bool    `json:"compact,omitempty"`

	// Stroke parameters
	Color     string  `json:"color,omitempty"` // empty = rainbow palette
	LineWidth float64 `json:"line_width,omitempty"`
	Gap       float64 `json:"gap,omitempty"`
	Scale     float64 `json:"scale,omitempty"` // PNG only
}

// Normalize fills unset options with defaults. It does not validate.
func (o *Options) Normalize() {
	if o.VizType == "" {
		o.VizType = VizTypeDiagram
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = StyleSimple
	}
	if o.StrandSpacing == 0 {
		o.StrandSpacing = layout.DefaultStrandSpacing
	}
	if o.RowSpacing == 0 {
		o.RowSpacing = layout.DefaultRowSpacing
	}
	if o.LineWidth == 0 {
		o.LineWidth = sink.DefaultLineWidth
	}
	if o.Gap == 0 {
		o.Gap = sink.DefaultGap
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate checks option consistency after [Options.Normalize].
// Word validity itself is checked by braid.New when the runner builds
// the word.
func (o *Options) Validate() error {
	if !ValidVizTypes[o.VizType] {
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown visualization type %q (valid: %s)", o.VizType, keys(ValidVizTypes))
	}
	if !ValidStyles[o.Style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"unknown style %q (valid: %s)", o.Style, keys(ValidStyles))
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"unknown format %q (valid: %s)", f, keys(ValidFormats))
		}
		if o.VizType == VizTypeNodelink && f != FormatSVG {
			return errors.New(errors.ErrCodeUnsupported,
				"nodelink view only supports the svg format, got %q", f)
		}
	}
	return nil
}

// LayoutConfig returns the layout configuration the options describe.
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{
		StrandSpacing: o.StrandSpacing,
		RowSpacing:    o.RowSpacing,
		Compact:       o.Compact,
	}
}

// keys renders a validity map as a sorted flag help string.
func keys(m map[string]bool) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
