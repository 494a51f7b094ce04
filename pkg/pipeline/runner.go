package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/cache"
	"github.com/strandlab/braidviz/pkg/layout"
	"github.com/strandlab/braidviz/pkg/render/nodelink"
	"github.com/strandlab/braidviz/pkg/render/sink"
	"github.com/strandlab/braidviz/pkg/render/styles"
)

// TTLArtifact is how long rendered artifacts stay cached. Rendering is
// deterministic, so the TTL only bounds disk usage.
const TTLArtifact = 24 * time.Hour

// Result holds everything one pipeline run produced.
type Result struct {
	// Word is the validated braid word.
	Word *braid.Word
	// Diagram is the computed geometry. Empty for the nodelink view.
	Diagram layout.Diagram
	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte
	// CacheHit reports whether all artifacts came from the cache.
	CacheHit bool
}

// Runner executes the word → layout → render pipeline with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger falls back to the package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete pipeline for the given options.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	w, err := braid.New(opts.Strands, opts.Word...)
	if err != nil {
		return nil, err
	}
	result := &Result{Word: w}

	if opts.VizType == VizTypeNodelink {
		artifacts, hit, err := r.renderNodelink(ctx, w, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.CacheHit = hit
		return result, nil
	}

	layoutStart := time.Now()
	d, err := layout.Build(w, opts.LayoutConfig())
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Diagram = d

	r.Logger.Debug("computed layout",
		"strands", d.Strands,
		"bands", d.Bands,
		"duration", time.Since(layoutStart))

	renderStart := time.Now()
	artifacts, hit, err := r.renderDiagram(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheHit = hit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", time.Since(renderStart))

	return result, nil
}

// renderDiagram renders every requested format, serving from the cache
// when all formats are present.
func (r *Runner) renderDiagram(ctx context.Context, d layout.Diagram, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte)

	allCached := true
	for _, format := range opts.Formats {
		key := r.artifactKey(format, opts)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	svgOpts := r.svgOptions(opts)
	for _, format := range opts.Formats {
		if _, ok := artifacts[format]; ok {
			continue
		}
		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(d, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(d,
				sink.WithPNGSVGOptions(svgOpts...),
				sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(d, svgOpts...)
		case FormatJSON:
			data, err = sink.MarshalDiagram(d)
		}
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		_ = r.Cache.Set(ctx, r.artifactKey(format, opts), data, TTLArtifact)
	}

	return artifacts, false, nil
}

// renderNodelink renders the Graphviz permutation summary.
func (r *Runner) renderNodelink(ctx context.Context, w *braid.Word, opts Options) (map[string][]byte, bool, error) {
	key := r.artifactKey("nodelink-svg", opts)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return map[string][]byte{FormatSVG: data}, true, nil
	}

	dot := nodelink.ToDOT(w)
	data, err := nodelink.RenderSVG(dot)
	if err != nil {
		return nil, false, fmt.Errorf("render nodelink: %w", err)
	}
	_ = r.Cache.Set(ctx, key, data, TTLArtifact)
	return map[string][]byte{FormatSVG: data}, false, nil
}

// svgOptions translates pipeline options into renderer options.
func (r *Runner) svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStyle(styleFor(opts.Style)),
		sink.WithLineWidth(opts.LineWidth),
		sink.WithGap(opts.Gap),
	}
	if opts.Color != "" {
		svgOpts = append(svgOpts, sink.WithColor(opts.Color))
	}
	return svgOpts
}

// styleFor maps a validated style name to its implementation.
func styleFor(name string) styles.Style {
	// Only one style today. New styles register here.
	return styles.Simple{}
}

// artifactKey builds the cache key for one rendered format. Every option
// that affects output bytes participates in the key.
func (r *Runner) artifactKey(format string, opts Options) string {
	return cache.Key("artifact",
		format, opts.Strands, opts.Word, opts.Style, opts.Compact,
		opts.StrandSpacing, opts.RowSpacing,
		opts.Color, opts.LineWidth, opts.Gap, opts.Scale)
}
