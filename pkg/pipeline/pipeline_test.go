package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/strandlab/braidviz/pkg/cache"
	"github.com/strandlab/braidviz/pkg/errors"
)

func TestNormalizeDefaults(t *testing.T) {
	opts := Options{Strands: 3, Word: []int{1}}
	opts.Normalize()

	if opts.VizType != VizTypeDiagram {
		t.Errorf("VizType = %q, want %q", opts.VizType, VizTypeDiagram)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != StyleSimple {
		t.Errorf("Style = %q, want %q", opts.Style, StyleSimple)
	}
	if opts.StrandSpacing <= 0 || opts.RowSpacing <= 0 {
		t.Errorf("spacing not defaulted: %v, %v", opts.StrandSpacing, opts.RowSpacing)
	}
	if opts.LineWidth <= 0 || opts.Gap <= 0 || opts.Scale <= 0 {
		t.Errorf("stroke params not defaulted: %v, %v, %v", opts.LineWidth, opts.Gap, opts.Scale)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Options)
		wantCode errors.Code
	}{
		{"valid defaults", func(o *Options) {}, ""},
		{"all formats", func(o *Options) {
			o.Formats = []string{"svg", "png", "pdf", "json"}
		}, ""},
		{"unknown format", func(o *Options) {
			o.Formats = []string{"gif"}
		}, errors.ErrCodeInvalidFormat},
		{"uppercase format rejected", func(o *Options) {
			o.Formats = []string{"SVG"}
		}, errors.ErrCodeInvalidFormat},
		{"unknown style", func(o *Options) {
			o.Style = "baroque"
		}, errors.ErrCodeInvalidStyle},
		{"unknown viz type", func(o *Options) {
			o.VizType = "heatmap"
		}, errors.ErrCodeInvalidInput},
		{"nodelink svg ok", func(o *Options) {
			o.VizType = VizTypeNodelink
		}, ""},
		{"nodelink png unsupported", func(o *Options) {
			o.VizType = VizTypeNodelink
			o.Formats = []string{"png"}
		}, errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Strands: 3, Word: []int{1, -2}}
			opts.Normalize()
			tt.mutate(&opts)

			err := opts.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestExecuteDiagram(t *testing.T) {
	runner := NewRunner(nil, nil)

	result, err := runner.Execute(context.Background(), Options{
		Strands: 3,
		Word:    []int{1, -2, 1},
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Word.Len() != 3 {
		t.Errorf("word length = %d, want 3", result.Word.Len())
	}
	if result.Diagram.Bands != 3 {
		t.Errorf("bands = %d, want 3", result.Diagram.Bands)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("missing svg artifact")
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg artifact does not look like SVG")
	}
	jsonData, ok := result.Artifacts[FormatJSON]
	if !ok {
		t.Fatal("missing json artifact")
	}
	if !bytes.Contains(jsonData, []byte(`"crossings"`)) {
		t.Error("json artifact missing crossings field")
	}
}

func TestExecuteInvalidWord(t *testing.T) {
	runner := NewRunner(nil, nil)

	_, err := runner.Execute(context.Background(), Options{
		Strands: 3,
		Word:    []int{5},
	})
	if err == nil {
		t.Fatal("expected error for out-of-range generator")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidGenerator {
		t.Errorf("error code = %q, want %q", got, errors.ErrCodeInvalidGenerator)
	}
}

func TestExecuteCacheRoundTrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	runner := NewRunner(c, nil)
	opts := Options{
		Strands: 2,
		Word:    []int{1, 1},
		Formats: []string{FormatSVG},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheHit {
		t.Error("first run reported a cache hit")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run missed the cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}
}

func TestArtifactKeyDistinguishesOptions(t *testing.T) {
	r := NewRunner(nil, nil)

	base := Options{Strands: 3, Word: []int{1, 2}}
	base.Normalize()

	compact := base
	compact.Compact = true

	if r.artifactKey(FormatSVG, base) == r.artifactKey(FormatSVG, compact) {
		t.Error("compact flag does not affect the cache key")
	}
	if r.artifactKey(FormatSVG, base) == r.artifactKey(FormatPNG, base) {
		t.Error("format does not affect the cache key")
	}
}
