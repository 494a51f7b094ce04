package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/layout"
)

func mustDiagram(t *testing.T, strands int, gens ...int) layout.Diagram {
	t.Helper()
	w, err := braid.New(strands, gens...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	d, err := layout.Build(w, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return d
}

func TestRenderSVGFrame(t *testing.T) {
	d := mustDiagram(t, 3, 1, 2)

	svg := RenderSVG(d)
	got := string(svg)

	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element:\n%.120s", got)
	}
	if !strings.Contains(got, `viewBox="0 0 120.0 120.0"`) {
		t.Errorf("viewBox does not match diagram extent:\n%.200s", got)
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Error("missing closing tag")
	}
}

func TestRenderSVGPrimitiveCounts(t *testing.T) {
	// 3 strands, word [1]: one crossing (three path elements) and one
	// straight segment.
	d := mustDiagram(t, 3, 1)

	got := string(RenderSVG(d))
	if n := strings.Count(got, "<line "); n != 1 {
		t.Errorf("got %d line elements, want 1", n)
	}
	if n := strings.Count(got, "<path "); n != 3 {
		t.Errorf("got %d path elements, want 3 (under, halo, over)", n)
	}
}

func TestRenderSVGEmptyWord(t *testing.T) {
	d := mustDiagram(t, 2)

	got := string(RenderSVG(d))
	if n := strings.Count(got, "<line "); n != 2 {
		t.Errorf("got %d line elements, want 2 parallel strands", n)
	}
	if strings.Contains(got, "<path ") {
		t.Error("crossing-free diagram should have no path elements")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	d := mustDiagram(t, 4, 1, -2, 3, 2)

	first := RenderSVG(d)
	second := RenderSVG(d)
	if !bytes.Equal(first, second) {
		t.Error("RenderSVG is not deterministic")
	}
}

func TestRenderSVGFixedColor(t *testing.T) {
	d := mustDiagram(t, 3, 1)

	got := string(RenderSVG(d, WithColor("#123456")))
	if !strings.Contains(got, `stroke="#123456"`) {
		t.Error("fixed color not applied")
	}
	// With a fixed color no rainbow stroke should appear on strands.
	if strings.Count(got, `stroke="#123456"`) != 3 { // line + under + over
		t.Errorf("fixed color applied %d times, want 3", strings.Count(got, `stroke="#123456"`))
	}
}

func TestRenderSVGLineWidthAndGap(t *testing.T) {
	d := mustDiagram(t, 2, 1)

	got := string(RenderSVG(d, WithLineWidth(2), WithGap(5)))
	if !strings.Contains(got, `stroke-width="2.0"`) {
		t.Error("line width option not applied")
	}
	if !strings.Contains(got, `stroke-width="12.0"`) { // 2 + 2*5 halo
		t.Error("gap option not reflected in halo width")
	}
}
