package cli

import (
	"strings"
	"testing"

	"github.com/strandlab/braidviz/pkg/braid"
)

func TestAsciiBand(t *testing.T) {
	lines := asciiBand(3, 1)
	want := [3]string{
		`\ / |`,
		` /  |`,
		`/ \ |`,
	}
	if lines != want {
		t.Errorf("asciiBand(3, 1) =\n%s\nwant\n%s",
			strings.Join(lines[:], "\n"), strings.Join(want[:], "\n"))
	}

	// Negative crossing flips the middle stroke.
	lines = asciiBand(3, -2)
	if lines[1] != `|  \ ` {
		t.Errorf("asciiBand(3, -2) middle = %q, want %q", lines[1], `|  \ `)
	}
}

func TestAsciiDiagram(t *testing.T) {
	w, err := braid.New(2, 1, -1)
	if err != nil {
		t.Fatal(err)
	}
	got := asciiDiagram(w)
	if strings.Count(got, "\n") != 5 {
		t.Errorf("expected 6 lines for 2 crossings, got:\n%s", got)
	}
	if !strings.Contains(got, `/`) || !strings.Contains(got, `\`) {
		t.Errorf("diagram missing crossing strokes:\n%s", got)
	}
}
