// Package nodelink renders the strand permutation of a braid as a
// Graphviz node-link diagram.
//
// The geometric diagram (pkg/render/sink) shows every crossing; this view
// collapses the braid to its net effect, connecting each top slot to the
// bottom slot its strand ends up in. It is useful as a quick summary of
// long words.
//
//	dot := nodelink.ToDOT(w)
//	svg, err := nodelink.RenderSVG(dot)
package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/braid/perm"
	"github.com/strandlab/braidviz/pkg/render/styles"
)

// ToDOT converts a braid word's permutation to Graphviz DOT format.
// Top nodes are the slots at row 0, bottom nodes the slots after the
// whole word; each edge is one strand, stroked in its palette color.
func ToDOT(w *braid.Word) string {
	n := w.Strands()
	final := perm.Final(w)

	var buf bytes.Buffer
	buf.WriteString("digraph braid {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("\n")

	buf.WriteString("  { rank=same;")
	for s := 0; s < n; s++ {
		fmt.Fprintf(&buf, " top%d;", s)
	}
	buf.WriteString(" }\n")
	buf.WriteString("  { rank=same;")
	for s := 0; s < n; s++ {
		fmt.Fprintf(&buf, " bot%d;", s)
	}
	buf.WriteString(" }\n\n")

	for s := 0; s < n; s++ {
		fmt.Fprintf(&buf, "  top%d [label=%q];\n", s, fmt.Sprint(s))
		fmt.Fprintf(&buf, "  bot%d [label=%q];\n", s, fmt.Sprint(s))
	}

	buf.WriteString("\n")
	// final[slot] = strand; the strand started at top slot == its identity.
	for s := 0; s < n; s++ {
		strand := final[s]
		fmt.Fprintf(&buf, "  top%d -> bot%d [color=%q, penwidth=2];\n",
			strand, s, styles.StrandColor(strand, n))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
