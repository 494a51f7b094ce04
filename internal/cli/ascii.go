package cli

import (
	"strings"

	"github.com/strandlab/braidviz/pkg/braid"
)

// asciiDiagram renders a word as a rough text diagram, three lines per
// crossing. A positive crossing shows the left strand passing in front:
//
//	\ /
//	 /
//	/ \
//
// Uninvolved strands render as vertical bars.
func asciiDiagram(w *braid.Word) string {
	var b strings.Builder
	for i := 0; i < w.Len(); i++ {
		for _, line := range asciiBand(w.Strands(), w.Generator(i)) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// asciiBand renders one crossing band. Each slot occupies two columns.
func asciiBand(strands, g int) [3]string {
	s := g
	if s < 0 {
		s = -s
	}
	s-- // left slot of the crossing

	width := 2*strands - 1
	var lines [3][]byte
	for i := range lines {
		lines[i] = []byte(strings.Repeat(" ", width))
	}

	for slot := 0; slot < strands; slot++ {
		if slot == s || slot == s+1 {
			continue
		}
		for i := range lines {
			lines[i][2*slot] = '|'
		}
	}

	mid := byte('/')
	if g < 0 {
		mid = '\\'
	}
	lines[0][2*s], lines[0][2*s+2] = '\\', '/'
	lines[1][2*s+1] = mid
	lines[2][2*s], lines[2][2*s+2] = '/', '\\'

	return [3]string{string(lines[0]), string(lines[1]), string(lines[2])}
}
