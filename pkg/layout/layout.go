package layout

import (
	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/braid/perm"
)

// Build computes the drawable geometry for a braid word.
//
// The result is deterministic: the same word and config always produce
// the same primitive sequence in the same order. A word with no
// generators still yields one band of parallel segments so the diagram is
// never empty.
func Build(w *braid.Word, cfg Config) (Diagram, error) {
	if err := cfg.Validate(); err != nil {
		return Diagram{}, err
	}

	n := w.Strands()
	gens := w.Generators()
	rows := perm.Rows(w)
	bandOf, bands := assignBands(w, cfg.Compact)

	d := Diagram{
		Strands: n,
		Bands:   bands,
		Width:   float64(n) * cfg.StrandSpacing,
		Height:  float64(bands) * cfg.RowSpacing,
	}

	// crossingAt[b][s] holds the generator index of the crossing whose
	// left slot is s in band b, or -1.
	crossingAt := make([][]int, bands)
	for b := range crossingAt {
		crossingAt[b] = make([]int, n)
		for s := range crossingAt[b] {
			crossingAt[b][s] = -1
		}
	}
	// startRow[b] is the permutation row in effect when band b begins.
	startRow := make([]int, bands)
	for k, g := range gens {
		b := bandOf[k]
		crossingAt[b][abs(g)-1] = k
		if b+1 < bands {
			startRow[b+1] = k + 1
		}
	}

	x := func(s int) float64 { return (float64(s) + 0.5) * cfg.StrandSpacing }
	y := func(b int) float64 { return float64(b) * cfg.RowSpacing }

	for b := 0; b < bands; b++ {
		row := rows[startRow[b]]
		for s := 0; s < n; s++ {
			if k := crossingAt[b][s]; k >= 0 {
				d.Primitives = append(d.Primitives, newCrossing(k, gens[k], b, s, rows[k], x, y))
				s++ // the crossing also owns slot s+1
				continue
			}
			d.Primitives = append(d.Primitives, Segment{
				Strand: row[s],
				Band:   b,
				Slot:   s,
				From:   Point{X: x(s), Y: y(b)},
				To:     Point{X: x(s), Y: y(b + 1)},
			})
		}
	}
	return d, nil
}

// newCrossing builds the crossing primitive for generator g (index k in
// the word) with left slot s in band b. row is the slot assignment in
// effect just before the generator applies.
func newCrossing(k, g, b, s int, row []int, x, y func(int) float64) Crossing {
	left, right := row[s], row[s+1]
	c := Crossing{
		Band:        b,
		Index:       k,
		LeftSlot:    s,
		Sign:        1,
		Over:        left,
		Under:       right,
		TopLeft:     Point{X: x(s), Y: y(b)},
		TopRight:    Point{X: x(s + 1), Y: y(b)},
		BottomLeft:  Point{X: x(s), Y: y(b + 1)},
		BottomRight: Point{X: x(s + 1), Y: y(b + 1)},
	}
	if g < 0 {
		c.Sign = -1
		c.Over, c.Under = right, left
	}
	return c
}

// assignBands maps each generator index to a vertical band. Extended mode
// is one band per generator. Compact mode greedily packs a run of
// crossings into one band until a slot is touched twice, like laying
// bricks in courses. Both modes return at least one band so an empty word
// still has somewhere to draw its strands.
func assignBands(w *braid.Word, compact bool) (bandOf []int, bands int) {
	gens := w.Generators()
	bandOf = make([]int, len(gens))

	if !compact {
		for k := range gens {
			bandOf[k] = k
		}
		return bandOf, max(len(gens), 1)
	}

	occupied := make([]bool, w.Strands())
	band := 0
	for k, g := range gens {
		s := abs(g) - 1
		if occupied[s] || occupied[s+1] {
			band++
			clear(occupied)
		}
		occupied[s], occupied[s+1] = true, true
		bandOf[k] = band
	}
	return bandOf, band + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
