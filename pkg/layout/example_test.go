package layout_test

import (
	"fmt"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/layout"
)

func ExampleBuild() {
	w, _ := braid.New(3, 1)

	d, _ := layout.Build(w, layout.Config{StrandSpacing: 10, RowSpacing: 10})

	for _, p := range d.Primitives {
		switch v := p.(type) {
		case layout.Crossing:
			fmt.Printf("crossing: strand %d over strand %d at slots %d,%d\n",
				v.Over, v.Under, v.LeftSlot, v.LeftSlot+1)
		case layout.Segment:
			fmt.Printf("segment: strand %d straight through slot %d\n", v.Strand, v.Slot)
		}
	}
	fmt.Printf("frame: %.0fx%.0f\n", d.Width, d.Height)
	// Output:
	// crossing: strand 0 over strand 1 at slots 0,1
	// segment: strand 2 straight through slot 2
	// frame: 30x10
}
